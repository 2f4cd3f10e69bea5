package params

/////////////////////////////////////////////////////////////////////////////
// PARAMETERS
/////////////////////////////////////////////////////////////////////////////

// MaxParams is the total number of numeric slots available for one CSI
// sequence, parameters and subparameters combined. Values past the limit are
// silently dropped.
const MaxParams = 32

// MaxValue is the saturation bound for a single numeric value.
const MaxValue = 65535

// Parameters stores the numeric body of one CSI sequence. The backing
// storage is fixed size so one instance can be reused across sequences
// without allocating.
type Parameters struct {
	values [MaxParams]uint16
	subs   [MaxParams]uint8 // trailing subparameter count, recorded on the group head slot
	length int
	head   int // slot index of the most recently pushed parameter
}

func (p *Parameters) Len() int {
	return p.length
}

// IsFull reports whether further Push or Extend calls would be dropped.
func (p *Parameters) IsFull() bool {
	return p.length == MaxParams
}

// Clear resets the parameters to empty for reuse.
func (p *Parameters) Clear() {
	p.length = 0
	p.head = 0
}

// Push appends a new top-level parameter. Once full, Push is a no-op.
func (p *Parameters) Push(value int) {
	if p.IsFull() {
		return
	}
	p.head = p.length
	p.values[p.length] = clamp(value)
	p.subs[p.length] = 0
	p.length++
}

// Extend appends a subparameter to the most recently pushed parameter.
// With nothing pushed yet it behaves like Push. Once full, Extend is a no-op.
func (p *Parameters) Extend(value int) {
	if p.IsFull() {
		return
	}
	if p.length == 0 {
		p.Push(value)
		return
	}
	p.values[p.length] = clamp(value)
	p.subs[p.head]++
	p.length++
}

func clamp(value int) uint16 {
	if value < 0 {
		return 0
	}
	if value > MaxValue {
		return MaxValue
	}
	return uint16(value)
}

/////////////////////////////////////////////////////////////////////////////
// GROUP CURSOR
/////////////////////////////////////////////////////////////////////////////

// Groups returns a forward-only cursor yielding parameter groups in original
// order. A group is one parameter followed by its subparameters; a plain
// parameter yields a single-element group.
func (p *Parameters) Groups() Cursor {
	return Cursor{params: p}
}

type Cursor struct {
	params *Parameters
	pos    int
}

// Next yields the next group as a view into the backing storage. The slice
// is valid until the Parameters value is cleared or refilled.
func (c *Cursor) Next() ([]uint16, bool) {
	if c.pos >= c.params.length {
		return nil, false
	}
	n := 1 + int(c.params.subs[c.pos])
	if c.pos+n > c.params.length {
		// group head whose subparameters were truncated at capacity
		n = c.params.length - c.pos
	}
	group := c.params.values[c.pos : c.pos+n]
	c.pos += n
	return group, true
}
