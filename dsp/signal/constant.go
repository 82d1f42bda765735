package signal

// Constant returns a fixed value regardless of the sample index. Set changes
// the value in place, so every holder of the Constant sees the edit without
// a rebind.
type Constant struct {
	value float64
}

// NewConstant returns a Constant holding v.
func NewConstant(v float64) *Constant {
	return &Constant{value: v}
}

// Eval returns the stored value.
func (c *Constant) Eval(float64) float64 { return c.value }

// Value returns the stored value.
func (c *Constant) Value() float64 { return c.value }

// Set replaces the stored value.
func (c *Constant) Set(v float64) { c.value = v }

// Clone returns an independent Constant with the same value.
func (c *Constant) Clone() Node { return &Constant{value: c.value} }

// Valid always reports true.
func (c *Constant) Valid() bool { return true }

// Kind returns KindConstant.
func (c *Constant) Kind() Kind { return KindConstant }
