// Package operation combines a pair of stored operands through a pluggable
// two-operand capability.
package operation

// Adder is the capability a variant supplies so that Combine can be applied
// to its operands.
type Adder interface {
	Add(x, y int) int
}

// Operands holds two integers fixed at construction.
type Operands struct {
	x int
	y int
}

// NewOperands returns an Operands holding x and y.
func NewOperands(x, y int) Operands {
	return Operands{x: x, y: y}
}

// X returns the first operand.
func (o Operands) X() int { return o.x }

// Y returns the second operand.
func (o Operands) Y() int { return o.y }

// Combine reads the stored operands and hands them to a.
// The result is returned unchanged.
func Combine(o Operands, a Adder) int {
	return a.Add(o.x, o.y)
}

// Addition is the variant whose capability is integer addition.
type Addition struct {
	Operands
}

// NewAddition returns an Addition over x and y.
func NewAddition(x, y int) Addition {
	return Addition{Operands: NewOperands(x, y)}
}

// Add returns x + y. Overflow wraps.
func (Addition) Add(x, y int) int {
	return x + y
}

// Sum adds the stored operands.
func (a Addition) Sum() int {
	return Combine(a.Operands, a)
}
