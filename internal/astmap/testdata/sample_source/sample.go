// Package sample is an astmap fixture.
package sample

// Adder supplies a two-operand sum.
type Adder interface {
	Add(x, y int) int
}

type (
	// Pair holds two operands.
	Pair struct{ X, Y int }

	counter int
)

// Sum adds the pair's operands with a.
//
// It is documented over three lines.
func (p Pair) Sum(a Adder) int {
	return a.Add(p.X, p.Y)
}

func (c *counter) inc() {
	*c++
}

/*
Combine is documented with a block comment.
*/
func Combine(a Adder, x, y int) int {
	return a.Add(x, y)
}

func Undocumented() {}
