package project

// Addition adds its operands.
type Addition struct{ x, y int }

func (a Addition) Add(x, y int) int {
	return x + y // wraps
}

// Sum adds the stored operands.
func (a Addition) Sum() int { return a.Add(a.x, a.y) }
