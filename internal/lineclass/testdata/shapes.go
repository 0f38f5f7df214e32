// Package shapes is a classifier fixture.
package shapes

import "fmt"

// Rect is a rectangle.
type Rect struct {
	// W is the width.
	W int
	H int // height
}

/*
Area returns the area.
*/
func (r Rect) Area() int {
	// multiply sides
	return r.W * r.H
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d", r.W, r.H) /* inline */
}
