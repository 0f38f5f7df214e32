package operation

import (
	"math"
	"testing"
)

func TestAdditionSum(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want int
	}{
		{name: "example values", x: 5, y: 12, want: 17},
		{name: "zeros", x: 0, y: 0, want: 0},
		{name: "negative", x: -7, y: 3, want: -4},
		{name: "both negative", x: -20, y: -22, want: -42},
		{name: "large", x: 1 << 20, y: 1 << 20, want: 1 << 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewAddition(tt.x, tt.y).Sum()
			if got != tt.want {
				t.Errorf("NewAddition(%d, %d).Sum() = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestAdditionSum_Commutative(t *testing.T) {
	pairs := [][2]int{{5, 12}, {-3, 8}, {0, 99}, {math.MaxInt32, math.MinInt32}}
	for _, p := range pairs {
		ab := NewAddition(p[0], p[1]).Sum()
		ba := NewAddition(p[1], p[0]).Sum()
		if ab != ba {
			t.Errorf("Sum(%d, %d) = %d, Sum(%d, %d) = %d", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestAdditionSum_MatchesAdd(t *testing.T) {
	a := NewAddition(31, -9)
	want := a.Add(a.X(), a.Y())
	for i := 0; i < 3; i++ {
		if got := a.Sum(); got != want {
			t.Fatalf("call %d: Sum() = %d, want %d", i, got, want)
		}
	}
}

func TestAdditionSum_Overflow(t *testing.T) {
	got := NewAddition(math.MaxInt, 1).Sum()
	if got != math.MinInt {
		t.Errorf("Sum(MaxInt, 1) = %d, want %d", got, math.MinInt)
	}
}

func TestNewOperands(t *testing.T) {
	x, y := 5, 12
	o := NewOperands(x, y)
	if o.X() != 5 || o.Y() != 12 {
		t.Errorf("operands = (%d, %d), want (5, 12)", o.X(), o.Y())
	}
	if x != 5 || y != 12 {
		t.Errorf("inputs changed to (%d, %d)", x, y)
	}
}

// recordingAdder captures the operands Combine passes through.
type recordingAdder struct {
	calls [][2]int
}

func (r *recordingAdder) Add(x, y int) int {
	r.calls = append(r.calls, [2]int{x, y})
	return x*100 + y
}

func TestCombine_Delegates(t *testing.T) {
	rec := &recordingAdder{}
	o := NewOperands(4, 2)

	if got := Combine(o, rec); got != 402 {
		t.Errorf("Combine() = %d, want 402", got)
	}
	if len(rec.calls) != 1 {
		t.Fatalf("Add called %d times, want 1", len(rec.calls))
	}
	if rec.calls[0] != [2]int{4, 2} {
		t.Errorf("Add called with %v, want [4 2]", rec.calls[0])
	}
}
