package chess

import "fmt"

const (
	D       = 8
	dotMod  = 1 << D
	dotMask = dotMod - 1
)

// Dot is a grid point packed as x<<D + y.
type Dot int

func NewDot(x, y int) Dot {
	return Dot((x << D) + y)
}

func (d Dot) X() int {
	return int(d) >> D
}

func (d Dot) Y() int {
	return int(d) & dotMask
}

func (d Dot) String() string {
	return fmt.Sprintf("(%d, %d)", d.X(), d.Y())
}

// MarshalJSON encodes a dot as its [x, y] pair.
func (d Dot) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%d,%d]", d.X(), d.Y())), nil
}

// Adjacent reports whether d and o differ by exactly one in one axis and
// not at all in the other.
func (d Dot) Adjacent(o Dot) bool {
	dx := abs(d.X() - o.X())
	dy := abs(d.Y() - o.Y())
	return dx+dy == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Point is a read-only view of a grid point.
// Owner is a presentation tint and never takes part in scoring.
type Point struct {
	Dot
	Owner Owner
	Links []Dot
}
