package chess

import "fmt"

const (
	E        = D << 1
	edgeMod  = 1 << E
	edgeMask = edgeMod - 1
)

// Edge is an undirected wall slot between two adjacent dots. The smaller
// dot is always stored first, so NewEdge(a, b) == NewEdge(b, a).
type Edge int

func NewEdge(Dot1, Dot2 Dot) Edge {
	if Dot1 > Dot2 {
		Dot1, Dot2 = Dot2, Dot1
	}
	return Edge((Dot1 << E) + Dot2)
}

func (e Edge) Dot1() Dot {
	return Dot(e) >> E
}

func (e Edge) Dot2() Dot {
	return Dot(e) & edgeMask
}

// Horizontal reports whether both ends sit on the same row.
func (e Edge) Horizontal() bool {
	return e.Dot1().Y() == e.Dot2().Y()
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d) -> (%d, %d)", e.Dot1().X(), e.Dot1().Y(), e.Dot2().X(), e.Dot2().Y())
}

// NearBoxes returns the cells on either side of e that lie inside a grid
// with the given number of points per side.
func (e Edge) NearBoxes(size int) (nearBoxes []Box) {
	d := e.Dot1()
	if e.Horizontal() {
		if d.Y() > 0 {
			nearBoxes = append(nearBoxes, Box(NewDot(d.X(), d.Y()-1)))
		}
		if d.Y() < size-1 {
			nearBoxes = append(nearBoxes, Box(d))
		}
		return
	}

	if d.X() > 0 {
		nearBoxes = append(nearBoxes, Box(NewDot(d.X()-1, d.Y())))
	}
	if d.X() < size-1 {
		nearBoxes = append(nearBoxes, Box(d))
	}
	return
}
