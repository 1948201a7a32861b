package chess

import "fmt"

// Box is a unit cell identified by its top-left dot.
type Box Dot

func (b Box) Dot() Dot { return Dot(b) }

func (b Box) String() string {
	return fmt.Sprintf("cell(%d, %d)", Dot(b).X(), Dot(b).Y())
}

func (b Box) MarshalJSON() ([]byte, error) { return Dot(b).MarshalJSON() }

func (b Box) Dots() [4]Dot {
	x := Dot(b).X()
	y := Dot(b).Y()

	return [...]Dot{
		NewDot(x, y),
		NewDot(x+1, y),
		NewDot(x, y+1),
		NewDot(x+1, y+1),
	}
}

func (b Box) Edges() [4]Edge {
	x := Dot(b).X()
	y := Dot(b).Y()

	D00 := NewDot(x, y)
	D10 := NewDot(x+1, y)
	D01 := NewDot(x, y+1)
	D11 := NewDot(x+1, y+1)

	return [...]Edge{
		NewEdge(D00, D01),
		NewEdge(D00, D10),
		NewEdge(D10, D11),
		NewEdge(D01, D11),
	}
}
