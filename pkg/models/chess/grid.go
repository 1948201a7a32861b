package chess

import "sync"

// Grid is the fixed point lattice of one game. It is a pure function of
// the level and carries no mutable state.
type Grid struct {
	Level int
	Size  int
}

// SizeOf returns the number of points per side for a level.
func SizeOf(level int) int {
	switch level {
	case 1:
		return 4
	case 2:
		return 5
	default:
		return 6
	}
}

func NewGrid(level int) Grid {
	return Grid{Level: level, Size: SizeOf(level)}
}

// MapSize is the largest valid coordinate, which is also the number of
// cells per side.
func (g Grid) MapSize() int { return g.Size - 1 }

func (g Grid) CellCount() int { return g.MapSize() * g.MapSize() }

func (g Grid) Contains(d Dot) bool {
	x, y := d.X(), d.Y()
	return x >= 0 && x < g.Size && y >= 0 && y < g.Size
}

// Dot builds a dot from raw coordinates, refusing anything off the grid.
func (g Grid) Dot(x, y int) (Dot, bool) {
	if x < 0 || x >= g.Size || y < 0 || y >= g.Size {
		return 0, false
	}
	return NewDot(x, y), true
}

func (g Grid) Edges() []Edge { return lattices.get(g.Size).edges }

func (g Grid) Boxes() []Box { return lattices.get(g.Size).boxes }

type lattice struct {
	edges []Edge
	boxes []Box
}

type latticeCache struct {
	mu sync.Mutex
	m  map[int]*lattice
}

var lattices = latticeCache{m: make(map[int]*lattice)}

func (c *latticeCache) get(size int) *lattice {
	c.mu.Lock()
	defer c.mu.Unlock()

	if res, ok := c.m[size]; ok {
		return res
	}

	l := &lattice{}
	for i := range size {
		for j := range size {
			d := NewDot(i, j)
			if i+1 < size {
				l.edges = append(l.edges, NewEdge(d, NewDot(i+1, j)))
			}
			if j+1 < size {
				l.edges = append(l.edges, NewEdge(d, NewDot(i, j+1)))
			}
			if i+1 < size && j+1 < size {
				l.boxes = append(l.boxes, Box(d))
			}
		}
	}

	c.m[size] = l
	return l
}
