package chess

import "sort"

// Board is the live state of one game. Only Game mutates it.
type Board struct {
	grid          Grid
	walls         map[Edge]Owner
	cells         map[Box]Owner
	tints         map[Dot]Owner
	mainScore     int
	opponentScore int
	turn          Owner
	terminal      bool
}

func NewBoard(grid Grid) *Board {
	return &Board{
		grid:  grid,
		walls: make(map[Edge]Owner),
		cells: make(map[Box]Owner),
		tints: make(map[Dot]Owner),
		turn:  Main,
	}
}

func (b *Board) Grid() Grid { return b.grid }

// PointAt returns the point at (x, y) together with its current links.
func (b *Board) PointAt(x, y int) (Point, bool) {
	d, ok := b.grid.Dot(x, y)
	if !ok {
		return Point{}, false
	}
	return Point{Dot: d, Owner: b.tints[d], Links: b.Links(d)}, true
}

// Links returns the dots walled to d, at most four.
func (b *Board) Links(d Dot) (links []Dot) {
	x, y := d.X(), d.Y()
	for _, n := range [...][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
		if o, ok := b.grid.Dot(n[0], n[1]); ok && b.ExistingWall(d, o) {
			links = append(links, o)
		}
	}
	return
}

func (b *Board) ExistingWall(a, c Dot) bool {
	_, ok := b.walls[NewEdge(a, c)]
	return ok
}

func (b *Board) WallOwner(e Edge) (Owner, bool) {
	o, ok := b.walls[e]
	return o, ok
}

func (b *Board) WallCount() int { return len(b.walls) }

func (b *Board) IsCaptured(cell Box) bool {
	_, ok := b.cells[cell]
	return ok
}

func (b *Board) CellOwner(cell Box) (Owner, bool) {
	o, ok := b.cells[cell]
	return o, ok
}

func (b *Board) CapturedCount() int { return len(b.cells) }

func (b *Board) Score(o Owner) int {
	switch o {
	case Main:
		return b.mainScore
	case Opponent:
		return b.opponentScore
	}
	return 0
}

func (b *Board) CurrentTurn() Owner { return b.turn }

func (b *Board) IsTerminal() bool { return b.terminal }

// Outcome is Undecided until the board is terminal.
func (b *Board) Outcome() Outcome {
	if !b.terminal {
		return Undecided
	}
	return outcomeOf(b.mainScore, b.opponentScore)
}

// FreeEdges lists the wall slots not drawn yet, in grid order.
func (b *Board) FreeEdges() (freeEdges []Edge) {
	for _, e := range b.grid.Edges() {
		if _, c := b.walls[e]; !c {
			freeEdges = append(freeEdges, e)
		}
	}
	return
}

// EdgesCountInBox counts the drawn walls around a cell.
func (b *Board) EdgesCountInBox(box Box) (count int) {
	for _, e := range box.Edges() {
		if _, c := b.walls[e]; c {
			count++
		}
	}
	return
}

// ClosingCells returns the cells that a wall between source and target
// would close. For each side of the wall the two counter corners are the
// points linked to source and target on that side; the cell closes when
// those two are linked to each other. The wall itself is not consulted,
// so the answer is the same before and after it is drawn.
func (b *Board) ClosingCells(source, target Dot) (boxes []Box) {
	sx, sy := source.X(), source.Y()
	tx, ty := target.X(), target.Y()

	for _, offset := range [...]int{-1, +1} {
		var corner, counter Dot
		var ok1, ok2 bool
		var cell Box
		if sy == ty {
			corner, ok1 = b.linkedAt(source, sx, sy+offset)
			counter, ok2 = b.linkedAt(target, tx, ty+offset)
			cell = Box(NewDot(min(sx, tx), min(sy, sy+offset)))
		} else {
			corner, ok1 = b.linkedAt(source, sx+offset, sy)
			counter, ok2 = b.linkedAt(target, tx+offset, ty)
			cell = Box(NewDot(min(sx, sx+offset), min(sy, ty)))
		}
		if ok1 && ok2 && b.ExistingWall(corner, counter) {
			boxes = append(boxes, cell)
		}
	}
	return
}

func (b *Board) linkedAt(from Dot, x, y int) (Dot, bool) {
	d, ok := b.grid.Dot(x, y)
	if !ok || !b.ExistingWall(from, d) {
		return 0, false
	}
	return d, true
}

// Clone returns an independent deep copy.
func (b *Board) Clone() *Board {
	c := &Board{
		grid:          b.grid,
		walls:         make(map[Edge]Owner, len(b.walls)),
		cells:         make(map[Box]Owner, len(b.cells)),
		tints:         make(map[Dot]Owner, len(b.tints)),
		mainScore:     b.mainScore,
		opponentScore: b.opponentScore,
		turn:          b.turn,
		terminal:      b.terminal,
	}
	for e, o := range b.walls {
		c.walls[e] = o
	}
	for box, o := range b.cells {
		c.cells[box] = o
	}
	for d, o := range b.tints {
		c.tints[d] = o
	}
	return c
}

func (b *Board) addWall(e Edge, o Owner) {
	b.walls[e] = o
}

func (b *Board) capture(box Box, o Owner) (score int) {
	b.cells[box] = o
	for _, d := range box.Dots() {
		b.tints[d] = o
	}
	if o == Main {
		b.mainScore++
		return b.mainScore
	}
	b.opponentScore++
	return b.opponentScore
}

// WallView and CellView are the serialisable forms used by snapshots.
type WallView struct {
	From  [2]int `json:"from"`
	To    [2]int `json:"to"`
	Owner string `json:"owner"`
}

type CellView struct {
	At    [2]int `json:"at"`
	Owner string `json:"owner"`
}

type BoardView struct {
	Level         int        `json:"level"`
	Size          int        `json:"size"`
	Turn          string     `json:"turn"`
	Terminal      bool       `json:"terminal"`
	Outcome       string     `json:"outcome"`
	MainScore     int        `json:"main_score"`
	OpponentScore int        `json:"opponent_score"`
	Walls         []WallView `json:"walls"`
	Cells         []CellView `json:"cells"`
}

func (b *Board) View() BoardView {
	v := BoardView{
		Level:         b.grid.Level,
		Size:          b.grid.Size,
		Turn:          b.turn.String(),
		Terminal:      b.terminal,
		Outcome:       b.Outcome().String(),
		MainScore:     b.mainScore,
		OpponentScore: b.opponentScore,
		Walls:         []WallView{},
		Cells:         []CellView{},
	}

	edges := make([]Edge, 0, len(b.walls))
	for e := range b.walls {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })
	for _, e := range edges {
		v.Walls = append(v.Walls, WallView{
			From:  [2]int{e.Dot1().X(), e.Dot1().Y()},
			To:    [2]int{e.Dot2().X(), e.Dot2().Y()},
			Owner: b.walls[e].String(),
		})
	}

	for _, box := range b.grid.Boxes() {
		if o, ok := b.cells[box]; ok {
			v.Cells = append(v.Cells, CellView{
				At:    [2]int{Dot(box).X(), Dot(box).Y()},
				Owner: o.String(),
			})
		}
	}
	return v
}
