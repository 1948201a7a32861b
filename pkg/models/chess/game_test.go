package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []Event
}

func (r *recorder) observe(e Event) { r.events = append(r.events, e) }

func (r *recorder) count(kind EventKind) (n int) {
	for _, e := range r.events {
		if e.Kind() == kind {
			n++
		}
	}
	return
}

func (r *recorder) reset() { r.events = nil }

func wall(t *testing.T, g *Game, x1, y1, x2, y2 int, actor Owner) MoveResult {
	t.Helper()
	res, err := g.ApplyWall(NewDot(x1, y1), NewDot(x2, y2), actor)
	require.NoError(t, err, "wall (%d,%d)-(%d,%d) by %s", x1, y1, x2, y2, actor)
	return res
}

func TestGridSizes(t *testing.T) {
	for level := 1; level <= 3; level++ {
		g := NewGrid(level)
		assert.Equal(t, level+3, g.Size)
		assert.Equal(t, (level+2)*(level+2), g.CellCount())
		assert.Len(t, g.Boxes(), g.CellCount())
		assert.Len(t, g.Edges(), 2*g.Size*(g.Size-1))
	}
	assert.Equal(t, 6, NewGrid(7).Size)
	assert.Equal(t, 5, NewGrid(3).MapSize())
}

func TestAdjacency(t *testing.T) {
	d := NewDot(1, 1)
	assert.True(t, d.Adjacent(NewDot(1, 2)))
	assert.True(t, d.Adjacent(NewDot(0, 1)))
	assert.False(t, d.Adjacent(NewDot(2, 2)))
	assert.False(t, d.Adjacent(NewDot(1, 3)))
	assert.False(t, d.Adjacent(d))
}

func TestEdgeIsUndirected(t *testing.T) {
	a, b := NewDot(2, 3), NewDot(2, 4)
	assert.Equal(t, NewEdge(a, b), NewEdge(b, a))
	assert.Equal(t, a, NewEdge(b, a).Dot1())
	assert.False(t, NewEdge(a, b).Horizontal())
	assert.True(t, NewEdge(NewDot(0, 0), NewDot(1, 0)).Horizontal())
}

func TestNearBoxesStayOnGrid(t *testing.T) {
	assert.ElementsMatch(t, []Box{Box(NewDot(0, 0))}, NewEdge(NewDot(0, 0), NewDot(1, 0)).NearBoxes(4))
	assert.ElementsMatch(t, []Box{Box(NewDot(0, 0)), Box(NewDot(1, 0))}, NewEdge(NewDot(1, 0), NewDot(1, 1)).NearBoxes(4))
	assert.ElementsMatch(t, []Box{Box(NewDot(2, 2))}, NewEdge(NewDot(3, 2), NewDot(3, 3)).NearBoxes(4))
}

func TestCaptureKeepsTurn(t *testing.T) {
	rec := &recorder{}
	g := NewGame(1, WithObserver(rec.observe))

	wall(t, g, 0, 0, 1, 0, Main)
	wall(t, g, 3, 2, 3, 3, Opponent)
	wall(t, g, 1, 0, 1, 1, Main)
	wall(t, g, 3, 0, 3, 1, Opponent)
	wall(t, g, 1, 1, 0, 1, Main)
	wall(t, g, 0, 3, 1, 3, Opponent)
	rec.reset()

	res := wall(t, g, 0, 1, 0, 0, Main)
	require.Equal(t, []Box{Box(NewDot(0, 0))}, res.Captured)
	assert.True(t, res.ExtraTurn())
	assert.False(t, res.OpponentToMove())
	assert.Equal(t, Main, g.CurrentTurn())
	assert.Equal(t, 1, g.Score(Main))

	require.Len(t, rec.events, 2)
	assert.Equal(t, WallCreated{Source: NewDot(0, 1), Target: NewDot(0, 0), Owner: Main}, rec.events[0])
	assert.Equal(t, CellCaptured{Cell: Box(NewDot(0, 0)), Owner: Main, Score: 1}, rec.events[1])

	owner, ok := g.CellOwner(Box(NewDot(0, 0)))
	assert.True(t, ok)
	assert.Equal(t, Main, owner)
	p, ok := g.PointAt(1, 1)
	require.True(t, ok)
	assert.Equal(t, Main, p.Owner)
	assert.ElementsMatch(t, []Dot{NewDot(1, 0), NewDot(0, 1)}, p.Links)
}

func TestTurnFlipsWithoutCapture(t *testing.T) {
	rec := &recorder{}
	g := NewGame(2, WithObserver(rec.observe))

	res := wall(t, g, 2, 2, 2, 3, Main)
	assert.Empty(t, res.Captured)
	assert.True(t, res.OpponentToMove())
	assert.Equal(t, Opponent, g.CurrentTurn())
	assert.Equal(t, []Event{
		WallCreated{Source: NewDot(2, 2), Target: NewDot(2, 3), Owner: Main},
		TurnChanged{Owner: Opponent},
	}, rec.events)

	res = wall(t, g, 0, 0, 0, 1, Opponent)
	assert.False(t, res.OpponentToMove())
	assert.Equal(t, Main, res.NextTurn)
}

func TestDoubleCapture(t *testing.T) {
	g := NewGame(1)
	// Cells (0,0) and (1,0) share the vertical wall (1,0)-(1,1).
	walls := [][4]int{
		{0, 0, 1, 0}, {0, 0, 0, 1}, {0, 1, 1, 1},
		{1, 0, 2, 0}, {2, 0, 2, 1}, {1, 1, 2, 1},
	}
	for _, w := range walls {
		wall(t, g, w[0], w[1], w[2], w[3], g.CurrentTurn())
	}
	actor := g.CurrentTurn()
	res := wall(t, g, 1, 0, 1, 1, actor)
	assert.Equal(t, []Box{Box(NewDot(0, 0)), Box(NewDot(1, 0))}, res.Captured)
	assert.Equal(t, 2, g.Score(actor))
	assert.Equal(t, actor, g.CurrentTurn())
}

func TestInvalidMoves(t *testing.T) {
	g := NewGame(1)
	wall(t, g, 0, 0, 1, 0, Main)

	cases := []struct {
		name           string
		source, target Dot
		actor          Owner
		want           error
	}{
		{"same point", NewDot(2, 2), NewDot(2, 2), Opponent, ErrSamePoint},
		{"diagonal", NewDot(1, 1), NewDot(2, 2), Opponent, ErrNotAdjacent},
		{"gap", NewDot(0, 2), NewDot(2, 2), Opponent, ErrNotAdjacent},
		{"off grid", NewDot(3, 3), NewDot(4, 3), Opponent, ErrOutOfRange},
		{"existing", NewDot(1, 0), NewDot(0, 0), Opponent, ErrWallExists},
		{"wrong turn", NewDot(2, 2), NewDot(2, 3), Main, ErrWrongTurn},
		{"free owner", NewDot(2, 2), NewDot(2, 3), Free, ErrFreeOwner},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			before := g.WallCount()
			_, err := g.ApplyWall(c.source, c.target, c.actor)
			assert.ErrorIs(t, err, c.want)
			assert.ErrorIs(t, err, ErrInvalidMove)
			assert.Equal(t, before, g.WallCount())
			assert.Equal(t, Opponent, g.CurrentTurn())
		})
	}
}

func TestFullGameEndsOnce(t *testing.T) {
	rec := &recorder{}
	g := NewGame(1, WithObserver(rec.observe))

	totals := []int{0}
	for !g.IsTerminal() {
		free := g.FreeEdges()
		require.NotEmpty(t, free)
		_, err := g.Apply(free[0], g.CurrentTurn())
		require.NoError(t, err)
		total := g.Score(Main) + g.Score(Opponent)
		require.GreaterOrEqual(t, total, totals[len(totals)-1])
		require.LessOrEqual(t, total, g.Grid().CellCount())
		totals = append(totals, total)
	}

	assert.Empty(t, g.FreeEdges())
	assert.Equal(t, 9, rec.count(KindCellCaptured))
	assert.Equal(t, 1, rec.count(KindGameEnded))
	assert.Equal(t, 9, g.Score(Main)+g.Score(Opponent))
	assert.Equal(t, Opponent, g.CurrentTurn())

	last := rec.events[len(rec.events)-1].(GameEnded)
	assert.Equal(t, g.Outcome(), last.Outcome)
	assert.NotEqual(t, Undecided, last.Outcome)

	_, err := g.ApplyWall(NewDot(0, 0), NewDot(1, 0), Opponent)
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestCapturedCellNeverReportedTwice(t *testing.T) {
	rec := &recorder{}
	g := NewGame(2, WithObserver(rec.observe))
	for !g.IsTerminal() {
		free := g.FreeEdges()
		_, err := g.Apply(free[len(free)-1], g.CurrentTurn())
		require.NoError(t, err)
	}

	seen := make(map[Box]bool)
	for _, e := range rec.events {
		if c, ok := e.(CellCaptured); ok {
			require.False(t, seen[c.Cell], "cell %s captured twice", c.Cell)
			seen[c.Cell] = true
		}
	}
	assert.Len(t, seen, 16)
}

func TestClosingCellsIsSideEffectFree(t *testing.T) {
	g := NewGame(1)
	wall(t, g, 0, 0, 1, 0, Main)
	wall(t, g, 0, 0, 0, 1, Opponent)
	wall(t, g, 0, 1, 1, 1, Main)

	assert.Equal(t, []Box{Box(NewDot(0, 0))}, g.ClosingCells(NewDot(1, 1), NewDot(1, 0)))
	assert.Equal(t, []Box{Box(NewDot(0, 0))}, g.ClosingCells(NewDot(1, 0), NewDot(1, 1)))
	assert.Empty(t, g.ClosingCells(NewDot(2, 0), NewDot(2, 1)))
	assert.False(t, g.ExistingWall(NewDot(1, 0), NewDot(1, 1)))
	assert.Equal(t, 3, g.EdgesCountInBox(Box(NewDot(0, 0))))
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGame(1)
	wall(t, g, 0, 0, 1, 0, Main)

	sim := NewGameFrom(g.Clone())
	_, err := sim.ApplyWall(NewDot(2, 2), NewDot(2, 3), Opponent)
	require.NoError(t, err)

	assert.Equal(t, 1, g.WallCount())
	assert.Equal(t, 2, sim.WallCount())
	assert.Equal(t, Opponent, g.CurrentTurn())
	assert.Equal(t, Main, sim.CurrentTurn())
}

func TestViewListsWallsAndCells(t *testing.T) {
	g := NewGame(1)
	wall(t, g, 1, 0, 0, 0, Main)
	v := g.View()
	assert.Equal(t, 4, v.Size)
	assert.Equal(t, "Opponent", v.Turn)
	require.Len(t, v.Walls, 1)
	assert.Equal(t, WallView{From: [2]int{0, 0}, To: [2]int{1, 0}, Owner: "Main"}, v.Walls[0])
	assert.Empty(t, v.Cells)
}
