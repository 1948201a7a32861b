package assess

import (
	"github.com/HuXin0817/terrawalls/pkg/models/chess"
)

// Position is the read side of a game needed to choose a wall.
type Position interface {
	CurrentTurn() chess.Owner
	IsTerminal() bool
	FreeEdges() []chess.Edge
	ClosingCells(source, target chess.Dot) []chess.Box
	Clone() *chess.Board
}

// Table is a Position the opponent may also play on. *chess.Game is one.
type Table interface {
	Position
	Apply(e chess.Edge, actor chess.Owner) (chess.MoveResult, error)
}

// CaptureEdge scans the free walls in grid order and returns the first one
// that would close at least one cell.
func CaptureEdge(p Position) (chess.Edge, bool) {
	for _, e := range p.FreeEdges() {
		if len(p.ClosingCells(e.Dot1(), e.Dot2())) > 0 {
			return e, true
		}
	}
	return 0, false
}
