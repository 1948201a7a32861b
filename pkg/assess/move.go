package assess

import (
	"github.com/HuXin0817/terrawalls/pkg/models/chess"
)

// Move is a candidate wall evaluated against a board it has not been
// drawn on yet.
type Move struct {
	*chess.Board
	chess.Edge
}

// Score is the number of cells the wall would close.
func (m Move) Score() int {
	return len(m.Board.ClosingCells(m.Edge.Dot1(), m.Edge.Dot2()))
}

// Risk counts the neighbouring cells the wall would leave with three
// walls, each of which hands the other player a capture.
func (m Move) Risk() (risk int) {
	for _, box := range m.Edge.NearBoxes(m.Board.Grid().Size) {
		if !m.Board.IsCaptured(box) && m.Board.EdgesCountInBox(box) == 2 {
			risk++
		}
	}
	return
}
