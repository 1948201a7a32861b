package main

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/HuXin0817/terrawalls/pkg/manager"
	"github.com/HuXin0817/terrawalls/pkg/models/chess"
	"github.com/HuXin0817/terrawalls/pkg/models/message"
)

type painter struct {
	au aurora.Aurora
}

func newPainter(color bool) painter {
	return painter{au: aurora.NewAurora(color)}
}

func (p painter) owner(o chess.Owner, s string) string {
	switch o {
	case chess.Main:
		return p.au.Cyan(s).Bold().String()
	case chess.Opponent:
		return p.au.Red(s).Bold().String()
	}
	return p.au.Gray(12, s).String()
}

// board draws the grid with x growing to the right and y growing down.
func (p painter) board(b *chess.Board) string {
	var sb strings.Builder
	size := b.Grid().Size

	sb.WriteString("   ")
	for x := range size {
		fmt.Fprintf(&sb, "%-4d", x)
	}
	sb.WriteByte('\n')

	for y := range size {
		fmt.Fprintf(&sb, "%2d ", y)
		for x := range size {
			pt, _ := b.PointAt(x, y)
			sb.WriteString(p.owner(pt.Owner, "●"))
			if x+1 < size {
				if o, ok := b.WallOwner(chess.NewEdge(chess.NewDot(x, y), chess.NewDot(x+1, y))); ok {
					sb.WriteString(p.owner(o, "───"))
				} else {
					sb.WriteString("   ")
				}
			}
		}
		sb.WriteByte('\n')

		if y+1 == size {
			break
		}
		sb.WriteString("   ")
		for x := range size {
			if o, ok := b.WallOwner(chess.NewEdge(chess.NewDot(x, y), chess.NewDot(x, y+1))); ok {
				sb.WriteString(p.owner(o, "│"))
			} else {
				sb.WriteString(" ")
			}
			if x+1 < size {
				if o, ok := b.CellOwner(chess.Box(chess.NewDot(x, y))); ok {
					label := " M "
					if o == chess.Opponent {
						label = " O "
					}
					sb.WriteString(p.owner(o, label))
				} else {
					sb.WriteString("   ")
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (p painter) status(s manager.Snapshot) string {
	if s.Board == nil {
		return p.au.Yellow("menu: start <level> to play").String()
	}
	b := s.Board
	score := fmt.Sprintf("%s %d : %d %s",
		p.owner(chess.Main, "you"), b.Score(chess.Main),
		b.Score(chess.Opponent), p.owner(chess.Opponent, "opponent"))
	if s.GameUid != "" {
		score = fmt.Sprintf("[%s] %s", s.GameUid.Short(), score)
	}

	switch {
	case b.IsTerminal():
		return fmt.Sprintf("%s  %s", score, p.au.Yellow(outcomeText(b.Outcome())).Bold())
	case s.OpponentThinking:
		return fmt.Sprintf("%s  opponent is moving...", score)
	}
	return fmt.Sprintf("%s  your move", score)
}

func (p painter) event(env message.Envelope) string {
	switch e := env.Event.(type) {
	case chess.WallCreated:
		return fmt.Sprintf("%s drew %s -> %s", p.owner(e.Owner, e.Owner.String()), e.Source, e.Target)
	case chess.CellCaptured:
		return fmt.Sprintf("%s captured %s (%d)", p.owner(e.Owner, e.Owner.String()), e.Cell, e.Score)
	case chess.TurnChanged:
		return fmt.Sprintf("turn: %s", p.owner(e.Owner, e.Owner.String()))
	case chess.GameEnded:
		return p.au.Yellow(fmt.Sprintf("game over, %s %d:%d", outcomeText(e.Outcome), e.MainScore, e.OpponentScore)).Bold().String()
	}
	return string(env.Kind)
}

func outcomeText(o chess.Outcome) string {
	switch o {
	case chess.MainWin:
		return "you win"
	case chess.OpponentWin:
		return "opponent wins"
	case chess.Draw:
		return "draw"
	}
	return "undecided"
}
