package assess

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/HuXin0817/terrawalls/pkg/models/chess"
)

type StepKind int

const (
	// StepPause is a pacing boundary. A driver may wait here for as long
	// as it likes, or not at all.
	StepPause StepKind = iota
	// StepWall reports one wall drawn by the opponent.
	StepWall
)

func (k StepKind) String() string {
	if k == StepWall {
		return "wall"
	}
	return "pause"
}

type Step struct {
	Kind   StepKind
	Result chess.MoveResult
}

// Sequence walks one opponent turn step by step:
//
//	for seq.Next(ctx) {
//		step := seq.Step()
//		...
//	}
//	if err := seq.Err(); err != nil {
//		...
//	}
//
// Every wall is preceded by a pause. The turn ends after the first non
// capturing wall or when the game is over.
type Sequence struct {
	table    Table
	picker   Picker
	locker   sync.Locker
	step     Step
	err      error
	wallNext bool
	done     bool
}

type SequenceOption func(*Sequence)

// WithLocker makes the sequence hold l whenever it touches the table. The
// picker runs with l released, on a copy of the board.
func WithLocker(l sync.Locker) SequenceOption {
	return func(s *Sequence) {
		s.locker = l
	}
}

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

func NewSequence(t Table, p Picker, options ...SequenceOption) *Sequence {
	s := &Sequence{table: t, picker: p, locker: noLock{}}
	for _, option := range options {
		option(s)
	}
	return s
}

// Next advances to the next step. It returns false when the turn is over,
// the context is done, or an error occurred.
func (s *Sequence) Next(ctx context.Context) bool {
	if s.done {
		return false
	}
	if err := ctx.Err(); err != nil {
		return s.fail(err)
	}

	if !s.wallNext {
		s.locker.Lock()
		over := s.table.IsTerminal() || s.table.CurrentTurn() != chess.Opponent
		s.locker.Unlock()
		if over {
			s.done = true
			return false
		}
		s.step = Step{Kind: StepPause}
		s.wallNext = true
		return true
	}

	s.wallNext = false
	result, err := s.move(ctx)
	if errors.Is(err, errTurnOver) {
		s.done = true
		return false
	}
	if err != nil {
		return s.fail(err)
	}
	s.step = Step{Kind: StepWall, Result: result}
	s.done = !result.ExtraTurn()
	return true
}

func (s *Sequence) Step() Step { return s.step }

// Err returns the error that stopped the sequence, if any. A cancelled
// context is reported as the context's error.
func (s *Sequence) Err() error { return s.err }

func (s *Sequence) fail(err error) bool {
	s.err = err
	s.done = true
	return false
}

// errTurnOver stops a sequence whose turn was ended by someone else.
var errTurnOver = errors.New("opponent turn is over")

// ready must be called with the locker held.
func (s *Sequence) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.table.IsTerminal() || s.table.CurrentTurn() != chess.Opponent {
		return errTurnOver
	}
	return nil
}

func (s *Sequence) move(ctx context.Context) (chess.MoveResult, error) {
	s.locker.Lock()
	if err := s.ready(ctx); err != nil {
		s.locker.Unlock()
		return chess.MoveResult{}, err
	}
	if e, ok := CaptureEdge(s.table); ok {
		defer s.locker.Unlock()
		return s.table.Apply(e, chess.Opponent)
	}

	candidates := s.table.FreeEdges()
	if len(candidates) == 0 {
		s.locker.Unlock()
		return chess.MoveResult{}, fmt.Errorf("%w: no free wall left on a board that is not over", chess.ErrInvariantViolation)
	}
	board := s.table.Clone()
	s.locker.Unlock()

	e, err := s.picker.Pick(ctx, board, candidates)
	if err != nil {
		if ctx.Err() != nil {
			return chess.MoveResult{}, ctx.Err()
		}
		return chess.MoveResult{}, fmt.Errorf("%w: picker: %v", chess.ErrInvariantViolation, err)
	}

	s.locker.Lock()
	defer s.locker.Unlock()
	if err = s.ready(ctx); err != nil {
		return chess.MoveResult{}, err
	}
	if len(s.table.ClosingCells(e.Dot1(), e.Dot2())) > 0 {
		return chess.MoveResult{}, fmt.Errorf("%w: fallback wall %s would capture", chess.ErrInvariantViolation, e)
	}
	result, err := s.table.Apply(e, chess.Opponent)
	if err != nil {
		return chess.MoveResult{}, fmt.Errorf("%w: fallback wall %s rejected: %v", chess.ErrInvariantViolation, e, err)
	}
	return result, nil
}

// Play runs a whole opponent turn without pacing and returns every wall
// it drew.
func Play(ctx context.Context, t Table, p Picker) (results []chess.MoveResult, err error) {
	seq := NewSequence(t, p)
	for seq.Next(ctx) {
		if step := seq.Step(); step.Kind == StepWall {
			results = append(results, step.Result)
		}
	}
	return results, seq.Err()
}
