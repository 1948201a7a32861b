package chess

// MoveResult describes what one accepted wall did to the game.
type MoveResult struct {
	Wall     Edge
	Owner    Owner
	Captured []Box
	NextTurn Owner
	Ended    bool
	Outcome  Outcome
}

// ExtraTurn reports whether the same player moves again.
func (r MoveResult) ExtraTurn() bool { return len(r.Captured) > 0 && !r.Ended }

// OpponentToMove reports whether this move handed the turn to the
// opponent, which is the signal to start the opponent strategy.
func (r MoveResult) OpponentToMove() bool {
	return !r.Ended && len(r.Captured) == 0 && r.NextTurn == Opponent
}

// Game is the move engine over one Board.
type Game struct {
	*Board
	observe Observer
}

type GameOption func(*Game)

// WithObserver registers the event sink. Events are delivered
// synchronously from ApplyWall.
func WithObserver(o Observer) GameOption {
	return func(g *Game) {
		g.observe = o
	}
}

func NewGame(level int, options ...GameOption) *Game {
	return NewGameFrom(NewBoard(NewGrid(level)), options...)
}

// NewGameFrom runs the engine over an existing board, typically a clone
// used for speculative play.
func NewGameFrom(board *Board, options ...GameOption) *Game {
	g := &Game{Board: board, observe: func(Event) {}}
	for _, option := range options {
		option(g)
	}
	return g
}

// Validate checks every precondition of ApplyWall without mutating.
func (g *Game) Validate(source, target Dot, actor Owner) error {
	switch {
	case g.terminal:
		return ErrGameOver
	case actor != Main && actor != Opponent:
		return ErrFreeOwner
	case actor != g.turn:
		return ErrWrongTurn
	case !g.grid.Contains(source) || !g.grid.Contains(target):
		return ErrOutOfRange
	case source == target:
		return ErrSamePoint
	case !source.Adjacent(target):
		return ErrNotAdjacent
	case g.ExistingWall(source, target):
		return ErrWallExists
	}
	return nil
}

// ApplyWall draws the wall between source and target for actor, resolves
// captures, and moves the turn on. A rejected move returns an error
// matching ErrInvalidMove and leaves the board untouched.
func (g *Game) ApplyWall(source, target Dot, actor Owner) (result MoveResult, err error) {
	if err = g.Validate(source, target, actor); err != nil {
		return
	}

	e := NewEdge(source, target)
	g.addWall(e, actor)
	g.observe(WallCreated{Source: source, Target: target, Owner: actor})

	result = MoveResult{Wall: e, Owner: actor}
	for _, box := range g.ClosingCells(source, target) {
		score := g.capture(box, actor)
		result.Captured = append(result.Captured, box)
		g.observe(CellCaptured{Cell: box, Owner: actor, Score: score})
	}

	if g.CapturedCount() == g.grid.CellCount() {
		g.terminal = true
		g.turn = Opponent
		result.Ended = true
		result.Outcome = g.Outcome()
		result.NextTurn = g.turn
		g.observe(GameEnded{Outcome: result.Outcome, MainScore: g.mainScore, OpponentScore: g.opponentScore})
		return
	}

	if len(result.Captured) == 0 {
		g.turn = g.turn.Other()
		g.observe(TurnChanged{Owner: g.turn})
	}
	result.NextTurn = g.turn
	return
}

// Apply is ApplyWall for an edge value.
func (g *Game) Apply(e Edge, actor Owner) (MoveResult, error) {
	return g.ApplyWall(e.Dot1(), e.Dot2(), actor)
}
