package manager

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/terrawalls/pkg/assess"
	"github.com/HuXin0817/terrawalls/pkg/models/chess"
	"github.com/HuXin0817/terrawalls/pkg/models/message"
)

const DefaultPacing = time.Second

var (
	ErrInvalidLevel = errors.New("invalid level")
	ErrNotPlaying   = errors.New("no game in progress")
	ErrNoSession    = errors.New("no game to restart")
	ErrNotYourTurn  = fmt.Errorf("%w: opponent is moving", chess.ErrWrongTurn)
)

type State int

const (
	Menu State = iota
	Playing
	Ended
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Ended:
		return "ended"
	}
	return "menu"
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Observer receives every event of the current session. It runs while the
// manager is locked and must not call back into the manager.
type Observer func(message.Envelope)

// Manager drives one game session at a time: the human plays Main through
// AttemptMove and the opponent answers from a background task.
type Manager struct {
	logx.Logger
	ctx context.Context

	mu        sync.Mutex
	state     State
	level     int
	game      *chess.Game
	stamper   *message.Stamper
	step      int
	observers []Observer
	picker    assess.Picker
	hinter    assess.Picker
	pacing    time.Duration
	cancel    context.CancelFunc
	running   chan struct{}
	tasks     sync.WaitGroup
	err       error
}

func New(options ...Option) *Manager {
	r := assess.NewRand(0)
	m := &Manager{
		ctx:    context.Background(),
		picker: assess.NewUniform(r),
		hinter: assess.NewCautious(r),
		pacing: DefaultPacing,
	}
	for _, option := range options {
		option(m)
	}
	m.Logger = logx.WithContext(m.ctx)
	return m
}

// StartGame discards any current session and starts a new one at level.
func (m *Manager) StartGame(level int) error {
	if level < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.abortLocked()
	m.newGameLocked(level)
	return nil
}

// RestartCurrentLevel starts over at the level of the current or last
// finished game.
func (m *Manager) RestartCurrentLevel() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Menu {
		return ErrNoSession
	}
	m.abortLocked()
	m.newGameLocked(m.level)
	return nil
}

// ReturnToMenu discards the session from any state.
func (m *Manager) ReturnToMenu() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.abortLocked()
	if m.game != nil {
		m.Infof("game %s left for menu", m.stamper.GameUid())
	}
	m.game = nil
	m.stamper = nil
	m.state = Menu
}

// AttemptMove plays a wall for the human. Rejected moves match
// chess.ErrInvalidMove and change nothing.
func (m *Manager) AttemptMove(source, target chess.Dot) (chess.MoveResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.playingLocked(); err != nil {
		return chess.MoveResult{}, err
	}
	return m.attemptLocked(source, target)
}

// AttemptMoveAt is AttemptMove for raw coordinates. Points off the grid
// fail with chess.ErrOutOfRange before they are packed into dots.
func (m *Manager) AttemptMoveAt(x1, y1, x2, y2 int) (chess.MoveResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.playingLocked(); err != nil {
		return chess.MoveResult{}, err
	}
	grid := m.game.Grid()
	source, ok := grid.Dot(x1, y1)
	if !ok {
		return chess.MoveResult{}, fmt.Errorf("%w: (%d, %d)", chess.ErrOutOfRange, x1, y1)
	}
	target, ok := grid.Dot(x2, y2)
	if !ok {
		return chess.MoveResult{}, fmt.Errorf("%w: (%d, %d)", chess.ErrOutOfRange, x2, y2)
	}
	return m.attemptLocked(source, target)
}

func (m *Manager) playingLocked() error {
	switch m.state {
	case Menu:
		return ErrNotPlaying
	case Ended:
		return chess.ErrGameOver
	}
	return nil
}

func (m *Manager) attemptLocked(source, target chess.Dot) (result chess.MoveResult, err error) {
	if result, err = m.game.ApplyWall(source, target, chess.Main); err != nil {
		m.Infof("game %s rejected %s -> %s: %v", m.stamper.GameUid(), source, target, err)
		return
	}

	m.logMoveLocked(result)
	if result.OpponentToMove() {
		m.startOpponentLocked()
	}
	return
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Err returns the last fault raised by an opponent task of the current
// session. Aborted tasks are not faults.
func (m *Manager) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.err
}

// Wait blocks until no opponent task is running.
func (m *Manager) Wait(ctx context.Context) error {
	for {
		m.mu.Lock()
		done := m.running
		m.mu.Unlock()

		if done == nil {
			return nil
		}

		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Hint suggests a wall for the human on the current board.
func (m *Manager) Hint(ctx context.Context) (chess.Edge, error) {
	m.mu.Lock()
	switch {
	case m.state == Menu:
		m.mu.Unlock()
		return 0, ErrNotPlaying
	case m.state == Ended:
		m.mu.Unlock()
		return 0, chess.ErrGameOver
	case m.game.CurrentTurn() != chess.Main:
		m.mu.Unlock()
		return 0, ErrNotYourTurn
	}
	board := m.game.Clone()
	m.mu.Unlock()

	return assess.Suggest(ctx, board, m.hinter)
}

// Close aborts the opponent and waits for every task, aborted ones too.
func (m *Manager) Close() {
	m.mu.Lock()
	m.abortLocked()
	m.mu.Unlock()

	m.tasks.Wait()
}

func (m *Manager) newGameLocked(level int) {
	stamper := message.NewStamper(message.NewGameUid())

	var g *chess.Game
	g = chess.NewGame(level, chess.WithObserver(func(e chess.Event) {
		if m.game != g {
			return
		}
		if ended, ok := e.(chess.GameEnded); ok {
			m.state = Ended
			m.Infof("game %s ended: %s %d:%d", stamper.GameUid(), ended.Outcome, ended.MainScore, ended.OpponentScore)
		}
		env := stamper.Stamp(e)
		for _, o := range m.observers {
			o(env)
		}
	}))

	m.game = g
	m.stamper = stamper
	m.level = level
	m.step = 0
	m.err = nil
	m.state = Playing

	grid := g.Grid()
	m.Infof("game %s started: level %d, %dx%d points, %d cells", stamper.GameUid(), level, grid.Size, grid.Size, grid.CellCount())
}

func (m *Manager) logMoveLocked(result chess.MoveResult) {
	m.step++
	m.Infof("game %s step %d: %s drew %s, captured %d, score %d:%d, next %s",
		m.stamper.GameUid(), m.step, result.Owner, result.Wall, len(result.Captured),
		m.game.Score(chess.Main), m.game.Score(chess.Opponent), result.NextTurn)
}
