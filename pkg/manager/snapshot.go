package manager

import (
	"github.com/bytedance/sonic"

	"github.com/HuXin0817/terrawalls/pkg/models/chess"
	"github.com/HuXin0817/terrawalls/pkg/models/message"
)

// Snapshot is a copy of the session taken under the manager lock. Board is
// a private clone, nil in the menu.
type Snapshot struct {
	State            State
	Level            int
	GameUid          message.GameUid
	Step             int
	OpponentThinking bool
	Board            *chess.Board
	Err              error
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Snapshot{
		State:            m.state,
		Level:            m.level,
		Step:             m.step,
		OpponentThinking: m.running != nil,
		Err:              m.err,
	}
	if m.game != nil {
		s.GameUid = m.stamper.GameUid()
		s.Board = m.game.Clone()
	}
	return s
}

type SnapshotView struct {
	State            State            `json:"state"`
	Level            int              `json:"level,omitempty"`
	GameUid          message.GameUid  `json:"game_uid,omitempty"`
	Step             int              `json:"step"`
	OpponentThinking bool             `json:"opponent_thinking"`
	Board            *chess.BoardView `json:"board,omitempty"`
	Err              string           `json:"err,omitempty"`
}

func (s Snapshot) View() SnapshotView {
	v := SnapshotView{
		State:            s.State,
		Level:            s.Level,
		GameUid:          s.GameUid,
		Step:             s.Step,
		OpponentThinking: s.OpponentThinking,
	}
	if s.Board != nil {
		board := s.Board.View()
		v.Board = &board
	}
	if s.Err != nil {
		v.Err = s.Err.Error()
	}
	return v
}

func (s Snapshot) String() string {
	str, _ := sonic.MarshalString(s.View())
	return str
}
