package chess

type EventKind string

const (
	KindWallCreated  EventKind = "wall_created"
	KindCellCaptured EventKind = "cell_captured"
	KindTurnChanged  EventKind = "turn_changed"
	KindGameEnded    EventKind = "game_ended"
)

// Event is emitted by Game for every observable state change.
type Event interface {
	Kind() EventKind
}

type WallCreated struct {
	Source Dot   `json:"source"`
	Target Dot   `json:"target"`
	Owner  Owner `json:"owner"`
}

type CellCaptured struct {
	Cell  Box   `json:"cell"`
	Owner Owner `json:"owner"`
	Score int   `json:"score"`
}

type TurnChanged struct {
	Owner Owner `json:"owner"`
}

type GameEnded struct {
	Outcome       Outcome `json:"outcome"`
	MainScore     int     `json:"main_score"`
	OpponentScore int     `json:"opponent_score"`
}

func (WallCreated) Kind() EventKind  { return KindWallCreated }
func (CellCaptured) Kind() EventKind { return KindCellCaptured }
func (TurnChanged) Kind() EventKind  { return KindTurnChanged }
func (GameEnded) Kind() EventKind    { return KindGameEnded }

// Observer receives events in emission order.
type Observer func(Event)
