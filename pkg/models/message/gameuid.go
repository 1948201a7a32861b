package message

import "github.com/google/uuid"

// GameUid identifies one game session. A restart gets a new one.
type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

func (g GameUid) Short() string {
	if len(g) > 8 {
		return string(g[:8])
	}
	return string(g)
}
