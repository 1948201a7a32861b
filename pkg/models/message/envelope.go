package message

import (
	"time"

	"github.com/bytedance/sonic"

	"github.com/HuXin0817/terrawalls/pkg/models/chess"
)

// Envelope wraps one game event for observers outside the process.
type Envelope struct {
	TimeStamp TimeStamp       `json:"time_stamp"`
	GameUid   GameUid         `json:"game_uid"`
	Seq       int             `json:"seq"`
	Kind      chess.EventKind `json:"kind"`
	Event     chess.Event     `json:"event"`
}

func (e Envelope) Marshal() ([]byte, error) {
	return sonic.Marshal(e)
}

func (e Envelope) String() string {
	str, _ := sonic.MarshalString(e)
	return str
}

// Stamper numbers the events of one session, starting at 1. It is not
// safe for concurrent use.
type Stamper struct {
	uid GameUid
	seq int
	now func() time.Time
}

func NewStamper(uid GameUid) *Stamper {
	return &Stamper{uid: uid, now: time.Now}
}

func (s *Stamper) GameUid() GameUid { return s.uid }

func (s *Stamper) Stamp(e chess.Event) Envelope {
	s.seq++
	return Envelope{
		TimeStamp: NewTimeStamp(s.now()),
		GameUid:   s.uid,
		Seq:       s.seq,
		Kind:      e.Kind(),
		Event:     e,
	}
}
