package manager

import (
	"context"
	"time"

	"github.com/HuXin0817/terrawalls/pkg/assess"
	"github.com/HuXin0817/terrawalls/pkg/models/message"
	"github.com/HuXin0817/terrawalls/pkg/models/pusher"
)

type Option func(*Manager)

// WithContext sets the parent of every opponent task and the logging
// context.
func WithContext(ctx context.Context) Option {
	return func(m *Manager) {
		m.ctx = ctx
	}
}

func WithObserver(o Observer) Option {
	return func(m *Manager) {
		m.observers = append(m.observers, o)
	}
}

// WithPicker sets how the opponent chooses its non capturing wall.
func WithPicker(p assess.Picker) Option {
	return func(m *Manager) {
		m.picker = p
	}
}

// WithHinter sets the picker behind Hint.
func WithHinter(p assess.Picker) Option {
	return func(m *Manager) {
		m.hinter = p
	}
}

// WithPacing sets the wait at every opponent step boundary. Zero plays
// the opponent turn at once.
func WithPacing(d time.Duration) Option {
	return func(m *Manager) {
		m.pacing = d
	}
}

// WithTelemetry buffers every envelope on p. Starting and stopping p is
// up to the caller.
func WithTelemetry(p *pusher.Pusher[message.Envelope]) Option {
	return WithObserver(func(env message.Envelope) {
		p.AddMessages(env)
	})
}
