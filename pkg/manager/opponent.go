package manager

import (
	"context"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/threading"

	"github.com/HuXin0817/terrawalls/pkg/assess"
)

// startOpponentLocked launches the opponent turn. The task shares m.mu
// with the controller, so each wall it draws is applied atomically. At
// most one task runs at a time.
func (m *Manager) startOpponentLocked() {
	m.abortLocked()
	ctx, cancel := context.WithCancel(m.ctx)
	done := make(chan struct{})
	m.cancel = cancel
	m.running = done

	g := m.game
	uid := m.stamper.GameUid()
	seq := assess.NewSequence(g, m.picker, assess.WithLocker(&m.mu))

	m.tasks.Add(1)
	threading.GoSafe(func() {
		defer m.tasks.Done()
		defer close(done)
		defer cancel()

		m.Infof("game %s opponent moving", uid)
		start := time.Now()
		for seq.Next(ctx) {
			step := seq.Step()
			switch step.Kind {
			case assess.StepPause:
				m.pause(ctx)
			case assess.StepWall:
				m.mu.Lock()
				if m.game == g {
					m.logMoveLocked(step.Result)
				}
				m.mu.Unlock()
			}
		}

		m.mu.Lock()
		defer m.mu.Unlock()
		if m.running == done {
			m.running = nil
			m.cancel = nil
		}

		switch err := seq.Err(); {
		case err == nil:
			m.WithDuration(time.Since(start)).Infof("game %s opponent done", uid)
		case errors.Is(err, context.Canceled):
			m.Infof("game %s opponent aborted", uid)
		default:
			if m.game == g {
				m.err = err
			}
			m.Errorf("game %s opponent stopped: %v", uid, err)
		}
	})
}

// pause waits out one pacing boundary or until ctx is done.
func (m *Manager) pause(ctx context.Context) {
	if m.pacing <= 0 {
		return
	}

	timer := time.NewTimer(m.pacing)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// abortLocked cancels the running opponent task, if any. The task stops
// before applying another wall; Close waits for it to exit.
func (m *Manager) abortLocked() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	m.cancel = nil
	m.running = nil
}
