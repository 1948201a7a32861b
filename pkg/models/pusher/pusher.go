package pusher

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"
)

// Pusher buffers messages and hands them to PushLogic in batches, once per
// PushInterval and once more on Stop.
type Pusher[T any] struct {
	MessagesBuffer []T
	PushLogic      func(...T) error
	PushInterval   time.Duration
	ErrorHandler   func(error)
	lock           sync.Mutex
	loop           sync.Mutex
	stop           chan struct{}
	done           chan struct{}
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { logx.Errorf("push failed: %v", err) },
		PushInterval: time.Second,
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

// PushAll flushes the buffer. On failure the batch is kept for the next
// attempt, ahead of anything added meanwhile.
func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	batch := p.MessagesBuffer
	p.MessagesBuffer = nil
	p.lock.Unlock()

	if len(batch) == 0 {
		return nil
	}

	if err := p.PushLogic(batch...); err != nil {
		p.lock.Lock()
		p.MessagesBuffer = append(batch, p.MessagesBuffer...)
		p.lock.Unlock()
		return err
	}

	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.MessagesBuffer = append(p.MessagesBuffer, messages...)
}

func (p *Pusher[T]) Pending() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.MessagesBuffer)
}

// Start launches the flush loop. Calling it while the loop runs is a
// no-op; a stopped pusher may be started again.
func (p *Pusher[T]) Start() {
	p.loop.Lock()
	defer p.loop.Unlock()

	if p.stop != nil {
		return
	}
	stop, done := make(chan struct{}), make(chan struct{})
	p.stop, p.done = stop, done

	threading.GoSafe(func() {
		defer close(done)

		ticker := time.NewTicker(p.PushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
			case <-stop:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
				return
			}
		}
	})
}

// Stop ends the flush loop after one last flush and waits for it.
func (p *Pusher[T]) Stop() {
	p.loop.Lock()
	defer p.loop.Unlock()

	if p.stop == nil {
		return
	}
	close(p.stop)
	<-p.done
	p.stop, p.done = nil, nil
}
