package pusher

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zeromicro/go-zero/core/logx"
)

func init() {
	logx.Disable()
}

type sink struct {
	mu      sync.Mutex
	batches [][]int
	fail    bool
}

func (s *sink) push(ms ...int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("sink down")
	}
	s.batches = append(s.batches, append([]int(nil), ms...))
	return nil
}

func (s *sink) flat() (all []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.batches {
		all = append(all, b...)
	}
	return
}

func TestPushAllKeepsOrder(t *testing.T) {
	s := &sink{}
	p := NewPusher(WithPushLogic(s.push))
	p.AddMessages(1, 2)
	p.AddMessages(3)

	assert.NoError(t, p.PushAll())
	assert.NoError(t, p.PushAll())
	assert.Equal(t, [][]int{{1, 2, 3}}, s.batches)
	assert.Zero(t, p.Pending())
}

func TestFailedBatchIsRetried(t *testing.T) {
	s := &sink{fail: true}
	p := NewPusher(WithPushLogic(s.push))
	p.AddMessages(1, 2)

	assert.Error(t, p.PushAll())
	p.AddMessages(3)
	assert.Equal(t, 3, p.Pending())

	s.fail = false
	assert.NoError(t, p.PushAll())
	assert.Equal(t, []int{1, 2, 3}, s.flat())
}

func TestStartFlushesPeriodicallyAndOnStop(t *testing.T) {
	s := &sink{}
	var errs []error
	p := NewPusher(
		WithPushLogic(s.push),
		WithPushInterval[int](10*time.Millisecond),
		WithErrorHandler[int](func(err error) { errs = append(errs, err) }),
	)
	p.Start()
	p.Start()

	p.AddMessages(1)
	assert.Eventually(t, func() bool { return len(s.flat()) == 1 }, time.Second, 5*time.Millisecond)

	p.AddMessages(2)
	p.Stop()
	p.Stop()
	assert.Equal(t, []int{1, 2}, s.flat())
	assert.Empty(t, errs)
}

func TestRestartAfterStop(t *testing.T) {
	s := &sink{}
	p := NewPusher(WithPushLogic(s.push), WithPushInterval[int](time.Hour))

	p.Start()
	p.AddMessages(1)
	p.Stop()

	p.Start()
	p.AddMessages(2)
	p.Stop()

	assert.Equal(t, []int{1, 2}, s.flat())
	assert.Zero(t, p.Pending())
}
