package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"

	"github.com/HuXin0817/terrawalls/pkg/assess"
	"github.com/HuXin0817/terrawalls/pkg/config"
	"github.com/HuXin0817/terrawalls/pkg/debug"
	"github.com/HuXin0817/terrawalls/pkg/manager"
	"github.com/HuXin0817/terrawalls/pkg/models/message"
	"github.com/HuXin0817/terrawalls/pkg/models/pusher"
)

func main() {
	c := initConfig()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, closeAll := newManager(ctx, c)
	defer closeAll()

	p := newPainter(bool(colorConf))
	threading.GoSafe(func() {
		for range redraw {
			draw(p, m)
		}
	})

	logx.Must(m.StartGame(c.Level))
	fmt.Println(helpText)

	lines := make(chan string)
	threading.GoSafe(func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	})

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			out, err := run(ctx, m, line)
			switch {
			case errors.Is(err, errQuit):
				return
			case err != nil:
				fmt.Println(p.au.Red(err.Error()))
			case out != "":
				fmt.Println(out)
			default:
				requestRedraw()
			}
		}
	}
}

var (
	redraw = make(chan struct{}, 1)
	events = make(chan message.Envelope, 256)
)

func requestRedraw() {
	select {
	case redraw <- struct{}{}:
	default:
	}
}

// draw prints the pending event lines, then the board.
func draw(p painter, m *manager.Manager) {
drain:
	for {
		select {
		case env := <-events:
			fmt.Println(p.event(env))
		default:
			break drain
		}
	}

	s := m.Snapshot()
	if s.Board != nil {
		fmt.Print(p.board(s.Board))
	}
	fmt.Println(p.status(s))
	if s.Err != nil {
		fmt.Println(p.au.Red(s.Err.Error()))
	}
}

func newManager(ctx context.Context, c config.Config) (*manager.Manager, func()) {
	r := assess.NewRand(c.Opponent.Seed)
	picker, err := assess.NewPicker(assess.PickerKind(c.Opponent.Picker), r, c.Opponent.Goroutines, c.Opponent.SearchTime)
	logx.Must(err)

	options := []manager.Option{
		manager.WithContext(ctx),
		manager.WithPicker(picker),
		manager.WithHinter(assess.NewCautious(r)),
		manager.WithPacing(c.Opponent.Pacing),
		manager.WithObserver(func(env message.Envelope) {
			select {
			case events <- env:
			default:
			}
			requestRedraw()
		}),
	}

	var hub *debug.Hub
	var feed *pusher.Pusher[message.Envelope]
	if c.Debug.Addr != "" {
		hub = debug.NewHub()
		feed = pusher.NewPusher(
			pusher.WithPushLogic(hub.Push),
			pusher.WithPushInterval[message.Envelope](c.Telemetry.Interval),
		)
		options = append(options, manager.WithTelemetry(feed))
	}

	m := manager.New(options...)
	if hub == nil {
		return m, m.Close
	}

	feed.Start()
	server := debug.NewServer(c.Debug.Addr, m, hub)
	threading.GoSafe(func() {
		if err := server.Run(ctx); err != nil {
			logx.Errorf("debug server: %v", err)
		}
	})
	return m, func() {
		m.Close()
		feed.Stop()
	}
}
