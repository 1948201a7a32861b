package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/logrusorgru/aurora"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"

	"github.com/HuXin0817/terrawalls/pkg/assess"
	"github.com/HuXin0817/terrawalls/pkg/config"
	"github.com/HuXin0817/terrawalls/pkg/manager"
	"github.com/HuXin0817/terrawalls/pkg/models/chess"
	"github.com/HuXin0817/terrawalls/pkg/models/model"
)

var (
	configFile   = flag.String("f", "", "the config file, defaults to the XDG lookup")
	gamesConf    = flag.Int("n", 100, "number of games")
	levelConf    = flag.Int("level", 0, "level, overrides the config file")
	mainConf     = flag.String("main", "cautious", "picker for the Main side")
	opponentConf = flag.String("opponent", "", "picker for the opponent, overrides the config file")
	workersConf  = flag.Int("workers", 4, "games played at once")

	colorConf = model.ColorDefault()
	logConf   = model.Off
)

var errUnfinished = errors.New("game did not capture every cell")

func init() {
	flag.Var(&colorConf, "color", "coloured summary (on/off)")
	flag.Var(&logConf, "log", "log every move (on/off)")
}

func main() {
	flag.Parse()

	c, err := config.Load(*configFile)
	logx.Must(err)
	logx.MustSetup(c.Log)
	if !logConf {
		logx.Disable()
	}

	if *levelConf > 0 {
		c.Level = *levelConf
	}
	if *opponentConf != "" {
		c.Opponent.Picker = *opponentConf
	}

	r := assess.NewRand(c.Opponent.Seed)
	mainPicker, err := assess.NewPicker(assess.PickerKind(*mainConf), r, c.Opponent.Goroutines, c.Opponent.SearchTime)
	logx.Must(err)
	opponentPicker, err := assess.NewPicker(assess.PickerKind(c.Opponent.Picker), r, c.Opponent.Goroutines, c.Opponent.SearchTime)
	logx.Must(err)

	bar := model.NewBar(*gamesConf, fmt.Sprintf("level %d", c.Level), os.Stderr)
	var st stats
	mr.ForEach(func(source chan<- int) {
		for i := range *gamesConf {
			source <- i
		}
	}, func(int) {
		res, err := playOne(context.Background(), c.Level, mainPicker, opponentPicker)
		st.add(res, err)
		bar.Describe(st.progress(c.Level))
		bar.Add(1)
	}, mr.WithWorkers(*workersConf))
	bar.Close()

	fmt.Println()
	fmt.Println(st.summary(aurora.NewAurora(bool(colorConf)), *mainConf, c.Opponent.Picker))
	if st.failed > 0 {
		os.Exit(1)
	}
}

type result struct {
	Outcome       chess.Outcome
	MainScore     int
	OpponentScore int
	Steps         int
}

// playOne plays a full game through the controller, Suggest driving Main.
func playOne(ctx context.Context, level int, mainPicker, opponentPicker assess.Picker) (res result, err error) {
	m := manager.New(manager.WithContext(ctx), manager.WithPacing(0), manager.WithPicker(opponentPicker))
	defer m.Close()

	if err = m.StartGame(level); err != nil {
		return
	}

	for {
		if err = m.Wait(ctx); err != nil {
			return
		}
		if err = m.Err(); err != nil {
			return
		}

		s := m.Snapshot()
		if s.State == manager.Ended {
			b := s.Board
			if b.CapturedCount() != b.Grid().CellCount() {
				return res, errUnfinished
			}
			return result{
				Outcome:       b.Outcome(),
				MainScore:     b.Score(chess.Main),
				OpponentScore: b.Score(chess.Opponent),
				Steps:         s.Step,
			}, nil
		}

		e, err := assess.Suggest(ctx, s.Board, mainPicker)
		if err != nil {
			return res, err
		}
		if _, err = m.AttemptMove(e.Dot1(), e.Dot2()); err != nil {
			return res, err
		}
	}
}

type stats struct {
	mu                              sync.Mutex
	mainWins, opponentWins, draws   int
	failed                          int
	mainCells, opponentCells, steps int
	firstErr                        error
}

func (s *stats) add(res result, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.failed++
		if s.firstErr == nil {
			s.firstErr = err
		}
		return
	}

	switch res.Outcome {
	case chess.MainWin:
		s.mainWins++
	case chess.OpponentWin:
		s.opponentWins++
	case chess.Draw:
		s.draws++
	}
	s.mainCells += res.MainScore
	s.opponentCells += res.OpponentScore
	s.steps += res.Steps
}

// progress is the bar label: wins, draws and losses of Main so far.
func (s *stats) progress(level int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := fmt.Sprintf("level %d  %d/%d/%d", level, s.mainWins, s.draws, s.opponentWins)
	if s.failed > 0 {
		line += fmt.Sprintf("  %d failed", s.failed)
	}
	return line
}

func (s *stats) games() int { return s.mainWins + s.opponentWins + s.draws }

func (s *stats) summary(au aurora.Aurora, mainName, opponentName string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := fmt.Sprintf("%s %s: %d  %s %s: %d  draws: %d",
		au.Cyan("main").Bold(), mainName, s.mainWins,
		au.Red("opponent").Bold(), opponentName, s.opponentWins, s.draws)
	if n := s.games(); n > 0 {
		out += fmt.Sprintf("\ncells %d:%d, %.1f steps per game", s.mainCells, s.opponentCells, float64(s.steps)/float64(n))
	}
	if s.failed > 0 {
		out += au.Red(fmt.Sprintf("\n%d games failed, first: %v", s.failed, s.firstErr)).String()
	}
	return out
}
