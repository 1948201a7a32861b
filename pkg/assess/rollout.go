package assess

import (
	"context"
	"math/rand"
	"time"

	"github.com/zeromicro/go-zero/core/threading"

	"github.com/HuXin0817/terrawalls/pkg/models/chess"
)

const (
	DefaultGoroutines = 8
	DefaultSearchTime = 500 * time.Millisecond
)

// Rollout runs random playouts from every candidate until the search time
// runs out and picks the candidate with the best average score difference
// for the side to move.
type Rollout struct {
	rand       *Rand
	goroutines int
	searchTime time.Duration
}

type RolloutOption func(*Rollout)

func WithGoroutines(n int) RolloutOption {
	return func(r *Rollout) {
		if n > 0 {
			r.goroutines = n
		}
	}
}

func WithSearchTime(d time.Duration) RolloutOption {
	return func(r *Rollout) {
		if d > 0 {
			r.searchTime = d
		}
	}
}

func NewRollout(r *Rand, options ...RolloutOption) *Rollout {
	ro := &Rollout{
		rand:       r,
		goroutines: DefaultGoroutines,
		searchTime: DefaultSearchTime,
	}
	for _, option := range options {
		option(ro)
	}
	return ro
}

type tally struct {
	searchTimes map[chess.Edge]int
	sumScores   map[chess.Edge]int
}

func (r *Rollout) Pick(ctx context.Context, b *chess.Board, candidates []chess.Edge) (bestEdge chess.Edge, err error) {
	if len(candidates) == 0 {
		return 0, ErrNoCandidates
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	searchCtx, cancel := context.WithTimeout(ctx, r.searchTime)
	defer cancel()

	tallies := make([]tally, r.goroutines)
	group := threading.NewRoutineGroup()
	for i := range tallies {
		t := tally{
			searchTimes: make(map[chess.Edge]int),
			sumScores:   make(map[chess.Edge]int),
		}
		tallies[i] = t
		rnd := rand.New(rand.NewSource(r.rand.Int63()))
		group.RunSafe(func() {
			for searchCtx.Err() == nil {
				first := candidates[rnd.Intn(len(candidates))]
				score, ok := playout(b, first, rnd)
				if !ok {
					continue
				}
				t.searchTimes[first]++
				t.sumScores[first] += score
			}
		})
	}
	group.Wait()

	if err = ctx.Err(); err != nil {
		return 0, err
	}

	globalSearchTime := make(map[chess.Edge]int)
	globalSumScore := make(map[chess.Edge]int)
	for _, t := range tallies {
		for e, n := range t.searchTimes {
			globalSearchTime[e] += n
		}
		for e, s := range t.sumScores {
			globalSumScore[e] += s
		}
	}

	if len(globalSearchTime) == 0 {
		return NewUniform(r.rand).Pick(ctx, b, candidates)
	}

	bestScore := 0.0
	found := false
	for _, e := range candidates {
		n := globalSearchTime[e]
		if n == 0 {
			continue
		}
		average := float64(globalSumScore[e]) / float64(n)
		if !found || average > bestScore {
			bestEdge, bestScore, found = e, average, true
		}
	}
	return bestEdge, nil
}

// playout plays first and then both sides greedily to the end on a copy of
// b. The score is the final difference for the side to move on b.
func playout(b *chess.Board, first chess.Edge, rnd *rand.Rand) (int, bool) {
	side := b.CurrentTurn()
	g := chess.NewGameFrom(b.Clone())
	if _, err := g.Apply(first, side); err != nil {
		return 0, false
	}

	for !g.IsTerminal() {
		e, ok := CaptureEdge(g)
		if !ok {
			edges := BetterEdges(g.Board, g.FreeEdges())
			if len(edges) == 0 {
				return 0, false
			}
			e = edges[rnd.Intn(len(edges))]
		}
		if _, err := g.Apply(e, g.CurrentTurn()); err != nil {
			return 0, false
		}
	}
	return g.Score(side) - g.Score(side.Other()), true
}
