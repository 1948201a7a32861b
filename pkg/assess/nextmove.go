package assess

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/HuXin0817/terrawalls/pkg/models/chess"
)

// ErrNoCandidates is returned by a Picker offered nothing to choose from.
var ErrNoCandidates = errors.New("no candidate walls")

// Picker chooses the non capturing wall that ends an opponent turn. b is a
// private copy the picker may read freely; candidates are free on b.
type Picker interface {
	Pick(ctx context.Context, b *chess.Board, candidates []chess.Edge) (chess.Edge, error)
}

// Rand is a *rand.Rand safe for use by concurrent pickers.
type Rand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

func (r *Rand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Intn(n)
}

func (r *Rand) Int63() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Int63()
}

func (r *Rand) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Perm(n)
}

// Uniform picks uniformly at random: the candidates are visited in a
// shuffled order and the first one still free is taken.
type Uniform struct {
	Rand *Rand
}

func NewUniform(r *Rand) Uniform { return Uniform{Rand: r} }

func (u Uniform) Pick(_ context.Context, b *chess.Board, candidates []chess.Edge) (chess.Edge, error) {
	for _, i := range u.Rand.Perm(len(candidates)) {
		e := candidates[i]
		if !b.ExistingWall(e.Dot1(), e.Dot2()) {
			return e, nil
		}
	}
	return 0, ErrNoCandidates
}

// Cautious prefers walls that leave the fewest cells with three walls and
// picks uniformly among those.
type Cautious struct {
	Rand *Rand
}

func NewCautious(r *Rand) Cautious { return Cautious{Rand: r} }

func (c Cautious) Pick(_ context.Context, b *chess.Board, candidates []chess.Edge) (chess.Edge, error) {
	edges := BetterEdges(b, candidates)
	if len(edges) == 0 {
		return 0, ErrNoCandidates
	}
	return edges[c.Rand.Intn(len(edges))], nil
}

// BetterEdges keeps the candidates of the lowest Risk. Capturing walls are
// preferred over everything else when present.
func BetterEdges(b *chess.Board, candidates []chess.Edge) []chess.Edge {
	var captures []chess.Edge
	riskCount := make(map[int][]chess.Edge)
	minRisk := -1
	for _, e := range candidates {
		m := Move{Board: b, Edge: e}
		if m.Score() > 0 {
			captures = append(captures, e)
			continue
		}
		risk := m.Risk()
		riskCount[risk] = append(riskCount[risk], e)
		if minRisk < 0 || risk < minRisk {
			minRisk = risk
		}
	}

	if len(captures) > 0 {
		return captures
	}
	return riskCount[minRisk]
}

// PickerKind names the pickers selectable from configuration.
type PickerKind string

const (
	PickUniform  PickerKind = "uniform"
	PickCautious PickerKind = "cautious"
	PickRollout  PickerKind = "rollout"
)

var ErrUnknownPicker = errors.New("unknown picker")

// NewPicker builds the picker named by kind. goroutines and searchTime only
// apply to the rollout picker.
func NewPicker(kind PickerKind, r *Rand, goroutines int, searchTime time.Duration) (Picker, error) {
	switch kind {
	case PickUniform, "":
		return NewUniform(r), nil
	case PickCautious:
		return NewCautious(r), nil
	case PickRollout:
		return NewRollout(r, WithGoroutines(goroutines), WithSearchTime(searchTime)), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPicker, kind)
}
