package main

import (
	"context"
	"errors"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/terrawalls/pkg/assess"
	"github.com/HuXin0817/terrawalls/pkg/models/chess"
)

func init() {
	logx.Disable()
}

func TestPlayOneFinishesEveryLevel(t *testing.T) {
	r := assess.NewRand(21)
	for level := 1; level <= 3; level++ {
		res, err := playOne(context.Background(), level, assess.NewCautious(r), assess.NewUniform(r))
		require.NoError(t, err)

		cells := chess.NewGrid(level).CellCount()
		assert.Equal(t, cells, res.MainScore+res.OpponentScore)
		assert.NotEqual(t, chess.Undecided, res.Outcome)
		assert.GreaterOrEqual(t, res.Steps, 2*chess.NewGrid(level).Size*(chess.NewGrid(level).Size-1))
	}
}

func TestStatsSummary(t *testing.T) {
	var s stats
	s.add(result{Outcome: chess.MainWin, MainScore: 6, OpponentScore: 3, Steps: 24}, nil)
	s.add(result{Outcome: chess.Draw, MainScore: 8, OpponentScore: 8, Steps: 40}, nil)
	s.add(result{}, errors.New("boom"))

	out := s.summary(aurora.NewAurora(false), "cautious", "uniform")
	assert.Contains(t, out, "main cautious: 1  opponent uniform: 0  draws: 1")
	assert.Contains(t, out, "cells 14:11, 32.0 steps per game")
	assert.Contains(t, out, "1 games failed, first: boom")
	assert.Equal(t, "level 2  1/1/0  1 failed", s.progress(2))
}
