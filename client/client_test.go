package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/terrawalls/pkg/assess"
	"github.com/HuXin0817/terrawalls/pkg/manager"
	"github.com/HuXin0817/terrawalls/pkg/models/chess"
	"github.com/HuXin0817/terrawalls/pkg/models/message"
)

func init() {
	logx.Disable()
}

func TestCommands(t *testing.T) {
	ctx := context.Background()
	m := manager.New(manager.WithPacing(0), manager.WithPicker(assess.NewUniform(assess.NewRand(4))))
	defer m.Close()

	_, err := run(ctx, m, "move 0 0 1 0")
	assert.ErrorIs(t, err, manager.ErrNotPlaying)

	_, err = run(ctx, m, "start x")
	assert.ErrorIs(t, err, errUsage)
	_, err = run(ctx, m, "start 1")
	require.NoError(t, err)

	out, err := run(ctx, m, "hint")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "try move "))

	_, err = run(ctx, m, "move 0 0 1 0")
	require.NoError(t, err)
	require.NoError(t, m.Wait(ctx))
	assert.Equal(t, 2, m.Snapshot().Board.WallCount())

	_, err = run(ctx, m, "move 0 0 1 0")
	assert.ErrorIs(t, err, chess.ErrWallExists)
	_, err = run(ctx, m, "move 0 0 1")
	assert.ErrorIs(t, err, errUsage)
	_, err = run(ctx, m, "move 0 0 -1 0")
	assert.ErrorIs(t, err, chess.ErrOutOfRange)
	_, err = run(ctx, m, "move 0 260 1 260")
	assert.ErrorIs(t, err, chess.ErrOutOfRange)

	_, err = run(ctx, m, "restart")
	require.NoError(t, err)
	assert.Zero(t, m.Snapshot().Board.WallCount())

	_, err = run(ctx, m, "menu")
	require.NoError(t, err)
	assert.Equal(t, manager.Menu, m.State())

	out, err = run(ctx, m, "   ")
	assert.NoError(t, err)
	assert.Empty(t, out)
	_, err = run(ctx, m, "dance")
	assert.ErrorIs(t, err, errUnknown)
	_, err = run(ctx, m, "quit")
	assert.ErrorIs(t, err, errQuit)
}

func TestBoardRendering(t *testing.T) {
	g := chess.NewGame(1)
	for _, w := range [][4]int{{0, 0, 1, 0}, {0, 0, 0, 1}, {3, 3, 3, 2}, {0, 1, 1, 1}, {1, 0, 1, 1}} {
		_, err := g.ApplyWall(chess.NewDot(w[0], w[1]), chess.NewDot(w[2], w[3]), g.CurrentTurn())
		require.NoError(t, err)
	}

	out := newPainter(false).board(g.Board)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "   0   1   2   3   ", lines[0])
	assert.Equal(t, " 0 ●───●   ●   ●", lines[1])
	assert.Equal(t, "   │ M │        ", lines[2])
	assert.Equal(t, " 1 ●───●   ●   ●", lines[3])
}

func TestStatusLine(t *testing.T) {
	p := newPainter(false)
	assert.Contains(t, p.status(manager.Snapshot{}), "menu")

	b := chess.NewBoard(chess.NewGrid(1))
	assert.Equal(t, "you 0 : 0 opponent  your move", p.status(manager.Snapshot{State: manager.Playing, Board: b}))

	uid := message.GameUid("0123456789abcdef")
	assert.Equal(t, "[01234567] you 0 : 0 opponent  your move", p.status(manager.Snapshot{State: manager.Playing, GameUid: uid, Board: b}))
}
