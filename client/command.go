package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/HuXin0817/terrawalls/pkg/manager"
)

var (
	errQuit    = errors.New("quit")
	errUsage   = errors.New("usage")
	errUnknown = errors.New("unknown command, try help")
)

const helpText = `commands:
  start <level>          new game, level 1 to 3 (higher plays like 3)
  move <x1> <y1> <x2> <y2>  draw the wall between two adjacent points
  hint                   suggest a wall
  restart                start the current level over
  menu                   leave the game
  show                   redraw the board
  quit`

// run executes one input line against m and returns what to print.
func run(ctx context.Context, m *manager.Manager, line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	args := fields[1:]
	switch fields[0] {
	case "start", "s":
		n, err := ints(args, 1)
		if err != nil {
			return "", fmt.Errorf("%w: start <level>", errUsage)
		}
		return "", m.StartGame(n[0])
	case "move", "m":
		n, err := ints(args, 4)
		if err != nil {
			return "", fmt.Errorf("%w: move <x1> <y1> <x2> <y2>", errUsage)
		}
		_, err = m.AttemptMoveAt(n[0], n[1], n[2], n[3])
		return "", err
	case "hint", "h":
		e, err := m.Hint(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("try move %d %d %d %d", e.Dot1().X(), e.Dot1().Y(), e.Dot2().X(), e.Dot2().Y()), nil
	case "restart", "r":
		return "", m.RestartCurrentLevel()
	case "menu":
		m.ReturnToMenu()
		return "", nil
	case "show":
		return "", nil
	case "help", "?":
		return helpText, nil
	case "quit", "q", "exit":
		return "", errQuit
	}
	return "", errUnknown
}

func ints(args []string, want int) ([]int, error) {
	if len(args) != want {
		return nil, errUsage
	}
	n := make([]int, want)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, err
		}
		n[i] = v
	}
	return n, nil
}
