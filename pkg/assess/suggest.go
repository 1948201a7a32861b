package assess

import (
	"context"
	"fmt"

	"github.com/HuXin0817/terrawalls/pkg/models/chess"
)

// Suggest proposes a wall for the side to move on p: a capture when one
// exists, otherwise whatever picker chooses.
func Suggest(ctx context.Context, p Position, picker Picker) (chess.Edge, error) {
	if p.IsTerminal() {
		return 0, chess.ErrGameOver
	}
	if e, ok := CaptureEdge(p); ok {
		return e, nil
	}
	candidates := p.FreeEdges()
	if len(candidates) == 0 {
		return 0, fmt.Errorf("%w: no free wall left on a board that is not over", chess.ErrInvariantViolation)
	}
	return picker.Pick(ctx, p.Clone(), candidates)
}
