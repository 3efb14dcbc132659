package mines

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds     = errors.New("point is outside the board")
	ErrAlreadyRevealed = errors.New("cell is already revealed")
	ErrAlreadyFlagged  = errors.New("cell is already flagged")
	ErrNotFlagged      = errors.New("cell is not flagged")
)

type BoardConfigError struct {
	Width, Height, MineCount int
}

// [BoardConfigError] implements [error]
func (e BoardConfigError) Error() string {
	switch {
	case e.Width <= 0:
		return fmt.Sprintf("cannot create a board with width %d", e.Width)
	case e.Height <= 0:
		return fmt.Sprintf("cannot create a board with height %d", e.Height)
	case e.MineCount < 0:
		return fmt.Sprintf("cannot create a board with %d mines", e.MineCount)
	default:
		return fmt.Sprintf("not enough room for %d mines on a %dx%d board (max %d)",
			e.MineCount, e.Width, e.Height, MaxMines(e.Width, e.Height))
	}
}
