package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// MaxMines is the placement capacity of a width x height board.
func MaxMines(width, height int) int {
	return (width - 1) * (height - 1)
}

type Board struct {
	Width, Height, MineCount int

	// Cells is a dense row-major grid: the cell at (x, y) lives at
	// index y*Width+x.
	Cells []Cell

	mines map[Point]struct{}
}

// NewBoard builds a board with mineCount mines placed by uniform sampling
// without replacement. Numbers are computed once, here; reveal and flag
// operations never touch cell contents again.
func NewBoard(width, height, mineCount int, r *rand.Rand) (*Board, error) {
	if width <= 0 || height <= 0 || mineCount < 0 || mineCount > MaxMines(width, height) {
		return nil, BoardConfigError{width, height, mineCount}
	}
	b := &Board{
		Width:     width,
		Height:    height,
		MineCount: mineCount,
		Cells:     make([]Cell, width*height),
		mines:     make(map[Point]struct{}, mineCount),
	}
	for len(b.mines) < mineCount {
		p := Point{r.IntN(width), r.IntN(height)}
		if _, taken := b.mines[p]; taken {
			continue
		}
		b.mines[p] = struct{}{}
		b.Cells[b.index(p.X, p.Y)].Content = Mine
	}
	b.fillNumbers()
	Log.WithFields(logrus.Fields{
		"width":      width,
		"height":     height,
		"mine_count": mineCount,
	}).Debug("board created")
	return b, nil
}

// NewBoardWithMines builds a board with mines at exactly the given points.
func NewBoardWithMines(width, height int, minePoints []Point) (*Board, error) {
	if width <= 0 || height <= 0 || len(minePoints) > MaxMines(width, height) {
		return nil, BoardConfigError{width, height, len(minePoints)}
	}
	b := &Board{
		Width:     width,
		Height:    height,
		MineCount: len(minePoints),
		Cells:     make([]Cell, width*height),
		mines:     make(map[Point]struct{}, len(minePoints)),
	}
	for _, p := range minePoints {
		if !b.InBounds(p.X, p.Y) {
			return nil, ErrOutOfBounds
		}
		if _, dup := b.mines[p]; dup {
			return nil, BoardConfigError{width, height, len(minePoints)}
		}
		b.mines[p] = struct{}{}
		b.Cells[b.index(p.X, p.Y)].Content = Mine
	}
	b.fillNumbers()
	return b, nil
}

// fillNumbers walks every mine once and bumps the count on each non-mine
// neighbor, so a cell touched by several mines accumulates its total.
func (b *Board) fillNumbers() {
	for p := range b.mines {
		for _, i := range b.neighbors(p.X, p.Y) {
			if c := &b.Cells[i]; c.Content != Mine {
				c.Content++
			}
		}
	}
}

func (b *Board) index(x, y int) int {
	return y*b.Width + x
}

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.Width && 0 <= y && y < b.Height
}

// At returns a copy of the cell at (x, y). Precondition: in bounds.
func (b *Board) At(x, y int) Cell {
	return b.Cells[b.index(x, y)]
}

func (b *Board) IsMine(x, y int) bool {
	_, ok := b.mines[Point{x, y}]
	return ok
}

func (b *Board) MineLocations() []Point {
	points := make([]Point, 0, len(b.mines))
	for p := range b.mines {
		points = append(points, p)
	}
	return points
}

// neighbors returns the indices of the up-to-8 in-bounds cells around (x, y).
func (b *Board) neighbors(x, y int) []int {
	indices := make([]int, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if xx, yy := x+dx, y+dy; b.InBounds(xx, yy) {
				indices = append(indices, b.index(xx, yy))
			}
		}
	}
	return indices
}

type RevealResult int

const (
	CellRevealed RevealResult = iota
	MineRevealed
)

// Reveal opens the cell at (x, y). A mine is marked revealed and reported
// as [MineRevealed]; declaring the loss (and exposing the other mines) is
// the caller's job. An empty cell opens its whole connected empty region
// plus the numbered ring around it; a number opens only itself.
func (b *Board) Reveal(x, y int) (RevealResult, error) {
	if !b.InBounds(x, y) {
		return 0, ErrOutOfBounds
	}
	c := &b.Cells[b.index(x, y)]
	if c.Revealed {
		return 0, ErrAlreadyRevealed
	}
	if c.Flagged {
		return 0, ErrAlreadyFlagged
	}
	c.Revealed = true
	if c.Content == Mine {
		return MineRevealed, nil
	}
	if c.Content == Empty {
		b.floodReveal(b.index(x, y))
	}
	return CellRevealed, nil
}

// floodReveal expands from an already-revealed empty cell with an explicit
// index worklist. The revealed bit doubles as the visited marker, so no
// cell is processed twice. Flagged cells stay covered.
func (b *Board) floodReveal(start int) {
	queue := []int{start}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		x, y := i%b.Width, i/b.Width
		for _, j := range b.neighbors(x, y) {
			n := &b.Cells[j]
			if n.Revealed || n.Flagged || n.Content == Mine {
				continue
			}
			n.Revealed = true
			if n.Content == Empty {
				queue = append(queue, j)
			}
		}
	}
}

// Flag marks the cell at (x, y) as a suspected mine.
func (b *Board) Flag(x, y int) error {
	if !b.InBounds(x, y) {
		return ErrOutOfBounds
	}
	c := &b.Cells[b.index(x, y)]
	if c.Revealed {
		return ErrAlreadyRevealed
	}
	if c.Flagged {
		return ErrAlreadyFlagged
	}
	c.Flagged = true
	return nil
}

func (b *Board) Unflag(x, y int) error {
	if !b.InBounds(x, y) {
		return ErrOutOfBounds
	}
	c := &b.Cells[b.index(x, y)]
	if c.Revealed {
		return ErrAlreadyRevealed
	}
	if !c.Flagged {
		return ErrNotFlagged
	}
	c.Flagged = false
	return nil
}

// RevealAllMines exposes every mine, dropping any flag sitting on one so a
// cell is never both flagged and revealed. Used when the game is lost.
func (b *Board) RevealAllMines() {
	for p := range b.mines {
		c := &b.Cells[b.index(p.X, p.Y)]
		c.Flagged = false
		c.Revealed = true
	}
}

// Reset clears all revealed and flagged bits, keeping the mine layout and
// numbers, so the same board can be retried.
func (b *Board) Reset() {
	for i := range b.Cells {
		b.Cells[i].Revealed = false
		b.Cells[i].Flagged = false
	}
}

func (b *Board) FlagCount() int {
	count := 0
	for i := range b.Cells {
		if b.Cells[i].Flagged {
			count++
		}
	}
	return count
}

// AllMinesFlagged reports whether the flagged cells are exactly the mine
// locations. A flag on a non-mine fails immediately, so a superset of the
// mine set can never win; a subset fails the count comparison.
func (b *Board) AllMinesFlagged() bool {
	flags := 0
	for i := range b.Cells {
		if !b.Cells[i].Flagged {
			continue
		}
		flags++
		if _, ok := b.mines[Point{i % b.Width, i / b.Width}]; !ok {
			return false
		}
	}
	return flags == len(b.mines)
}
