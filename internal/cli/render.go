// Package cli holds the terminal-facing collaborators: fixed-glyph board
// rendering and line prompting. It only ever reads board state.
package cli

import (
	"fmt"
	"io"
	"strings"

	"go-minesweeper/internal/mines"
)

const (
	unrevealedGlyph = '▓'
	emptyGlyph      = '░'
	mineGlyph       = '*'
	flagGlyph       = 'φ'
)

type Renderer struct {
	Out io.Writer
}

func (r Renderer) Board(b *mines.Board, minesLeft int) {
	fmt.Fprint(r.Out, RenderBoard(b, minesLeft))
}

// RenderBoard builds the full frame for a board: column labels, one row
// per grid line prefixed with its row label, and the mines-left footer.
// Axes are labeled 0-9 then a-z.
func RenderBoard(b *mines.Board, minesLeft int) string {
	var sb strings.Builder

	sb.WriteString("  ")
	for x := range b.Width {
		sb.WriteRune(axisLabel(x))
	}
	sb.WriteByte('\n')

	for y := range b.Height {
		sb.WriteRune(axisLabel(y))
		sb.WriteByte(' ')
		for x := range b.Width {
			sb.WriteRune(cellGlyph(b.At(x, y)))
		}
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "Mines left: %d\n", minesLeft)
	return sb.String()
}

// RenderRevealed prints every cell's contents regardless of cover state.
// Development aid; not reachable from the game loop.
func RenderRevealed(b *mines.Board) string {
	var sb strings.Builder
	for y := range b.Height {
		for x := range b.Width {
			sb.WriteRune(contentGlyph(b.At(x, y).Content))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func axisLabel(i int) rune {
	if i < 10 {
		return rune('0' + i)
	}
	return rune('a' + i - 10)
}

func cellGlyph(c mines.Cell) rune {
	switch {
	case c.Flagged:
		return flagGlyph
	case !c.Revealed:
		return unrevealedGlyph
	default:
		return contentGlyph(c.Content)
	}
}

func contentGlyph(content mines.Content) rune {
	switch {
	case content == mines.Mine:
		return mineGlyph
	case content == mines.Empty:
		return emptyGlyph
	default:
		return rune('0' + content)
	}
}
