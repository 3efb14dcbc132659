package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-minesweeper/internal/mines"
)

func TestRenderBoardCoveredFrame(t *testing.T) {
	b, err := mines.NewBoardWithMines(3, 2, []mines.Point{{X: 0, Y: 0}})
	require.NoError(t, err)

	want := strings.Join([]string{
		"  012",
		"0 ▓▓▓",
		"1 ▓▓▓",
		"Mines left: 1",
		"",
	}, "\n")
	assert.Equal(t, want, RenderBoard(b, 1))
}

func TestRenderBoardGlyphs(t *testing.T) {
	b, err := mines.NewBoardWithMines(3, 3, []mines.Point{{X: 0, Y: 0}})
	require.NoError(t, err)

	_, err = b.Reveal(2, 2) // empty corner floods everything but the mine
	require.NoError(t, err)
	require.NoError(t, b.Flag(0, 0))

	want := strings.Join([]string{
		"  012",
		"0 φ1░",
		"1 11░",
		"2 ░░░",
		"Mines left: 0",
		"",
	}, "\n")
	assert.Equal(t, want, RenderBoard(b, 0))
}

func TestRenderBoardShowsMinesWhenRevealed(t *testing.T) {
	b, err := mines.NewBoardWithMines(3, 2, []mines.Point{{X: 1, Y: 0}})
	require.NoError(t, err)
	b.RevealAllMines()

	assert.Contains(t, RenderBoard(b, 1), "0 ▓*▓")
}

func TestAxisLabelsRollIntoLetters(t *testing.T) {
	b, err := mines.NewBoardWithMines(12, 2, nil)
	require.NoError(t, err)

	header := strings.SplitN(RenderBoard(b, 0), "\n", 2)[0]
	assert.Equal(t, "  0123456789ab", header)
}

func TestRenderRevealedIgnoresCover(t *testing.T) {
	b, err := mines.NewBoardWithMines(3, 1, []mines.Point{{X: 0, Y: 0}})
	require.NoError(t, err)

	assert.Equal(t, "*1░\n", RenderRevealed(b))
}
