package game

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"

	"go-minesweeper/internal/mines"
)

const (
	MinWidth  = 9
	MaxWidth  = 30
	MinHeight = 9
	MaxHeight = 24
	MinMines  = 10

	DefaultWidth     = 9
	DefaultHeight    = 9
	DefaultMineCount = 10
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type GameParams struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

func DefaultParams() GameParams {
	return GameParams{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		MineCount: DefaultMineCount,
	}
}

// ParseParams decodes the three raw setup answers into a GameParams.
// Values that do not parse as integers fail as a unit; the caller decides
// whether to fall back to defaults.
func ParseParams(width, height, mineCount string) (GameParams, error) {
	values := url.Values{
		"width":      {strings.TrimSpace(width)},
		"height":     {strings.TrimSpace(height)},
		"mine_count": {strings.TrimSpace(mineCount)},
	}
	var p GameParams
	if err := decoder.Decode(&p, values); err != nil {
		return GameParams{}, err
	}
	return p, nil
}

type BoundsError struct {
	Param    string
	Value    int
	Min, Max int
}

// [BoundsError] implements [error]
func (e BoundsError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d (have %d)",
		e.Param, e.Min, e.Max, e.Value)
}

// Validate checks the params against the static board bounds and reports
// the first violated one.
func (p GameParams) Validate() error {
	if p.Width < MinWidth || p.Width > MaxWidth {
		return BoundsError{"width", p.Width, MinWidth, MaxWidth}
	}
	if p.Height < MinHeight || p.Height > MaxHeight {
		return BoundsError{"height", p.Height, MinHeight, MaxHeight}
	}
	if maxMines := mines.MaxMines(p.Width, p.Height); p.MineCount < MinMines || p.MineCount > maxMines {
		return BoundsError{"mine count", p.MineCount, MinMines, maxMines}
	}
	return nil
}
