package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"

	"go-minesweeper/internal/mines"
)

type State int

const (
	Menu State = iota
	NewGameSetup
	Playing
	Won
	Lost
	Quit
)

func (s State) String() string {
	switch s {
	case Menu:
		return "menu"
	case NewGameSetup:
		return "setup"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Renderer draws read-only board state for the player.
type Renderer interface {
	Board(b *mines.Board, minesLeft int)
}

// Controller sequences turns: it reads commands from in, mutates the board,
// and hands status text to out and board state to the renderer. It performs
// no device I/O of its own.
type Controller struct {
	in     *bufio.Scanner
	out    io.Writer
	render Renderer
	log    *logrus.Logger
	rnd    *rand.Rand

	state     State
	board     *mines.Board
	minesLeft int
}

func NewController(in io.Reader, out io.Writer, render Renderer, log *logrus.Logger, rnd *rand.Rand) *Controller {
	return &Controller{
		in:     bufio.NewScanner(in),
		out:    out,
		render: render,
		log:    log,
		rnd:    rnd,
		state:  Menu,
	}
}

func (c *Controller) State() State        { return c.state }
func (c *Controller) Board() *mines.Board { return c.board }
func (c *Controller) MinesLeft() int      { return c.minesLeft }

func (c *Controller) setState(next State) {
	c.log.WithFields(logrus.Fields{
		"from": c.state.String(),
		"to":   next.String(),
	}).Debug("state transition")
	c.state = next
}

// Run drives the state machine until the player quits or ctx is done.
// The context is only checked between turns; a turn always runs whole.
func (c *Controller) Run(ctx context.Context) error {
	for c.state != Quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch c.state {
		case Menu:
			c.menu()
		case NewGameSetup:
			c.setup()
		case Playing:
			c.playTurn()
		case Won:
			c.finishWin()
		case Lost:
			c.finishLoss()
		}
	}
	fmt.Fprintln(c.out, "Thanks for playing!")
	return nil
}

// prompt writes label and reads one line. ok is false when input is
// exhausted, which quits the game from any prompt.
func (c *Controller) prompt(label string) (line string, ok bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		c.setState(Quit)
		return "", false
	}
	return c.in.Text(), true
}

func (c *Controller) menu() {
	fmt.Fprintln(c.out, "Start a new game or quit?")
	for c.state == Menu {
		line, ok := c.prompt("Enter command (new, quit): ")
		if !ok {
			return
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "new":
			c.setState(NewGameSetup)
		case "quit":
			c.setState(Quit)
		}
	}
}

func (c *Controller) setup() {
	fmt.Fprintln(c.out, "Please enter the parameters for your new game board")
	fmt.Fprintf(c.out, "Default width: %d\n", DefaultWidth)
	fmt.Fprintf(c.out, "Default height: %d\n", DefaultHeight)
	fmt.Fprintf(c.out, "Default mine count: %d\n", DefaultMineCount)

	width, ok := c.prompt("Board width: ")
	if !ok {
		return
	}
	height, ok := c.prompt("Board height: ")
	if !ok {
		return
	}
	mineCount, ok := c.prompt("Number of mines: ")
	if !ok {
		return
	}

	params, err := ParseParams(width, height, mineCount)
	if err != nil {
		c.log.WithError(err).Debug("setup input did not parse")
		fmt.Fprintln(c.out, "Starting game with default parameters")
		params = DefaultParams()
	}

	if err := params.Validate(); err != nil {
		fmt.Fprintf(c.out, "Invalid board setup: %dx%d %d\n",
			params.Width, params.Height, params.MineCount)
		fmt.Fprintln(c.out, err)
		fmt.Fprintf(c.out, "Width range: %d-%d\n", MinWidth, MaxWidth)
		fmt.Fprintf(c.out, "Height range: %d-%d\n", MinHeight, MaxHeight)
		fmt.Fprintf(c.out, "Mine range for board size: %d-%d\n",
			MinMines, mines.MaxMines(params.Width, params.Height))
		return // stay in setup, re-prompt
	}

	board, err := mines.NewBoard(params.Width, params.Height, params.MineCount, c.rnd)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}

	c.board = board
	c.minesLeft = params.MineCount
	fmt.Fprintln(c.out, "New Game!")
	c.setState(Playing)
}

func (c *Controller) playTurn() {
	c.render.Board(c.board, c.minesLeft)
	fmt.Fprintln(c.out, "Commands - reveal, flag, unflag, new, reset, quit")

	line, ok := c.prompt("Enter a command (default is reveal): ")
	if !ok {
		return
	}
	kind, err := ParseCommandWord(strings.ToLower(strings.TrimSpace(line)))
	if err != nil {
		c.log.WithField("input", line).Debug("unknown command ignored")
		return
	}

	switch {
	case kind.TakesPosition():
		cmd, ok := c.readMove(kind)
		if !ok {
			return
		}
		c.applyMove(cmd)
	case kind == CmdNew:
		c.setState(NewGameSetup)
	case kind == CmdReset:
		c.resetGame()
	case kind == CmdQuit:
		c.setState(Quit)
	}
}

// readMove prompts for a position token and decodes it into a complete
// command. Malformed and out-of-bounds tokens are discarded silently.
func (c *Controller) readMove(kind CommandKind) (Command, bool) {
	var token string
	for token == "" {
		line, ok := c.prompt("Enter col and row: ")
		if !ok {
			return Command{}, false
		}
		token = strings.TrimSpace(line)
	}

	x, y, err := ParsePosition(token)
	if err != nil {
		c.log.WithField("token", token).Debug("malformed move discarded")
		return Command{}, false
	}
	if !c.board.InBounds(x, y) {
		c.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("out-of-bounds move discarded")
		return Command{}, false
	}
	return Command{Kind: kind, X: x, Y: y}, true
}

func (c *Controller) applyMove(cmd Command) {
	switch cmd.Kind {
	case CmdReveal:
		res, err := c.board.Reveal(cmd.X, cmd.Y)
		switch {
		case errors.Is(err, mines.ErrAlreadyRevealed):
			fmt.Fprintf(c.out, "Invalid Move: Cell (%d, %d) is already revealed\n", cmd.X, cmd.Y)
		case errors.Is(err, mines.ErrAlreadyFlagged):
			fmt.Fprintf(c.out, "Invalid Move: Cell (%d, %d) is already flagged\n", cmd.X, cmd.Y)
		case err != nil:
			c.log.WithError(err).Warn("reveal failed")
		case res == mines.MineRevealed:
			c.board.RevealAllMines()
			c.setState(Lost)
		}
	case CmdFlag:
		err := c.board.Flag(cmd.X, cmd.Y)
		switch {
		case errors.Is(err, mines.ErrAlreadyRevealed):
			fmt.Fprintf(c.out, "Invalid Move: Cell (%d, %d) is already revealed\n", cmd.X, cmd.Y)
		case errors.Is(err, mines.ErrAlreadyFlagged):
			fmt.Fprintf(c.out, "Invalid Move: Cell (%d, %d) is already flagged\n", cmd.X, cmd.Y)
		case err != nil:
			c.log.WithError(err).Warn("flag failed")
		default:
			c.minesLeft--
			if c.board.AllMinesFlagged() {
				c.setState(Won)
			}
		}
	case CmdUnflag:
		err := c.board.Unflag(cmd.X, cmd.Y)
		switch {
		case errors.Is(err, mines.ErrAlreadyRevealed):
			fmt.Fprintf(c.out, "Invalid Move: Cell (%d, %d) is already revealed\n", cmd.X, cmd.Y)
		case errors.Is(err, mines.ErrNotFlagged):
			// unflagging a bare cell is a silent no-op
		case err != nil:
			c.log.WithError(err).Warn("unflag failed")
		default:
			c.minesLeft++
		}
	}
}

// resetGame retries the same mine layout from scratch.
func (c *Controller) resetGame() {
	c.board.Reset()
	c.minesLeft = c.board.MineCount
	c.setState(Playing)
}

func (c *Controller) finishWin() {
	c.render.Board(c.board, c.minesLeft)
	fmt.Fprintln(c.out, "You Won!")
	c.setState(Menu)
}

func (c *Controller) finishLoss() {
	c.board.RevealAllMines()
	c.render.Board(c.board, c.minesLeft)
	fmt.Fprintln(c.out, "You Lost!")
	c.setState(Menu)
}
