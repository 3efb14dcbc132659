package game

import "errors"

var (
	ErrMalformedInput = errors.New("malformed position token")
	ErrUnknownCommand = errors.New("unknown command")
)

type CommandKind int

const (
	CmdReveal CommandKind = iota
	CmdFlag
	CmdUnflag
	CmdNew
	CmdReset
	CmdQuit
)

func (k CommandKind) String() string {
	switch k {
	case CmdReveal:
		return "reveal"
	case CmdFlag:
		return "flag"
	case CmdUnflag:
		return "unflag"
	case CmdNew:
		return "new"
	case CmdReset:
		return "reset"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// TakesPosition reports whether the command targets a board cell.
func (k CommandKind) TakesPosition() bool {
	return k == CmdReveal || k == CmdFlag || k == CmdUnflag
}

// Command is a fully decoded player action. X and Y are only meaningful
// when Kind.TakesPosition().
type Command struct {
	Kind CommandKind
	X, Y int
}

// ParseCommandWord maps a command word to its kind. The empty string
// defaults to reveal.
func ParseCommandWord(word string) (CommandKind, error) {
	switch word {
	case "", "reveal":
		return CmdReveal, nil
	case "flag":
		return CmdFlag, nil
	case "unflag":
		return CmdUnflag, nil
	case "new":
		return CmdNew, nil
	case "reset":
		return CmdReset, nil
	case "quit":
		return CmdQuit, nil
	default:
		return 0, ErrUnknownCommand
	}
}

// ParsePosition decodes a two-character position token into grid
// coordinates: digits map to 0-9, letters (either case) to 10-35. The
// first character is the column, the second the row. Bounds checking
// against an actual board is the caller's job.
func ParsePosition(token string) (x, y int, err error) {
	if len(token) != 2 {
		return 0, 0, ErrMalformedInput
	}
	if x, err = decodeAxis(token[0]); err != nil {
		return 0, 0, err
	}
	if y, err = decodeAxis(token[1]); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func decodeAxis(c byte) (int, error) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), nil
	case 'a' <= c && c <= 'z':
		return 10 + int(c-'a'), nil
	case 'A' <= c && c <= 'Z':
		return 10 + int(c-'A'), nil
	default:
		return 0, ErrMalformedInput
	}
}
