package mines

import "strconv"

type Content int8

const (
	Mine  Content = -1
	Empty Content = 0
	// 1 to 8 mean the cell borders that many mines.
)

func (c Content) IsNumber() bool {
	return 1 <= c && c <= 8
}

func (c Content) String() string {
	switch {
	case c == Mine:
		return "*"
	case c == Empty:
		return " "
	case c.IsNumber():
		return strconv.Itoa(int(c))
	default:
		return "!"
	}
}

type Cell struct {
	Content  Content
	Revealed bool
	Flagged  bool
}

type Point struct {
	X, Y int
}
