package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePosition(t *testing.T) {
	testCases := []struct {
		token string
		x, y  int
	}{
		{"00", 0, 0},
		{"93", 9, 3},
		{"a3", 10, 3},
		{"A3", 10, 3},
		{"3a", 3, 10},
		{"zz", 35, 35},
		{"ZZ", 35, 35},
	}
	for _, test := range testCases {
		x, y, err := ParsePosition(test.token)
		if err != nil {
			t.Fatalf("ParsePosition(%q): unexpected error %v", test.token, err)
		}
		if x != test.x || y != test.y {
			t.Fatalf("ParsePosition(%q): have (%d, %d), want (%d, %d)",
				test.token, x, y, test.x, test.y)
		}
	}
}

func TestParsePositionMalformed(t *testing.T) {
	for _, token := range []string{"", "a", "abc", "a!", "!3", "  ", "▓3", "a "} {
		_, _, err := ParsePosition(token)
		if !errors.Is(err, ErrMalformedInput) {
			t.Fatalf("ParsePosition(%q): have %v, want ErrMalformedInput", token, err)
		}
	}
}

func TestParseCommandWord(t *testing.T) {
	testCases := []struct {
		word string
		kind CommandKind
	}{
		{"", CmdReveal},
		{"reveal", CmdReveal},
		{"flag", CmdFlag},
		{"unflag", CmdUnflag},
		{"new", CmdNew},
		{"reset", CmdReset},
		{"quit", CmdQuit},
	}
	for _, test := range testCases {
		kind, err := ParseCommandWord(test.word)
		assert.NoError(t, err, "word %q", test.word)
		assert.Equal(t, test.kind, kind, "word %q", test.word)
	}

	_, err := ParseCommandWord("explode")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestCommandKindTakesPosition(t *testing.T) {
	assert.True(t, CmdReveal.TakesPosition())
	assert.True(t, CmdFlag.TakesPosition())
	assert.True(t, CmdUnflag.TakesPosition())
	assert.False(t, CmdNew.TakesPosition())
	assert.False(t, CmdReset.TakesPosition())
	assert.False(t, CmdQuit.TakesPosition())
}
