package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	p, err := ParseParams("9", "24", "10")
	require.NoError(t, err)
	assert.Equal(t, GameParams{Width: 9, Height: 24, MineCount: 10}, p)

	p, err = ParseParams(" 16 ", "16", " 40")
	require.NoError(t, err)
	assert.Equal(t, GameParams{Width: 16, Height: 16, MineCount: 40}, p)
}

func TestParseParamsRejectsNonIntegers(t *testing.T) {
	for _, answers := range [][3]string{
		{"banana", "9", "10"},
		{"9", "", "10"},
		{"9", "9", "ten"},
	} {
		_, err := ParseParams(answers[0], answers[1], answers[2])
		assert.Error(t, err, "answers %v", answers)
	}
}

func TestValidateBounds(t *testing.T) {
	testCases := []struct {
		params GameParams
		param  string // empty means valid
	}{
		{GameParams{9, 9, 10}, ""},
		{GameParams{30, 24, 10}, ""},
		{GameParams{9, 9, 64}, ""},
		{GameParams{8, 9, 10}, "width"},
		{GameParams{31, 9, 10}, "width"},
		{GameParams{9, 8, 10}, "height"},
		{GameParams{9, 25, 10}, "height"},
		{GameParams{9, 9, 9}, "mine count"},
		{GameParams{9, 9, 65}, "mine count"},
		{GameParams{30, 24, 668}, "mine count"}, // max is 29*23 = 667
	}
	for _, test := range testCases {
		err := test.params.Validate()
		if test.param == "" {
			assert.NoError(t, err, "params %+v", test.params)
			continue
		}
		var boundsErr BoundsError
		require.ErrorAs(t, err, &boundsErr, "params %+v", test.params)
		assert.Equal(t, test.param, boundsErr.Param, "params %+v", test.params)
	}
}

func TestDefaultParamsAreValid(t *testing.T) {
	assert.NoError(t, DefaultParams().Validate())
}
