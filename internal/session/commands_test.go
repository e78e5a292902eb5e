package session

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/mines"
)

func itoa(i int) string {
	return strconv.Itoa(i)
}

func TestByCommand(t *testing.T) {
	testCases := []struct {
		input string
		array []string
	}{
		{"o 1 2", []string{"o 1 2"}},
		{"o 1 2;f 0 0", []string{"o 1 2", "f 0 0"}},
		{" g ; ;l;", []string{"g", "l"}},
		{"", nil},
	}
	for _, test := range testCases {
		var got []string
		for i, c := range byCommand(test.input) {
			assert.Equal(t, len(got), i)
			got = append(got, c)
		}
		assert.Equal(t, test.array, got, "input %q", test.input)
	}
}

func TestByCommandStops(t *testing.T) {
	n := 0
	for range byCommand("g;g;g") {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestParseCoord(t *testing.T) {
	c, err := parseCoord([]string{"3", "7"})
	require.NoError(t, err)
	assert.Equal(t, mines.Coord{Row: 3, Col: 7}, c)

	_, err = parseCoord([]string{"3", "x"})
	assert.ErrorIs(t, err, ErrArgs)
}

func TestParseNewGame(t *testing.T) {
	defaults := mines.DefaultParams

	p, err := parseNewGame("", defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults, p)

	p, err = parseNewGame("width=30&unknown=1", defaults)
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Height: 16, Width: 30, MineCount: 40}, p)

	_, err = parseNewGame("width=%zz", defaults)
	assert.ErrorIs(t, err, ErrArgs)
}
