package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		params GameParams
		valid  bool
	}{
		{"default", DefaultParams, true},
		{"1x2 one mine", GameParams{1, 2, 1}, true},
		{"no mines", GameParams{2, 2, 0}, true},
		{"zero height", GameParams{0, 5, 0}, false},
		{"zero width", GameParams{5, 0, 0}, false},
		{"negative height", GameParams{-1, 5, 1}, false},
		{"negative mines", GameParams{2, 2, -1}, false},
		{"full board", GameParams{2, 2, 4}, false},
		{"overfull board", GameParams{2, 2, 5}, false},
		{"largest board", GameParams{1024, 1024, 0}, true},
		{"single row at cap", GameParams{1, MaxCells, 1}, true},
		{"over cell cap", GameParams{1024, 1025, 0}, false},
		{"huge board", GameParams{100000, 100000, 10}, false},
		{"overflowing product", GameParams{1<<62 + 1, 4, 0}, false},
		{"overflowing width", GameParams{4, 1<<62 + 1, 0}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.params.Validate()
			if test.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
			}
		})
	}
}

func TestSafeTarget(t *testing.T) {
	assert.Equal(t, 280, DefaultParams.SafeTarget())
	assert.Equal(t, 4, GameParams{2, 2, 0}.SafeTarget())
}

func TestSeed(t *testing.T) {
	assert.Equal(t, "16:20:40", DefaultParams.Seed())

	p, err := ParseSeed("9:9:10")
	require.NoError(t, err)
	assert.Equal(t, GameParams{Height: 9, Width: 9, MineCount: 10}, *p)

	p, err = ParseSeed(DefaultParams.Seed())
	require.NoError(t, err)
	assert.Equal(t, DefaultParams, *p)

	for _, seed := range []string{"", "9:9", "a:b:c", "9x9x10"} {
		_, err := ParseSeed(seed)
		assert.Error(t, err, "seed %q", seed)
	}
}

func TestNewBoardRejectsOverflow(t *testing.T) {
	params := GameParams{Height: 1<<62 + 1, Width: 4}
	require.NotPanics(t, func() {
		b, err := NewBoard(params)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
		assert.Nil(t, b)
	})
}
