package mines

import (
	"fmt"
	"strings"
)

// GameParams describes the shape of a board: its dimensions and how many
// mines are hidden in it.
type GameParams struct {
	Height, Width, MineCount int
}

// MaxCells caps the size of a board.
const MaxCells = 1 << 20

// DefaultParams is a 16 rows by 20 columns board with 40 mines.
var DefaultParams = GameParams{Height: 16, Width: 20, MineCount: 40}

func (p GameParams) Unpack() (h int, w int, mc int) {
	return p.Height, p.Width, p.MineCount
}

func (p GameParams) Cells() int {
	return p.Height * p.Width
}

// SafeTarget is the number of safe cells the player has to reveal to win.
func (p GameParams) SafeTarget() int {
	return p.Cells() - p.MineCount
}

// Validate reports [ErrInvalidConfiguration] unless both dimensions are
// positive, Height*Width is at most [MaxCells] and 0 <= MineCount <
// Height*Width.
func (p GameParams) Validate() error {
	h, w, mc := p.Unpack()
	switch {
	case h <= 0 || w <= 0:
		return fmt.Errorf(
			"%w: dimensions must be positive (height = %d, width = %d)",
			ErrInvalidConfiguration, h, w,
		)
	case h > MaxCells/w:
		return fmt.Errorf(
			"%w: %dx%d board exceeds %d cells",
			ErrInvalidConfiguration, h, w, MaxCells,
		)
	case mc < 0:
		return fmt.Errorf(
			"%w: negative mine count (mine_count = %d)",
			ErrInvalidConfiguration, mc,
		)
	case mc >= h*w:
		return fmt.Errorf(
			"%w: not enough room for %d mines on a %dx%d board",
			ErrInvalidConfiguration, mc, h, w,
		)
	}
	return nil
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Height, p.Width, p.MineCount)
}

// ParseSeed is the inverse of [GameParams.Seed]. The parsed params are not
// validated.
func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(strings.TrimSpace(seed), ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Height, &p.Width, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}
