package mines

import (
	"fmt"
	"hash/maphash"
	"iter"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Phase int8

const (
	InProgress Phase = iota
	Won
	Lost
)

func (p Phase) String() string {
	switch p {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Phase(%d)", int8(p))
	}
}

// Terminal reports whether the game is over.
func (p Phase) Terminal() bool {
	return p == Won || p == Lost
}

// Board owns the cells of a single game together with every counter derived
// from them. Board is not safe for concurrent use.
type Board struct {
	GameParams

	cells          []Cell // row-major
	remainingFlags int
	revealedSafe   int
	phase          Phase

	log logrus.FieldLogger
}

type boardOptions struct {
	rnd    *rand.Rand
	mines  []Coord
	forced bool
	log    logrus.FieldLogger
}

type Option = func(*boardOptions) error

// WithRand sets the source used to place mines.
func WithRand(r *rand.Rand) Option {
	return func(o *boardOptions) error {
		if r == nil {
			return fmt.Errorf("%w: nil random source", ErrInvalidConfiguration)
		}
		o.rnd = r
		return nil
	}
}

// WithMines places mines at exactly the given coordinates instead of at
// random ones. There must be MineCount distinct in-bounds coordinates.
func WithMines(mines ...Coord) Option {
	return func(o *boardOptions) error {
		o.mines = mines
		o.forced = true
		return nil
	}
}

// WithLogger sets the logger board events are written to.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *boardOptions) error {
		if l != nil {
			o.log = l
		}
		return nil
	}
}

// NewRand returns a PCG source seeded from the runtime's random hash seed.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// NewBoard creates a board in the [InProgress] phase with mines placed and
// adjacency counts derived. It fails with [ErrInvalidConfiguration] when
// params or options are invalid.
func NewBoard(params GameParams, options ...Option) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	opts := &boardOptions{log: Log}
	for _, op := range options {
		if err := op(opts); err != nil {
			return nil, err
		}
	}

	b := &Board{
		GameParams:     params,
		cells:          make([]Cell, params.Cells()),
		remainingFlags: params.MineCount,
		phase:          InProgress,
		log:            opts.log,
	}

	var err error
	if opts.forced {
		err = b.layMines(opts.mines)
	} else {
		if opts.rnd == nil {
			opts.rnd = NewRand()
		}
		err = b.placeMines(opts.rnd)
	}
	if err != nil {
		return nil, err
	}

	b.countAdjacentMines()

	b.log.WithFields(logrus.Fields{
		"height":     b.Height,
		"width":      b.Width,
		"mine_count": b.MineCount,
		"forced":     opts.forced,
	}).Debug("board created")

	return b, nil
}

// Expected draws stay below Cells*ln(Cells), so this cap is only reached by
// a broken random source.
const placementAttemptsPerCell = 64

// placeMines draws uniform coordinates and rejects the ones already mined
// until MineCount distinct cells hold a mine.
func (b *Board) placeMines(r *rand.Rand) error {
	mined := make(map[Coord]struct{}, b.MineCount)
	limit := placementAttemptsPerCell*b.Cells() + b.MineCount
	for attempt := 0; len(mined) < b.MineCount; attempt++ {
		if attempt >= limit {
			return AssertionError{fmt.Sprintf(
				"placed %d of %d mines after %d draws",
				len(mined), b.MineCount, attempt,
			)}
		}
		c := Coord{Row: r.IntN(b.Height), Col: r.IntN(b.Width)}
		if _, ok := mined[c]; ok {
			continue
		}
		mined[c] = struct{}{}
		b.cells[b.index(c)].IsMine = true
	}
	return nil
}

func (b *Board) layMines(mines []Coord) error {
	if len(mines) != b.MineCount {
		return fmt.Errorf(
			"%w: %d mine coordinates given for mine_count = %d",
			ErrInvalidConfiguration, len(mines), b.MineCount,
		)
	}
	for _, c := range mines {
		if !b.InBounds(c) {
			return fmt.Errorf("%w: mine at %s is off the board", ErrInvalidConfiguration, c)
		}
		cell := &b.cells[b.index(c)]
		if cell.IsMine {
			return fmt.Errorf("%w: duplicate mine at %s", ErrInvalidConfiguration, c)
		}
		cell.IsMine = true
	}
	return nil
}

func (b *Board) countAdjacentMines() {
	for row := range b.Height {
		for col := range b.Width {
			c := Coord{row, col}
			cell := &b.cells[b.index(c)]
			if cell.IsMine {
				continue
			}
			for n := range b.Neighbours(c) {
				if b.cells[b.index(n)].IsMine {
					cell.AdjacentMines++
				}
			}
		}
	}
}

func (b *Board) index(c Coord) int {
	return c.Row*b.Width + c.Col
}

// InBounds reports whether c addresses a cell of the board.
func (b *Board) InBounds(c Coord) bool {
	return 0 <= c.Row && c.Row < b.Height && 0 <= c.Col && c.Col < b.Width
}

// Neighbours yields the in-bounds cells among the 8 surrounding c.
func (b *Board) Neighbours(c Coord) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				n := Coord{c.Row + dr, c.Col + dc}
				if (dr != 0 || dc != 0) && b.InBounds(n) {
					if !yield(n) {
						return
					}
				}
			}
		}
	}
}

// Phase reports whether the game is in progress, won or lost.
func (b *Board) Phase() Phase {
	return b.phase
}

// RemainingFlags is MineCount minus the number of flagged cells. It goes
// negative when the player places more flags than there are mines.
func (b *Board) RemainingFlags() int {
	return b.remainingFlags
}

func (b *Board) RevealedSafe() int {
	return b.revealedSafe
}

// Cell returns the full record of the cell at c, mine included.
func (b *Board) Cell(c Coord) (Cell, error) {
	if !b.InBounds(c) {
		return Cell{}, b.outOfBounds(c)
	}
	return b.cells[b.index(c)], nil
}

func (b *Board) View(c Coord) (CellView, error) {
	if !b.InBounds(c) {
		return CellView{}, b.outOfBounds(c)
	}
	return b.view(c), nil
}

// Views returns the player's view of the whole board, indexed [row][col].
func (b *Board) Views() [][]CellView {
	views := make([][]CellView, b.Height)
	for row := range b.Height {
		views[row] = make([]CellView, b.Width)
		for col := range b.Width {
			views[row][col] = b.view(Coord{row, col})
		}
	}
	return views
}

// Mines lists mined coordinates in row-major order.
func (b *Board) Mines() []Coord {
	mines := make([]Coord, 0, b.MineCount)
	for i, cell := range b.cells {
		if cell.IsMine {
			mines = append(mines, Coord{i / b.Width, i % b.Width})
		}
	}
	return mines
}

func (b *Board) view(c Coord) CellView {
	cell := b.cells[b.index(c)]
	v := CellView{State: cell.State}
	switch {
	case cell.State == Revealed:
		v.IsMine = cell.IsMine
		v.AdjacentMines = cell.AdjacentMines
	case b.phase == Lost:
		v.IsMine = cell.IsMine
	}
	return v
}

func (b *Board) delta(c Coord) CellDelta {
	return CellDelta{Coord: c, View: b.view(c)}
}

func (b *Board) outOfBounds(c Coord) error {
	return fmt.Errorf(
		"%w: %s on a %dx%d board", ErrOutOfBounds, c, b.Height, b.Width,
	)
}
