package mines

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

type Event int8

const (
	EventNone Event = iota
	EventPlayerWon
	EventPlayerLost
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventPlayerWon:
		return "player won"
	case EventPlayerLost:
		return "player lost"
	default:
		return "Event(" + strconv.Itoa(int(e)) + ")"
	}
}

type RevealResult struct {
	Deltas []CellDelta
	Event  Event
}

type FlagResult struct {
	Deltas         []CellDelta
	RemainingFlags int
}

// Reveal opens the cell at c. Opening a cell with no adjacent mines opens
// its neighbours as well, transitively, but never through a flagged cell.
//
// Revealing a revealed or flagged cell, or any cell once the game is over,
// changes nothing. Coordinates off the board yield [ErrOutOfBounds].
func (b *Board) Reveal(c Coord) (RevealResult, error) {
	var res RevealResult
	if !b.InBounds(c) {
		return res, b.outOfBounds(c)
	}
	if b.phase.Terminal() {
		return res, nil
	}

	cell := &b.cells[b.index(c)]
	if cell.State != Hidden {
		return res, nil
	}

	if cell.IsMine {
		cell.State = Revealed
		b.phase = Lost
		res.Deltas = append(res.Deltas, b.delta(c))
		res.Deltas = b.revealMines(res.Deltas)
		res.Event = EventPlayerLost
		b.log.WithField("at", c.String()).Debug("mine revealed, game lost")
		return res, nil
	}

	res.Deltas = b.expose(c, res.Deltas)

	/* Lost returned above, so only a win is left to check. */
	if b.revealedSafe == b.SafeTarget() {
		b.phase = Won
		res.Event = EventPlayerWon
		b.log.WithField("at", c.String()).Debug("all safe cells revealed, game won")
	}

	b.log.WithFields(logrus.Fields{
		"at":            c.String(),
		"opened":        len(res.Deltas),
		"revealed_safe": b.revealedSafe,
	}).Trace("reveal")

	return res, nil
}

// expose opens the safe cell at start and floods through blank cells using
// an explicit stack. Cells leave Hidden at most once, so every cell is
// pushed at most 8 times and opened at most once.
func (b *Board) expose(start Coord, deltas []CellDelta) []CellDelta {
	stack := []Coord{start}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := &b.cells[b.index(c)]
		if cell.State != Hidden || cell.IsMine {
			continue
		}
		cell.State = Revealed
		b.revealedSafe++
		deltas = append(deltas, b.delta(c))

		if cell.AdjacentMines != 0 {
			continue
		}
		for n := range b.Neighbours(c) {
			if b.cells[b.index(n)].State == Hidden {
				stack = append(stack, n)
			}
		}
	}
	return deltas
}

// revealMines opens every remaining mine after a loss. A flag on a mine is
// replaced, and the flag counter is given the flag back.
func (b *Board) revealMines(deltas []CellDelta) []CellDelta {
	for i := range b.cells {
		cell := &b.cells[i]
		if !cell.IsMine || cell.State == Revealed {
			continue
		}
		if cell.State == Flagged {
			b.remainingFlags++
		}
		cell.State = Revealed
		deltas = append(deltas, b.delta(Coord{i / b.Width, i % b.Width}))
	}
	return deltas
}

// ToggleFlag flags a hidden cell or unflags a flagged one. Revealed cells
// and finished games are left untouched. Coordinates off the board yield
// [ErrOutOfBounds].
func (b *Board) ToggleFlag(c Coord) (FlagResult, error) {
	res := FlagResult{RemainingFlags: b.remainingFlags}
	if !b.InBounds(c) {
		return res, b.outOfBounds(c)
	}
	if b.phase.Terminal() {
		return res, nil
	}

	cell := &b.cells[b.index(c)]
	switch cell.State {
	case Hidden:
		cell.State = Flagged
		b.remainingFlags--
	case Flagged:
		cell.State = Hidden
		b.remainingFlags++
	default:
		return res, nil
	}

	res.Deltas = append(res.Deltas, b.delta(c))
	res.RemainingFlags = b.remainingFlags
	return res, nil
}
