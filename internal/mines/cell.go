package mines

import (
	"fmt"
	"strconv"
)

type CellState int8

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "CellState(" + strconv.Itoa(int(s)) + ")"
	}
}

// Coord addresses a cell, 0-indexed from the top left corner.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Cell is the full record of a single square. Only the [Board] mutates it.
type Cell struct {
	IsMine        bool
	AdjacentMines int
	State         CellState
}

// CellView is what a player is allowed to know about a cell: mines and
// counts stay hidden until the cell is revealed, except that every mine is
// shown once the game is lost.
type CellView struct {
	State         CellState `json:"state"`
	IsMine        bool      `json:"is_mine"`
	AdjacentMines int       `json:"adjacent_mines"`
}

func (v CellView) String() string {
	switch {
	case v.State == Flagged:
		return "F"
	case v.IsMine:
		return "*"
	case v.State == Hidden:
		return "#"
	case v.AdjacentMines == 0:
		return "."
	default:
		return strconv.Itoa(v.AdjacentMines)
	}
}

// CellDelta records the new view of a cell changed by an operation.
type CellDelta struct {
	Coord Coord
	View  CellView
}
