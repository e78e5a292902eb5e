package mines

import (
	"fmt"
	"strings"
)

// String draws the player's view of the board, one row per line.
func (b *Board) String() string {
	return b.draw(b.view)
}

// Layout draws the whole board as if every cell were revealed.
func (b *Board) Layout() string {
	return b.draw(func(c Coord) CellView {
		cell := b.cells[b.index(c)]
		return CellView{
			State:         Revealed,
			IsMine:        cell.IsMine,
			AdjacentMines: cell.AdjacentMines,
		}
	})
}

func (b *Board) draw(view func(Coord) CellView) string {
	var sb strings.Builder
	for row := range b.Height {
		for col := range b.Width {
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, view(Coord{row, col}))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
