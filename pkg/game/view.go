package game

import (
	"github.com/qnkhuat/sgfterm/pkg/sgf"
)

// View reads a Board through one of four quarter-turn rotations. It borrows
// the board, so build a new one for every draw instead of keeping it across
// Advance, Retreat or a jump.
type View struct {
	board    *Board
	rotation int
}

func NewView(b *Board, rotation int) View {
	return View{
		board:    b,
		rotation: ((rotation % 4) + 4) % 4,
	}
}

func (v View) Size() int {
	return v.board.size
}

func (v View) Rotation() int {
	return v.rotation
}

// BoardCoord maps a view coordinate to the board coordinate it shows.
func (v View) BoardCoord(row, col int) (int, int) {
	last := v.board.size - 1
	switch v.rotation {
	case 1:
		return col, last - row
	case 2:
		return last - row, last - col
	case 3:
		return last - col, row
	default:
		return row, col
	}
}

func (v View) Get(row, col int) sgf.Stone {
	r, c := v.BoardCoord(row, col)
	return v.board.Get(r, c)
}
