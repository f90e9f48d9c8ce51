package game

import (
	"github.com/qnkhuat/sgfterm/pkg/sgf"
)

// Board is a square grid of stones indexed by row then column. Coordinates
// outside [0, Size) are a caller error and panic.
type Board struct {
	size  int
	cells []sgf.Stone
}

func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]sgf.Stone, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) index(row, col int) int {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		panic("game: board coordinate out of range")
	}
	return row*b.size + col
}

func (b *Board) Get(row, col int) sgf.Stone {
	return b.cells[b.index(row, col)]
}

func (b *Board) Set(row, col int, s sgf.Stone) {
	b.cells[b.index(row, col)] = s
}

func (b *Board) Clear(row, col int) {
	b.cells[b.index(row, col)] = sgf.Empty
}

// Reset empties every cell.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = sgf.Empty
	}
}

func (b *Board) Contains(p sgf.Point) bool {
	return p.Col >= 0 && p.Col < b.size && p.Row >= 0 && p.Row < b.size
}

func (b *Board) Equal(o *Board) bool {
	if b.size != o.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Stones counts the stones of one color.
func (b *Board) Stones(s sgf.Stone) int {
	n := 0
	for _, c := range b.cells {
		if c == s {
			n++
		}
	}
	return n
}
