package game

import (
	"testing"

	"github.com/qnkhuat/sgfterm/pkg/sgf"
)

func testBoard(size int) *Board {
	b := NewBoard(size)
	b.Set(0, 0, sgf.Black)
	b.Set(0, size-1, sgf.White)
	b.Set(1, 2, sgf.Black)
	b.Set(size-1, size-1, sgf.White)
	return b
}

func TestViewIdentity(t *testing.T) {
	b := testBoard(19)
	v := NewView(b, 0)

	if v.Size() != 19 {
		t.Errorf("expected size 19, got %d", v.Size())
	}
	for r := 0; r < 19; r++ {
		for c := 0; c < 19; c++ {
			if v.Get(r, c) != b.Get(r, c) {
				t.Fatalf("view differs from board at (%d,%d)", r, c)
			}
		}
	}
}

func TestViewRotations(t *testing.T) {
	b := NewBoard(5)
	b.Set(0, 4, sgf.Black) // top right

	tests := []struct {
		rotation int
		row, col int
	}{
		{0, 0, 4},
		{1, 0, 0},
		{2, 4, 0},
		{3, 4, 4},
	}
	for _, tt := range tests {
		v := NewView(b, tt.rotation)
		if v.Get(tt.row, tt.col) != sgf.Black {
			t.Errorf("rotation %d: expected stone at (%d,%d)", tt.rotation, tt.row, tt.col)
		}
	}
}

func TestViewRotationNormalized(t *testing.T) {
	b := testBoard(9)

	for r := -8; r < 8; r++ {
		v := NewView(b, r)
		w := NewView(b, r+4)
		if v.Rotation() != w.Rotation() {
			t.Errorf("rotation %d normalized to %d, %d normalized to %d", r, v.Rotation(), r+4, w.Rotation())
		}
		if v.Rotation() < 0 || v.Rotation() > 3 {
			t.Errorf("rotation %d normalized out of range: %d", r, v.Rotation())
		}
		for row := 0; row < 9; row++ {
			for col := 0; col < 9; col++ {
				if v.Get(row, col) != w.Get(row, col) {
					t.Fatalf("rotation %d and %d differ at (%d,%d)", r, r+4, row, col)
				}
			}
		}
	}
}

func TestViewHalfTurnTwice(t *testing.T) {
	v := NewView(testBoard(9), 2)

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			r1, c1 := v.BoardCoord(row, col)
			r2, c2 := v.BoardCoord(r1, c1)
			if r2 != row || c2 != col {
				t.Errorf("(%d,%d) mapped back to (%d,%d)", row, col, r2, c2)
			}
		}
	}
}

func TestViewQuarterTurnsCompose(t *testing.T) {
	b := testBoard(7)
	quarter := NewView(b, 1)
	half := NewView(b, 2)

	for row := 0; row < 7; row++ {
		for col := 0; col < 7; col++ {
			r1, c1 := quarter.BoardCoord(row, col)
			r2, c2 := quarter.BoardCoord(r1, c1)
			hr, hc := half.BoardCoord(row, col)
			if r2 != hr || c2 != hc {
				t.Errorf("two quarter turns at (%d,%d) gave (%d,%d), half turn gave (%d,%d)", row, col, r2, c2, hr, hc)
			}
		}
	}
}

func TestViewSeesMutation(t *testing.T) {
	s := New(9, []sgf.Move{{Color: sgf.Black, Pos: pt(2, 1)}}, false)
	s.Advance()

	v := NewView(s.Board(), 2)
	if v.Get(7, 6) != sgf.Black {
		t.Errorf("expected rotated stone at (7,6)")
	}
}
