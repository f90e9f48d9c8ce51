package gui

import (
	"fmt"

	"github.com/qnkhuat/sgfterm/pkg/game"
	"github.com/qnkhuat/sgfterm/pkg/sgf"
)

const (
	DefaultTitle = "Go Game"
	DefaultBlack = "Black"
	DefaultWhite = "White"
)

// Frame encapsulates everything needed to draw one screen
type Frame struct {
	Title   string     // GN
	Black   string     // PB
	White   string     // PW
	Banner  string     // Replaces the header while switching games
	View    game.View  // Board as it should appear
	Last    *sgf.Point // Last move on the board, nil for none or a pass
	Label   string     // Last move label, empty before the first move
	Cursor  int        // Moves applied
	Total   int        // Moves in the record
	Playing bool       // Autoplay running
	Looping bool       // Loop flag
	Speed   int        // Playback multiplier
}

// NewFrame reads the header and position from st. Session and playback
// fields are left for the caller.
func NewFrame(st *game.State, rotation int) Frame {
	f := Frame{
		Title:   Property(st, "GN", DefaultTitle),
		Black:   Property(st, "PB", DefaultBlack),
		White:   Property(st, "PW", DefaultWhite),
		View:    game.NewView(st.Board(), rotation),
		Cursor:  st.Cursor(),
		Total:   st.Len(),
		Looping: st.Looping(),
		Speed:   1,
	}
	if m, ok := st.LastMove(); ok {
		f.Last = m.Pos
		f.Label = MoveLabel(m)
	}
	return f
}

// Property returns the root property key of the record behind st, or def
// when it is missing or empty.
func Property(st *game.State, key, def string) string {
	if v, ok := st.Property(key); ok && v != "" {
		return v
	}
	return def
}

// MoveLabel returns "Black D4" or "White Pass".
func MoveLabel(m sgf.Move) string {
	if m.Pass() {
		return fmt.Sprintf("%s Pass", m.Color)
	}
	return fmt.Sprintf("%s %s", m.Color, m.Pos)
}

// Counter returns "Move k/N".
func (f *Frame) Counter() string {
	return fmt.Sprintf("Move %d/%d", f.Cursor, f.Total)
}

// Header returns the header line: the banner while one is set, otherwise
// the game name and players.
func (f *Frame) Header() string {
	if f.Banner != "" {
		return f.Banner
	}
	return fmt.Sprintf("%s │ %s vs %s", f.Title, f.Black, f.White)
}

// IsLast reports whether the view cell (row, col) shows the last move.
func (f *Frame) IsLast(row, col int) bool {
	if f.Last == nil {
		return false
	}
	r, c := f.View.BoardCoord(row, col)
	return r == f.Last.Row && c == f.Last.Col
}
