package gui

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/sgfterm/pkg/sgf"
)

const (
	// Every intersection takes two columns: the point and the line to its right
	cellWidth = 2

	StoneRune = '●'
	HoshiRune = '◦'

	HelpText = "←→ Step │ Space Play/Pause │ L Loop │ r/R Rotate │ +/- Speed │ n Next │ q Quit"
)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// centered returns the x at which text of n runes is centered in width
func centered(x, width, n int) int {
	if n >= width {
		return x
	}
	return x + (width-n)/2
}

// BoardSize returns the screen width and height taken by a board of size
// intersections.
func BoardSize(size int) (int, int) {
	return size*cellWidth - 1, size
}

// gridRune returns the box-drawing rune for an empty intersection
func gridRune(row, col, size int) rune {
	top, bottom := row == 0, row == size-1
	left, right := col == 0, col == size-1

	switch {
	case size == 1:
		return '┼'
	case top && left:
		return '┌'
	case top && right:
		return '┐'
	case bottom && left:
		return '└'
	case bottom && right:
		return '┘'
	case top:
		return '┬'
	case bottom:
		return '┴'
	case left:
		return '├'
	case right:
		return '┤'
	default:
		return '┼'
	}
}

// isHoshi reports whether (row, col) is a star point. Star points are
// symmetric under rotation, so view and board coordinates agree.
func isHoshi(row, col, size int) bool {
	var lines []int
	switch size {
	case 9:
		lines = []int{2, 4, 6}
	case 13:
		lines = []int{3, 6, 9}
	case 19:
		lines = []int{3, 9, 15}
	default:
		return false
	}

	onLine := func(v int) bool {
		for _, l := range lines {
			if v == l {
				return true
			}
		}
		return false
	}
	if !onLine(row) || !onLine(col) {
		return false
	}
	// 9 and 13 only mark the corners and the center
	if size != 19 {
		mid := lines[1]
		return (row == mid) == (col == mid)
	}
	return true
}

// pointRune returns the rune and style of one intersection
func pointRune(stone sgf.Stone, row, col, size int, last bool, t Theme) (rune, tcell.Style) {
	bg := t.BoardBg
	if last {
		bg = t.LastMove
	}
	style := tcell.StyleDefault.Background(bg)

	switch stone {
	case sgf.Black:
		return StoneRune, style.Foreground(t.Black)
	case sgf.White:
		return StoneRune, style.Foreground(t.White)
	}
	if isHoshi(row, col, size) {
		return HoshiRune, style.Foreground(t.Hoshi)
	}
	return gridRune(row, col, size), style.Foreground(t.Line)
}

// DrawBoard draws the rotated board with its top left corner at (x, y)
// and returns the area it used.
func DrawBoard(s tcell.Screen, x, y int, f *Frame, t Theme) (int, int) {
	size := f.View.Size()
	lineStyle := tcell.StyleDefault.Background(t.BoardBg).Foreground(t.Line)

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			r, style := pointRune(f.View.Get(row, col), row, col, size, f.IsLast(row, col), t)
			drawRune(s, x+col*cellWidth, y+row, style, r)
			if col < size-1 {
				drawRune(s, x+col*cellWidth+1, y+row, lineStyle, '─')
			}
		}
	}
	return BoardSize(size)
}

// DrawHeader draws the game name and players, or the banner, centered in
// width.
func DrawHeader(s tcell.Screen, x, y, width int, f *Frame, t Theme) {
	titleStyle := tcell.StyleDefault.Foreground(t.Title).Bold(true)
	if f.Banner != "" {
		drawText(s, centered(x, width, utf8.RuneCountInString(f.Banner)), y, titleStyle, f.Banner)
		return
	}

	sepStyle := tcell.StyleDefault.Foreground(t.Help)
	playerStyle := tcell.StyleDefault.Foreground(t.Players)

	col := centered(x, width, utf8.RuneCountInString(f.Header()))
	col = drawText(s, col, y, titleStyle, f.Title)
	col = drawText(s, col, y, sepStyle, " │ ")
	col = drawText(s, col, y, playerStyle, f.Black)
	col = drawText(s, col, y, sepStyle, " vs ")
	drawText(s, col, y, playerStyle, f.White)
}

// DrawStatus draws the move counter, last move, playback state and key
// help on one line.
func DrawStatus(s tcell.Screen, x, y, width int, f *Frame, t Theme) {
	sepStyle := tcell.StyleDefault.Foreground(t.Help)

	play, playStyle := "▶ Play", tcell.StyleDefault.Foreground(t.Play)
	if !f.Playing {
		play, playStyle = "‖ Pause", tcell.StyleDefault.Foreground(t.Pause)
	}
	loop, loopStyle := "↻ Loop", tcell.StyleDefault.Foreground(t.Loop)
	if !f.Looping {
		loop, loopStyle = "→ Once", sepStyle
	}

	parts := []struct {
		text  string
		style tcell.Style
	}{
		{f.Counter(), tcell.StyleDefault.Foreground(t.Counter)},
		{f.Label, tcell.StyleDefault.Foreground(t.Players)},
		{play, playStyle},
		{loop, loopStyle},
		{fmt.Sprintf("x%d", f.Speed), tcell.StyleDefault.Foreground(t.Counter)},
		{HelpText, sepStyle},
	}

	var n int
	for _, p := range parts {
		if p.text != "" {
			n += utf8.RuneCountInString(p.text) + 3
		}
	}

	col := centered(x, width, n-3)
	first := true
	for _, p := range parts {
		if p.text == "" {
			continue
		}
		if !first {
			col = drawText(s, col, y, sepStyle, " │ ")
		}
		first = false
		col = drawText(s, col, y, p.style, p.text)
	}
}
