package gui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/qnkhuat/sgfterm/pkg/sgf"
)

const (
	PlainBlack = '●'
	PlainWhite = '○'
)

var (
	titleColor   = color.New(color.FgYellow, color.Bold)
	lineColor    = color.New(color.FgHiBlack)
	blackColor   = color.New(color.FgBlue, color.Bold)
	whiteColor   = color.New(color.FgHiWhite, color.Bold)
	lastColor    = color.New(color.FgRed, color.Bold)
	counterColor = color.New(color.FgCyan)
)

// Fprint writes the header, the board and the move counter of f to w
// without a terminal UI. Colors follow color.NoColor, which fatih/color sets
// from whether stdout is a terminal; w itself is never inspected.
func Fprint(w io.Writer, f *Frame) error {
	if _, err := titleColor.Fprintln(w, f.Header()); err != nil {
		return err
	}

	size := f.View.Size()
	for row := 0; row < size; row++ {
		var line strings.Builder
		for col := 0; col < size; col++ {
			line.WriteString(plainPoint(f, row, col, size))
			if col < size-1 {
				line.WriteString(lineColor.Sprint("─"))
			}
		}
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}

	status := f.Counter()
	if f.Label != "" {
		status += " │ " + f.Label
	}
	_, err := counterColor.Fprintln(w, status)
	return err
}

func plainPoint(f *Frame, row, col, size int) string {
	var (
		r rune
		c *color.Color
	)
	switch f.View.Get(row, col) {
	case sgf.Black:
		r, c = PlainBlack, blackColor
	case sgf.White:
		r, c = PlainWhite, whiteColor
	default:
		r, c = gridRune(row, col, size), lineColor
		if isHoshi(row, col, size) {
			r = HoshiRune
		}
	}
	if f.IsLast(row, col) {
		c = lastColor
	}
	return c.Sprint(string(r))
}
