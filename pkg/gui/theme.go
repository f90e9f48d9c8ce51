package gui

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/afero"
)

var ErrThemeNotFound = errors.New("theme: no theme found")

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name     string      `json:"name"`
	BoardBg  tcell.Color `json:"boardBg"`
	Line     tcell.Color `json:"line"`
	Hoshi    tcell.Color `json:"hoshi"`
	Black    tcell.Color `json:"black"`
	White    tcell.Color `json:"white"`
	LastMove tcell.Color `json:"lastMove"`
	Title    tcell.Color `json:"title"`
	Players  tcell.Color `json:"players"`
	Counter  tcell.Color `json:"counter"`
	Loop     tcell.Color `json:"loop"`
	Play     tcell.Color `json:"play"`
	Pause    tcell.Color `json:"pause"`
	Help     tcell.Color `json:"help"`
}

// ThemeHex is the form a Theme takes in a theme file
type ThemeHex struct {
	Name     string `json:"name"`
	BoardBg  string `json:"boardBg"`
	Line     string `json:"line"`
	Hoshi    string `json:"hoshi"`
	Black    string `json:"black"`
	White    string `json:"white"`
	LastMove string `json:"lastMove"`
	Title    string `json:"title"`
	Players  string `json:"players"`
	Counter  string `json:"counter"`
	Loop     string `json:"loop"`
	Play     string `json:"play"`
	Pause    string `json:"pause"`
	Help     string `json:"help"`
}

// fmtHex returns "#0" for ColorDefault so that it survives a round trip
// through a theme file instead of turning into black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		Name:     t.Name,
		BoardBg:  fmtHex(t.BoardBg.Hex()),
		Line:     fmtHex(t.Line.Hex()),
		Hoshi:    fmtHex(t.Hoshi.Hex()),
		Black:    fmtHex(t.Black.Hex()),
		White:    fmtHex(t.White.Hex()),
		LastMove: fmtHex(t.LastMove.Hex()),
		Title:    fmtHex(t.Title.Hex()),
		Players:  fmtHex(t.Players.Hex()),
		Counter:  fmtHex(t.Counter.Hex()),
		Loop:     fmtHex(t.Loop.Hex()),
		Play:     fmtHex(t.Play.Hex()),
		Pause:    fmtHex(t.Pause.Hex()),
		Help:     fmtHex(t.Help.Hex()),
	}
}

func (t ThemeHex) Theme() Theme {
	return Theme{
		Name:     t.Name,
		BoardBg:  tcell.GetColor(t.BoardBg),
		Line:     tcell.GetColor(t.Line),
		Hoshi:    tcell.GetColor(t.Hoshi),
		Black:    tcell.GetColor(t.Black),
		White:    tcell.GetColor(t.White),
		LastMove: tcell.GetColor(t.LastMove),
		Title:    tcell.GetColor(t.Title),
		Players:  tcell.GetColor(t.Players),
		Counter:  tcell.GetColor(t.Counter),
		Loop:     tcell.GetColor(t.Loop),
		Play:     tcell.GetColor(t.Play),
		Pause:    tcell.GetColor(t.Pause),
		Help:     tcell.GetColor(t.Help),
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %s", ErrThemeNotFound, want)
}

// LoadThemes reads a JSON array of ThemeHex from path.
func LoadThemes(fs afero.Fs, path string) ([]ThemeHex, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes %s: %w", path, err)
	}

	var themes []ThemeHex
	if err := json.Unmarshal(data, &themes); err != nil {
		return nil, fmt.Errorf("failed to decode themes %s: %w", path, err)
	}
	return themes, nil
}

// SelectTheme looks want up in custom first, then in the built-in themes.
func SelectTheme(want string, custom []ThemeHex) (Theme, error) {
	if t, err := ImportThemes(want, custom); err == nil {
		return t, nil
	}
	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %s", ErrThemeNotFound, want)
}

// ThemeBasic is the default theme, a tan board with dark lines
var ThemeBasic = Theme{
	Name:     "basic",
	BoardBg:  tcell.NewRGBColor(210, 180, 140),
	Line:     tcell.NewRGBColor(90, 70, 45),
	Hoshi:    tcell.NewRGBColor(60, 45, 30),
	Black:    tcell.NewRGBColor(0, 0, 0),
	White:    tcell.NewRGBColor(255, 255, 255),
	LastMove: tcell.NewRGBColor(230, 90, 70),
	Title:    tcell.NewRGBColor(255, 190, 140),
	Players:  tcell.NewRGBColor(255, 255, 255),
	Counter:  tcell.NewRGBColor(0, 205, 205),
	Loop:     tcell.NewRGBColor(205, 0, 205),
	Play:     tcell.NewRGBColor(0, 205, 0),
	Pause:    tcell.NewRGBColor(205, 205, 0),
	Help:     tcell.NewRGBColor(128, 128, 128),
}

var ThemeDark = Theme{
	Name:     "dark",
	BoardBg:  tcell.ColorDefault,
	Line:     tcell.NewRGBColor(100, 100, 100),
	Hoshi:    tcell.NewRGBColor(160, 160, 160),
	Black:    tcell.NewRGBColor(90, 140, 230),
	White:    tcell.NewRGBColor(240, 240, 240),
	LastMove: tcell.NewRGBColor(150, 40, 40),
	Title:    tcell.NewRGBColor(255, 190, 140),
	Players:  tcell.ColorDefault,
	Counter:  tcell.NewRGBColor(0, 205, 205),
	Loop:     tcell.NewRGBColor(205, 0, 205),
	Play:     tcell.NewRGBColor(0, 205, 0),
	Pause:    tcell.NewRGBColor(205, 205, 0),
	Help:     tcell.NewRGBColor(100, 100, 100),
}

var Themes = []Theme{ThemeBasic, ThemeDark}
