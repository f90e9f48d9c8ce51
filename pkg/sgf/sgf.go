// Package sgf reads the flat subset of the Smart Game Format used by the
// replay viewer: a single line of nodes, root properties and B/W moves.
package sgf

import (
	"fmt"
	"strconv"
)

// MaxBoardSize bounds both decoded coordinates and the SZ property.
const MaxBoardSize = 19

type Stone int8

const (
	Empty Stone = iota
	Black
	White
)

func (s Stone) String() string {
	switch s {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

// Point is a zero-based board coordinate as written in a record: column
// first, then row.
type Point struct {
	Col, Row int
}

func (p Point) String() string {
	return fmt.Sprintf("%c%d", 'A'+p.Col, p.Row+1)
}

// Move is a single B or W property. Pos is nil for a pass.
type Move struct {
	Color   Stone
	Pos     *Point
	Comment string
}

func (m Move) Pass() bool {
	return m.Pos == nil
}

// String returns a short label such as "B D4" or "W pass".
func (m Move) String() string {
	c := "B"
	if m.Color == White {
		c = "W"
	}
	if m.Pos == nil {
		return c + " pass"
	}
	return c + " " + m.Pos.String()
}

// GameRecord is a parsed record. Properties holds the root node only.
type GameRecord struct {
	Properties map[string][]string
	Moves      []Move
}

// Property returns the first value stored for key.
func (g *GameRecord) Property(key string) (string, bool) {
	return firstValue(g.Properties, key)
}

// BoardSize reads SZ. Missing, unparsable or out of range values give def.
func (g *GameRecord) BoardSize(def int) int {
	v, ok := g.Property("SZ")
	if !ok {
		return def
	}
	size, err := strconv.Atoi(v)
	if err != nil || size < 1 || size > MaxBoardSize {
		return def
	}
	return size
}

func firstValue(props map[string][]string, key string) (string, bool) {
	values, ok := props[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
