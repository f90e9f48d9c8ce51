package sgf

import (
	"errors"
	"strings"
)

// ErrInvalidFormat is matched by every error returned from Parse.
var ErrInvalidFormat = errors.New("invalid format")

type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "sgf: invalid format: " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidFormat
}

// Parse reads a record. Variations are not modelled: every node is read in
// the order it appears and all B/W properties become one move list. Only
// the properties of the first node are kept.
//
// Coordinates that are malformed or outside the 19x19 range are read as a
// pass rather than reported.
func Parse(input string) (*GameRecord, error) {
	input = strings.TrimSpace(input)

	if !strings.HasPrefix(input, "(") || !strings.HasSuffix(input, ")") {
		return nil, &ParseError{Reason: "Missing outer parentheses"}
	}

	content := input[1 : len(input)-1]
	if !strings.HasPrefix(content, ";") {
		return nil, &ParseError{Reason: "Missing initial semicolon"}
	}

	g := &GameRecord{
		Properties: make(map[string][]string),
		Moves:      make([]Move, 0),
	}

	idx := 0
	for _, node := range strings.Split(content, ";") {
		if node == "" {
			continue
		}
		parseNode(g, node, idx == 0)
		idx++
	}

	return g, nil
}

func parseNode(g *GameRecord, node string, root bool) {
	i := 0
	for i < len(node) {
		if !isUpper(node[i]) {
			i++
			continue
		}

		start := i
		for i < len(node) && isUpper(node[i]) {
			i++
		}
		key := node[start:i]

		var values []string
		for i < len(node) && node[i] == '[' {
			end := strings.IndexByte(node[i+1:], ']')
			if end == -1 {
				// Unterminated value runs to the end of the node
				values = append(values, node[i+1:])
				i = len(node)
				break
			}
			values = append(values, node[i+1:i+1+end])
			i += end + 2
		}

		if len(values) == 0 {
			continue
		}

		switch key {
		case "B":
			g.Moves = append(g.Moves, Move{Color: Black, Pos: decodePoint(values[0])})
		case "W":
			g.Moves = append(g.Moves, Move{Color: White, Pos: decodePoint(values[0])})
		default:
			if root {
				g.Properties[key] = values
			}
		}
	}
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// decodePoint maps "dd" to column 3, row 3. Anything it cannot place on a
// 19x19 board is a pass.
func decodePoint(s string) *Point {
	if len(s) != 2 {
		return nil
	}

	col := int(s[0]) - 'a'
	row := int(s[1]) - 'a'
	if col < 0 || col >= MaxBoardSize || row < 0 || row >= MaxBoardSize {
		return nil
	}

	return &Point{Col: col, Row: row}
}
