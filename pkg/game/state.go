// Package game replays a parsed record on a board.
package game

import (
	"github.com/qnkhuat/sgfterm/pkg/sgf"
)

// State walks a move list with a cursor. Cursor 0 is the empty board and
// cursor Len() has every move applied. The board always equals the first
// Cursor() moves applied in order to an empty board.
//
// State is not safe for concurrent use. The viewer mutates it from the UI
// goroutine only.
type State struct {
	board      *Board
	moves      []sgf.Move
	properties map[string][]string
	cursor     int
	looping    bool
}

func New(size int, moves []sgf.Move, looping bool) *State {
	return &State{
		board:      NewBoard(size),
		moves:      moves,
		properties: make(map[string][]string),
		looping:    looping,
	}
}

// FromRecord sizes the board from SZ, falling back to defaultSize.
func FromRecord(rec *sgf.GameRecord, defaultSize int, looping bool) *State {
	s := New(rec.BoardSize(defaultSize), rec.Moves, looping)
	if rec.Properties != nil {
		s.properties = rec.Properties
	}
	return s
}

func (s *State) Board() *Board {
	return s.board
}

func (s *State) Moves() []sgf.Move {
	return s.moves
}

func (s *State) Cursor() int {
	return s.cursor
}

func (s *State) Len() int {
	return len(s.moves)
}

func (s *State) AtEnd() bool {
	return s.cursor == len(s.moves)
}

// LastMove returns the move that produced the current position.
func (s *State) LastMove() (sgf.Move, bool) {
	if s.cursor == 0 {
		return sgf.Move{}, false
	}
	return s.moves[s.cursor-1], true
}

func (s *State) Property(key string) (string, bool) {
	values, ok := s.properties[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func (s *State) Looping() bool {
	return s.looping
}

func (s *State) SetLooping(enabled bool) {
	s.looping = enabled
}

func (s *State) ToggleLooping() {
	s.looping = !s.looping
}

// Advance applies the next move. At the end it wraps to the empty board
// when looping is enabled and reports true, otherwise it reports false and
// changes nothing.
func (s *State) Advance() bool {
	if s.cursor >= len(s.moves) {
		if !s.looping {
			return false
		}
		s.JumpToStart()
		return true
	}

	s.apply(s.moves[s.cursor])
	s.cursor++
	return true
}

// Retreat steps back one move by replaying the record from the start.
func (s *State) Retreat() bool {
	if s.cursor == 0 {
		return false
	}

	s.Seek(s.cursor - 1)
	return true
}

func (s *State) JumpToStart() {
	s.cursor = 0
	s.board.Reset()
}

// JumpToEnd applies every move without going through Advance, so the loop
// rule never fires.
func (s *State) JumpToEnd() {
	s.Seek(len(s.moves))
}

// Seek rebuilds the board at cursor k, clamped to [0, Len()].
func (s *State) Seek(k int) {
	if k < 0 {
		k = 0
	} else if k > len(s.moves) {
		k = len(s.moves)
	}

	s.board.Reset()
	for i := 0; i < k; i++ {
		s.apply(s.moves[i])
	}
	s.cursor = k
}

// apply places a stone. Passes and points beyond a small board leave the
// board untouched.
func (s *State) apply(m sgf.Move) {
	if m.Pos == nil || !s.board.Contains(*m.Pos) {
		return
	}
	s.board.Set(m.Pos.Row, m.Pos.Col, m.Color)
}
