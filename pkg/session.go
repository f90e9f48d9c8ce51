package pkg

import (
	"fmt"

	"github.com/qnkhuat/sgfterm/pkg/config"
	"github.com/qnkhuat/sgfterm/pkg/game"
	"github.com/qnkhuat/sgfterm/pkg/gui"
	"github.com/qnkhuat/sgfterm/pkg/playlist"
	"github.com/qnkhuat/sgfterm/pkg/sgf"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Session is the record being replayed and the playlist it came from.
type Session struct {
	fs       afero.Fs
	cfg      *config.Config
	log      *zap.SugaredLogger
	playlist *playlist.Playlist
	record   *sgf.GameRecord
	state    *game.State
}

// NewSession loads the first entry of the playlist at cfg.Path that parses.
func NewSession(fs afero.Fs, cfg *config.Config, log *zap.SugaredLogger) (*Session, error) {
	pl, err := playlist.New(fs, cfg.Path)
	if err != nil {
		return nil, err
	}

	s := &Session{
		fs:       fs,
		cfg:      cfg,
		log:      log,
		playlist: pl,
	}

	for {
		err := s.load(pl.Current())
		if err == nil {
			return s, nil
		}
		log.Warnw("skipping record", "path", pl.Current(), "error", err)
		if !pl.Next() {
			return nil, err
		}
	}
}

func (s *Session) load(path string) error {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	rec, err := sgf.Parse(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// The loop flag belongs to the viewer, not to a record
	looping := s.cfg.Loop
	if s.state != nil {
		looping = s.state.Looping()
	}

	s.record = rec
	s.state = game.FromRecord(rec, s.cfg.BoardSize, looping)
	s.log.Infow("loaded record",
		"path", path,
		"moves", s.state.Len(),
		"size", s.state.Board().Size(),
	)
	return nil
}

func (s *Session) State() *game.State {
	return s.state
}

func (s *Session) Record() *sgf.GameRecord {
	return s.record
}

func (s *Session) Playlist() *playlist.Playlist {
	return s.playlist
}

func (s *Session) Path() string {
	return s.playlist.Current()
}

func (s *Session) Title() string {
	return gui.Property(s.state, "GN", gui.DefaultTitle)
}

// NextGame loads the next playlist entry that parses, wrapping to the
// first entry when looping. Entries that fail are logged and skipped. It
// reports false when no other entry could be loaded, leaving the current
// game in place.
func (s *Session) NextGame() (bool, error) {
	n := s.playlist.Len()
	from := s.playlist.Index()

	var lastErr error
	for step := 1; step < n; step++ {
		i := from + step
		if i >= n {
			if !s.state.Looping() {
				break
			}
			i -= n
		}

		path := s.playlist.Files()[i]
		if err := s.load(path); err != nil {
			s.log.Warnw("skipping record", "path", path, "error", err)
			lastErr = err
			continue
		}
		s.playlist.Select(i)
		return true, nil
	}
	return false, lastErr
}

// Reload reads the current entry again and returns to the same move, or to
// the end if the record got shorter.
func (s *Session) Reload() error {
	cursor := s.state.Cursor()
	if err := s.load(s.playlist.Current()); err != nil {
		return err
	}
	s.state.Seek(cursor)
	return nil
}
