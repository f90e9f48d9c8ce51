package pkg

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/sgfterm/pkg/config"
	"github.com/qnkhuat/sgfterm/pkg/gui"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func testViewer(t *testing.T, s *Session, cfg *config.Config) (*Viewer, *time.Time) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	v := NewViewer(s, cfg, gui.ThemeBasic, zap.NewNop().Sugar())
	v.now = func() time.Time { return now }
	v.redraw = func() {}
	return v, &now
}

func TestViewerNavigation(t *testing.T) {
	s, _ := testSession(t)
	v, _ := testViewer(t, s, testConfig("games"))
	st := s.State()

	v.Handle(ActionAdvance)
	v.Handle(ActionAdvance)
	if st.Cursor() != 2 {
		t.Errorf("expected cursor 2, got %d", st.Cursor())
	}
	v.Handle(ActionRetreat)
	if st.Cursor() != 1 {
		t.Errorf("expected cursor 1, got %d", st.Cursor())
	}
	v.Handle(ActionEnd)
	if !st.AtEnd() {
		t.Error("expected cursor at the end")
	}
	v.Handle(ActionStart)
	if st.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", st.Cursor())
	}

	if !v.Frame().Playing {
		t.Error("expected manual steps to leave autoplay running")
	}
}

func TestViewerToggles(t *testing.T) {
	s, _ := testSession(t)
	cfg := testConfig("games")
	cfg.AutoPlay = false
	cfg.Rotation = -1
	v, _ := testViewer(t, s, cfg)

	f := v.Frame()
	if f.Playing || f.View.Rotation() != 3 {
		t.Errorf("expected paused at rotation 3, got %v %d", f.Playing, f.View.Rotation())
	}

	v.Handle(ActionTogglePlay)
	v.Handle(ActionToggleLoop)
	v.Handle(ActionRotateCW)
	v.Handle(ActionRotateCW)
	f = v.Frame()
	if !f.Playing || f.Looping || f.View.Rotation() != 1 {
		t.Errorf("unexpected frame: playing %v looping %v rotation %d", f.Playing, f.Looping, f.View.Rotation())
	}
	v.Handle(ActionRotateCCW)
	if v.Frame().View.Rotation() != 0 {
		t.Errorf("expected rotation 0, got %d", v.Frame().View.Rotation())
	}

	for i := 0; i < 20; i++ {
		v.Handle(ActionFaster)
	}
	if v.Frame().Speed != config.MaxSpeed {
		t.Errorf("expected speed %d, got %d", config.MaxSpeed, v.Frame().Speed)
	}
	v.Handle(ActionSlower)
	if v.Frame().Speed != config.MaxSpeed-1 {
		t.Errorf("expected speed %d, got %d", config.MaxSpeed-1, v.Frame().Speed)
	}
}

func TestViewerAutoplaySingle(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeGames(t, fs, map[string]string{"only.sgf": "(;B[aa];W[bb])"})
	cfg := testConfig(filepath.Join("games", "only.sgf"))
	s, err := NewSession(fs, cfg, zap.NewNop().Sugar())
	if err != nil {
		t.Fatal(err)
	}
	v, _ := testViewer(t, s, cfg)

	st := s.State()
	v.step()
	v.step()
	if !st.AtEnd() {
		t.Fatalf("expected end after two steps, got %d", st.Cursor())
	}

	v.step()
	if st.Cursor() != 0 || !v.Frame().Playing {
		t.Errorf("expected wrap to start while looping, got %d", st.Cursor())
	}

	st.SetLooping(false)
	st.JumpToEnd()
	v.step()
	if v.Frame().Playing {
		t.Error("expected autoplay to pause at the end without loop")
	}
	if !st.AtEnd() {
		t.Error("expected position to stay at the end")
	}
}

func TestViewerAutoplayPlaylist(t *testing.T) {
	s, _ := testSession(t)
	v, now := testViewer(t, s, testConfig("games"))

	s.State().JumpToEnd()
	v.step()
	if s.Title() != "Third" {
		t.Fatalf("expected next game, got %s", s.Title())
	}
	if got := v.Frame().Banner; got != "First → Third" {
		t.Errorf("unexpected banner %q", got)
	}

	v.step()
	if s.State().Cursor() != 0 {
		t.Error("expected no steps during the transition")
	}

	*now = now.Add(TransitionDuration)
	if v.Frame().Banner != "" {
		t.Error("expected banner to clear after the transition")
	}
	v.step()
	if s.State().Cursor() != 1 {
		t.Errorf("expected playback to resume, got %d", s.State().Cursor())
	}

	v.Handle(ActionNextGame)
	if s.Title() != "First" || v.Frame().Banner != "Third → First" {
		t.Errorf("expected manual next game to wrap, got %s %q", s.Title(), v.Frame().Banner)
	}
}

func TestViewerDraw(t *testing.T) {
	s, _ := testSession(t)
	v, _ := testViewer(t, s, testConfig("games"))
	v.Handle(ActionAdvance)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(120, 16)

	v.Layout.SetRect(0, 0, 120, 16)
	v.Layout.Draw(screen)

	row := func(y int) string {
		var b strings.Builder
		for x := 0; x < 120; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			b.WriteRune(r)
		}
		return b.String()
	}

	if got := row(0); !strings.Contains(got, "First │ Lee vs AlphaGo") {
		t.Errorf("unexpected header %q", got)
	}
	if got := row(15); !strings.Contains(got, "Move 1/2") || !strings.Contains(got, "Black A1") {
		t.Errorf("unexpected status %q", got)
	}

	var board string
	for y := 2; y < 15; y++ {
		board += row(y) + "\n"
	}
	if !strings.Contains(board, "●─┬─┬") {
		t.Errorf("expected a stone in the top left corner:\n%s", board)
	}
}
