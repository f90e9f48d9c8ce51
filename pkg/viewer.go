package pkg

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/sgfterm/pkg/config"
	"github.com/qnkhuat/sgfterm/pkg/gui"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// TransitionDuration is how long the "from → to" banner stays up when the
// viewer moves on to the next game.
const TransitionDuration = 2 * time.Second

type Viewer struct {
	App    *tview.Application
	Layout *tview.Grid

	session  *Session
	clock    *Clock
	theme    gui.Theme
	log      *zap.SugaredLogger
	rotation int

	banner      string
	bannerUntil time.Time

	now    func() time.Time
	redraw func()
}

func NewViewer(sess *Session, cfg *config.Config, theme gui.Theme, log *zap.SugaredLogger) *Viewer {
	app := tview.NewApplication()

	v := &Viewer{
		App:      app,
		session:  sess,
		theme:    theme,
		log:      log,
		rotation: ((cfg.Rotation % 4) + 4) % 4,
		now:      time.Now,
	}
	v.redraw = func() {
		app.QueueUpdateDraw(func() {})
	}
	v.clock = NewClock(cfg.Interval, cfg.Speed, func() {
		app.QueueUpdateDraw(v.step)
	})
	if cfg.AutoPlay {
		v.clock.Resume()
	}

	header := tview.NewBox()
	header.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		f := v.Frame()
		gui.DrawHeader(screen, x, y, width, &f, v.theme)
		return x, y, width, height
	})

	board := tview.NewBox()
	board.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		f := v.Frame()
		w, h := gui.BoardSize(f.View.Size())
		left, top := x, y
		if width > w {
			left += (width - w) / 2
		}
		if height > h {
			top += (height - h) / 2
		}
		gui.DrawBoard(screen, left, top, &f, v.theme)
		return x, y, width, height
	})

	status := tview.NewBox()
	status.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		f := v.Frame()
		gui.DrawStatus(screen, x, y, width, &f, v.theme)
		return x, y, width, height
	})

	v.Layout = tview.NewGrid().
		SetRows(1, 1, -1, 1).
		SetColumns(-1).
		AddItem(header, 0, 0, 1, 1, 0, 0, false).
		AddItem(tview.NewBox(), 1, 0, 1, 1, 0, 0, false).
		AddItem(board, 2, 0, 1, 1, 0, 0, true).
		AddItem(status, 3, 0, 1, 1, 0, 0, false)

	app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		a := ActionFor(ev)
		if a == ActionUnknown {
			return ev
		}
		v.Handle(a)
		return nil
	})

	return v
}

// Run shows the viewer until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go v.clock.Run(ctx)
	go func() {
		<-ctx.Done()
		v.App.Stop()
	}()

	return v.App.SetRoot(v.Layout, true).Run()
}

// Frame describes what to draw right now.
func (v *Viewer) Frame() gui.Frame {
	f := gui.NewFrame(v.session.State(), v.rotation)
	f.Playing = !v.clock.Paused()
	f.Speed = v.clock.Speed()
	if v.transitioning() {
		f.Banner = v.banner
	}
	return f
}

func (v *Viewer) transitioning() bool {
	return v.banner != "" && v.now().Before(v.bannerUntil)
}

// Handle applies a user action. It must run on the UI goroutine.
func (v *Viewer) Handle(a Action) {
	st := v.session.State()

	switch a {
	case ActionRetreat:
		st.Retreat()
	case ActionAdvance:
		st.Advance()
	case ActionStart:
		st.JumpToStart()
	case ActionEnd:
		st.JumpToEnd()
	case ActionTogglePlay:
		v.clock.Toggle()
	case ActionToggleLoop:
		st.ToggleLooping()
	case ActionRotateCW:
		v.rotation = (v.rotation + 1) % 4
	case ActionRotateCCW:
		v.rotation = (v.rotation + 3) % 4
	case ActionFaster:
		v.clock.SetSpeed(v.clock.Speed() + 1)
	case ActionSlower:
		v.clock.SetSpeed(v.clock.Speed() - 1)
	case ActionNextGame:
		v.nextGame()
	case ActionReload:
		if err := v.session.Reload(); err != nil {
			v.log.Warnw("failed to reload", "path", v.session.Path(), "error", err)
		}
	case ActionQuit:
		v.App.Stop()
	}
}

// step is one autoplay tick. It must run on the UI goroutine.
func (v *Viewer) step() {
	if v.transitioning() {
		return
	}

	st := v.session.State()
	if st.AtEnd() && v.session.Playlist().Len() > 1 && v.nextGame() {
		return
	}
	if !st.Advance() {
		v.clock.Pause()
	}
}

func (v *Viewer) nextGame() bool {
	from := v.session.Title()
	ok, err := v.session.NextGame()
	if err != nil {
		v.log.Warnw("failed to load next game", "error", err)
	}
	if !ok {
		return false
	}

	v.banner = from + " → " + v.session.Title()
	v.bannerUntil = v.now().Add(TransitionDuration)
	v.log.Infow("next game", "path", v.session.Path(), "index", v.session.Playlist().Index())
	time.AfterFunc(TransitionDuration, v.redraw)
	return true
}
