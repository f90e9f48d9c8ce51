package pkg

import (
	"github.com/gdamore/tcell/v2"
)

type Action int

const (
	ActionUnknown Action = iota
	ActionRetreat
	ActionAdvance
	ActionStart
	ActionEnd
	ActionTogglePlay
	ActionToggleLoop
	ActionRotateCW
	ActionRotateCCW
	ActionFaster
	ActionSlower
	ActionNextGame
	ActionReload
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionRetreat:
		return "Retreat"
	case ActionAdvance:
		return "Advance"
	case ActionStart:
		return "Start"
	case ActionEnd:
		return "End"
	case ActionTogglePlay:
		return "Play/Pause"
	case ActionToggleLoop:
		return "Loop"
	case ActionRotateCW:
		return "Rotate"
	case ActionRotateCCW:
		return "Rotate back"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionNextGame:
		return "Next game"
	case ActionReload:
		return "Reload"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

type Keybinding struct {
	k tcell.Key
	r rune

	a Action
}

var Keybindings = []*Keybinding{
	{k: tcell.KeyLeft, a: ActionRetreat},
	{r: 'h', a: ActionRetreat},
	{k: tcell.KeyRight, a: ActionAdvance},
	{r: 'l', a: ActionAdvance},
	{k: tcell.KeyHome, a: ActionStart},
	{r: 'g', a: ActionStart},
	{k: tcell.KeyEnd, a: ActionEnd},
	{r: 'G', a: ActionEnd},
	{r: ' ', a: ActionTogglePlay},
	{r: 'L', a: ActionToggleLoop},
	{r: 'r', a: ActionRotateCW},
	{r: 'R', a: ActionRotateCCW},
	{r: '+', a: ActionFaster},
	{r: '=', a: ActionFaster},
	{r: '-', a: ActionSlower},
	{r: 'n', a: ActionNextGame},
	{k: tcell.KeyCtrlR, a: ActionReload},
	{r: 'q', a: ActionQuit},
	{r: 'Q', a: ActionQuit},
	{k: tcell.KeyEscape, a: ActionQuit},
}

// ActionFor returns the action bound to ev, or ActionUnknown.
func ActionFor(ev *tcell.EventKey) Action {
	k := ev.Key()
	r := ev.Rune()

	for _, bind := range Keybindings {
		if bind.k != 0 && bind.k != k {
			continue
		}
		if bind.r != 0 && (k != tcell.KeyRune || bind.r != r) {
			continue
		}
		return bind.a
	}
	return ActionUnknown
}
