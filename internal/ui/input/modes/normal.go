package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"serpnav/internal/ui/input/types"
	"serpnav/internal/ui/services/chord"
)

// NormalMode dispatches navigator keys. Precedence: history keys,
// modifier bypass, chord keys, the static table, activate, fallback.
type NormalMode struct {
	chords       *chord.Disambiguator
	table        map[string]types.Action
	chordActions map[string]types.Action
}

func NewNormalMode(chords *chord.Disambiguator) *NormalMode {
	return &NormalMode{
		chords: chords,
		table: map[string]types.Action{
			"j":    types.NavigateAction{Direction: "down"},
			"down": types.NavigateAction{Direction: "down"},
			"k":    types.NavigateAction{Direction: "up"},
			"up":   types.NavigateAction{Direction: "up"},
			"G":    types.NavigateAction{Direction: "end"},
			" ":    types.ToggleMarkAction{},
			"v":    types.ToggleVisualAction{},
			"c":    types.CopyAction{Markdown: false},
			"C":    types.CopyAction{Markdown: true},
			"esc":  types.EscapeAction{},
			"A":    types.MarkAllAction{},
			"D":    types.ClearMarksAction{},
			"o":    types.OpenMarkedAction{},
			"H":    types.PageAction{Delta: -1},
			"L":    types.PageAction{Delta: 1},
			"?":    types.ToggleHelpAction{},
		},
		chordActions: map[string]types.Action{
			"g": types.NavigateAction{Direction: "home"},
			"[": types.PageAction{Delta: -1},
			"]": types.PageAction{Delta: 1},
		},
	}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	m.chords.ResetAll()
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := types.KeyFromMsg(msg)

	// ctrl+o / ctrl+i walk the page history and leave pending chords alone
	if key.Ctrl && !key.Alt && (key.Name == "o" || key.Name == "i") {
		return []types.Action{types.HistoryAction{Forward: key.Name == "i"}}, true
	}

	// Other modifier combinations are left alone, except activate
	if (key.Ctrl || key.Alt) && key.Name != "enter" {
		if key.Ctrl && key.Name == "c" {
			return []types.Action{types.QuitAction{Force: true}}, true
		}
		return nil, false
	}

	if m.chords.Handles(key.Name) {
		if m.chords.Press(key.Name) {
			return []types.Action{m.chordActions[key.Name]}, true
		}
		return nil, true
	}

	if action, ok := m.table[key.Name]; ok {
		m.chords.ResetAll()
		return []types.Action{action}, true
	}

	if key.Name == "enter" {
		m.chords.ResetAll()
		return []types.Action{types.ActivateAction{NewContext: key.Ctrl || key.Alt}}, true
	}

	m.chords.ResetAll()
	switch key.Name {
	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery, Data: ctx.CurrentQuery()}}, true
	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
