package types

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeQuery
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	HasMarks() bool
	VisualActive() bool
	HelpVisible() bool
	CurrentQuery() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}

// Key is a key press reduced to its name and modifier flags
type Key struct {
	Name string // "j", "G", " ", "enter", "esc", "up"
	Ctrl bool
	Alt  bool
}

// KeyFromMsg translates a bubbletea key message. Terminals deliver
// Ctrl+I as Tab, so Tab is reported as ctrl+i.
func KeyFromMsg(msg tea.KeyMsg) Key {
	if msg.Type == tea.KeyTab {
		return Key{Name: "i", Ctrl: true, Alt: msg.Alt}
	}

	s := msg.String()
	k := Key{Alt: msg.Alt}
	s = strings.TrimPrefix(s, "alt+")
	if rest, ok := strings.CutPrefix(s, "ctrl+"); ok && rest != "" {
		k.Ctrl = true
		s = rest
	}
	k.Name = s
	return k
}

// String renders the key the way bubbletea does
func (k Key) String() string {
	s := k.Name
	if k.Ctrl {
		s = "ctrl+" + s
	}
	if k.Alt {
		s = "alt+" + s
	}
	return s
}
