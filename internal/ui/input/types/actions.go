package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type ToggleMarkAction struct{}

func (a ToggleMarkAction) Type() string { return "toggle_mark" }

type ToggleVisualAction struct{}

func (a ToggleVisualAction) Type() string { return "toggle_visual" }

type MarkAllAction struct{}

func (a MarkAllAction) Type() string { return "mark_all" }

type ClearMarksAction struct{}

func (a ClearMarksAction) Type() string { return "clear_marks" }

// EscapeAction exits visual mode, or closes the help overlay
type EscapeAction struct{}

func (a EscapeAction) Type() string { return "escape" }

// Export actions
type CopyAction struct {
	Markdown bool
}

func (a CopyAction) Type() string { return "copy" }

// Link actions
type OpenMarkedAction struct{}

func (a OpenMarkedAction) Type() string { return "open_marked" }

// ActivateAction opens the focused item, in place or in a new context
type ActivateAction struct {
	NewContext bool
}

func (a ActivateAction) Type() string { return "activate" }

// Page actions
type PageAction struct {
	Delta int // -1 previous, +1 next
}

func (a PageAction) Type() string { return "page" }

type HistoryAction struct {
	Forward bool
}

func (a HistoryAction) Type() string { return "history" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // Optional initial text for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
