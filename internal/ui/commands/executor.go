package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"serpnav/internal/eventbus"
	"serpnav/internal/platform"
	"serpnav/internal/ui/services/export"
	"serpnav/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus, clip platform.Clipboard, browser platform.Browser) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:     state,
			Bus:       bus,
			Clipboard: clip,
			Browser:   browser,
		},
	}
}

// ExecuteCopy creates and executes a copy command
func (e *Executor) ExecuteCopy(req export.Request) tea.Cmd {
	cmd := NewCopyCommand(e.ctx, req)
	return cmd.Execute()
}

// ExecuteOpen creates and executes an open command
func (e *Executor) ExecuteOpen(refs []string, newContext bool) tea.Cmd {
	cmd := NewOpenCommand(e.ctx, refs, newContext)
	return cmd.Execute()
}

// ExecuteRequestPage creates and executes a page request command
func (e *Executor) ExecuteRequestPage(query string, number int) tea.Cmd {
	cmd := NewRequestPageCommand(e.ctx, query, number)
	return cmd.Execute()
}
