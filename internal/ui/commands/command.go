package commands

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"serpnav/internal/eventbus"
	"serpnav/internal/platform"
	"serpnav/internal/ui/services/export"
	"serpnav/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State     *state.AppState
	Bus       eventbus.EventBus
	Clipboard platform.Clipboard
	Browser   platform.Browser
}

// ClipboardWrittenMsg reports the outcome of a clipboard write
type ClipboardWrittenMsg struct {
	Request export.Request
	ViewID  string
	Err     error
}

// OpenedMsg reports the outcome of opening one or more links
type OpenedMsg struct {
	Refs       []string
	NewContext bool
	Err        error
}

// CopyCommand writes an export to the clipboard off the update loop
type CopyCommand struct {
	ctx *CommandContext
	req export.Request
}

// NewCopyCommand creates a new copy command
func NewCopyCommand(ctx *CommandContext, req export.Request) *CopyCommand {
	return &CopyCommand{
		ctx: ctx,
		req: req,
	}
}

// Execute returns the clipboard write as a tea.Cmd
func (c *CopyCommand) Execute() tea.Cmd {
	if c.req.Text == "" || c.ctx.Clipboard == nil {
		return nil
	}
	req := c.req
	viewID := c.ctx.State.Page.ViewID
	clip := c.ctx.Clipboard
	return func() tea.Msg {
		err := clip.WriteClipboard(req.Text)
		return ClipboardWrittenMsg{Request: req, ViewID: viewID, Err: err}
	}
}

// OpenCommand opens links in place or in new contexts
type OpenCommand struct {
	ctx        *CommandContext
	refs       []string
	newContext bool
}

// NewOpenCommand creates a new open command
func NewOpenCommand(ctx *CommandContext, refs []string, newContext bool) *OpenCommand {
	return &OpenCommand{
		ctx:        ctx,
		refs:       refs,
		newContext: newContext,
	}
}

// Execute opens every link and reports the first failure
func (c *OpenCommand) Execute() tea.Cmd {
	if len(c.refs) == 0 || c.ctx.Browser == nil {
		return nil
	}
	refs := append([]string(nil), c.refs...)
	newContext := c.newContext
	browser := c.ctx.Browser
	return func() tea.Msg {
		var firstErr error
		for _, ref := range refs {
			var err error
			if newContext {
				err = browser.OpenInNewContext(ref)
			} else {
				err = browser.NavigateTo(ref)
			}
			if err != nil {
				log.Printf("Open: %s failed: %v", ref, err)
				if firstErr == nil {
					firstErr = err
				}
			}
		}
		return OpenedMsg{Refs: refs, NewContext: newContext, Err: firstErr}
	}
}

// RequestPageCommand asks the search service for a page
type RequestPageCommand struct {
	ctx    *CommandContext
	query  string
	number int
}

// NewRequestPageCommand creates a new page request command
func NewRequestPageCommand(ctx *CommandContext, query string, number int) *RequestPageCommand {
	return &RequestPageCommand{
		ctx:    ctx,
		query:  query,
		number: number,
	}
}

// Execute marks the state as loading and publishes the request
func (c *RequestPageCommand) Execute() tea.Cmd {
	if c.query == "" || c.number < 1 {
		return nil
	}
	c.ctx.State.RequestPage(c.query, c.number)
	c.ctx.State.LoadingState = fmt.Sprintf("Searching %q (page %d)...", c.query, c.number)
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.PageRequestedEvent{
			Query:  c.query,
			Number: c.number,
		})
	}
	return nil
}
