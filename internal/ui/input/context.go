package input

import (
	"serpnav/internal/logic"
	"serpnav/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
	Items logic.ItemProvider
}

// CurrentIndex returns the focused index
func (c *ModelContext) CurrentIndex() int {
	return c.State.Nav.Focus
}

// TotalItems returns the number of items in the current list
func (c *ModelContext) TotalItems() int {
	return len(c.Items.ListItems())
}

// HasMarks returns true if any items are marked
func (c *ModelContext) HasMarks() bool {
	return len(c.State.Nav.Marks) > 0
}

// VisualActive reports whether visual range mode is on
func (c *ModelContext) VisualActive() bool {
	return c.State.Nav.Visual.Active
}

// HelpVisible reports whether the help overlay is shown
func (c *ModelContext) HelpVisible() bool {
	return c.State.ShowHelp
}

// CurrentQuery returns the query of the current page
func (c *ModelContext) CurrentQuery() string {
	return c.State.Query
}
