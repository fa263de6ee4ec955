package coordinator

import (
	"time"

	"serpnav/internal/logic"
	"serpnav/internal/ui/services/chord"
	"serpnav/internal/ui/services/events"
	"serpnav/internal/ui/services/export"
	"serpnav/internal/ui/services/history"
	"serpnav/internal/ui/services/navigation"
	"serpnav/internal/ui/services/selection"
	"serpnav/internal/ui/state"
)

// Chord keys
const (
	ChordTop      = "g"
	ChordPrevPage = "["
	ChordNextPage = "]"
)

// Coordinator manages all UI services and their interactions
type Coordinator struct {
	// Services
	Navigation *navigation.Service
	Selection  *selection.Service
	Export     *export.Service
	Chords     *chord.Disambiguator
	History    *history.Stack

	// Dependencies
	bus   events.EventBus
	state *state.AppState
	items logic.ItemProvider
}

// NewCoordinator creates a new coordinator with all services
func NewCoordinator(st *state.AppState, items logic.ItemProvider, bus events.EventBus) *Coordinator {
	c := &Coordinator{
		Navigation: navigation.NewService(st, items, bus),
		Selection:  selection.NewService(st, items, bus),
		Export:     export.NewService(st, items, bus),
		Chords:     chord.New(chord.DefaultWindow, ChordTop, ChordPrevPage, ChordNextPage),
		History:    history.New(),
		bus:        bus,
		state:      st,
		items:      items,
	}

	c.subscribeToEvents()

	return c
}

// subscribeToEvents sets up event handlers
func (c *Coordinator) subscribeToEvents() {
	// Visual mode keeps the mark set equal to the anchor..focus range
	c.bus.Subscribe(events.TypeOf(navigation.FocusChangedEvent{}), func(e interface{}) {
		if c.Selection.IsVisual() {
			c.Selection.RecomputeRange()
		}
	})

	// Exports taken from the mark set consume it
	c.bus.Subscribe(events.TypeOf(export.ExportCompletedEvent{}), func(e interface{}) {
		if ev, ok := e.(export.ExportCompletedEvent); ok && ev.FromMarks {
			c.Selection.ClearAll()
		}
	})
}

// SetChordWindow replaces the chord disambiguator with one using window
func (c *Coordinator) SetChordWindow(window time.Duration) {
	c.Chords = chord.New(window, ChordTop, ChordPrevPage, ChordNextPage)
}

// GetCurrentIndex returns the focused index
func (c *Coordinator) GetCurrentIndex() int {
	return c.Navigation.GetFocus()
}

// GetCurrentItem returns the focused item, or nil
func (c *Coordinator) GetCurrentItem() logic.Item {
	items := c.items.ListItems()
	i := c.state.Nav.Focus
	if i < 0 || i >= len(items) {
		return nil
	}
	return items[i]
}

// MarkedLinks resolves the links of all marked items in ascending order
func (c *Coordinator) MarkedLinks() []string {
	entries := export.Resolve(c.items.ListItems(), c.Selection.Marked())
	links := make([]string, len(entries))
	for i, e := range entries {
		links[i] = e.Link
	}
	return links
}

// SetViewportHeight updates viewport height across services
func (c *Coordinator) SetViewportHeight(height int) {
	c.Navigation.SetViewportHeight(height)
}
