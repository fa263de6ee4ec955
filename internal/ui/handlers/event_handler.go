package handlers

import (
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"serpnav/internal/domain"
	"serpnav/internal/eventbus"
	"serpnav/internal/logic"
	"serpnav/internal/search"
	"serpnav/internal/ui/coordinator"
	"serpnav/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state       *state.AppState
	store       logic.ResultStore
	coordinator *coordinator.Coordinator
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, store logic.ResultStore, coord *coordinator.Coordinator) *EventHandler {
	return &EventHandler{
		state:       appState,
		store:       store,
		coordinator: coord,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ResultsLoadedEvent:
		if !h.state.AwaitsPage(e.Page.Query, e.Page.Number) {
			log.Printf("UI: dropping stale view %s (%q page %d)", e.Page.ViewID, e.Page.Query, e.Page.Number)
			return nil
		}
		h.showPage(e)

	case eventbus.SearchFailedEvent:
		if !h.state.AwaitsPage(e.Query, e.Number) {
			log.Printf("UI: dropping stale failure for %q page %d: %v", e.Query, e.Number, e.Err)
			return nil
		}
		h.state.Loading = false
		h.state.LoadingState = ""
		if errors.Is(e.Err, search.ErrNoResults) {
			h.state.StatusMessage = fmt.Sprintf("No results for %q (page %d)", e.Query, e.Number)
		} else {
			h.state.StatusMessage = fmt.Sprintf("Search failed: %v", e.Err)
		}

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)

	case eventbus.ConfigSavedEvent:
		h.state.StatusMessage = fmt.Sprintf("Config saved to %s", e.Path)
	}

	return nil
}

// showPage swaps in a freshly loaded page and places the initial focus
func (h *EventHandler) showPage(e eventbus.ResultsLoadedEvent) {
	c := h.coordinator
	c.Chords.ResetAll()

	visible := h.store.Replace(e.Results)
	h.state.BeginPage(e.Page, e.Provider)
	c.History.Visit(e.Page)

	if i := FirstOrganic(h.store.ListItems()); i >= 0 {
		c.Navigation.SetFocus(i)
	} else {
		c.Navigation.Refresh()
	}

	h.state.StatusMessage = fmt.Sprintf("%d results", visible)
	log.Printf("UI: showing view %s (%q page %d, %d items)", e.Page.ViewID, e.Page.Query, e.Page.Number, visible)
}

// FirstOrganic returns the index of the first organic result, skipping
// query candidates such as spelling suggestions. Items that do not
// expose a result count as organic. -1 when there is none.
func FirstOrganic(items []logic.Item) int {
	for i, it := range items {
		r, ok := it.(interface{ Result() domain.Result })
		if !ok || r.Result().Kind == domain.KindOrganic {
			return i
		}
	}
	return -1
}
