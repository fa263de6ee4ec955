package navigation

import (
	"serpnav/internal/domain"
	"serpnav/internal/logic"
	"serpnav/internal/ui/services/events"
	"serpnav/internal/ui/state"
)

// Service is the focus model. It re-reads the item list on every call.
type Service struct {
	state    *state.AppState
	items    logic.ItemProvider
	bus      events.EventBus
	centered bool
}

// NewService creates a new navigation service
func NewService(st *state.AppState, items logic.ItemProvider, bus events.EventBus) *Service {
	return &Service{
		state:    st,
		items:    items,
		bus:      bus,
		centered: true,
	}
}

// SetCentered chooses between centering the focus and minimal scrolling
func (s *Service) SetCentered(centered bool) {
	s.centered = centered
}

// GetFocus returns the focused index, -1 when nothing is focused
func (s *Service) GetFocus() int {
	return s.state.Nav.Focus
}

// SetViewportHeight updates the number of visible items
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.ensureVisible(len(s.items.ListItems()))
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	switch direction {
	case DirectionUp:
		s.MovePrevious()
	case DirectionDown:
		s.MoveNext()
	case DirectionHome:
		s.MoveFirst()
	case DirectionEnd:
		s.MoveLast()
	}
}

// SetFocus moves the focus tag to target, clamped into the current list
func (s *Service) SetFocus(target int) {
	items := s.items.ListItems()
	nav := s.state.Nav
	old := nav.Focus

	if old >= 0 && old < len(items) {
		items[old].RemoveVisualState(domain.TagFocused)
	}

	nav.Focus = clampIndex(target, len(items))
	if nav.Focus >= 0 {
		items[nav.Focus].ApplyVisualState(domain.TagFocused)
		s.ensureVisible(len(items))
	}

	s.bus.Publish(FocusChangedEvent{
		OldIndex: old,
		NewIndex: nav.Focus,
	})
}

func (s *Service) MoveNext() {
	s.SetFocus(s.state.Nav.Focus + 1)
}

func (s *Service) MovePrevious() {
	s.SetFocus(s.state.Nav.Focus - 1)
}

func (s *Service) MoveFirst() {
	s.SetFocus(0)
}

func (s *Service) MoveLast() {
	s.SetFocus(len(s.items.ListItems()) - 1)
}

// Refresh re-clamps the focus after the list may have changed.
// An unfocused navigator stays unfocused.
func (s *Service) Refresh() {
	if s.state.Nav.Focus < 0 {
		s.ensureVisible(len(s.items.ListItems()))
		return
	}
	s.SetFocus(s.state.Nav.Focus)
}

// clampIndex maps any integer into [0, n-1], or -1 for an empty list
func clampIndex(index, n int) int {
	if n == 0 {
		return -1
	}
	if index < 0 {
		return 0
	}
	if index > n-1 {
		return n - 1
	}
	return index
}

func (s *Service) ensureVisible(n int) {
	st := s.state
	oldOffset := st.ViewportOffset
	focus := st.Nav.Focus
	height := st.ViewportHeight

	if focus >= 0 {
		if s.centered {
			st.ViewportOffset = focus - height/2
		} else if focus < st.ViewportOffset {
			st.ViewportOffset = focus
		} else if focus >= st.ViewportOffset+height {
			st.ViewportOffset = focus - height + 1
		}
	}

	maxOffset := n - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if st.ViewportOffset > maxOffset {
		st.ViewportOffset = maxOffset
	}
	if st.ViewportOffset < 0 {
		st.ViewportOffset = 0
	}

	if st.ViewportOffset != oldOffset {
		s.bus.Publish(ViewportChangedEvent{
			Offset: st.ViewportOffset,
			Height: height,
		})
	}
}
