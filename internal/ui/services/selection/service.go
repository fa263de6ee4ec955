package selection

import (
	"log"

	"serpnav/internal/domain"
	"serpnav/internal/logic"
	"serpnav/internal/ui/services/events"
	"serpnav/internal/ui/state"
)

// Service owns the mark set and visual range mode
type Service struct {
	state *state.AppState
	items logic.ItemProvider
	bus   events.EventBus
}

// NewService creates a new selection service
func NewService(st *state.AppState, items logic.ItemProvider, bus events.EventBus) *Service {
	return &Service{
		state: st,
		items: items,
		bus:   bus,
	}
}

// ToggleMark flips membership of index; out-of-range indices are ignored
func (s *Service) ToggleMark(index int) {
	items := s.items.ListItems()
	if index < 0 || index >= len(items) {
		return
	}

	marks := s.state.Nav.Marks
	if marks[index] {
		delete(marks, index)
		items[index].RemoveVisualState(domain.TagMarked)
	} else {
		marks[index] = true
		items[index].ApplyVisualState(domain.TagMarked)
	}

	s.bus.Publish(MarksChangedEvent{Total: len(marks)})
}

// ToggleCurrent toggles the mark on the focused item
func (s *Service) ToggleCurrent() {
	s.ToggleMark(s.state.Nav.Focus)
}

// MarkAll marks every item in the current list
func (s *Service) MarkAll() {
	items := s.items.ListItems()
	for i, item := range items {
		s.state.Nav.Marks[i] = true
		item.ApplyVisualState(domain.TagMarked)
	}

	s.bus.Publish(MarksChangedEvent{Total: len(s.state.Nav.Marks)})
}

// ClearAll removes every mark
func (s *Service) ClearAll() {
	s.clear(s.items.ListItems())
	log.Printf("Selection: marks cleared")

	s.bus.Publish(MarksClearedEvent{})
}

func (s *Service) clear(items []logic.Item) {
	for i := range s.state.Nav.Marks {
		if i < len(items) {
			items[i].RemoveVisualState(domain.TagMarked)
		}
	}
	s.state.Nav.Marks = make(map[int]bool)
}

// EnterVisual starts a range anchored at the focus and marks the anchor
func (s *Service) EnterVisual() {
	nav := s.state.Nav
	nav.Visual.Active = true
	nav.Visual.Anchor = nav.Focus

	items := s.items.ListItems()
	if nav.Focus >= 0 && nav.Focus < len(items) {
		nav.Marks[nav.Focus] = true
		items[nav.Focus].ApplyVisualState(domain.TagMarked)
	}

	log.Printf("Selection: visual mode on, anchor %d", nav.Visual.Anchor)
	s.bus.Publish(VisualModeChangedEvent{Active: true, Anchor: nav.Visual.Anchor})
}

// ExitVisual leaves visual mode; marks are kept
func (s *Service) ExitVisual() {
	s.state.Nav.Visual.Active = false

	log.Printf("Selection: visual mode off, %d marked", len(s.state.Nav.Marks))
	s.bus.Publish(VisualModeChangedEvent{Active: false, Anchor: s.state.Nav.Visual.Anchor})
}

// ToggleVisual exits visual mode when active, enters it otherwise
func (s *Service) ToggleVisual() {
	if s.state.Nav.Visual.Active {
		s.ExitVisual()
	} else {
		s.EnterVisual()
	}
}

// IsVisual reports whether visual mode is active
func (s *Service) IsVisual() bool {
	return s.state.Nav.Visual.Active
}

// RecomputeRange rebuilds the mark set as the closed range between
// anchor and focus. A missing anchor adopts the current focus.
func (s *Service) RecomputeRange() {
	nav := s.state.Nav
	if !nav.Visual.Active {
		return
	}
	if nav.Visual.Anchor < 0 {
		nav.Visual.Anchor = nav.Focus
	}

	items := s.items.ListItems()
	s.clear(items)

	lo, hi := nav.Visual.Anchor, nav.Focus
	if lo > hi {
		lo, hi = hi, lo
	}
	for i := lo; i <= hi; i++ {
		if i < 0 || i >= len(items) {
			continue
		}
		nav.Marks[i] = true
		items[i].ApplyVisualState(domain.TagMarked)
	}

	s.bus.Publish(MarksChangedEvent{Total: len(nav.Marks)})
}

// Prune drops marks that point past the end of the current list
func (s *Service) Prune() {
	n := len(s.items.ListItems())
	dropped := 0
	for i := range s.state.Nav.Marks {
		if i >= n {
			delete(s.state.Nav.Marks, i)
			dropped++
		}
	}
	if dropped > 0 {
		s.bus.Publish(MarksChangedEvent{Total: len(s.state.Nav.Marks)})
	}
}

// IsMarked checks if an index is marked
func (s *Service) IsMarked(index int) bool {
	return s.state.Nav.Marks[index]
}

// Marked returns the marked indices in ascending order
func (s *Service) Marked() []int {
	return s.state.Nav.MarkedIndices()
}

// GetCount returns the number of marked items
func (s *Service) GetCount() int {
	return len(s.state.Nav.Marks)
}

// HasMarks returns true if anything is marked
func (s *Service) HasMarks() bool {
	return len(s.state.Nav.Marks) > 0
}
