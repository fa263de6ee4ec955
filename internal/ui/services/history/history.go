// Package history keeps the back/forward stack of visited result pages.
package history

import "serpnav/internal/domain"

// Stack is a browser-style history of pages
type Stack struct {
	entries []domain.Page
	cursor  int // index of the current entry, -1 when empty
}

// New creates an empty history
func New() *Stack {
	return &Stack{cursor: -1}
}

// Visit records page as the current entry. Revisiting the current
// query and page number replaces it in place; anything else drops the
// forward entries.
func (s *Stack) Visit(page domain.Page) {
	if cur, ok := s.Current(); ok && samePage(cur, page) {
		s.entries[s.cursor] = page
		return
	}
	s.entries = append(s.entries[:s.cursor+1], page)
	s.cursor = len(s.entries) - 1
}

// Back moves to the previous entry
func (s *Stack) Back() (domain.Page, bool) {
	if s.cursor <= 0 {
		return domain.Page{}, false
	}
	s.cursor--
	return s.entries[s.cursor], true
}

// Forward moves to the next entry
func (s *Stack) Forward() (domain.Page, bool) {
	if s.cursor < 0 || s.cursor >= len(s.entries)-1 {
		return domain.Page{}, false
	}
	s.cursor++
	return s.entries[s.cursor], true
}

// Current returns the current entry
func (s *Stack) Current() (domain.Page, bool) {
	if s.cursor < 0 {
		return domain.Page{}, false
	}
	return s.entries[s.cursor], true
}

// Len returns the number of entries
func (s *Stack) Len() int {
	return len(s.entries)
}

func samePage(a, b domain.Page) bool {
	return a.Query == b.Query && a.Number == b.Number
}
