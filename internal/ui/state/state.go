package state

import (
	"sort"

	"serpnav/internal/domain"
)

// VisualRange is the visual selection sub-state
type VisualRange struct {
	Active bool
	Anchor int
}

// NavState is the navigator state of one page view. It has a single
// writer: the UI update loop.
type NavState struct {
	Focus  int          // -1 when nothing is focused
	Marks  map[int]bool // positions, not identities
	Visual VisualRange
}

// NewNavState creates an empty navigator state
func NewNavState() *NavState {
	return &NavState{
		Focus: -1,
		Marks: make(map[int]bool),
	}
}

// Reset returns the state to its initial empty form
func (n *NavState) Reset() {
	n.Focus = -1
	n.Marks = make(map[int]bool)
	n.Visual = VisualRange{}
}

// MarkedIndices returns the marked positions in ascending order
func (n *NavState) MarkedIndices() []int {
	indices := make([]int, 0, len(n.Marks))
	for i := range n.Marks {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// AppState contains all the application state
type AppState struct {
	Nav *NavState

	// Page data
	Page     domain.Page
	HasPage  bool
	Provider string
	Query    string // query of the page being shown or loaded

	// UI state
	ViewportOffset   int // first visible item
	ViewportHeight   int // visible items
	Width            int
	Height           int
	ShowHelp         bool
	HelpScrollOffset int
	Loading          bool
	LoadingState     string
	RequestedQuery   string // latest page request; zero until one is made
	RequestedNumber  int
	StatusMessage    string // sticky status bar message (errors, load results)
	Notice           string // transient notice
	NoticeSeq        int
	PendingChord     string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Nav:            NewNavState(),
		ViewportHeight: 10, // Default
	}
}

// BeginPage resets all per-view state for a freshly loaded page
func (s *AppState) BeginPage(page domain.Page, provider string) {
	s.Nav.Reset()
	s.Page = page
	s.HasPage = true
	s.Provider = provider
	s.Query = page.Query
	s.ViewportOffset = 0
	s.Loading = false
	s.LoadingState = ""
	s.PendingChord = ""
}

// RequestPage records query and number as the page the view waits for
func (s *AppState) RequestPage(query string, number int) {
	s.Loading = true
	s.Query = query
	s.RequestedQuery = query
	s.RequestedNumber = number
}

// AwaitsPage reports whether a load outcome for query and number belongs
// to the latest request. Outcomes of superseded requests are stale.
func (s *AppState) AwaitsPage(query string, number int) bool {
	if s.RequestedNumber == 0 {
		return true
	}
	return s.RequestedQuery == query && s.RequestedNumber == number
}

// ShowNotice sets the transient notice and returns its sequence number
func (s *AppState) ShowNotice(text string) int {
	s.NoticeSeq++
	s.Notice = text
	return s.NoticeSeq
}

// ClearNotice clears the notice if seq is still the latest one
func (s *AppState) ClearNotice(seq int) {
	if seq == s.NoticeSeq {
		s.Notice = ""
	}
}
