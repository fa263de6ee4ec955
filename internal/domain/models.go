package domain

import "time"

// ResultKind distinguishes organic results from rows the engine inserts itself
type ResultKind int

const (
	KindOrganic    ResultKind = iota
	KindSuggestion            // "did you mean" / query candidate rows
)

// Result represents a single search result
type Result struct {
	Title   string
	URL     string // empty when the result carries no link
	Snippet string
	Domain  string // host extracted from URL, for display
	Kind    ResultKind
}

// Page identifies one page of results for a query.
// ViewID is fresh for every page view; navigator state never outlives it.
type Page struct {
	Query    string
	Number   int // 1-based
	ViewID   string
	LoadedAt time.Time
}

// HasPrevious reports whether a previous page exists for the query
func (p Page) HasPrevious() bool {
	return p.Number > 1
}

// VisualTag is a visual state applied to an item handle
type VisualTag string

const (
	TagFocused   VisualTag = "focused"
	TagMarked    VisualTag = "marked"
	TagCopyPulse VisualTag = "copy-pulse"
)
