package logic

import "serpnav/internal/domain"

// Item is a handle on one navigable row. Handles are owned by the
// store; navigator state refers to them by position only.
type Item interface {
	// Link returns the item's reference, false when it has none
	Link() (string, bool)
	Label() string
	ApplyVisualState(tag domain.VisualTag)
	RemoveVisualState(tag domain.VisualTag)
	HasVisualState(tag domain.VisualTag) bool
	// Height is the number of rows the item renders to; zero means hidden
	Height() int
}

// ItemProvider supplies the current ordered item list.
// Every call returns a fresh snapshot.
type ItemProvider interface {
	ListItems() []Item
}

// ResultStore holds the items of the current page view
type ResultStore interface {
	ItemProvider
	// Replace swaps in a new result list and returns the visible count
	Replace(results []domain.Result) int
	Len() int
}
