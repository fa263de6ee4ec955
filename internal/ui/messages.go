package ui

import (
	"time"

	"serpnav/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// ListChangedMsg tells the navigator the item list changed underneath it.
// Page loads reset the navigator themselves; stores that change their
// list outside a page load send this.
type ListChangedMsg struct{}

// tickMsg is sent on a timer to expire pending chords
type tickMsg time.Time

// pulseEndedMsg removes the copy pulse from the items of one export
type pulseEndedMsg struct {
	viewID  string
	indices []int
}

// clearNoticeMsg hides the notice with the given sequence number
type clearNoticeMsg struct {
	seq int
}

// quitMsg signals that the application should quit
type quitMsg struct{}
