package selection

// Event types
type MarksChangedEvent struct {
	Total int
}

type MarksClearedEvent struct{}

type VisualModeChangedEvent struct {
	Active bool
	Anchor int
}
