package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageRequested EventType = "PageRequested"
	EventResultsLoaded EventType = "ResultsLoaded"
	EventSearchFailed  EventType = "SearchFailed"
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageRequestedEvent asks the search service to load a page
type PageRequestedEvent struct {
	Query  string
	Number int
}

func (e PageRequestedEvent) Type() EventType { return EventPageRequested }

// ResultsLoadedEvent is emitted when a page of results has been fetched and parsed
type ResultsLoadedEvent struct {
	Page     Page
	Provider string
	Results  []Result
}

func (e ResultsLoadedEvent) Type() EventType { return EventResultsLoaded }

// SearchFailedEvent is emitted when a page could not be loaded
type SearchFailedEvent struct {
	Query  string
	Number int
	Err    error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	Provider string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
