package search

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"serpnav/internal/domain"
	"serpnav/internal/eventbus"
)

// Service loads pages in response to PageRequested events
type Service struct {
	provider Provider
	bus      eventbus.EventBus
	ctx      context.Context
	timeout  time.Duration
}

// NewService creates a search service and subscribes it to page requests
func NewService(ctx context.Context, provider Provider, bus eventbus.EventBus, timeout time.Duration) *Service {
	s := &Service{
		provider: provider,
		bus:      bus,
		ctx:      ctx,
		timeout:  timeout,
	}

	bus.Subscribe(eventbus.EventPageRequested, s.handlePageRequested)

	return s
}

func (s *Service) handlePageRequested(e eventbus.DomainEvent) {
	req, ok := e.(eventbus.PageRequestedEvent)
	if !ok {
		return
	}
	s.bus.Publish(s.Load(req.Query, req.Number))
}

// Load fetches one page and returns the event describing the outcome
func (s *Service) Load(query string, number int) eventbus.DomainEvent {
	ctx := s.ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	log.Printf("Search: loading %q page %d via %s", query, number, s.provider.Name())
	res, err := s.provider.Search(ctx, query, number)
	if err != nil {
		log.Printf("Search: %q page %d failed: %v", query, number, err)
		return eventbus.SearchFailedEvent{Query: query, Number: number, Err: err}
	}

	page := domain.Page{
		Query:    query,
		Number:   res.Page,
		ViewID:   uuid.NewString(),
		LoadedAt: res.SearchedAt,
	}
	log.Printf("Search: view %s loaded %d results", page.ViewID, len(res.Results))

	return eventbus.ResultsLoadedEvent{
		Page:     page,
		Provider: res.Provider,
		Results:  res.Results,
	}
}
