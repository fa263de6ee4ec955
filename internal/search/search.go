// Package search loads pages of web search results from pluggable providers.
package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"serpnav/internal/config"
	"serpnav/internal/domain"
)

var (
	// ErrNoResults is returned when a page parsed cleanly but held no results
	ErrNoResults = errors.New("no results")
	// ErrStatus is wrapped when the provider answers with a non-200 status
	ErrStatus = errors.New("unexpected status")
)

// Results represents one page of a search response
type Results struct {
	Query      string
	Page       int
	Provider   string
	Results    []domain.Result
	SearchedAt time.Time
}

// Provider defines the interface for search providers
type Provider interface {
	// Search fetches the given 1-based page of results for query
	Search(ctx context.Context, query string, page int) (*Results, error)

	// Name returns the provider's display name
	Name() string
}

// New builds the provider named in the search settings. A non-empty
// fromFile always wins and serves pages from disk.
func New(cfg config.SearchSettings, fromFile string) (Provider, error) {
	if fromFile != "" {
		return NewFileProvider(fromFile), nil
	}

	switch cfg.Provider {
	case "", "duckduckgo", "ddg":
		client := &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}
		return NewDuckDuckGo(client, cfg.BaseURL, cfg.UserAgent, cfg.Region), nil
	default:
		return nil, fmt.Errorf("unknown search provider %q", cfg.Provider)
	}
}
