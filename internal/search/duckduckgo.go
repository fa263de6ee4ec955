package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultDuckDuckGoURL = "https://html.duckduckgo.com/html/"
	resultsPerPage       = 30
)

// DuckDuckGo implements the Provider interface using the HTML endpoint
type DuckDuckGo struct {
	client    *http.Client
	baseURL   string
	userAgent string
	region    string
}

// NewDuckDuckGo creates a new DuckDuckGo search provider
func NewDuckDuckGo(client *http.Client, baseURL, userAgent, region string) *DuckDuckGo {
	if client == nil {
		client = &http.Client{}
	}
	if baseURL == "" {
		baseURL = defaultDuckDuckGoURL
	}
	return &DuckDuckGo{
		client:    client,
		baseURL:   baseURL,
		userAgent: userAgent,
		region:    region,
	}
}

func (d *DuckDuckGo) Name() string {
	return "DuckDuckGo"
}

// Search performs a DuckDuckGo search for one page of results
func (d *DuckDuckGo) Search(ctx context.Context, query string, page int) (*Results, error) {
	if page < 1 {
		page = 1
	}
	searchedAt := time.Now()

	params := url.Values{}
	params.Set("q", query)
	if page > 1 {
		params.Set("s", strconv.Itoa((page-1)*resultsPerPage))
	}
	if d.region != "" {
		params.Set("kl", d.region)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching results: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	results, err := ParseHTML(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%q page %d: %w", query, page, ErrNoResults)
	}

	return &Results{
		Query:      query,
		Page:       page,
		Provider:   d.Name(),
		Results:    results,
		SearchedAt: searchedAt,
	}, nil
}
