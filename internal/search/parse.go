package search

import (
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"serpnav/internal/domain"
)

var whitespace = regexp.MustCompile(`\s+`)

// ParseHTML extracts results from a DuckDuckGo HTML results page.
// Spelling suggestions come first as KindSuggestion rows, organic
// results follow in page order, deduplicated by URL. Ads are skipped.
func ParseHTML(r io.Reader) ([]domain.Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var results []domain.Result

	doc.Find("#did_you_mean a, .did_you_mean a").Each(func(_ int, s *goquery.Selection) {
		text := cleanText(s.Text())
		if text == "" {
			return
		}
		href, _ := s.Attr("href")
		results = append(results, domain.Result{
			Title: "Did you mean: " + text,
			URL:   resolveHref(href),
			Kind:  domain.KindSuggestion,
		})
	})

	seen := make(map[string]bool)
	doc.Find("div.result, div.results_links").Each(func(_ int, s *goquery.Selection) {
		if s.HasClass("result--ad") {
			return
		}
		link := s.Find("a.result__a").First()
		title := cleanText(link.Text())
		href, _ := link.Attr("href")
		u := extractRealURL(href)
		if title == "" || u == "" || seen[u] {
			return
		}
		seen[u] = true

		results = append(results, domain.Result{
			Title:   title,
			URL:     u,
			Snippet: cleanText(s.Find(".result__snippet").First().Text()),
			Domain:  extractDomain(u),
			Kind:    domain.KindOrganic,
		})
	})

	return results, nil
}

// extractRealURL unwraps DuckDuckGo's redirect link via its uddg parameter
func extractRealURL(href string) string {
	if strings.Contains(href, "uddg=") {
		if u, err := url.Parse(resolveHref(href)); err == nil {
			if uddg := u.Query().Get("uddg"); uddg != "" {
				return uddg
			}
		}
	}
	return resolveHref(href)
}

// resolveHref makes protocol-relative and site-relative links absolute
func resolveHref(href string) string {
	switch {
	case href == "":
		return ""
	case strings.HasPrefix(href, "//"):
		return "https:" + href
	case strings.HasPrefix(href, "/"):
		return "https://html.duckduckgo.com" + href
	}
	return href
}

func extractDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}

func cleanText(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}
