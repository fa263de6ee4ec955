package search

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// FileProvider serves saved results pages from disk. A "%d" in the path
// is replaced with the page number; without one every page reads the
// same file.
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider reading from path
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (f *FileProvider) Name() string {
	return "file"
}

func (f *FileProvider) Search(ctx context.Context, query string, page int) (*Results, error) {
	if page < 1 {
		page = 1
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := f.path
	if strings.Contains(path, "%d") {
		path = fmt.Sprintf(path, page)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening results file: %w", err)
	}
	defer file.Close()

	results, err := ParseHTML(file)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoResults)
	}

	return &Results{
		Query:      query,
		Page:       page,
		Provider:   f.Name(),
		Results:    results,
		SearchedAt: time.Now(),
	}, nil
}
