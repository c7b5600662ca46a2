package search

import (
	"context"
	"time"
)

// Result is one candidate source article returned by the search provider.
type Result struct {
	Link        string
	Title       string
	Publisher   string
	PublishedAt time.Time
}

type Client interface {
	Search(ctx context.Context, query string, window string, limit int) ([]Result, error)
	Name() string
}

// DefaultWindow is the freshness window used when the caller passes none.
const DefaultWindow = "6h"

var windowFilters = map[string]string{
	"1h": "qdr:h",
	"6h": "qdr:h6",
	"1d": "qdr:d",
	"7d": "qdr:w",
	"1m": "qdr:m",
}

// KnownWindow reports whether the freshness window is one the provider
// filter understands.
func KnownWindow(window string) bool {
	_, ok := windowFilters[window]
	return ok
}

// FilterToken maps a freshness window to the provider's recency filter.
// Unknown or empty windows fall back to the default.
func FilterToken(window string) string {
	if tok, ok := windowFilters[window]; ok {
		return tok
	}
	return windowFilters[DefaultWindow]
}
