package search

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

const (
	rawResultLimit = 8
	maxSources     = 5
)

// FetchSources issues one search for the topic and returns the deduplicated
// source list in first-seen order. The dedup key is the provider's publisher
// label when present, otherwise the hostname with any leading www stripped.
// At most 5 sources survive.
func FetchSources(ctx context.Context, client Client, topic, window string) ([]Result, error) {
	results, err := client.Search(ctx, topic, window, rawResultLimit)
	if err != nil {
		return nil, fmt.Errorf("%s search: %w", client.Name(), err)
	}

	seen := make(map[string]bool)
	var sources []Result
	for _, r := range results {
		if r.Link == "" {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(r.Publisher))
		if key == "" {
			key = hostKey(r.Link)
		}
		if key != "" {
			if seen[key] {
				continue
			}
			seen[key] = true
		}

		sources = append(sources, r)
		if len(sources) == maxSources {
			break
		}
	}

	return sources, nil
}

func hostKey(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(u.Host, "www."))
}

// URLs projects the source list down to its links, in order.
func URLs(sources []Result) []string {
	urls := make([]string, 0, len(sources))
	for _, s := range sources {
		urls = append(urls, s.Link)
	}
	return urls
}
