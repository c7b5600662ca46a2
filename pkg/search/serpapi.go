package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type SerpAPIClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewSerpAPIClient(apiKey string) *SerpAPIClient {
	return &SerpAPIClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *SerpAPIClient) Name() string {
	return "SerpAPI"
}

func (c *SerpAPIClient) Search(ctx context.Context, query, window string, limit int) ([]Result, error) {
	endpoint := fmt.Sprintf(
		"https://serpapi.com/search.json?engine=google&tbm=nws&q=%s&num=%d&tbs=%s&api_key=%s",
		url.QueryEscape(query), limit, url.QueryEscape(FilterToken(window)), c.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("serpapi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi status %d", resp.StatusCode)
	}

	var raw serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("serpapi decode: %w", err)
	}

	now := time.Now()
	results := make([]Result, 0, len(raw.NewsResults))
	for _, item := range raw.NewsResults {
		results = append(results, Result{
			Link:        item.Link,
			Title:       item.Title,
			Publisher:   item.Source,
			PublishedAt: parseResultDate(item.Date, now),
		})
	}

	return results, nil
}

// parseResultDate handles the provider's absolute format
// ("02/26/2026, 07:00 AM, +0000 UTC") plus relative forms like
// "3 hours ago". Unparseable dates become the zero time.
func parseResultDate(s string, now time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	if t, err := time.Parse("01/02/2006, 03:04 PM, -0700 MST", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}

	if strings.HasSuffix(s, " ago") {
		fields := strings.Fields(s)
		if len(fields) == 3 {
			n, err := strconv.Atoi(fields[0])
			if err == nil {
				switch strings.TrimSuffix(fields[1], "s") {
				case "minute":
					return now.Add(-time.Duration(n) * time.Minute)
				case "hour":
					return now.Add(-time.Duration(n) * time.Hour)
				case "day":
					return now.Add(-time.Duration(n) * 24 * time.Hour)
				case "week":
					return now.Add(-time.Duration(n) * 7 * 24 * time.Hour)
				}
			}
		}
	}

	return time.Time{}
}

type serpResponse struct {
	NewsResults []serpNewsResult `json:"news_results"`
}

type serpNewsResult struct {
	Title  string `json:"title"`
	Link   string `json:"link"`
	Source string `json:"source"`
	Date   string `json:"date"`
}
