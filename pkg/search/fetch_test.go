package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

type fakeClient struct {
	results   []Result
	err       error
	gotQuery  string
	gotWindow string
	gotLimit  int
}

func (f *fakeClient) Search(ctx context.Context, query, window string, limit int) ([]Result, error) {
	f.gotQuery = query
	f.gotWindow = window
	f.gotLimit = limit
	return f.results, f.err
}

func (f *fakeClient) Name() string { return "fake" }

func TestFetchSourcesDedupesByPublisher(t *testing.T) {
	client := &fakeClient{results: []Result{
		{Link: "https://example.com/a", Publisher: "Denver Post"},
		{Link: "https://example.com/b", Publisher: "Denver Post"},
		{Link: "https://example.org/c", Publisher: "Reuters"},
	}}

	sources, err := FetchSources(context.Background(), client, "Colorado", "6h")

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(sources))
	assert.Equal(t, "https://example.com/a", sources[0].Link)
	assert.Equal(t, "https://example.org/c", sources[1].Link)
	assert.Equal(t, 8, client.gotLimit)
}

func TestFetchSourcesDedupesByHostWhenNoLabel(t *testing.T) {
	client := &fakeClient{results: []Result{
		{Link: "https://www.example.com/a"},
		{Link: "https://example.com/b"},
		{Link: "https://other.example.net/c"},
	}}

	sources, err := FetchSources(context.Background(), client, "Colorado", "6h")

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(sources))
	assert.Equal(t, "https://www.example.com/a", sources[0].Link)
	assert.Equal(t, "https://other.example.net/c", sources[1].Link)
}

func TestFetchSourcesCapsAtFive(t *testing.T) {
	var results []Result
	hosts := []string{"a", "b", "c", "d", "e", "f", "g"}
	for _, h := range hosts {
		results = append(results, Result{Link: "https://" + h + ".example.com/story"})
	}
	client := &fakeClient{results: results}

	sources, err := FetchSources(context.Background(), client, "Colorado", "6h")

	assert.Equal(t, nil, err)
	assert.Equal(t, 5, len(sources))
}

func TestFetchSourcesSkipsEmptyLinks(t *testing.T) {
	client := &fakeClient{results: []Result{
		{Link: "", Publisher: "Ghost"},
		{Link: "https://example.com/a", Publisher: "Denver Post"},
	}}

	sources, err := FetchSources(context.Background(), client, "Colorado", "6h")

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(sources))
}

func TestFetchSourcesPropagatesError(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}

	_, err := FetchSources(context.Background(), client, "Colorado", "6h")

	assert.NotEqual(t, nil, err)
}

func TestURLs(t *testing.T) {
	sources := []Result{
		{Link: "https://example.com/a", PublishedAt: time.Now()},
		{Link: "https://example.org/b"},
	}

	urls := URLs(sources)

	assert.Equal(t, []string{"https://example.com/a", "https://example.org/b"}, urls)
}
