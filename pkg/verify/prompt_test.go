package verify

import (
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"tripdraft/pkg/llm"
	"tripdraft/pkg/search"
)

func TestGuardContentUnderLimit(t *testing.T) {
	content := "<p>short guide</p>"

	assert.Equal(t, content, GuardContent(content))
}

func TestGuardContentSlicesAndNotices(t *testing.T) {
	content := strings.Repeat("x", maxContentChars+500)

	guarded := GuardContent(content)

	assert.Equal(t, true, strings.HasSuffix(guarded, contentTruncationNotice))
	assert.Equal(t, maxContentChars+len(contentTruncationNotice), len(guarded))
}

func TestRenderSourceListFormat(t *testing.T) {
	published := time.Date(2026, 2, 26, 7, 0, 0, 0, time.UTC)
	sources := []search.Result{
		{Link: "https://example.com/a", Publisher: "Denver Post", PublishedAt: published},
		{Link: "https://example.org/b"},
	}

	listing := RenderSourceList(sources)

	assert.Equal(t, true, strings.Contains(listing, "- https://example.com/a (Denver Post, published 2026-02-26T07:00:00Z)"))
	assert.Equal(t, true, strings.Contains(listing, "- https://example.org/b\n"))
}

func TestRenderSourceListGuard(t *testing.T) {
	var sources []search.Result
	for i := 0; i < 100; i++ {
		sources = append(sources, search.Result{
			Link: "https://example.com/" + strings.Repeat("long-path-segment/", 5) + "story",
		})
	}

	listing := RenderSourceList(sources)

	assert.Equal(t, true, strings.HasSuffix(listing, sourceTruncationNotice))
	assert.Equal(t, true, len(listing) <= maxSourceListChars+len(sourceTruncationNotice))
}

func TestBuildVerificationMessagesWithReference(t *testing.T) {
	req := Request{
		Content:      "<p>guide</p>",
		SourceList:   "- https://example.com/a\n",
		ReferenceISO: "2026-02-26T07:00:00Z",
	}

	messages := buildVerificationMessages(req)

	assert.Equal(t, 2, len(messages))
	assert.Equal(t, llm.RoleSystem, messages[0].Role)
	assert.Equal(t, true, strings.Contains(messages[0].Content, "2026-02-26T07:00:00Z"))
	assert.Equal(t, llm.RoleUser, messages[1].Role)
	assert.Equal(t, true, strings.Contains(messages[1].Content, "<p>guide</p>"))
	assert.Equal(t, true, strings.Contains(messages[1].Content, "https://example.com/a"))
}

func TestBuildVerificationMessagesWithoutReference(t *testing.T) {
	req := Request{Content: "<p>guide</p>", SourceList: ""}

	messages := buildVerificationMessages(req)

	assert.Equal(t, 1, len(messages))
	assert.Equal(t, llm.RoleUser, messages[0].Role)
}

func TestParseProviderReply(t *testing.T) {
	verdict := parseProviderReply("Grok", "```json\n{\"passed\": false, \"issues\": [\"event already happened\"]}\n```")

	assert.Equal(t, StatusFail, verdict.Status)
	assert.Equal(t, []string{"event already happened"}, verdict.Issues)

	verdict = parseProviderReply("OpenAI", `{"passed": true, "issues": []}`)
	assert.Equal(t, StatusPass, verdict.Status)

	verdict = parseProviderReply("Grok", "I could not evaluate this")
	assert.Equal(t, StatusUnavailable, verdict.Status)
}
