package verify

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tripdraft/pkg/llm"
	"tripdraft/pkg/search"
)

// Size guards. Oversized content is sliced per verifier call with an
// explicit notice so the model knows it is judging a prefix.
const (
	maxContentChars    = 12000
	maxSourceListChars = 2000

	contentTruncationNotice = "\n\n[content truncated for verification]"
	sourceTruncationNotice  = "\n[source list truncated]"
)

const verifierSystemPromptFormat = "The current date and time is %s. Treat this instant as now when judging whether events, openings, or seasonal claims are current."

const verifierInstructions = `You are a fact checker reviewing a travel article against its source articles.

Check that:
- factual claims are consistent with what the listed sources plausibly report
- no claim is stale or refers to events as upcoming when they are past
- cited URLs are used in a way consistent with their publishers

Output JSON only, no other text:
{
  "passed": true or false,
  "issues": ["specific issue 1", "specific issue 2"]
}
An empty issues list is required when passed is true.`

// GuardContent caps the HTML sent to a verifier, appending a truncation
// notice when sliced.
func GuardContent(content string) string {
	if len(content) <= maxContentChars {
		return content
	}
	return content[:maxContentChars] + contentTruncationNotice
}

// RenderSourceList formats the sources for the verifier prompt, under its
// own size guard.
func RenderSourceList(sources []search.Result) string {
	var sb strings.Builder
	for _, s := range sources {
		sb.WriteString("- ")
		sb.WriteString(s.Link)
		if s.Publisher != "" {
			sb.WriteString(" (")
			sb.WriteString(s.Publisher)
			if !s.PublishedAt.IsZero() {
				sb.WriteString(", published ")
				sb.WriteString(s.PublishedAt.UTC().Format(time.RFC3339))
			}
			sb.WriteString(")")
		}
		sb.WriteString("\n")
	}

	listing := sb.String()
	if len(listing) > maxSourceListChars {
		listing = listing[:maxSourceListChars] + sourceTruncationNotice
	}
	return listing
}

// buildVerificationMessages assembles the prompt for one verifier call.
// The reference timestamp rides in a system turn; without one the prompt
// is user-only.
func buildVerificationMessages(req Request) []llm.Message {
	var messages []llm.Message
	if req.ReferenceISO != "" {
		messages = append(messages, llm.Message{
			Role:    llm.RoleSystem,
			Content: fmt.Sprintf(verifierSystemPromptFormat, req.ReferenceISO),
		})
	}

	var sb strings.Builder
	sb.WriteString(verifierInstructions)
	sb.WriteString("\n\n## Sources\n")
	sb.WriteString(req.SourceList)
	sb.WriteString("\n## Article\n")
	sb.WriteString(req.Content)

	return append(messages, llm.Message{Role: llm.RoleUser, Content: sb.String()})
}

// parseProviderReply turns a verifier's free-text reply into a verdict.
// A reply that cannot be parsed yields no verdict rather than a fail.
func parseProviderReply(provider, content string) ProviderVerdict {
	var parsed struct {
		Passed bool     `json:"passed"`
		Issues []string `json:"issues"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSONResponse(content)), &parsed); err != nil {
		return ProviderVerdict{Provider: provider, Status: StatusUnavailable}
	}

	status := StatusPass
	if !parsed.Passed {
		status = StatusFail
	}
	return ProviderVerdict{Provider: provider, Status: status, Issues: parsed.Issues}
}
