package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"tripdraft/pkg/links"
)

// Generation constants. Citation-bearing output is generated at a low
// temperature; the single retry asks for strictly more output tokens than
// the first attempt, doubling up to the cap.
const (
	factualTemperature    = 0.3
	defaultMaxTokens      = 4096
	retryMaxTokensCap     = 8192
	retryMaxTokensBump    = 1024
	maxCompletionAttempts = 2
)

type GenerateRequest struct {
	Prompt       string
	Model        string
	Sources      []string
	SystemPrompt string
	MinimumLinks int
	MaxTokens    int64
	MinLength    int
}

// GenerateWithLinks produces HTML that cites at least the first
// MinimumLinks sources. It issues at most two completion calls: the retry
// fires on truncation, under-length output, or missing citations, and any
// sources still uncited after that are spliced in deterministically.
// Citation shortfalls never surface as errors; only a failed completion
// call does.
func GenerateWithLinks(ctx context.Context, client ChatClient, req GenerateRequest) (string, error) {
	required := requiredSources(req.Sources, req.MinimumLinks)

	messages := make([]Message, 0, 3)
	if req.SystemPrompt != "" {
		messages = append(messages, Message{Role: RoleSystem, Content: req.SystemPrompt})
	}
	messages = append(messages, Message{Role: RoleUser, Content: req.Prompt})

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	var content string
	for attempt := 1; attempt <= maxCompletionAttempts; attempt++ {
		resp, err := client.Complete(ctx, Request{
			Model:       req.Model,
			Messages:    messages,
			MaxTokens:   maxTokens,
			Temperature: factualTemperature,
		})
		if err != nil {
			return "", fmt.Errorf("%s completion: %w", client.Name(), err)
		}
		content = cleanModelOutput(resp.Content)

		if attempt == maxCompletionAttempts {
			break
		}

		truncated := resp.FinishReason == FinishLength
		tooShort := req.MinLength > 0 && len(StripTags(content)) < req.MinLength
		missing := links.FindMissingSources(content, required)
		if !truncated && !tooShort && len(missing) == 0 {
			return content, nil
		}

		maxTokens = nextTokenBudget(maxTokens)
		if len(missing) > 0 {
			messages = append(messages, Message{Role: RoleUser, Content: missingSourcesMessage(missing)})
		}
	}

	return injectMissingCitations(content, links.FindMissingSources(content, required)), nil
}

// requiredSources keeps the first minimumLinks sources. Anything beyond
// that is optional and never enforced; minimumLinks of zero disables
// enforcement entirely.
func requiredSources(sources []string, minimumLinks int) []string {
	if minimumLinks <= 0 {
		return nil
	}
	if minimumLinks < len(sources) {
		return sources[:minimumLinks]
	}
	return sources
}

func nextTokenBudget(current int64) int64 {
	next := current * 2
	if next > retryMaxTokensCap {
		next = retryMaxTokensCap
	}
	if next <= current {
		next = current + retryMaxTokensBump
	}
	return next
}

func missingSourcesMessage(missing []string) string {
	var sb strings.Builder
	sb.WriteString("Citation check failed. The article does not contain links to these exact source URLs:\n")
	for _, m := range missing {
		sb.WriteString("- ")
		sb.WriteString(m)
		sb.WriteString("\n")
	}
	sb.WriteString("\nRewrite the article so that every URL above appears as an <a href> citation, using each URL exactly as written.")
	return sb.String()
}

var paragraphClosePattern = regexp.MustCompile(`(?i)</p>`)

// injectMissingCitations splices a citation anchor for every missing
// source into the HTML. Citations are spread round-robin across existing
// paragraph blocks; when the HTML has none, each missing source gets its
// own trailing source line instead.
func injectMissingCitations(content string, missing []string) string {
	if len(missing) == 0 {
		return content
	}

	closings := paragraphClosePattern.FindAllStringIndex(content, -1)
	if len(closings) == 0 {
		var sb strings.Builder
		sb.WriteString(content)
		for _, src := range missing {
			sb.WriteString(fmt.Sprintf("\n<p>Source: <a href=\"%s\" target=\"_blank\" rel=\"noopener\">%s</a></p>", src, src))
		}
		return sb.String()
	}

	markers := make([][]string, len(closings))
	for i, src := range missing {
		p := i % len(closings)
		markers[p] = append(markers[p], fmt.Sprintf(" (<a href=\"%s\" target=\"_blank\" rel=\"noopener\">Source</a>)", src))
	}

	var sb strings.Builder
	last := 0
	for i, loc := range closings {
		sb.WriteString(content[last:loc[0]])
		for _, m := range markers[i] {
			sb.WriteString(m)
		}
		last = loc[0]
	}
	sb.WriteString(content[last:])
	return sb.String()
}

// cleanModelOutput strips the markdown fence wrappers models sometimes put
// around HTML output.
func cleanModelOutput(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```html")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags reduces HTML to its text content.
func StripTags(content string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(content, " "))
}

// CleanJSONResponse strips code fences and surrounding prose from a
// model reply that is supposed to be a single JSON object.
func CleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
