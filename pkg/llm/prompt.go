package llm

import (
	"fmt"
	"strings"
)

const guideSystemPrompt = `You are a travel editor writing a destination guide for a general audience.

### Rules

- Write long-form HTML only: <h2> section headings, <p> paragraphs, <ul>/<li> lists. No <html>, <head>, or <body> wrapper and no markdown
- Open with an overview of the destination, then cover must-see attractions, where to stay, and the best time to visit
- Name the destination frequently and naturally throughout the article
- Include a section listing must-see attractions as a heading plus a list
- Recommend specific lodging options (hotels, lodges, or inns)
- Give seasonal guidance: which months or seasons suit which activities
- Cite the provided source articles with inline <a href> links, using each source URL exactly as written
- Keep every factual claim consistent with the cited sources
- Never invent prices, opening hours, or event dates that the sources do not state`

// BuildGuidePrompt assembles the system and user prompts for one guide
// generation call. Sources are listed verbatim so the model can cite them
// by exact URL.
func BuildGuidePrompt(topic, subject string, sources []string, minimumLinks int) (string, string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Write a travel guide about: %s\n", topic))
	if subject != "" && subject != topic {
		sb.WriteString(fmt.Sprintf("The destination to feature is: %s\n", subject))
	}

	if len(sources) > 0 {
		sb.WriteString("\nSource articles to cite:\n")
		for _, src := range sources {
			sb.WriteString("- ")
			sb.WriteString(src)
			sb.WriteString("\n")
		}
	}
	if minimumLinks > 0 {
		sb.WriteString(fmt.Sprintf("\nCite at least the first %d source URLs as inline <a href> links.\n", minimumLinks))
	}

	return guideSystemPrompt, sb.String()
}
