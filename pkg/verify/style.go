package verify

import (
	"fmt"
	"regexp"
	"strings"

	"tripdraft/pkg/llm"
)

// StyleCheck is the result of the deterministic travel style validation.
type StyleCheck struct {
	IsValid bool     `json:"is_valid"`
	Issues  []string `json:"issues,omitempty"`
}

const minSubjectMentions = 3

var headingOrListItemPattern = regexp.MustCompile(`(?is)<(?:h[1-4]|li)[^>]*>(.*?)</(?:h[1-4]|li)>`)

var attractionTerms = []string{"must-see", "must see", "attraction", "things to do", "top sights", "highlights"}

var lodgingTerms = []string{"hotel", "lodge", "lodging", "accommodation", "resort", "inn ", "where to stay", "places to stay"}

var seasonalTerms = []string{"best time to visit", "season", "winter", "summer", "spring", "autumn", "fall ", "months"}

// VerifyTravelStyle checks that the HTML reads like a travel guide for the
// given destination: the destination is named often enough, attractions
// appear in a heading or list, and lodging and seasonal guidance are
// present. All checks run; each miss adds its own issue.
func VerifyTravelStyle(content, requiredSubject string) StyleCheck {
	text := llm.StripTags(content)
	lower := strings.ToLower(text)

	var issues []string

	if requiredSubject != "" {
		mentions := strings.Count(lower, strings.ToLower(requiredSubject))
		if mentions < minSubjectMentions {
			issues = append(issues, fmt.Sprintf(
				"destination %q is mentioned %d times, expected at least %d",
				requiredSubject, mentions, minSubjectMentions,
			))
		}
	}

	if !hasAttractionsSection(content) {
		issues = append(issues, "no heading or list naming must-see attractions")
	}

	if !containsAny(lower, lodgingTerms) {
		issues = append(issues, "no lodging recommendations (hotels, lodges, or where to stay)")
	}

	if !containsAny(lower, seasonalTerms) {
		issues = append(issues, "no seasonal guidance on the best time to visit")
	}

	return StyleCheck{IsValid: len(issues) == 0, Issues: issues}
}

func hasAttractionsSection(content string) bool {
	for _, m := range headingOrListItemPattern.FindAllStringSubmatch(content, -1) {
		if containsAny(strings.ToLower(m[1]), attractionTerms) {
			return true
		}
	}
	return false
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
