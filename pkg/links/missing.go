package links

import (
	"html"
	"regexp"
)

var anchorHrefPattern = regexp.MustCompile(`(?i)<a\s[^>]*?href\s*=\s*(?:"([^"]*)"|'([^']*)')`)

// ExtractAnchorHrefs returns every anchor href value in the HTML,
// entity-decoded, in document order.
func ExtractAnchorHrefs(content string) []string {
	var hrefs []string
	for _, m := range anchorHrefPattern.FindAllStringSubmatch(content, -1) {
		href := m[1]
		if href == "" {
			href = m[2]
		}
		if href != "" {
			hrefs = append(hrefs, html.UnescapeString(href))
		}
	}
	return hrefs
}

// FindMissingSources reports which required source URLs are not cited in
// the HTML. A source counts as cited when any of its variants matches any
// variant of any anchor href, so tracking-query, scheme, and wrapper
// differences do not produce false negatives. Order follows required.
func FindMissingSources(content string, required []string) []string {
	cited := make(map[string]bool)
	for _, href := range ExtractAnchorHrefs(content) {
		for _, v := range BuildURLVariants(href) {
			cited[v] = true
		}
	}

	var missing []string
	for _, source := range required {
		found := false
		for _, v := range BuildURLVariants(source) {
			if cited[v] {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, source)
		}
	}
	return missing
}
