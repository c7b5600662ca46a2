package links

import (
	"encoding/base64"
	"net/url"
	"regexp"
	"strings"
)

// resolver recognizes one wrapper URL format and recovers the wrapped
// target. Matching is best-effort: a resolver that does not recognize the
// URL reports ok=false and the next one is tried.
type resolver interface {
	Resolve(raw string) (target string, ok bool)
}

// wrapperResolvers is the allow-list of known wrapper formats, checked in
// order. New formats get a new entry here, nothing else changes.
var wrapperResolvers = []resolver{
	aggregatorResolver{},
	redirectParamResolver{},
}

// embeddedURLPattern matches an http(s) URL inside decoded binary blobs,
// restricted to characters that can legally appear in a URL.
var embeddedURLPattern = regexp.MustCompile(`https?://[A-Za-z0-9\-._~:/?#@!$&'()*+,;=%]+`)

// aggregatorResolver decodes news-aggregator article links whose path
// segment is a base64url blob with the real article URL embedded in it
// (the news.google.com /articles/<blob> shape).
type aggregatorResolver struct{}

func (aggregatorResolver) Resolve(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if strings.TrimPrefix(u.Host, "www.") != "news.google.com" {
		return "", false
	}

	var blob string
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, s := range segments {
		if (s == "articles" || s == "read") && i+1 < len(segments) {
			blob = segments[i+1]
		}
	}
	if blob == "" {
		return "", false
	}

	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(blob, "="))
	if err != nil {
		return "", false
	}

	// The blob packs the URL between length-prefixed fields; the longest
	// embedded http(s) run is the article URL.
	var longest string
	for _, m := range embeddedURLPattern.FindAllString(string(decoded), -1) {
		if len(m) > len(longest) {
			longest = m
		}
	}
	if longest == "" {
		return "", false
	}
	return longest, true
}

// redirectParamResolver handles generic redirect services that carry the
// target percent-encoded in a well-known query parameter.
type redirectParamResolver struct{}

var redirectParamNames = []string{"url", "u", "target", "dest", "redirect", "redirect_url"}

func (redirectParamResolver) Resolve(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.RawQuery == "" {
		return "", false
	}
	params := u.Query()
	for _, name := range redirectParamNames {
		v := params.Get(name)
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return v, true
		}
	}
	return "", false
}
