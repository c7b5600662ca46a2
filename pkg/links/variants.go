// Package links decides whether a source URL is actually cited inside
// generated HTML. Two URLs count as the same source when any of their
// spelling variants match: scheme, leading www, and query string are
// ignored, and known redirect/aggregator wrappers are resolved to the
// page they point at.
package links

import (
	"net/url"
	"strings"
)

// BuildURLVariants returns every equivalent spelling of a URL: the exact
// string, with/without query string, with/without a leading www, and the
// http/https swap of each. If the URL is a known wrapper (see resolver.go)
// the decoded target contributes its own variants too.
func BuildURLVariants(raw string) []string {
	seen := make(map[string]bool)
	var variants []string
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			variants = append(variants, v)
		}
	}
	collectVariants(raw, add, 0)
	return variants
}

// collectVariants walks wrapper targets at most two levels deep so a
// wrapped wrapper cannot loop forever.
func collectVariants(raw string, add func(string), depth int) {
	add(strings.TrimSpace(raw))
	for _, v := range expandVariants(raw) {
		add(v)
	}

	if depth >= 2 {
		return
	}
	for _, r := range wrapperResolvers {
		if target, ok := r.Resolve(raw); ok && target != raw {
			collectVariants(target, add, depth+1)
		}
	}
}

// expandVariants produces the cross product of the query/host/scheme axes
// for one parseable URL. Fragments never survive.
func expandVariants(raw string) []string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil
	}

	queries := []string{u.RawQuery}
	if u.RawQuery != "" {
		queries = append(queries, "")
	}

	hosts := []string{u.Host}
	if stripped := strings.TrimPrefix(u.Host, "www."); stripped != u.Host {
		hosts = append(hosts, stripped)
	} else {
		hosts = append(hosts, "www."+u.Host)
	}

	schemes := []string{u.Scheme}
	switch u.Scheme {
	case "http":
		schemes = append(schemes, "https")
	case "https":
		schemes = append(schemes, "http")
	}

	var out []string
	for _, q := range queries {
		for _, h := range hosts {
			for _, s := range schemes {
				v := *u
				v.RawQuery = q
				v.Host = h
				v.Scheme = s
				v.Fragment = ""
				out = append(out, v.String())
			}
		}
	}
	return out
}
