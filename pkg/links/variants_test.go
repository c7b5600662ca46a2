package links

import (
	"encoding/base64"
	"testing"

	"github.com/go-playground/assert/v2"
)

func containsVariant(variants []string, want string) bool {
	for _, v := range variants {
		if v == want {
			return true
		}
	}
	return false
}

func TestBuildURLVariantsAxes(t *testing.T) {
	variants := BuildURLVariants("https://www.example.com/story?utm_source=feed")

	assert.Equal(t, true, containsVariant(variants, "https://www.example.com/story?utm_source=feed"))
	assert.Equal(t, true, containsVariant(variants, "https://www.example.com/story"))
	assert.Equal(t, true, containsVariant(variants, "https://example.com/story"))
	assert.Equal(t, true, containsVariant(variants, "http://example.com/story"))
	assert.Equal(t, true, containsVariant(variants, "http://www.example.com/story?utm_source=feed"))
}

func TestBuildURLVariantsAddsWww(t *testing.T) {
	variants := BuildURLVariants("https://example.com/story")

	assert.Equal(t, true, containsVariant(variants, "https://www.example.com/story"))
	assert.Equal(t, true, containsVariant(variants, "http://example.com/story"))
}

func TestBuildURLVariantsDropsFragment(t *testing.T) {
	variants := BuildURLVariants("https://example.com/story#section-2")

	assert.Equal(t, true, containsVariant(variants, "https://example.com/story"))
}

func TestBuildURLVariantsUnparseable(t *testing.T) {
	variants := BuildURLVariants("not a url")

	assert.Equal(t, 1, len(variants))
	assert.Equal(t, "not a url", variants[0])
}

func TestAggregatorResolver(t *testing.T) {
	blob := base64.RawURLEncoding.EncodeToString([]byte("\x08\x13\x22https://example.com/real-story\xd2\x01\x02"))
	wrapped := "https://news.google.com/rss/articles/" + blob + "?oc=5"

	variants := BuildURLVariants(wrapped)

	assert.Equal(t, true, containsVariant(variants, "https://example.com/real-story"))
	assert.Equal(t, true, containsVariant(variants, "http://www.example.com/real-story"))
}

func TestAggregatorResolverIgnoresOtherHosts(t *testing.T) {
	target, ok := aggregatorResolver{}.Resolve("https://example.com/articles/abc123")

	assert.Equal(t, false, ok)
	assert.Equal(t, "", target)
}

func TestRedirectParamResolver(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{
			name: "url param",
			in:   "https://redirect.example.net/go?url=https%3A%2F%2Fexample.com%2Fstory",
			want: "https://example.com/story",
			ok:   true,
		},
		{
			name: "u param",
			in:   "https://t.example.net/click?u=https%3A%2F%2Fexample.com%2Fother",
			want: "https://example.com/other",
			ok:   true,
		},
		{
			name: "non-url value ignored",
			in:   "https://example.com/search?url=banana",
			want: "",
			ok:   false,
		},
		{
			name: "no query",
			in:   "https://example.com/story",
			want: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := redirectParamResolver{}.Resolve(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, target)
		})
	}
}
