// Package verify fact-checks generated guide HTML against its source list
// using two independent LLM providers, and runs a deterministic travel
// style check. Provider verdicts are tri-state: a provider that timed out
// or is not configured is unavailable, which is neither a pass nor a fail.
package verify

import "context"

type Status string

const (
	StatusPass        Status = "pass"
	StatusFail        Status = "fail"
	StatusUnavailable Status = "unavailable"
)

// ProviderVerdict is the judgment of one verification provider.
type ProviderVerdict struct {
	Provider string   `json:"provider"`
	Status   Status   `json:"status"`
	Issues   []string `json:"issues,omitempty"`
}

// Verdict combines all provider verdicts. Passed is true only when every
// available provider passed; Inconclusive is true when no provider
// produced a verdict at all.
type Verdict struct {
	Passed       bool              `json:"passed"`
	Inconclusive bool              `json:"inconclusive"`
	Providers    []ProviderVerdict `json:"providers"`
	Issues       []string          `json:"issues,omitempty"`
}

// Request is the guard-adjusted input handed to each verifier. Content and
// SourceList are already truncated copies; the original HTML is never
// mutated.
type Request struct {
	Content      string
	SourceList   string
	ReferenceISO string
}

type Verifier interface {
	Name() string
	Verify(ctx context.Context, req Request) ProviderVerdict
}
