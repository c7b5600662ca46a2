package verify

import (
	"context"
	"sync"
	"time"

	"tripdraft/pkg/search"
)

// Orchestrator fans the same guard-adjusted request out to every
// configured verifier and combines their verdicts.
type Orchestrator struct {
	verifiers []Verifier
}

// NewOrchestrator keeps verifiers in the order given; that order decides
// issue aggregation (streaming provider first). Nil entries are skipped,
// which is how an unconfigured provider stays out of the verdict.
func NewOrchestrator(verifiers ...Verifier) *Orchestrator {
	o := &Orchestrator{}
	for _, v := range verifiers {
		if v != nil {
			o.verifiers = append(o.verifiers, v)
		}
	}
	return o
}

// VerifyOutput fact-checks the generated HTML against its sources. It
// never returns an error: an inconclusive verdict is itself meaningful.
func (o *Orchestrator) VerifyOutput(ctx context.Context, content string, sources []search.Result) Verdict {
	reference, _ := DeriveReferenceTimestamp(sources, time.Now())
	req := Request{
		Content:      GuardContent(content),
		SourceList:   RenderSourceList(sources),
		ReferenceISO: reference,
	}

	results := make([]ProviderVerdict, len(o.verifiers))
	var wg sync.WaitGroup
	for i, v := range o.verifiers {
		wg.Add(1)
		go func(i int, v Verifier) {
			defer wg.Done()
			results[i] = v.Verify(ctx, req)
		}(i, v)
	}
	wg.Wait()

	return combineVerdicts(results)
}

// combineVerdicts applies the aggregation policy: every available
// provider must pass; an unavailable provider simply does not count.
func combineVerdicts(results []ProviderVerdict) Verdict {
	verdict := Verdict{Providers: results}

	available := 0
	passedAll := true
	for _, r := range results {
		if r.Status == StatusUnavailable {
			continue
		}
		available++
		if r.Status != StatusPass {
			passedAll = false
		}
		verdict.Issues = append(verdict.Issues, r.Issues...)
	}

	if available == 0 {
		verdict.Inconclusive = true
		return verdict
	}
	verdict.Passed = passedAll
	return verdict
}
