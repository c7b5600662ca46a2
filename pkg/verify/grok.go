package verify

import (
	"context"
	"errors"
	"time"

	"tripdraft/pkg/llm"
)

const (
	grokTimeout       = 90 * time.Second
	verifierMaxTokens = 1024
)

// GrokVerifier runs the streaming verification provider. The streamed
// fragments are aggregated into one completion before parsing, and one
// retry covers transient stream failures. A timeout means no verdict,
// not a failure.
type GrokVerifier struct {
	client  llm.StreamingChatClient
	model   string
	timeout time.Duration
}

func NewGrokVerifier(client llm.StreamingChatClient) *GrokVerifier {
	return &GrokVerifier{client: client, timeout: grokTimeout}
}

func (v *GrokVerifier) Name() string {
	return "Grok"
}

func (v *GrokVerifier) Verify(ctx context.Context, req Request) ProviderVerdict {
	messages := buildVerificationMessages(req)

	var resp *llm.Response
	var err error
	for attempt := 1; attempt <= 2; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, v.timeout)
		resp, err = v.client.CompleteStreaming(callCtx, llm.Request{
			Model:     v.model,
			Messages:  messages,
			MaxTokens: verifierMaxTokens,
		})
		cancel()
		if err == nil {
			break
		}
		// The deadline aborted the call; retrying would just time out again.
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			break
		}
	}
	if err != nil {
		return ProviderVerdict{Provider: v.Name(), Status: StatusUnavailable}
	}

	return parseProviderReply(v.Name(), resp.Content)
}
