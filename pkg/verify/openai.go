package verify

import (
	"context"
	"time"

	"tripdraft/pkg/llm"
)

const openAITimeout = 60 * time.Second

// OpenAIVerifier runs the non-streaming verification provider under its
// own timeout. No local retry; a failed or aborted call yields no verdict.
type OpenAIVerifier struct {
	client  llm.ChatClient
	model   string
	timeout time.Duration
}

func NewOpenAIVerifier(client llm.ChatClient) *OpenAIVerifier {
	return &OpenAIVerifier{client: client, timeout: openAITimeout}
}

func (v *OpenAIVerifier) Name() string {
	return "OpenAI"
}

func (v *OpenAIVerifier) Verify(ctx context.Context, req Request) ProviderVerdict {
	callCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	resp, err := v.client.Complete(callCtx, llm.Request{
		Model:     v.model,
		Messages:  buildVerificationMessages(req),
		MaxTokens: verifierMaxTokens,
	})
	if err != nil {
		return ProviderVerdict{Provider: v.Name(), Status: StatusUnavailable}
	}

	return parseProviderReply(v.Name(), resp.Content)
}
