package verify

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"

	"tripdraft/pkg/llm"
)

type fakeStreamingClient struct {
	replies []string
	errs    []error
	calls   int
}

func (f *fakeStreamingClient) CompleteStreaming(ctx context.Context, req llm.Request) (*llm.Response, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	reply := ""
	if i < len(f.replies) {
		reply = f.replies[i]
	}
	return &llm.Response{Content: reply}, nil
}

func TestGrokVerifierPass(t *testing.T) {
	client := &fakeStreamingClient{replies: []string{`{"passed": true, "issues": []}`}}
	v := NewGrokVerifier(client)

	verdict := v.Verify(context.Background(), Request{Content: "<p>guide</p>"})

	assert.Equal(t, StatusPass, verdict.Status)
	assert.Equal(t, 1, client.calls)
}

func TestGrokVerifierRetriesTransientFailure(t *testing.T) {
	client := &fakeStreamingClient{
		errs:    []error{errors.New("stream reset"), nil},
		replies: []string{"", `{"passed": false, "issues": ["stale claim"]}`},
	}
	v := NewGrokVerifier(client)

	verdict := v.Verify(context.Background(), Request{Content: "<p>guide</p>"})

	assert.Equal(t, 2, client.calls)
	assert.Equal(t, StatusFail, verdict.Status)
	assert.Equal(t, []string{"stale claim"}, verdict.Issues)
}

func TestGrokVerifierUnavailableAfterRetries(t *testing.T) {
	client := &fakeStreamingClient{
		errs: []error{errors.New("stream reset"), errors.New("stream reset")},
	}
	v := NewGrokVerifier(client)

	verdict := v.Verify(context.Background(), Request{Content: "<p>guide</p>"})

	assert.Equal(t, 2, client.calls)
	assert.Equal(t, StatusUnavailable, verdict.Status)
}

func TestGrokVerifierNoRetryAfterDeadline(t *testing.T) {
	client := &fakeStreamingClient{
		errs: []error{context.DeadlineExceeded, nil},
	}
	v := NewGrokVerifier(client)

	verdict := v.Verify(context.Background(), Request{Content: "<p>guide</p>"})

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, StatusUnavailable, verdict.Status)
}

type fakeChatClient struct {
	reply string
	err   error
}

func (f *fakeChatClient) Complete(ctx context.Context, req llm.Request) (*llm.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Response{Content: f.reply}, nil
}

func (f *fakeChatClient) Name() string { return "fake" }

func TestOpenAIVerifierPass(t *testing.T) {
	v := NewOpenAIVerifier(&fakeChatClient{reply: `{"passed": true, "issues": []}`})

	verdict := v.Verify(context.Background(), Request{Content: "<p>guide</p>"})

	assert.Equal(t, StatusPass, verdict.Status)
	assert.Equal(t, "OpenAI", verdict.Provider)
}

func TestOpenAIVerifierUnavailableOnError(t *testing.T) {
	v := NewOpenAIVerifier(&fakeChatClient{err: errors.New("connection refused")})

	verdict := v.Verify(context.Background(), Request{Content: "<p>guide</p>"})

	assert.Equal(t, StatusUnavailable, verdict.Status)
}
