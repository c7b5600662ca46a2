package llm

import "context"

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// FinishLength is the finish reason providers report when the completion
// was cut off by the output token limit.
const FinishLength = "length"

type Message struct {
	Role    string
	Content string
}

type Request struct {
	Model       string
	Messages    []Message
	MaxTokens   int64
	Temperature float64
}

type Response struct {
	Content      string
	FinishReason string
	ModelUsed    string
}

type ChatClient interface {
	Complete(ctx context.Context, req Request) (*Response, error)
	Name() string
}

// StreamingChatClient aggregates a streamed completion into the same
// Response shape as Complete.
type StreamingChatClient interface {
	CompleteStreaming(ctx context.Context, req Request) (*Response, error)
}
