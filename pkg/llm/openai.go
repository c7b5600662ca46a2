package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client       *openai.Client
	defaultModel openai.ChatModel
	name         string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:       &client,
		defaultModel: openai.ChatModelGPT4o,
		name:         "OpenAI",
	}
}

// NewXAIClient talks to the xAI endpoint, which speaks the OpenAI chat
// completion protocol.
func NewXAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL("https://api.x.ai/v1"),
	)
	return &OpenAIClient{
		client:       &client,
		defaultModel: "grok-3-latest",
		name:         "Grok",
	}
}

func (c *OpenAIClient) Name() string {
	return c.name
}

func (c *OpenAIClient) Complete(ctx context.Context, req Request) (*Response, error) {
	params := c.buildParams(req)

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s API error: %w", c.name, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from %s", c.name)
	}

	return &Response{
		Content:      resp.Choices[0].Message.Content,
		FinishReason: string(resp.Choices[0].FinishReason),
		ModelUsed:    string(params.Model),
	}, nil
}

func (c *OpenAIClient) CompleteStreaming(ctx context.Context, req Request) (*Response, error) {
	params := c.buildParams(req)

	stream := c.client.Chat.Completions.NewStreaming(ctx, params)
	acc := openai.ChatCompletionAccumulator{}
	for stream.Next() {
		acc.AddChunk(stream.Current())
	}
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("%s stream error: %w", c.name, err)
	}

	if len(acc.Choices) == 0 {
		return nil, fmt.Errorf("no response from %s", c.name)
	}

	return &Response{
		Content:      acc.Choices[0].Message.Content,
		FinishReason: string(acc.Choices[0].FinishReason),
		ModelUsed:    string(params.Model),
	}, nil
}

func (c *OpenAIClient) buildParams(req Request) openai.ChatCompletionNewParams {
	model := c.defaultModel
	if req.Model != "" {
		model = openai.ChatModel(req.Model)
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.MaxTokens)
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	return params
}
