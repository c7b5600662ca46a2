package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client       *anthropic.Client
	defaultModel anthropic.Model
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		client:       &client,
		defaultModel: anthropic.Model("claude-sonnet-4-5"),
	}
}

func (c *AnthropicClient) Name() string {
	return "Anthropic"
}

func (c *AnthropicClient) Complete(ctx context.Context, req Request) (*Response, error) {
	model := c.defaultModel
	if req.Model != "" {
		model = anthropic.Model(req.Model)
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	params := anthropic.MessageNewParams{
		Model:     model,
		MaxTokens: maxTokens,
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}

	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			params.System = append(params.System, anthropic.TextBlockParam{Text: m.Content})
		default:
			params.Messages = append(params.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("no response from anthropic")
	}

	finishReason := ""
	if resp.StopReason == anthropic.StopReasonMaxTokens {
		finishReason = FinishLength
	}

	return &Response{
		Content:      resp.Content[0].Text,
		FinishReason: finishReason,
		ModelUsed:    string(model),
	}, nil
}
