package ai

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
)

// TextGenerator is the outbound call to an external generative model: one
// prompt, one structured-JSON response. There is no streaming and no retry,
// a failed or empty call falls straight to the blueprint path.
type TextGenerator interface {
	Generate(ctx context.Context, system, prompt, model string) (string, error)
}

type openAIGenerator struct {
	client       *openai.Client
	defaultModel string
}

// NewOpenAIGenerator builds a TextGenerator backed by an OpenAI-compatible
// chat completion API. baseURL may be empty for the default endpoint.
func NewOpenAIGenerator(apiKey, baseURL, defaultModel string) TextGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &openAIGenerator{
		client:       openai.NewClientWithConfig(cfg),
		defaultModel: defaultModel,
	}
}

func (g *openAIGenerator) Generate(ctx context.Context, system, prompt, model string) (string, error) {
	if model == "" {
		model = g.defaultModel
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
