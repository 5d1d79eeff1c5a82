package providers

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultTextModel = "gpt-4o-mini"

// OpenAIText implements TextGenerator using the official openai-go SDK
// (chat completions).
type OpenAIText struct {
	model string
	opts  []option.RequestOption
}

func NewOpenAIText(cfg TextConfig) (*OpenAIText, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("text provider: api key missing")
	}
	model := cfg.Model
	if model == "" {
		model = defaultTextModel
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIText{model: model, opts: opts}, nil
}

func (o *OpenAIText) GenerateText(ctx context.Context, prompt string) (string, error) {
	client := openai.NewClient(o.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are a professional content writer."),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("text provider: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
