package providers

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/quillforge/creator-api/pkg/creator_api/helpers/httpclient"
)

// ImageGenerator renders an image for a text prompt and returns the raw
// PNG bytes.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

type ImageConfig struct {
	APIKey string
	URL    string
}

// RestImageGenerator calls a stable-diffusion-style text-to-image REST
// endpoint that answers with base64 artifacts.
type RestImageGenerator struct {
	cfg ImageConfig
}

func NewRestImageGenerator(cfg ImageConfig) (*RestImageGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("image provider: api key missing")
	}
	if cfg.URL == "" {
		return nil, errors.New("image provider: url missing")
	}
	return &RestImageGenerator{cfg: cfg}, nil
}

type textToImageRequest struct {
	TextPrompts []textPrompt `json:"text_prompts"`
	CfgScale    int          `json:"cfg_scale"`
	Height      int          `json:"height"`
	Width       int          `json:"width"`
	Samples     int          `json:"samples"`
	Steps       int          `json:"steps"`
}

type textPrompt struct {
	Text string `json:"text"`
}

type textToImageResponse struct {
	Artifacts []struct {
		Base64 string `json:"base64"`
	} `json:"artifacts"`
}

func (g *RestImageGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	body := textToImageRequest{
		TextPrompts: []textPrompt{{Text: prompt}},
		CfgScale:    7,
		Height:      1024,
		Width:       1024,
		Samples:     1,
		Steps:       30,
	}
	headers := map[string]string{"Authorization": "Bearer " + g.cfg.APIKey}

	var out textToImageResponse
	if err := httpclient.PostJSON(ctx, g.cfg.URL, headers, body, &out); err != nil {
		return nil, err
	}
	if len(out.Artifacts) == 0 {
		return nil, errors.New("image provider: no artifacts returned")
	}
	return base64.StdEncoding.DecodeString(out.Artifacts[0].Base64)
}
