package providers

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/quillforge/creator-api/pkg/creator_api/helpers/httpclient"
)

// DocumentReviewer analyzes an uploaded document against a prompt.
// Separate from TextGenerator because the upstream API takes the raw
// document inline rather than plain text.
type DocumentReviewer interface {
	ReviewDocument(ctx context.Context, prompt, mimeType string, document []byte) (string, error)
}

type ReviewConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

const defaultReviewModel = "gemini-1.5-flash"

// RestReviewer calls a generateContent-style REST endpoint with the
// document passed as inline base64 data.
type RestReviewer struct {
	cfg ReviewConfig
}

func NewRestReviewer(cfg ReviewConfig) (*RestReviewer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("review provider: api key missing")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("review provider: base url missing")
	}
	if cfg.Model == "" {
		cfg.Model = defaultReviewModel
	}
	return &RestReviewer{cfg: cfg}, nil
}

type generateContentRequest struct {
	Contents []reviewContent `json:"contents"`
}

type reviewContent struct {
	Parts []reviewPart `json:"parts"`
}

type reviewPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *reviewInlineData `json:"inline_data,omitempty"`
}

type reviewInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (r *RestReviewer) ReviewDocument(ctx context.Context, prompt, mimeType string, document []byte) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", r.cfg.BaseURL, r.cfg.Model, r.cfg.APIKey)
	body := generateContentRequest{
		Contents: []reviewContent{{
			Parts: []reviewPart{
				{InlineData: &reviewInlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(document),
				}},
				{Text: prompt},
			},
		}},
	}

	var out generateContentResponse
	if err := httpclient.PostJSON(ctx, url, nil, body, &out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("review provider: empty response")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
