package providers

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"github.com/quillforge/creator-api/pkg/creator_api/helpers/httpclient"
	"github.com/teris-io/shortid"
)

// Media effects understood by the transformation CDN. Object removal is
// parameterized: EffectRemoveObject + ":" + object name.
const (
	EffectRemoveBackground = "background_removal"
	EffectRemoveObject     = "gen_remove"
)

// Asset is a stored media object on the CDN.
type Asset struct {
	PublicId  string
	SecureURL string
}

// MediaStore uploads media to the hosting CDN and builds transformation
// delivery URLs. Background and object removal are entirely the CDN's
// capability; on our side they are parameterized URLs.
type MediaStore interface {
	Upload(ctx context.Context, image []byte, effect string) (*Asset, error)
	TransformURL(publicId, effect string) string
}

type MediaConfig struct {
	CloudName string
	APIKey    string
	UploadURL string
	// DeliveryURL is the base for transformation URLs, e.g.
	// https://cdn.example.com/<cloud>/image/upload
	DeliveryURL string
}

type restMediaStore struct {
	cfg MediaConfig
}

func NewRestMediaStore(cfg MediaConfig) (MediaStore, error) {
	if cfg.UploadURL == "" || cfg.DeliveryURL == "" {
		return nil, errors.New("media store: upload and delivery urls are required")
	}
	return &restMediaStore{cfg: cfg}, nil
}

type uploadRequest struct {
	File           string `json:"file"`
	PublicId       string `json:"public_id"`
	Transformation string `json:"transformation,omitempty"`
}

type uploadResponse struct {
	PublicId  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
}

func (m *restMediaStore) Upload(ctx context.Context, image []byte, effect string) (*Asset, error) {
	mime := http.DetectContentType(image)
	dataURI := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(image))

	body := uploadRequest{
		File:     dataURI,
		PublicId: "creation-" + shortid.MustGenerate(),
	}
	if effect != "" {
		body.Transformation = "e_" + effect
	}

	var headers map[string]string
	if m.cfg.APIKey != "" {
		headers = map[string]string{"Authorization": "Bearer " + m.cfg.APIKey}
	}

	var out uploadResponse
	if err := httpclient.PostJSON(ctx, m.cfg.UploadURL, headers, body, &out); err != nil {
		return nil, err
	}
	if out.SecureURL == "" {
		return nil, errors.New("media store: upload returned no url")
	}
	return &Asset{PublicId: out.PublicId, SecureURL: out.SecureURL}, nil
}

func (m *restMediaStore) TransformURL(publicId, effect string) string {
	return fmt.Sprintf("%s/e_%s/%s", m.cfg.DeliveryURL, effect, publicId)
}
