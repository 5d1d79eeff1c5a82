package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"

	problem "github.com/quillforge/creator-api/pkg/creator_api/helpers/problem"
	"github.com/quillforge/creator-api/pkg/creator_api/models"
	"github.com/quillforge/creator-api/pkg/creator_api/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	premiumUser = models.Identity{UserId: "u1", Plan: models.PlanPremium}
	freeUser    = models.Identity{UserId: "u2", Plan: models.PlanFree}

	pngBytes = append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, bytes.Repeat([]byte{0}, 64)...)
	pdfBytes = []byte("%PDF-1.4 minimal resume document")
)

type stubText struct {
	out   string
	err   error
	calls int
}

func (s *stubText) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.out, s.err
}

type stubReviewer struct {
	out   string
	err   error
	calls int
}

func (s *stubReviewer) ReviewDocument(ctx context.Context, prompt, mimeType string, document []byte) (string, error) {
	s.calls++
	return s.out, s.err
}

type stubImages struct {
	out   []byte
	err   error
	calls int
}

func (s *stubImages) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	s.calls++
	return s.out, s.err
}

type stubMedia struct {
	asset *providers.Asset
	err   error
	calls int
}

func (s *stubMedia) Upload(ctx context.Context, image []byte, effect string) (*providers.Asset, error) {
	s.calls++
	return s.asset, s.err
}

func (s *stubMedia) TransformURL(publicId, effect string) string {
	return "https://cdn.test/e_" + effect + "/" + publicId
}

func newGenService(repo *stubRepo, text *stubText, reviewer *stubReviewer, images *stubImages, media *stubMedia) *GenerationService {
	if text == nil {
		text = &stubText{}
	}
	if reviewer == nil {
		reviewer = &stubReviewer{}
	}
	if images == nil {
		images = &stubImages{}
	}
	if media == nil {
		media = &stubMedia{}
	}
	return NewGenerationService(repo, text, reviewer, images, media)
}

func TestGenerateArticle_InsertsOnSuccess(t *testing.T) {
	repo := newStubRepo()
	text := &stubText{out: "the article"}
	svc := newGenService(repo, text, nil, nil, nil)

	res, err := svc.GenerateArticle(context.Background(), freeUser, &models.GenerateArticleInput{Prompt: "Go testing", Length: 700})
	require.NoError(t, err)
	assert.Equal(t, "the article", res.Content)

	require.Len(t, repo.creations, 1)
	for _, c := range repo.creations {
		assert.Equal(t, models.KindArticle, c.Kind)
		assert.Equal(t, freeUser.UserId, c.OwnerId)
		assert.False(t, c.Published)
		// the stored prompt is the full instruction, with the banding applied
		assert.Contains(t, c.Prompt, "Go testing")
		assert.Contains(t, c.Prompt, "500-800 words")
		assert.NotEmpty(t, c.Id)
	}
}

func TestGenerateArticle_ProviderFailureInsertsNothing(t *testing.T) {
	repo := newStubRepo()
	text := &stubText{err: errors.New("quota exceeded")}
	svc := newGenService(repo, text, nil, nil, nil)

	_, err := svc.GenerateArticle(context.Background(), freeUser, &models.GenerateArticleInput{Prompt: "topic"})
	require.Error(t, err)
	apiErr, ok := err.(problem.APIError)
	require.True(t, ok)
	assert.Equal(t, 502, apiErr.Status)
	assert.Empty(t, repo.creations)
}

func TestGenerateArticle_EmptyPromptSkipsProvider(t *testing.T) {
	repo := newStubRepo()
	text := &stubText{out: "unused"}
	svc := newGenService(repo, text, nil, nil, nil)

	_, err := svc.GenerateArticle(context.Background(), freeUser, &models.GenerateArticleInput{Prompt: "   "})
	require.Error(t, err)
	apiErr, ok := err.(problem.APIError)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)
	assert.Zero(t, text.calls)
	assert.Empty(t, repo.creations)
}

func TestGenerateTitle_InsertsTitleKind(t *testing.T) {
	repo := newStubRepo()
	text := &stubText{out: "  Ten Go Tips  "}
	svc := newGenService(repo, text, nil, nil, nil)

	res, err := svc.GenerateTitle(context.Background(), freeUser, &models.GenerateTitleInput{Keyword: "golang", Category: "Technology"})
	require.NoError(t, err)
	assert.Equal(t, "Ten Go Tips", res.Content)

	require.Len(t, repo.creations, 1)
	for _, c := range repo.creations {
		assert.Equal(t, models.KindTitle, c.Kind)
	}
}

func TestGenerateImage_PremiumGate(t *testing.T) {
	repo := newStubRepo()
	images := &stubImages{out: pngBytes}
	svc := newGenService(repo, nil, nil, images, &stubMedia{asset: &providers.Asset{PublicId: "p", SecureURL: "https://cdn.test/p"}})

	_, err := svc.GenerateImage(context.Background(), freeUser, &models.GenerateImageInput{Prompt: "a cat"})
	require.Error(t, err)
	apiErr, ok := err.(problem.APIError)
	require.True(t, ok)
	assert.Equal(t, 403, apiErr.Status)
	// gate rejects before any provider contact
	assert.Zero(t, images.calls)
	assert.Empty(t, repo.creations)
}

func TestGenerateImage_StoresSecureURL(t *testing.T) {
	repo := newStubRepo()
	images := &stubImages{out: pngBytes}
	media := &stubMedia{asset: &providers.Asset{PublicId: "p1", SecureURL: "https://cdn.test/p1.png"}}
	svc := newGenService(repo, nil, nil, images, media)

	res, err := svc.GenerateImage(context.Background(), premiumUser, &models.GenerateImageInput{Prompt: "a cat", Publish: true})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/p1.png", res.Content)

	require.Len(t, repo.creations, 1)
	for _, c := range repo.creations {
		assert.Equal(t, models.KindImage, c.Kind)
		assert.True(t, c.Published)
		assert.Equal(t, "a cat", c.Prompt)
	}
}

func TestRemoveBackground_UsesTransformingUpload(t *testing.T) {
	repo := newStubRepo()
	media := &stubMedia{asset: &providers.Asset{PublicId: "p1", SecureURL: "https://cdn.test/nobg.png"}}
	svc := newGenService(repo, nil, nil, nil, media)

	in := &models.RemoveBackgroundInput{Image: base64.StdEncoding.EncodeToString(pngBytes)}
	res, err := svc.RemoveBackground(context.Background(), premiumUser, in)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/nobg.png", res.Content)
	assert.Equal(t, 1, media.calls)

	for _, c := range repo.creations {
		assert.Equal(t, "Remove background from image", c.Prompt)
		assert.False(t, c.Published)
	}
}

func TestRemoveBackground_RejectsNonImagePayload(t *testing.T) {
	repo := newStubRepo()
	media := &stubMedia{asset: &providers.Asset{}}
	svc := newGenService(repo, nil, nil, nil, media)

	in := &models.RemoveBackgroundInput{Image: base64.StdEncoding.EncodeToString([]byte("just text"))}
	_, err := svc.RemoveBackground(context.Background(), premiumUser, in)
	require.Error(t, err)
	apiErr, ok := err.(problem.APIError)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)
	assert.Zero(t, media.calls)
}

func TestRemoveObject_BuildsTransformURL(t *testing.T) {
	repo := newStubRepo()
	media := &stubMedia{asset: &providers.Asset{PublicId: "p7", SecureURL: "https://cdn.test/p7.png"}}
	svc := newGenService(repo, nil, nil, nil, media)

	in := &models.RemoveObjectInput{
		Image:  base64.StdEncoding.EncodeToString(pngBytes),
		Object: "lamp",
	}
	res, err := svc.RemoveObject(context.Background(), premiumUser, in)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/e_gen_remove:lamp/p7", res.Content)

	for _, c := range repo.creations {
		assert.Equal(t, "Remove lamp from image", c.Prompt)
		assert.Equal(t, models.KindImage, c.Kind)
	}
}

func TestReviewResume_HappyPath(t *testing.T) {
	repo := newStubRepo()
	reviewer := &stubReviewer{out: "solid resume, 8/10"}
	svc := newGenService(repo, nil, reviewer, nil, nil)

	in := &models.ReviewResumeInput{Resume: base64.StdEncoding.EncodeToString(pdfBytes)}
	res, err := svc.ReviewResume(context.Background(), premiumUser, in)
	require.NoError(t, err)
	assert.Equal(t, "solid resume, 8/10", res.Content)

	for _, c := range repo.creations {
		assert.Equal(t, models.KindResume, c.Kind)
	}
}

func TestReviewResume_RejectsOversizeAndNonPDF(t *testing.T) {
	repo := newStubRepo()
	reviewer := &stubReviewer{out: "unused"}
	svc := newGenService(repo, nil, reviewer, nil, nil)

	big := bytes.Repeat([]byte("a"), maxResumeSize+1)
	copy(big, "%PDF")
	_, err := svc.ReviewResume(context.Background(), premiumUser, &models.ReviewResumeInput{
		Resume: base64.StdEncoding.EncodeToString(big),
	})
	require.Error(t, err)
	apiErr, ok := err.(problem.APIError)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)

	_, err = svc.ReviewResume(context.Background(), premiumUser, &models.ReviewResumeInput{
		Resume: base64.StdEncoding.EncodeToString([]byte("plain text, not a pdf")),
	})
	require.Error(t, err)
	apiErr, ok = err.(problem.APIError)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)

	assert.Zero(t, reviewer.calls)
	assert.Empty(t, repo.creations)
}

func TestReviewResume_PremiumGate(t *testing.T) {
	repo := newStubRepo()
	reviewer := &stubReviewer{out: "unused"}
	svc := newGenService(repo, nil, reviewer, nil, nil)

	_, err := svc.ReviewResume(context.Background(), freeUser, &models.ReviewResumeInput{
		Resume: base64.StdEncoding.EncodeToString(pdfBytes),
	})
	require.Error(t, err)
	apiErr, ok := err.(problem.APIError)
	require.True(t, ok)
	assert.Equal(t, 403, apiErr.Status)
	assert.Zero(t, reviewer.calls)
}

func TestDataURIPayloadAccepted(t *testing.T) {
	repo := newStubRepo()
	media := &stubMedia{asset: &providers.Asset{PublicId: "p1", SecureURL: "https://cdn.test/x.png"}}
	svc := newGenService(repo, nil, nil, nil, media)

	in := &models.RemoveBackgroundInput{
		Image: "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes),
	}
	_, err := svc.RemoveBackground(context.Background(), premiumUser, in)
	require.NoError(t, err)
}
