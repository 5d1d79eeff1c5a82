package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	problem "github.com/quillforge/creator-api/pkg/creator_api/helpers/problem"
	"github.com/quillforge/creator-api/pkg/creator_api/models"
	"github.com/quillforge/creator-api/pkg/creator_api/providers"
	"github.com/quillforge/creator-api/pkg/creator_api/repositories"
)

const maxResumeSize = 5 * 1024 * 1024

const premiumOnlyMessage = "This feature is only available for premium subscribers"

// GenerationService runs the provider-backed operations. Every operation
// has the same shape: validate, gate on plan where required, call the
// provider, and only on success insert a creation row.
type GenerationService struct {
	repo     repositories.CreationRepository
	text     providers.TextGenerator
	reviewer providers.DocumentReviewer
	images   providers.ImageGenerator
	media    providers.MediaStore
}

func NewGenerationService(
	repo repositories.CreationRepository,
	text providers.TextGenerator,
	reviewer providers.DocumentReviewer,
	images providers.ImageGenerator,
	media providers.MediaStore,
) *GenerationService {
	return &GenerationService{repo: repo, text: text, reviewer: reviewer, images: images, media: media}
}

// GenerateArticle writes a full article for a topic. Available on every
// plan. The stored prompt is the full instruction sent to the provider,
// not just the topic.
func (s *GenerationService) GenerateArticle(ctx context.Context, id models.Identity, in *models.GenerateArticleInput) (*models.GenerationResult, error) {
	topic := strings.TrimSpace(in.Prompt)
	if topic == "" {
		return nil, problem.NewBadRequest("prompt", "Article topic is required")
	}

	prompt := buildArticlePrompt(topic, in.Length)

	article, err := s.text.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("[generate] article failed for user=%s: %v", id.UserId, err)
		return nil, problem.NewBadGateway("Failed to generate article. Please try again.")
	}

	if err := s.insert(ctx, id.UserId, prompt, article, models.KindArticle, false); err != nil {
		return nil, err
	}
	return &models.GenerationResult{Content: article, Message: "Article generated successfully!"}, nil
}

// GenerateTitle produces a blog title for a keyword and category.
func (s *GenerationService) GenerateTitle(ctx context.Context, id models.Identity, in *models.GenerateTitleInput) (*models.GenerationResult, error) {
	keyword := strings.TrimSpace(in.Keyword)
	if keyword == "" {
		return nil, problem.NewBadRequest("keyword", "Keyword is required")
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "General"
	}

	prompt := fmt.Sprintf(
		"Generate a compelling, SEO-friendly blog title for the following topic:\n\nKeyword: %s\nCategory: %s\n\nThe title should be attention-grabbing, concise, and suitable for %s content.",
		keyword, category, strings.ToLower(category),
	)

	title, err := s.text.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("[generate] title failed for user=%s: %v", id.UserId, err)
		return nil, problem.NewBadGateway("Failed to generate blog title")
	}
	title = strings.TrimSpace(title)

	if err := s.insert(ctx, id.UserId, prompt, title, models.KindTitle, false); err != nil {
		return nil, err
	}
	return &models.GenerationResult{Content: title, Message: "Blog title generated successfully!"}, nil
}

// GenerateImage renders an image for a prompt and stores it on the CDN.
// Premium only; the publish flag comes from the caller.
func (s *GenerationService) GenerateImage(ctx context.Context, id models.Identity, in *models.GenerateImageInput) (*models.GenerationResult, error) {
	if !id.Premium() {
		return nil, problem.NewForbidden("plan", premiumOnlyMessage)
	}
	prompt := strings.TrimSpace(in.Prompt)
	if prompt == "" {
		return nil, problem.NewBadRequest("prompt", "Image prompt is required")
	}

	image, err := s.images.GenerateImage(ctx, prompt)
	if err != nil {
		log.Printf("[generate] image failed for user=%s: %v", id.UserId, err)
		return nil, problem.NewBadGateway("Failed to generate image")
	}

	asset, err := s.media.Upload(ctx, image, "")
	if err != nil {
		log.Printf("[generate] image upload failed for user=%s: %v", id.UserId, err)
		return nil, problem.NewBadGateway("Failed to store generated image")
	}

	if err := s.insert(ctx, id.UserId, prompt, asset.SecureURL, models.KindImage, in.Publish); err != nil {
		return nil, err
	}
	return &models.GenerationResult{Content: asset.SecureURL, Message: "Image generated successfully!"}, nil
}

// RemoveBackground uploads the image with the CDN's background removal
// transformation applied. Premium only.
func (s *GenerationService) RemoveBackground(ctx context.Context, id models.Identity, in *models.RemoveBackgroundInput) (*models.GenerationResult, error) {
	if !id.Premium() {
		return nil, problem.NewForbidden("plan", premiumOnlyMessage)
	}
	image, err := decodeImagePayload(in.Image)
	if err != nil {
		return nil, err
	}

	asset, err := s.media.Upload(ctx, image, providers.EffectRemoveBackground)
	if err != nil {
		log.Printf("[transform] background removal failed for user=%s: %v", id.UserId, err)
		return nil, problem.NewBadGateway("Failed to remove background")
	}

	if err := s.insert(ctx, id.UserId, "Remove background from image", asset.SecureURL, models.KindImage, false); err != nil {
		return nil, err
	}
	return &models.GenerationResult{Content: asset.SecureURL, Message: "Background removed successfully!"}, nil
}

// RemoveObject uploads the image untouched and returns a delivery URL
// with the CDN's generative object removal applied. Premium only.
func (s *GenerationService) RemoveObject(ctx context.Context, id models.Identity, in *models.RemoveObjectInput) (*models.GenerationResult, error) {
	if !id.Premium() {
		return nil, problem.NewForbidden("plan", premiumOnlyMessage)
	}
	object := strings.TrimSpace(in.Object)
	if object == "" {
		return nil, problem.NewBadRequest("object", "Object to remove is required")
	}
	image, err := decodeImagePayload(in.Image)
	if err != nil {
		return nil, err
	}

	asset, err := s.media.Upload(ctx, image, "")
	if err != nil {
		log.Printf("[transform] object removal upload failed for user=%s: %v", id.UserId, err)
		return nil, problem.NewBadGateway("Failed to remove object")
	}
	url := s.media.TransformURL(asset.PublicId, providers.EffectRemoveObject+":"+object)

	prompt := fmt.Sprintf("Remove %s from image", object)
	if err := s.insert(ctx, id.UserId, prompt, url, models.KindImage, false); err != nil {
		return nil, err
	}
	return &models.GenerationResult{Content: url, Message: "Successfully removed object from image!"}, nil
}

// ReviewResume sends the uploaded PDF to the document reviewer and
// stores the feedback. Premium only; the upload must be a PDF of at most
// 5 MiB.
func (s *GenerationService) ReviewResume(ctx context.Context, id models.Identity, in *models.ReviewResumeInput) (*models.GenerationResult, error) {
	if !id.Premium() {
		return nil, problem.NewForbidden("plan", premiumOnlyMessage)
	}

	document, err := decodePayload(in.Resume)
	if err != nil {
		return nil, problem.NewBadRequest("resume", "Resume must be valid base64 data")
	}
	if len(document) == 0 {
		return nil, problem.NewBadRequest("resume", "No file uploaded")
	}
	if len(document) > maxResumeSize {
		return nil, problem.NewBadRequest("resume", "The file size exceeds the allowed limit (5MB)")
	}
	if !bytes.HasPrefix(document, []byte("%PDF")) {
		return nil, problem.NewBadRequest("resume", "Please upload a valid PDF file")
	}

	prompt := resumeReviewPrompt

	feedback, err := s.reviewer.ReviewDocument(ctx, prompt, "application/pdf", document)
	if err != nil {
		log.Printf("[review] resume failed for user=%s: %v", id.UserId, err)
		return nil, problem.NewBadGateway("Failed to review resume")
	}

	if err := s.insert(ctx, id.UserId, prompt, feedback, models.KindResume, false); err != nil {
		return nil, err
	}
	return &models.GenerationResult{Content: feedback, Message: "Resume reviewed successfully!"}, nil
}

// insert persists the creation row. A failed insert after a successful
// provider call is the only path where generated content is lost; it is
// reported as a storage failure, never retried.
func (s *GenerationService) insert(ctx context.Context, ownerId, prompt, content string, kind models.CreationKind, published bool) error {
	creation := &models.Creation{
		Id:        uuid.New().String(),
		OwnerId:   ownerId,
		Prompt:    prompt,
		Content:   content,
		Kind:      kind,
		Published: published,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Save(ctx, creation); err != nil {
		log.Printf("[generate] insert failed for user=%s kind=%s: %v", ownerId, kind, err)
		return problem.NewInternalServerError()
	}
	return nil
}

func buildArticlePrompt(topic string, length int) string {
	wordCount := "1200+ words"
	targetWords := "long"
	switch {
	case length > 0 && length <= 800:
		wordCount = "500-800 words"
		targetWords = "short"
	case length > 800 && length <= 1200:
		wordCount = "800-1200 words"
		targetWords = "medium"
	}

	return fmt.Sprintf(`Write a comprehensive, well-structured article on the topic: %q

Requirements:
- Length: %s
- Professional and engaging tone
- Clear structure with introduction, main content, and conclusion
- Use proper headings and subheadings
- Make it informative and valuable to readers
- Include relevant examples where appropriate

Please write a %s article that provides real value to readers interested in this topic.`, topic, wordCount, targetWords)
}

const resumeReviewPrompt = `I have uploaded a PDF resume. Please analyze this resume and provide detailed feedback on:

STRENGTHS:
- Positive aspects of the resume
- Strong points in experience and skills

AREAS FOR IMPROVEMENT:
- Content gaps or weaknesses
- Missing information
- Better presentation suggestions

FORMATTING & STRUCTURE:
- Layout and organization feedback
- Readability improvements

RECOMMENDATIONS:
- Specific actionable steps
- Keywords to consider adding
- Industry best practices

OVERALL SCORE: Rate from 1-10 with explanation.

Please provide comprehensive, constructive feedback to help improve this resume.`

// decodePayload accepts raw base64 or a data URI.
func decodePayload(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if idx := strings.Index(payload, ";base64,"); idx >= 0 {
		payload = payload[idx+len(";base64,"):]
	}
	return base64.StdEncoding.DecodeString(payload)
}

func decodeImagePayload(payload string) ([]byte, error) {
	image, err := decodePayload(payload)
	if err != nil {
		return nil, problem.NewBadRequest("image", "Image must be valid base64 data")
	}
	if len(image) == 0 {
		return nil, problem.NewBadRequest("image", "No image uploaded")
	}
	if !strings.HasPrefix(http.DetectContentType(image), "image/") {
		return nil, problem.NewBadRequest("image", "Please upload a valid image file")
	}
	return image, nil
}
