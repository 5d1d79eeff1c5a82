package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/quillforge/creator-api/pkg/creator_api/middleware"
	"github.com/quillforge/creator-api/pkg/creator_api/models"
	"github.com/quillforge/creator-api/pkg/creator_api/services"
)

// GenerationController binds HTTP requests to the GenerationService
type GenerationController struct {
	Service *services.GenerationService
}

func NewGenerationController(s *services.GenerationService) *GenerationController {
	return &GenerationController{Service: s}
}

// GenerateArticle handles POST /generate/article
func (c *GenerationController) GenerateArticle(ctx *gin.Context, body *models.GenerateArticleInput) (*models.GenerationResult, error) {
	return c.Service.GenerateArticle(ctx.Request.Context(), middleware.Identity(ctx), body)
}

// GenerateTitle handles POST /generate/blog-title
func (c *GenerationController) GenerateTitle(ctx *gin.Context, body *models.GenerateTitleInput) (*models.GenerationResult, error) {
	return c.Service.GenerateTitle(ctx.Request.Context(), middleware.Identity(ctx), body)
}

// GenerateImage handles POST /generate/image
func (c *GenerationController) GenerateImage(ctx *gin.Context, body *models.GenerateImageInput) (*models.GenerationResult, error) {
	return c.Service.GenerateImage(ctx.Request.Context(), middleware.Identity(ctx), body)
}

// RemoveBackground handles POST /image/remove-background
func (c *GenerationController) RemoveBackground(ctx *gin.Context, body *models.RemoveBackgroundInput) (*models.GenerationResult, error) {
	return c.Service.RemoveBackground(ctx.Request.Context(), middleware.Identity(ctx), body)
}

// RemoveObject handles POST /image/remove-object
func (c *GenerationController) RemoveObject(ctx *gin.Context, body *models.RemoveObjectInput) (*models.GenerationResult, error) {
	return c.Service.RemoveObject(ctx.Request.Context(), middleware.Identity(ctx), body)
}

// ReviewResume handles POST /resume/review
func (c *GenerationController) ReviewResume(ctx *gin.Context, body *models.ReviewResumeInput) (*models.GenerationResult, error) {
	return c.Service.ReviewResume(ctx.Request.Context(), middleware.Identity(ctx), body)
}
