package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/quillforge/creator-api/pkg/creator_api/middleware"
	"github.com/quillforge/creator-api/pkg/creator_api/models"
	"github.com/quillforge/creator-api/pkg/creator_api/services"
)

// CreationsController binds HTTP requests to the CreationService
type CreationsController struct {
	Service *services.CreationService
}

// NewCreationsController creates a new controller
func NewCreationsController(s *services.CreationService) *CreationsController {
	return &CreationsController{Service: s}
}

// ListOwnCreations handles GET /creations
func (c *CreationsController) ListOwnCreations(ctx *gin.Context) ([]models.CreationSummary, error) {
	id := middleware.Identity(ctx)
	return c.Service.ListByOwner(ctx.Request.Context(), id.UserId)
}

// ListPublishedCreations handles GET /creations/published
func (c *CreationsController) ListPublishedCreations(ctx *gin.Context) ([]models.CreationSummary, error) {
	return c.Service.ListPublished(ctx.Request.Context())
}

// RetrieveCreation handles GET /creations/:id
func (c *CreationsController) RetrieveCreation(ctx *gin.Context, params *models.CreationParams) (*models.CreationSummary, error) {
	id := middleware.Identity(ctx)
	return c.Service.Get(ctx.Request.Context(), params.Id, id.UserId)
}

// ToggleLike handles POST /creations/:id/like
func (c *CreationsController) ToggleLike(ctx *gin.Context, params *models.CreationParams) (*models.ToggleLikeResult, error) {
	id := middleware.Identity(ctx)
	return c.Service.ToggleLike(ctx.Request.Context(), params.Id, id.UserId)
}

// TogglePublish handles PATCH /creations/:id/publish
func (c *CreationsController) TogglePublish(ctx *gin.Context, body *models.TogglePublishInput) (*models.CreationSummary, error) {
	id := middleware.Identity(ctx)
	return c.Service.SetPublished(ctx.Request.Context(), body.Id, id.UserId, body.Published)
}
