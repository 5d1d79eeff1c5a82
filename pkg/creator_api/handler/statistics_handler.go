package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/quillforge/creator-api/pkg/creator_api/models"
	"github.com/quillforge/creator-api/pkg/creator_api/services"
)

type StatisticsController struct {
	Service *services.StatsService
}

func NewStatisticsController(s *services.StatsService) *StatisticsController {
	return &StatisticsController{Service: s}
}

func (c *StatisticsController) GetUsage(ctx *gin.Context) (*models.UsageStatistics, error) {
	return c.Service.GetUsage(ctx.Request.Context())
}

func (c *StatisticsController) GetTopCreations(ctx *gin.Context, p *models.TopCreationsParams) ([]models.TopCreation, error) {
	return c.Service.GetTopCreations(ctx.Request.Context(), p.Limit)
}
