package services

import (
	"context"

	"github.com/quillforge/creator-api/pkg/creator_api/models"
	"github.com/quillforge/creator-api/pkg/creator_api/repositories"
)

// StatsService exposes read-only aggregates over the creation store.
type StatsService struct {
	repo repositories.StatsRepository
}

func NewStatsService(repo repositories.StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) GetUsage(ctx context.Context) (*models.UsageStatistics, error) {
	rows, err := s.repo.GetUsage(ctx)
	if err != nil {
		return nil, err
	}
	stats := repositories.Aggregate(rows)
	return &stats, nil
}

func (s *StatsService) GetTopCreations(ctx context.Context, limit int) ([]models.TopCreation, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}
	rows, err := s.repo.GetTopCreations(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]models.TopCreation, len(rows))
	for i, row := range rows {
		out[i] = models.TopCreation{
			Id:        row.Id,
			OwnerId:   row.OwnerId,
			Kind:      models.CreationKind(row.Kind),
			LikeCount: row.LikeCount,
			LikedBy:   row.LikedBy,
		}
	}
	return out, nil
}
