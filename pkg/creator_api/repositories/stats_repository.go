package repositories

import (
	"context"

	"github.com/lib/pq"
	"github.com/quillforge/creator-api/pkg/creator_api/models"
	"gorm.io/gorm"
)

// StatsRepository provides aggregate queries over creations and likes.
// Queries are raw Postgres SQL; they back the read-only statistics
// endpoints and are not part of the creation lifecycle.
type StatsRepository interface {
	GetUsage(ctx context.Context) ([]KindUsageRow, error)
	GetTopCreations(ctx context.Context, limit int) ([]TopCreationRow, error)
}

type KindUsageRow struct {
	Kind      string
	Total     int
	Published int
	Likes     int
}

type TopCreationRow struct {
	Id        string
	OwnerId   string
	Kind      string
	LikeCount int
	LikedBy   pq.StringArray `gorm:"type:text[]"`
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetUsage(ctx context.Context) ([]KindUsageRow, error) {
	var rows []KindUsageRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
    c.kind AS kind,
    COUNT(*) AS total,
    COUNT(*) FILTER (WHERE c.published) AS published,
    COALESCE(SUM(l.like_count), 0) AS likes
FROM creations c
LEFT JOIN (
    SELECT creation_id, COUNT(*) AS like_count
    FROM creation_likes
    GROUP BY creation_id
) l ON l.creation_id = c.id
GROUP BY c.kind
ORDER BY c.kind`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *statsRepository) GetTopCreations(ctx context.Context, limit int) ([]TopCreationRow, error) {
	var rows []TopCreationRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
    c.id AS id,
    c.owner_id AS owner_id,
    c.kind AS kind,
    COUNT(cl.user_id) AS like_count,
    ARRAY_REMOVE(ARRAY_AGG(cl.user_id), NULL) AS liked_by
FROM creations c
LEFT JOIN creation_likes cl ON cl.creation_id = c.id
WHERE c.published = true
GROUP BY c.id, c.owner_id, c.kind
ORDER BY like_count DESC, c.created_at DESC
LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Aggregate turns per-kind rows into the usage DTO.
func Aggregate(rows []KindUsageRow) models.UsageStatistics {
	stats := models.UsageStatistics{Kinds: make([]models.KindUsage, 0, len(rows))}
	for _, row := range rows {
		stats.TotalCreations += row.Total
		stats.TotalLikes += row.Likes
		stats.Kinds = append(stats.Kinds, models.KindUsage{
			Kind:      models.CreationKind(row.Kind),
			Total:     row.Total,
			Published: row.Published,
			Likes:     row.Likes,
		})
	}
	return stats
}
