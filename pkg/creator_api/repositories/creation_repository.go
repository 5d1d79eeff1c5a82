package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/quillforge/creator-api/pkg/creator_api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreationRepository interface {
	Save(ctx context.Context, creation *models.Creation) error
	GetByID(ctx context.Context, id string) (*models.Creation, error)
	ListByOwner(ctx context.Context, ownerId string) ([]models.Creation, error)
	ListPublished(ctx context.Context) ([]models.Creation, error)
	AddLike(ctx context.Context, creationId, userId string) (bool, error)
	RemoveLike(ctx context.Context, creationId, userId string) (bool, error)
	ReplaceLikes(ctx context.Context, creationId string, likes []string) error
	SetPublished(ctx context.Context, id string, published bool) error
}

type creationRepository struct {
	db *gorm.DB
}

func NewCreationRepository(db *gorm.DB) CreationRepository {
	return &creationRepository{db: db}
}

func (r *creationRepository) Save(ctx context.Context, creation *models.Creation) error {
	return r.db.WithContext(ctx).Create(creation).Error
}

// GetByID returns the creation with its like rows, or nil when absent.
func (r *creationRepository) GetByID(ctx context.Context, id string) (*models.Creation, error) {
	var creation models.Creation
	err := r.db.WithContext(ctx).
		Preload("Likes").
		First(&creation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &creation, nil
}

func (r *creationRepository) ListByOwner(ctx context.Context, ownerId string) ([]models.Creation, error) {
	var creations []models.Creation
	err := r.db.WithContext(ctx).
		Preload("Likes").
		Where("owner_id = ?", ownerId).
		Order("created_at DESC").
		Find(&creations).Error
	return creations, err
}

func (r *creationRepository) ListPublished(ctx context.Context) ([]models.Creation, error) {
	var creations []models.Creation
	err := r.db.WithContext(ctx).
		Preload("Likes").
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&creations).Error
	return creations, err
}

// AddLike inserts the membership row. The conflict clause on the
// composite key makes concurrent first-time likes by different users both
// stick, and a repeated like by the same user a no-op. Returns whether a
// row was actually added.
func (r *creationRepository) AddLike(ctx context.Context, creationId, userId string) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.CreationLike{
			CreationId: creationId,
			UserId:     userId,
			CreatedAt:  time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *creationRepository) RemoveLike(ctx context.Context, creationId, userId string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("creation_id = ? AND user_id = ?", creationId, userId).
		Delete(&models.CreationLike{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ReplaceLikes overwrites the whole like set in one transaction. This is
// the last-writer-wins primitive kept for imports and admin repair; the
// toggle path uses AddLike/RemoveLike instead.
func (r *creationRepository) ReplaceLikes(ctx context.Context, creationId string, likes []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("creation_id = ?", creationId).
			Delete(&models.CreationLike{}).Error; err != nil {
			return err
		}
		now := time.Now()
		for _, userId := range likes {
			row := models.CreationLike{CreationId: creationId, UserId: userId, CreatedAt: now}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *creationRepository) SetPublished(ctx context.Context, id string, published bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Creation{}).
		Where("id = ?", id).
		Update("published", published).Error
}
