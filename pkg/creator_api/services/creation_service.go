package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/quillforge/creator-api/pkg/creator_api/helpers/httpclient"
	problem "github.com/quillforge/creator-api/pkg/creator_api/helpers/problem"
	util "github.com/quillforge/creator-api/pkg/creator_api/helpers/util"
	"github.com/quillforge/creator-api/pkg/creator_api/models"
	"github.com/quillforge/creator-api/pkg/creator_api/repositories"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const (
	likedMessage   = "Creation Liked"
	unlikedMessage = "Creation Unliked"
)

// CreationService implements the creation lifecycle: listing, the like
// toggle and the publish switch.
type CreationService struct {
	repo repositories.CreationRepository
}

func NewCreationService(repo repositories.CreationRepository) *CreationService {
	return &CreationService{repo: repo}
}

// ListByOwner returns the caller's own creations, most recent first.
func (s *CreationService) ListByOwner(ctx context.Context, ownerId string) ([]models.CreationSummary, error) {
	creations, err := s.repo.ListByOwner(ctx, ownerId)
	if err != nil {
		return nil, err
	}
	return util.ToCreationSummaries(creations), nil
}

// ListPublished returns the community feed, most recent first.
func (s *CreationService) ListPublished(ctx context.Context) ([]models.CreationSummary, error) {
	creations, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	return util.ToCreationSummaries(creations), nil
}

// Get returns one creation when the caller owns it or it is published.
func (s *CreationService) Get(ctx context.Context, id, callerId string) (*models.CreationSummary, error) {
	creation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if creation == nil {
		return nil, problem.NewNotFound(id, "Creation not found")
	}
	if creation.OwnerId != callerId && !creation.Published {
		return nil, problem.NewNotFound(id, "Creation not found")
	}
	summary := util.ToCreationSummary(creation)
	return &summary, nil
}

// ToggleLike flips callerId's membership in the creation's like set.
// The message reflects the pre-update membership test; publication state
// is not consulted. The add/remove itself happens atomically at the
// store, so two concurrent first-time likes by different users both
// survive.
func (s *CreationService) ToggleLike(ctx context.Context, creationId, userId string) (*models.ToggleLikeResult, error) {
	if strings.TrimSpace(creationId) == "" {
		return nil, problem.NewBadRequest("id", "Invalid creation ID format",
			problem.InvalidParam{Name: "id", Reason: "must be a non-empty identifier"})
	}
	if strings.TrimSpace(userId) == "" {
		return nil, problem.NewUnauthorized("Invalid user ID format")
	}

	creation, err := s.repo.GetByID(ctx, creationId)
	if err != nil {
		return nil, err
	}
	if creation == nil {
		return nil, problem.NewNotFound(creationId, "Creation not found")
	}

	liked := creation.HasLike(userId)
	message := likedMessage
	if liked {
		message = unlikedMessage
		if _, err := s.repo.RemoveLike(ctx, creationId, userId); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.repo.AddLike(ctx, creationId, userId); err != nil {
			return nil, err
		}
	}

	creations, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ToggleLikeResult{
		Message:   message,
		Creations: util.ToCreationSummaries(creations),
	}, nil
}

// SetPublished switches a creation in or out of the feed. Owner only.
func (s *CreationService) SetPublished(ctx context.Context, id, callerId string, published bool) (*models.CreationSummary, error) {
	creation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if creation == nil {
		return nil, problem.NewNotFound(id, "Creation not found")
	}
	if creation.OwnerId != callerId {
		return nil, problem.NewForbidden(id, "Only the owner can publish or unpublish a creation")
	}
	if creation.Published != published {
		if err := s.repo.SetPublished(ctx, id, published); err != nil {
			return nil, err
		}
		creation.Published = published
	}
	summary := util.ToCreationSummary(creation)
	return &summary, nil
}

// AuditPublishedContent checks every published URL-backed creation and
// unpublishes the ones whose media no longer resolves. One dead link
// must not block the rest.
func (s *CreationService) AuditPublishedContent(ctx context.Context) error {
	creations, err := s.repo.ListPublished(ctx)
	if err != nil {
		return err
	}

	const maxConcurrent = 4
	sem := semaphore.NewWeighted(int64(maxConcurrent))
	g, ctx := errgroup.WithContext(ctx)

	for _, creation := range creations {
		if !strings.HasPrefix(creation.Content, "http") {
			continue
		}
		creation := creation

		if err := sem.Acquire(ctx, 1); err != nil {
			return err
		}
		g.Go(func() error {
			defer sem.Release(1)

			checkCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			ok, err := httpclient.CheckURL(checkCtx, creation.Content)
			if err != nil {
				log.Printf("[audit] skip creation=%s: check failed: %v", creation.Id, err)
				return nil
			}
			if !ok {
				log.Printf("[audit] unpublishing creation=%s: content unreachable", creation.Id)
				return s.repo.SetPublished(ctx, creation.Id, false)
			}
			return nil
		})
	}

	return g.Wait()
}
