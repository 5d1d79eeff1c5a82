package util

import (
	"github.com/quillforge/creator-api/pkg/creator_api/models"
)

func ToCreationSummary(creation *models.Creation) models.CreationSummary {
	return models.CreationSummary{
		Id:        creation.Id,
		OwnerId:   creation.OwnerId,
		Prompt:    creation.Prompt,
		Content:   creation.Content,
		Kind:      creation.Kind,
		Published: creation.Published,
		Likes:     creation.LikedBy(),
		CreatedAt: creation.CreatedAt,
	}
}

func ToCreationSummaries(creations []models.Creation) []models.CreationSummary {
	out := make([]models.CreationSummary, len(creations))
	for i := range creations {
		out[i] = ToCreationSummary(&creations[i])
	}
	return out
}
