package models

// CreationParams identifies a single creation in path-bound requests.
type CreationParams struct {
	Id string `path:"id" validate:"required"`
}

// TogglePublishInput switches a creation in or out of the community feed.
type TogglePublishInput struct {
	Id        string `path:"id" validate:"required"`
	Published bool   `json:"published"`
}

// GenerateArticleInput is the request body for article generation.
type GenerateArticleInput struct {
	Prompt string `json:"prompt" binding:"required" validate:"required"`
	Length int    `json:"length"`
}

// GenerateTitleInput is the request body for blog title generation.
type GenerateTitleInput struct {
	Keyword  string `json:"keyword" binding:"required" validate:"required"`
	Category string `json:"category"`
}

// GenerateImageInput is the request body for text-to-image generation.
type GenerateImageInput struct {
	Prompt  string `json:"prompt" binding:"required" validate:"required"`
	Publish bool   `json:"publish"`
}

// RemoveBackgroundInput carries the raw image, base64 encoded. Upload
// staging is the client's concern; the API only sees bytes.
type RemoveBackgroundInput struct {
	Image string `json:"image" binding:"required" validate:"required"`
}

// RemoveObjectInput carries the raw image plus the object to erase.
type RemoveObjectInput struct {
	Image  string `json:"image" binding:"required" validate:"required"`
	Object string `json:"object" binding:"required" validate:"required"`
}

// ReviewResumeInput carries a PDF resume, base64 encoded.
type ReviewResumeInput struct {
	Resume string `json:"resume" binding:"required" validate:"required"`
}

// GenerationResult is the common response for all generation endpoints.
type GenerationResult struct {
	Content string `json:"content"`
	Message string `json:"message"`
}

// UsageStatistics aggregates creation counts per kind.
type UsageStatistics struct {
	TotalCreations int         `json:"totalCreations"`
	TotalLikes     int         `json:"totalLikes"`
	Kinds          []KindUsage `json:"kinds"`
}

type KindUsage struct {
	Kind      CreationKind `json:"kind"`
	Total     int          `json:"total"`
	Published int          `json:"published"`
	Likes     int          `json:"likes"`
}

// TopCreationsParams bounds the top-liked listing.
type TopCreationsParams struct {
	Limit int `query:"limit"`
}

// TopCreation is one entry of the top-liked listing.
type TopCreation struct {
	Id        string       `json:"id"`
	OwnerId   string       `json:"ownerId"`
	Kind      CreationKind `json:"kind"`
	LikeCount int          `json:"likeCount"`
	LikedBy   []string     `json:"likedBy"`
}
