package models

import "time"

// CreationKind classifies what a creation holds: generated text or a media URL.
type CreationKind string

const (
	KindArticle CreationKind = "article"
	KindImage   CreationKind = "image"
	KindResume  CreationKind = "resume"
	KindTitle   CreationKind = "title"
)

// Valid reports whether k is one of the known creation kinds.
func (k CreationKind) Valid() bool {
	switch k {
	case KindArticle, KindImage, KindResume, KindTitle:
		return true
	}
	return false
}

// Plan tiers as supplied by the identity gateway.
const (
	PlanPremium = "premium"
	PlanFree    = "free"
)

type Creation struct {
	Id        string         `gorm:"column:id;primaryKey" json:"id"`
	OwnerId   string         `gorm:"column:owner_id;index;not null" json:"ownerId"`
	Prompt    string         `gorm:"column:prompt;not null" json:"prompt"`
	Content   string         `gorm:"column:content;not null" json:"content"`
	Kind      CreationKind   `gorm:"column:kind;not null;index" json:"kind"`
	Published bool           `gorm:"column:published;not null;default:false;index" json:"published"`
	Likes     []CreationLike `gorm:"foreignKey:CreationId;references:Id" json:"-"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"createdAt"`
}

func (Creation) TableName() string { return "creations" }

// CreationLike is one user's like on one creation. The composite primary
// key makes membership insert/delete atomic at the store and rules out
// duplicate entries.
type CreationLike struct {
	CreationId string    `gorm:"column:creation_id;primaryKey" json:"-"`
	UserId     string    `gorm:"column:user_id;primaryKey" json:"userId"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"-"`
}

func (CreationLike) TableName() string { return "creation_likes" }

// LikedBy returns the like set as plain user ids.
func (c *Creation) LikedBy() []string {
	out := make([]string, len(c.Likes))
	for i, l := range c.Likes {
		out[i] = l.UserId
	}
	return out
}

// HasLike reports exact-string membership of userId in the like set.
func (c *Creation) HasLike(userId string) bool {
	for _, l := range c.Likes {
		if l.UserId == userId {
			return true
		}
	}
	return false
}

// CreationSummary is the external view of a creation.
type CreationSummary struct {
	Id        string       `json:"id"`
	OwnerId   string       `json:"ownerId"`
	Prompt    string       `json:"prompt"`
	Content   string       `json:"content"`
	Kind      CreationKind `json:"kind"`
	Published bool         `json:"published"`
	Likes     []string     `json:"likes"`
	CreatedAt time.Time    `json:"createdAt"`
}

// ToggleLikeResult is returned after a like toggle: the action that was
// applied plus the refreshed community feed.
type ToggleLikeResult struct {
	Message   string            `json:"message"`
	Creations []CreationSummary `json:"creations"`
}
