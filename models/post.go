package models

import "time"

type PostType string

const (
	SOCIAL       PostType = "social"
	PROFESSIONAL PostType = "professional"
	STORY        PostType = "story"
)

// Post - a feed entry owned by a user. Image is a pointer so an omitted
// image stays NULL instead of an empty string. Likes is never incremented
// by any endpoint yet.
type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"index" json:"user_id"`
	Content   string    `gorm:"type:text" json:"content"`
	Image     *string   `gorm:"size:255" json:"image"`
	Type      PostType  `gorm:"size:20;default:social;index" json:"type"`
	Likes     int64     `gorm:"default:0" json:"likes"`
	CreatedAt time.Time `gorm:"index;autoCreateTime" json:"created_at"`
}

func (Post) TableName() string {
	return "posts"
}

// FeedPost - a posts row joined with the owning user's public fields,
// the shape returned by the feed endpoint.
type FeedPost struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Content     string    `json:"content"`
	Image       *string   `json:"image"`
	Type        PostType  `json:"type"`
	Likes       int64     `json:"likes"`
	CreatedAt   time.Time `json:"created_at"`
	DisplayName string    `json:"display_name"`
	Username    string    `json:"username"`
	Avatar      string    `json:"avatar"`
}
