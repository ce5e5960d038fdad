package models

import "time"

// Like records a user's endorsement of a post.
// The combination of UserID and PostID must be unique; the store enforces
// this atomically so concurrent likes cannot create duplicate edges.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_pair" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_pair" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName names the table for the raw edge queries.
func (Like) TableName() string {
	return "likes"
}
