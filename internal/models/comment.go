package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a post. It belongs to exactly one post and
// exactly one author.
type Comment struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CommentText string         `gorm:"type:text;not null" json:"comment_text"`
	PostID      uint           `gorm:"not null;index" json:"post_id"`
	UserID      uint           `gorm:"not null" json:"user_id"`
	User        User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
