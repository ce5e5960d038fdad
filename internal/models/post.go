package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a blog post. A post is owned exclusively by its author;
// deleting the post cascades to its comments and likes.
type Post struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Title      string         `gorm:"not null" json:"title"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	User       User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CategoryID *uint          `gorm:"index" json:"category_id,omitempty"`
	Category   *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
