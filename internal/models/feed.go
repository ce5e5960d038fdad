package models

import "time"

// FeedComment is a comment as it appears under a feed post, oldest first,
// always carrying its author's identity.
type FeedComment struct {
	ID          uint        `json:"id"`
	CommentText string      `json:"comment_text"`
	CreatedAt   time.Time   `json:"created_at"`
	Author      UserSummary `json:"author"`
}

// FeedPost is one enriched entry of a personalized feed: the post plus its
// author, category, comments (with authors) and distinct likers. Join-table
// fields never surface; only user identity fields do.
type FeedPost struct {
	ID        uint          `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	User      UserSummary   `json:"user"`
	Category  Category      `json:"category"`
	Comments  []FeedComment `json:"comments"`
	Likers    []UserSummary `json:"likers"`
}
