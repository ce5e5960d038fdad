package models

// Follow is a directed edge meaning the follower receives the followed
// user's posts in their feed. Edges are memoryless: no timestamps, and at
// most one edge per ordered (follower, followed) pair.
type Follow struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	FollowerID uint `gorm:"not null;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FollowedID uint `gorm:"not null;uniqueIndex:idx_follow_pair" json:"followed_id"`
}

// TableName pins the table name used by the raw edge queries.
func (Follow) TableName() string {
	return "follows"
}
