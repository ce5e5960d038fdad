package models

// Category is an optional label a post may carry. Category management is
// plain attribute CRUD; posts whose category disappears fall back to the
// Uncategorized sentinel at read time.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}

// UncategorizedName is the sentinel substituted when a post references a
// category that no longer exists.
const UncategorizedName = "Uncategorized"

// Uncategorized returns the sentinel category used when enrichment cannot
// resolve a post's category.
func Uncategorized() Category {
	return Category{ID: 0, Name: UncategorizedName}
}
