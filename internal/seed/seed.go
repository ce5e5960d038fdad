// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/paulmayer-fullstacker/underworld-wizards/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder populates the database with demo data.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder returns a Seeder bound to the given database.
func NewSeeder(db *gorm.DB, seedVal int64) *Seeder {
	return &Seeder{
		db:  db,
		rng: rand.New(rand.NewSource(seedVal)),
	}
}

var (
	categoryNames = []string{
		"Programming", "DevOps", "Databases", "Frontend", "Backend",
		"Security", "Career", "Hardware",
	}

	demoUsernames = []string{
		"alice", "bob", "carol", "dave", "erin", "frank", "grace", "heidi",
		"ivan", "judy", "mallory", "niaj", "oscar", "peggy", "sybil", "trent",
	}

	titleAdjectives = []string{
		"Practical", "Modern", "Minimal", "Advanced", "Painless",
		"Surprising", "Essential", "Forgotten",
	}

	titleNouns = []string{
		"Testing", "Caching", "Indexing", "Deployment", "Refactoring",
		"Concurrency", "Observability", "Migrations",
	}
)

// ClearAll removes seeded rows in dependency order.
func (s *Seeder) ClearAll() error {
	log.Println("Cleaning database...")

	tables := []string{"likes", "follows", "comments", "posts", "categories", "users"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// Run seeds users, categories, posts, a follow mesh, comments and likes.
func (s *Seeder) Run(numUsers, numPosts int) error {
	users, err := s.seedUsers(numUsers)
	if err != nil {
		return err
	}

	categories, err := s.seedCategories()
	if err != nil {
		return err
	}

	posts, err := s.seedPosts(users, categories, numPosts)
	if err != nil {
		return err
	}

	if err := s.seedFollows(users); err != nil {
		return err
	}
	if err := s.seedComments(users, posts); err != nil {
		return err
	}
	if err := s.seedLikes(users, posts); err != nil {
		return err
	}

	log.Printf("Seeded %d users, %d categories, %d posts", len(users), len(categories), len(posts))
	return nil
}

func (s *Seeder) seedUsers(n int) ([]models.User, error) {
	// All demo accounts share one password so the hash is computed once.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		username := demoUsernames[i%len(demoUsernames)]
		if i >= len(demoUsernames) {
			username = fmt.Sprintf("%s%d", username, i/len(demoUsernames))
		}
		users = append(users, models.User{
			Username: username,
			Email:    username + "@example.com",
			Password: string(hash),
		})
	}

	if err := s.db.Create(&users).Error; err != nil {
		return nil, fmt.Errorf("seeding users: %w", err)
	}
	return users, nil
}

func (s *Seeder) seedCategories() ([]models.Category, error) {
	categories := make([]models.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		categories = append(categories, models.Category{Name: name})
	}
	if err := s.db.Create(&categories).Error; err != nil {
		return nil, fmt.Errorf("seeding categories: %w", err)
	}
	return categories, nil
}

func (s *Seeder) seedPosts(users []models.User, categories []models.Category, n int) ([]models.Post, error) {
	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rng.Intn(len(users))]
		title := fmt.Sprintf("%s %s",
			titleAdjectives[s.rng.Intn(len(titleAdjectives))],
			titleNouns[s.rng.Intn(len(titleNouns))])

		post := models.Post{
			Title:   title,
			Content: fmt.Sprintf("Some notes on %s, written by %s.", title, author.Username),
			UserID:  author.ID,
		}
		// Roughly one post in five stays uncategorized.
		if s.rng.Intn(5) != 0 {
			cat := categories[s.rng.Intn(len(categories))]
			post.CategoryID = &cat.ID
		}
		posts = append(posts, post)
	}

	if err := s.db.Create(&posts).Error; err != nil {
		return nil, fmt.Errorf("seeding posts: %w", err)
	}
	return posts, nil
}

// seedFollows gives every user a handful of outbound follows, skipping
// self-edges and duplicates.
func (s *Seeder) seedFollows(users []models.User) error {
	var follows []models.Follow
	seen := make(map[[2]uint]bool)

	for _, follower := range users {
		targets := 2 + s.rng.Intn(4)
		for i := 0; i < targets; i++ {
			followed := users[s.rng.Intn(len(users))]
			if followed.ID == follower.ID {
				continue
			}
			key := [2]uint{follower.ID, followed.ID}
			if seen[key] {
				continue
			}
			seen[key] = true
			follows = append(follows, models.Follow{
				FollowerID: follower.ID,
				FollowedID: followed.ID,
			})
		}
	}

	if len(follows) == 0 {
		return nil
	}
	if err := s.db.Create(&follows).Error; err != nil {
		return fmt.Errorf("seeding follows: %w", err)
	}
	return nil
}

func (s *Seeder) seedComments(users []models.User, posts []models.Post) error {
	var comments []models.Comment
	for _, post := range posts {
		count := s.rng.Intn(4)
		for i := 0; i < count; i++ {
			commenter := users[s.rng.Intn(len(users))]
			comments = append(comments, models.Comment{
				CommentText: fmt.Sprintf("Good point about %s.", post.Title),
				PostID:      post.ID,
				UserID:      commenter.ID,
			})
		}
	}

	if len(comments) == 0 {
		return nil
	}
	if err := s.db.Create(&comments).Error; err != nil {
		return fmt.Errorf("seeding comments: %w", err)
	}
	return nil
}

func (s *Seeder) seedLikes(users []models.User, posts []models.Post) error {
	var likes []models.Like
	seen := make(map[[2]uint]bool)

	for _, post := range posts {
		count := s.rng.Intn(6)
		for i := 0; i < count; i++ {
			liker := users[s.rng.Intn(len(users))]
			key := [2]uint{liker.ID, post.ID}
			if seen[key] {
				continue
			}
			seen[key] = true
			likes = append(likes, models.Like{
				UserID: liker.ID,
				PostID: post.ID,
			})
		}
	}

	if len(likes) == 0 {
		return nil
	}
	if err := s.db.Create(&likes).Error; err != nil {
		return fmt.Errorf("seeding likes: %w", err)
	}
	return nil
}
