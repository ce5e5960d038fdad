package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paulmayer-fullstacker/underworld-wizards/internal/models"
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/repository"

	"golang.org/x/sync/errgroup"
)

// FeedService computes personalized feeds: it resolves the viewer's follow
// graph into a set of visible authors, fetches their posts in feed order and
// attaches social metadata in bulk. Enrichment runs as batched queries keyed
// by the id set, never one query per post.
type FeedService struct {
	graphRepo    repository.GraphRepository
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	timeout      time.Duration
}

// NewFeedService returns a new FeedService. timeout bounds one feed
// resolution end to end; past it the request fails rather than serve a
// partial feed.
func NewFeedService(
	graphRepo repository.GraphRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	timeout time.Duration,
) *FeedService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &FeedService{
		graphRepo:    graphRepo,
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		timeout:      timeout,
	}
}

// GetFeed returns the viewer's feed, newest post first (ties broken by id
// descending). The viewer always sees their own posts regardless of follow
// state; a viewer with no posts and no follows gets an empty feed. The
// result is all-or-nothing: any storage failure or deadline overrun yields
// FEED_UNAVAILABLE, never a partial feed.
func (s *FeedService) GetFeed(ctx context.Context, viewerID uint) ([]models.FeedPost, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	followingIDs, err := s.graphRepo.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, models.NewFeedUnavailableError(err)
	}

	// The visible author set is never empty: self is always included.
	authorIDs := append(followingIDs, viewerID)

	posts, err := s.postRepo.ListByAuthorIDs(ctx, authorIDs)
	if err != nil {
		return nil, models.NewFeedUnavailableError(err)
	}
	if len(posts) == 0 {
		return []models.FeedPost{}, nil
	}

	feed, err := s.enrich(ctx, posts)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeDataIntegrity {
			return nil, err
		}
		return nil, models.NewFeedUnavailableError(err)
	}
	return feed, nil
}

// enrich attaches author, category, comments (with authors) and likers to
// the ordered post list. The four lookups are mutually independent, so they
// run concurrently and are joined in application code afterwards.
func (s *FeedService) enrich(ctx context.Context, posts []*models.Post) ([]models.FeedPost, error) {
	postIDs := make([]uint, 0, len(posts))
	authorSet := make(map[uint]struct{}, len(posts))
	categorySet := make(map[uint]struct{})
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
		authorSet[p.UserID] = struct{}{}
		if p.CategoryID != nil {
			categorySet[*p.CategoryID] = struct{}{}
		}
	}
	authorIDs := keys(authorSet)
	categoryIDs := keys(categorySet)

	var (
		authors     []models.User
		categories  []models.Category
		commentRows []repository.CommentRow
		likerRows   []repository.PostLiker
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		authors, err = s.userRepo.GetByIDs(gctx, authorIDs)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryRepo.GetByIDs(gctx, categoryIDs)
		return err
	})
	g.Go(func() error {
		var err error
		commentRows, err = s.commentRepo.ListForPosts(gctx, postIDs)
		return err
	})
	g.Go(func() error {
		var err error
		likerRows, err = s.graphRepo.LikersForPosts(gctx, postIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	authorsByID := make(map[uint]models.UserSummary, len(authors))
	for _, u := range authors {
		authorsByID[u.ID] = u.Summary()
	}
	categoriesByID := make(map[uint]models.Category, len(categories))
	for _, c := range categories {
		categoriesByID[c.ID] = c
	}
	commentsByPost := make(map[uint][]models.FeedComment, len(commentRows))
	for _, row := range commentRows {
		commentsByPost[row.PostID] = append(commentsByPost[row.PostID], models.FeedComment{
			ID:          row.ID,
			CommentText: row.CommentText,
			CreatedAt:   row.CreatedAt,
			Author:      models.UserSummary{ID: row.AuthorID, Username: row.AuthorName},
		})
	}
	likersByPost := make(map[uint][]models.UserSummary, len(likerRows))
	for _, row := range likerRows {
		likersByPost[row.PostID] = append(likersByPost[row.PostID], models.UserSummary{
			ID:       row.UserID,
			Username: row.Username,
		})
	}

	feed := make([]models.FeedPost, 0, len(posts))
	for _, p := range posts {
		author, ok := authorsByID[p.UserID]
		if !ok {
			// A post without an author violates the ownership invariant;
			// this is corrupted state, not an expected condition.
			return nil, models.NewDataIntegrityError(
				"Post references a missing author",
				fmt.Errorf("post %d references missing user %d", p.ID, p.UserID),
			)
		}

		// A concurrently deleted category is expected and non-fatal.
		category := models.Uncategorized()
		if p.CategoryID != nil {
			if c, found := categoriesByID[*p.CategoryID]; found {
				category = c
			}
		}

		comments := commentsByPost[p.ID]
		if comments == nil {
			comments = []models.FeedComment{}
		}
		likers := likersByPost[p.ID]
		if likers == nil {
			likers = []models.UserSummary{}
		}

		feed = append(feed, models.FeedPost{
			ID:        p.ID,
			Title:     p.Title,
			Content:   p.Content,
			CreatedAt: p.CreatedAt,
			User:      author,
			Category:  category,
			Comments:  comments,
			Likers:    likers,
		})
	}
	return feed, nil
}

func keys(set map[uint]struct{}) []uint {
	out := make([]uint, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
