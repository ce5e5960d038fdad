package server

import (
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/models"
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost creates a post owned by the authenticated user.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	var req struct {
		Title      string `json:"title"`
		Content    string `json:"content"`
		CategoryID *uint  `json:"category_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:     userID,
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts returns recent posts, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	posts, err := s.postService.ListPosts(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetPost returns a single post by id.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id", "post ID")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// SearchPosts matches posts by title or content substring.
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	query := c.Query("q")
	p := parsePagination(c, 20)

	posts, err := s.postService.SearchPosts(c.UserContext(), query, p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetUserPosts returns a user's posts, newest first.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id", "user ID")
	if err != nil {
		return nil
	}
	p := parsePagination(c, 20)

	posts, err := s.postService.GetUserPosts(c.UserContext(), userID, p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// UpdatePost applies a partial update to the caller's own post.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	postID, err := s.parseID(c, "id", "post ID")
	if err != nil {
		return nil
	}

	var req struct {
		Title      string `json:"title"`
		Content    string `json:"content"`
		CategoryID *uint  `json:"category_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		UserID:     userID,
		PostID:     postID,
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// DeletePost removes the caller's own post along with its comments and likes.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	postID, err := s.parseID(c, "id", "post ID")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), userID, postID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}
