package server

import (
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateComment adds a comment by the authenticated user to a post.
func (s *Server) CreateComment(c *fiber.Ctx) error {
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
		CommentText string `json:"comment_text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), userID, postID, req.CommentText)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments returns a post's comments, oldest first.
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "post ID")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListByPost(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

// DeleteComment removes the caller's own comment.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	commentID, err := s.parseID(c, "id", "comment ID")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.UserContext(), userID, commentID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted successfully"})
}
