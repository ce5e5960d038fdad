package server

import (
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LikePost records a like from the authenticated user on the post named in
// the body. Liking the same post twice is rejected.
func (s *Server) LikePost(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	var req struct {
		PostID uint `json:"post_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("post_id is required"))
	}

	like, err := s.graphService.Like(c.UserContext(), userID, req.PostID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(like)
}

// UnlikePost removes the authenticated user's like from the post named in
// the path. Removing a like that does not exist is a 404.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	postID, err := s.parseID(c, "postId", "post ID")
	if err != nil {
		return nil
	}

	if err := s.graphService.Unlike(c.UserContext(), userID, postID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Unliked successfully"})
}
