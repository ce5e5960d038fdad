package server

import (
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowUser creates a follow edge from the authenticated user to the user
// named in the body. Following yourself or re-following are rejected.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	followerID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	var req struct {
		FollowedID uint `json:"followed_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.FollowedID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("followed_id is required"))
	}

	follow, err := s.graphService.Follow(c.UserContext(), followerID, req.FollowedID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(follow)
}

// UnfollowUser removes the follow edge to the user named in the path.
// Removing an edge that does not exist is a 404, not a no-op.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	followerID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	followedID, err := s.parseID(c, "followedId", "user ID")
	if err != nil {
		return nil
	}

	if err := s.graphService.Unfollow(c.UserContext(), followerID, followedID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Unfollowed successfully"})
}
