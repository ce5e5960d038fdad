package server

import (
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFeed returns the authenticated user's personalized feed: posts by
// followed authors and the viewer, newest first, with authors, categories,
// comments and likers attached.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	viewerID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	feed, err := s.feedService.GetFeed(c.UserContext(), viewerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(feed)
}
