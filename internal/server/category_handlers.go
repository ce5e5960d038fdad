package server

import (
	"strings"

	"github.com/paulmayer-fullstacker/underworld-wizards/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetCategories returns all categories.
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.categoryRepo.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// CreateCategory creates a new category with a unique name.
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Category name is required"))
	}

	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(c.UserContext(), category); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}
