package server

import (
	"strconv"

	"giftlink/internal/models"
	"giftlink/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// GetGifts handles GET /api/gifts
func (s *Server) GetGifts(c *fiber.Ctx) error {
	gifts, err := s.giftService.ListGifts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(gifts)
}

// GetGift handles GET /api/gifts/:id
func (s *Server) GetGift(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id", "gift ID")
	if err != nil {
		return nil
	}

	gift, err := s.giftService.GetGift(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(gift)
}

// SearchGifts handles GET /api/search?name&category&condition&age_years.
// Absent parameters are ignored, so a bare search equals the full listing.
func (s *Server) SearchGifts(c *fiber.Ctx) error {
	filter := repository.SearchFilter{
		Name:      c.Query("name"),
		Category:  c.Query("category"),
		Condition: c.Query("condition"),
	}

	if raw := c.Query("age_years"); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil || age < 0 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid age_years"))
		}
		filter.MaxAgeYears = &age
	}

	gifts, err := s.giftService.SearchGifts(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(gifts)
}
