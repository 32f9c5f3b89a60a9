package server

import (
	"giftlink/internal/models"
	"giftlink/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/comments/:giftId
func (s *Server) GetComments(c *fiber.Ctx) error {
	giftID, err := s.parseID(c, "giftId", "gift ID")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(c.Context(), giftID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

// CreateComment handles POST /api/comments. Sentiment enrichment is
// best-effort: a classifier outage still produces a 201 with the neutral
// default stored.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req struct {
		GiftID  uint   `json:"giftId"`
		Author  string `json:"author"`
		Comment string `json:"comment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		GiftID:  req.GiftID,
		Author:  req.Author,
		Content: req.Comment,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Comment added successfully",
		"comment": comment,
	})
}
