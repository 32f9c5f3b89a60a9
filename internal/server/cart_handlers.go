package server

import (
	"giftlink/internal/models"

	"github.com/gofiber/fiber/v2"
)

func cartResponse(cart *models.Cart) fiber.Map {
	return fiber.Map{
		"items": cart.Items,
		"total": cart.Total(),
	}
}

// GetCart handles GET /api/cart
func (s *Server) GetCart(c *fiber.Ctx) error {
	cart, err := s.cartService.GetCart(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cartResponse(cart))
}

// AddCartItem handles POST /api/cart/items. Adding a gift already in the
// cart increments its quantity by one.
func (s *Server) AddCartItem(c *fiber.Ctx) error {
	var req struct {
		GiftID uint `json:"giftId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.GiftID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Gift ID is required"))
	}

	cart, err := s.cartService.AddItem(c.Context(), currentUserID(c), req.GiftID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cartResponse(cart))
}

// UpdateCartItem handles PUT /api/cart/items/:giftId. A quantity of zero or
// less removes the line item.
func (s *Server) UpdateCartItem(c *fiber.Ctx) error {
	giftID, err := s.parseID(c, "giftId", "gift ID")
	if err != nil {
		return nil
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	cart, svcErr := s.cartService.UpdateQuantity(c.Context(), currentUserID(c), giftID, req.Quantity)
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.JSON(cartResponse(cart))
}

// RemoveCartItem handles DELETE /api/cart/items/:giftId
func (s *Server) RemoveCartItem(c *fiber.Ctx) error {
	giftID, err := s.parseID(c, "giftId", "gift ID")
	if err != nil {
		return nil
	}

	cart, svcErr := s.cartService.RemoveItem(c.Context(), currentUserID(c), giftID)
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.JSON(cartResponse(cart))
}

// ClearCart handles DELETE /api/cart
func (s *Server) ClearCart(c *fiber.Ctx) error {
	cart, err := s.cartService.ClearCart(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cartResponse(cart))
}
