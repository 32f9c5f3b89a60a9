package service

import (
	"context"
	"encoding/json"
	"errors"

	"giftlink/internal/cache"
	"giftlink/internal/models"
	"giftlink/internal/repository"

	"github.com/redis/go-redis/v9"
)

// ErrCartUnavailable is returned when the cart store backend is not reachable.
var ErrCartUnavailable = errors.New("cart store unavailable")

// CartService manages per-user carts. Each cart is a typed snapshot persisted
// whole to Redis on every mutation. Load-mutate-save is last-writer-wins per
// user.
type CartService struct {
	giftRepo repository.GiftRepository
	redis    *redis.Client
}

func NewCartService(giftRepo repository.GiftRepository, redisClient *redis.Client) *CartService {
	return &CartService{
		giftRepo: giftRepo,
		redis:    redisClient,
	}
}

// GetCart loads the user's cart; a missing key is an empty cart.
func (s *CartService) GetCart(ctx context.Context, userID uint) (*models.Cart, error) {
	return s.load(ctx, userID)
}

// AddItem puts the gift in the cart with quantity one, or increments the
// existing line. The stored line is a snapshot of the gift at add time.
func (s *CartService) AddItem(ctx context.Context, userID, giftID uint) (*models.Cart, error) {
	gift, err := s.giftRepo.GetByID(ctx, giftID)
	if err != nil {
		return nil, err
	}

	cart, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.Add(models.NewCartItem(gift))
	if err := s.save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
// Removal is idempotent: a non-positive quantity for a gift not in the cart
// is a no-op, not an error.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, giftID uint, quantity int) (*models.Cart, error) {
	cart, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !cart.UpdateQuantity(giftID, quantity) && quantity > 0 {
		return nil, models.NewNotFoundError("Cart item", giftID)
	}
	if err := s.save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem removes the line for the gift id.
func (s *CartService) RemoveItem(ctx context.Context, userID, giftID uint) (*models.Cart, error) {
	cart, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !cart.Remove(giftID) {
		return nil, models.NewNotFoundError("Cart item", giftID)
	}
	if err := s.save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ClearCart empties the user's cart.
func (s *CartService) ClearCart(ctx context.Context, userID uint) (*models.Cart, error) {
	cart := &models.Cart{}
	if err := s.save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) load(ctx context.Context, userID uint) (*models.Cart, error) {
	if s.redis == nil {
		return nil, models.NewInternalError(ErrCartUnavailable)
	}

	var cart models.Cart
	data, err := s.redis.Get(ctx, cache.CartKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return &cart, nil
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		// A corrupt snapshot is unrecoverable; start the user fresh.
		return &models.Cart{}, nil
	}
	return &cart, nil
}

func (s *CartService) save(ctx context.Context, userID uint, cart *models.Cart) error {
	if s.redis == nil {
		return models.NewInternalError(ErrCartUnavailable)
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return models.NewInternalError(err)
	}
	if err := s.redis.Set(ctx, cache.CartKey(userID), data, cache.CartTTL).Err(); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
