package service

import (
	"context"

	"giftlink/internal/models"
	"giftlink/internal/repository"
)

// GiftService exposes catalog reads. Gifts are read-only through the API.
type GiftService struct {
	giftRepo repository.GiftRepository
}

func NewGiftService(giftRepo repository.GiftRepository) *GiftService {
	return &GiftService{giftRepo: giftRepo}
}

func (s *GiftService) ListGifts(ctx context.Context) ([]models.Gift, error) {
	return s.giftRepo.List(ctx)
}

func (s *GiftService) GetGift(ctx context.Context, id uint) (*models.Gift, error) {
	return s.giftRepo.GetByID(ctx, id)
}

func (s *GiftService) SearchGifts(ctx context.Context, filter repository.SearchFilter) ([]models.Gift, error) {
	return s.giftRepo.Search(ctx, filter)
}
