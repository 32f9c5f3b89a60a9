package repository

import (
	"context"
	"errors"
	"strings"

	"giftlink/internal/cache"
	"giftlink/internal/models"

	"gorm.io/gorm"
)

// SearchFilter holds the optional conjunctive filters for a gift search.
// Zero-valued fields are ignored, so an empty filter matches every gift.
type SearchFilter struct {
	Name      string
	Category  string
	Condition string
	// MaxAgeYears is an upper bound on a gift's age; nil means no bound.
	MaxAgeYears *int
}

// GiftRepository defines persistence operations for catalog gifts.
type GiftRepository interface {
	List(ctx context.Context) ([]models.Gift, error)
	GetByID(ctx context.Context, id uint) (*models.Gift, error)
	Search(ctx context.Context, filter SearchFilter) ([]models.Gift, error)
	Create(ctx context.Context, gift *models.Gift) error
}

type giftRepository struct {
	db *gorm.DB
}

// NewGiftRepository returns a new GiftRepository implementation.
func NewGiftRepository(db *gorm.DB) GiftRepository {
	return &giftRepository{db: db}
}

func (r *giftRepository) List(ctx context.Context) ([]models.Gift, error) {
	var gifts []models.Gift
	if err := r.db.WithContext(ctx).Order("id").Find(&gifts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return gifts, nil
}

func (r *giftRepository) GetByID(ctx context.Context, id uint) (*models.Gift, error) {
	var gift models.Gift
	key := cache.GiftKey(id)

	err := cache.Aside(ctx, key, &gift, cache.GiftTTL, func() error {
		if err := r.db.WithContext(ctx).First(&gift, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Gift", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &gift, nil
}

func (r *giftRepository) Search(ctx context.Context, filter SearchFilter) ([]models.Gift, error) {
	query := r.db.WithContext(ctx).Model(&models.Gift{})

	// Each supplied parameter only narrows the result set; a search with no
	// parameters is identical to List.
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Condition != "" {
		query = query.Where("condition = ?", filter.Condition)
	}
	if filter.MaxAgeYears != nil {
		query = query.Where("age_years <= ?", *filter.MaxAgeYears)
	}

	var gifts []models.Gift
	if err := query.Order("id").Find(&gifts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return gifts, nil
}

func (r *giftRepository) Create(ctx context.Context, gift *models.Gift) error {
	if err := r.db.WithContext(ctx).Create(gift).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateGift(ctx, gift.ID)
	return nil
}
