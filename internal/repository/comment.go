package repository

import (
	"context"

	"giftlink/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for gift comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByGift(ctx context.Context, giftID uint) ([]*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListByGift returns the gift's comments in insertion order.
func (r *commentRepository) ListByGift(ctx context.Context, giftID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Where("gift_id = ?", giftID).
		Order("id").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}
