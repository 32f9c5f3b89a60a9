// Package service implements the application's domain logic on top of the
// repository layer.
package service

import (
	"context"
	"log/slog"
	"time"

	"giftlink/internal/middleware"
	"giftlink/internal/models"
	"giftlink/internal/repository"
	"giftlink/internal/sentiment"
)

// CommentService creates and lists gift comments, enriching new comments with
// a best-effort sentiment classification.
type CommentService struct {
	commentRepo repository.CommentRepository
	giftRepo    repository.GiftRepository
	analyzer    sentiment.Analyzer
}

type CreateCommentInput struct {
	GiftID  uint
	Author  string
	Content string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	giftRepo repository.GiftRepository,
	analyzer sentiment.Analyzer,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		giftRepo:    giftRepo,
		analyzer:    analyzer,
	}
}

const maxCommentLen = 10000

// CreateComment validates the input, verifies the gift exists, classifies the
// text, and persists the comment exactly once. A failed classification never
// fails the request: the comment is stored with the neutral default.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.GiftID == 0 || in.Author == "" || in.Content == "" {
		return nil, models.NewValidationError("Gift ID, author, and comment are required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	// Comments reference gifts by id only; checking here keeps the soft
	// reference honest without a DB-level foreign key.
	if _, err := s.giftRepo.GetByID(ctx, in.GiftID); err != nil {
		return nil, err
	}

	result := s.enrich(ctx, in.Content)

	now := time.Now()
	comment := &models.Comment{
		GiftID:         in.GiftID,
		Author:         in.Author,
		Content:        in.Content,
		Sentiment:      result.Sentiment,
		SentimentScore: result.Score,
		Timestamp:      now,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	middleware.CommentsCreated.WithLabelValues(comment.Sentiment).Inc()
	return comment, nil
}

// enrich classifies the text, degrading to the neutral default on any failure.
func (s *CommentService) enrich(ctx context.Context, text string) sentiment.Result {
	if s.analyzer == nil {
		return sentiment.Neutral()
	}

	result, err := s.analyzer.Analyze(ctx, text)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "sentiment analysis failed, storing neutral default",
			slog.String("error", err.Error()),
		)
		middleware.SentimentFallbacks.WithLabelValues("analyze_error").Inc()
		return sentiment.Neutral()
	}
	return result
}

// ListComments returns all comments for a gift in insertion order.
func (s *CommentService) ListComments(ctx context.Context, giftID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListByGift(ctx, giftID)
}
