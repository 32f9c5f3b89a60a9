package service

import (
	"context"
	"testing"

	"giftlink/internal/models"
	"giftlink/internal/sentiment"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Gift{},
		&models.Comment{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

// stubAnalyzer returns a fixed result or error, standing in for the
// sentiment service.
type stubAnalyzer struct {
	result sentiment.Result
	err    error
	calls  int
}

func (s *stubAnalyzer) Analyze(ctx context.Context, sentence string) (sentiment.Result, error) {
	s.calls++
	if s.err != nil {
		return sentiment.Result{}, s.err
	}
	return s.result, nil
}
