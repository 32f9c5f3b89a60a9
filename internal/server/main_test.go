package server

import (
	"context"
	"testing"

	"giftlink/internal/config"
	"giftlink/internal/models"
	"giftlink/internal/sentiment"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
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

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

// fixedAnalyzer returns the same result for every sentence.
type fixedAnalyzer struct {
	result sentiment.Result
	err    error
}

func (f *fixedAnalyzer) Analyze(ctx context.Context, sentence string) (sentiment.Result, error) {
	if f.err != nil {
		return sentiment.Result{}, f.err
	}
	return f.result, nil
}

// setupTestServer wires a full server against sqlite and miniredis and
// returns a Fiber app with all routes registered.
func setupTestServer(t *testing.T, analyzer sentiment.Analyzer) (*fiber.App, *Server, *gorm.DB) {
	t.Helper()

	db := setupHandlerTestDB(t)
	rdb := setupTestRedis(t)
	cfg := &config.Config{
		JWTSecret: "test_secret",
		Port:      "0",
		Env:       "test",
	}

	srv, err := NewServerWithDeps(cfg, db, rdb, analyzer)
	require.NoError(t, err)

	app := fiber.New()
	srv.SetupRoutes(app)
	return app, srv, db
}

func seedTestGift(t *testing.T, db *gorm.DB, name, category, condition string, ageYears int) *models.Gift {
	t.Helper()
	gift := &models.Gift{
		Name:      name,
		Category:  category,
		Condition: condition,
		AgeYears:  ageYears,
	}
	require.NoError(t, db.Create(gift).Error)
	return gift
}
