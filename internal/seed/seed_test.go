package seed

import (
	"testing"

	"giftlink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Gift{}, &models.Comment{}); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

func TestFactoryBuildGift(t *testing.T) {
	f := NewFactory(setupSeedTestDB(t))

	for i := 0; i < 20; i++ {
		gift := f.BuildGift()
		assert.NotEmpty(t, gift.Name)
		assert.Contains(t, Categories, gift.Category)
		assert.Contains(t, Conditions, gift.Condition)
		assert.GreaterOrEqual(t, gift.AgeYears, 0)
		assert.NotZero(t, gift.DateAdded)
	}
}

func TestFactoryGiftOverrides(t *testing.T) {
	f := NewFactory(setupSeedTestDB(t))

	gift := f.BuildGift(func(g *models.Gift) {
		g.Name = "Fixed Name"
		g.Category = "Office"
	})
	assert.Equal(t, "Fixed Name", gift.Name)
	assert.Equal(t, "Office", gift.Category)
}

func TestSeederRun(t *testing.T) {
	db := setupSeedTestDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(3, 5, 2))

	var userCount, giftCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Gift{}).Count(&giftCount).Error)
	assert.Equal(t, int64(3), userCount)
	assert.Equal(t, int64(5), giftCount)

	// Every seeded comment references a seeded gift
	var comments []models.Comment
	require.NoError(t, db.Find(&comments).Error)
	var giftIDs []uint
	require.NoError(t, db.Model(&models.Gift{}).Pluck("id", &giftIDs).Error)
	for _, c := range comments {
		assert.Contains(t, giftIDs, c.GiftID)
	}

	// All seeded users can log in with the shared demo password
	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	for _, u := range users {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(DefaultPassword)))
	}
}

func TestSeederRunAppends(t *testing.T) {
	db := setupSeedTestDB(t)
	s := NewSeeder(db)

	existing := models.Gift{Name: "Keeper", Category: "Living", Condition: models.ConditionOlder}
	require.NoError(t, db.Create(&existing).Error)

	// Run never clears; a fresh start is ClearAll first
	require.NoError(t, s.Run(1, 2, 0))

	var giftCount int64
	require.NoError(t, db.Model(&models.Gift{}).Count(&giftCount).Error)
	assert.Equal(t, int64(3), giftCount)

	var kept models.Gift
	require.NoError(t, db.First(&kept, existing.ID).Error)
	assert.Equal(t, "Keeper", kept.Name)
}

func TestSeederClearAll(t *testing.T) {
	db := setupSeedTestDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(2, 3, 1))
	require.NoError(t, s.ClearAll())

	var count int64
	require.NoError(t, db.Model(&models.Gift{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}
