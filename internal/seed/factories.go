// Package seed provides helpers to create demo and test data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"giftlink/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Categories and conditions matching the frontend's search filters.
var (
	Categories = []string{"Living", "Bedroom", "Bathroom", "Kitchen", "Office"}
	Conditions = []string{models.ConditionNew, models.ConditionLikeNew, models.ConditionOlder}
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// BuildGift constructs a gift struct without persisting it. Useful for batching.
func (f *Factory) BuildGift(overrides ...func(*models.Gift)) *models.Gift {
	age := f.rand.Intn(12)
	condition := models.ConditionOlder
	switch {
	case age == 0:
		condition = models.ConditionNew
	case age <= 3:
		condition = models.ConditionLikeNew
	}

	// realistic date_added spread over the gift's age
	added := time.Now().Add(-time.Duration(f.rand.Intn(age*365+30)) * 24 * time.Hour)

	gift := &models.Gift{
		Name:        gofakeit.ProductName(),
		Category:    Categories[f.rand.Intn(len(Categories))],
		Condition:   condition,
		Image:       fmt.Sprintf("https://picsum.photos/seed/%s/400/300", gofakeit.UUID()),
		Description: gofakeit.ProductDescription(),
		DateAdded:   added.Unix(),
		AgeYears:    age,
	}

	for _, override := range overrides {
		override(gift)
	}
	return gift
}

// CreateGift persists a generated gift.
func (f *Factory) CreateGift(overrides ...func(*models.Gift)) (*models.Gift, error) {
	gift := f.BuildGift(overrides...)
	if err := f.db.Create(gift).Error; err != nil {
		return nil, err
	}
	return gift, nil
}

// CreateUser persists a generated user. All seeded users share the given
// password so demo logins are possible.
func (f *Factory) CreateUser(password string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: string(hashed),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateComment persists a generated comment on the given gift.
func (f *Factory) CreateComment(gift *models.Gift, author string) (*models.Comment, error) {
	sentiments := []string{models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral}
	label := sentiments[f.rand.Intn(len(sentiments))]

	score := 0.0
	switch label {
	case models.SentimentPositive:
		score = f.rand.Float64()
	case models.SentimentNegative:
		score = -f.rand.Float64()
	}

	comment := &models.Comment{
		GiftID:         gift.ID,
		Author:         author,
		Content:        gofakeit.Sentence(8 + f.rand.Intn(10)),
		Sentiment:      label,
		SentimentScore: score,
		Timestamp:      time.Now().Add(-time.Duration(f.rand.Intn(72)) * time.Hour),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
