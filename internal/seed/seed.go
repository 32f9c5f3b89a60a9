package seed

import (
	"fmt"

	"giftlink/internal/middleware"
	"giftlink/internal/models"

	"gorm.io/gorm"
)

// DefaultPassword is the shared password for all seeded demo users.
const DefaultPassword = "password123"

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder for the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:      db,
		factory: NewFactory(db),
	}
}

// ClearAll removes all seeded data. Order matters because comments
// reference gifts.
func (s *Seeder) ClearAll() error {
	if err := s.db.Where("1 = 1").Delete(&models.Comment{}).Error; err != nil {
		return fmt.Errorf("clearing comments: %w", err)
	}
	if err := s.db.Where("1 = 1").Delete(&models.Gift{}).Error; err != nil {
		return fmt.Errorf("clearing gifts: %w", err)
	}
	if err := s.db.Where("1 = 1").Delete(&models.User{}).Error; err != nil {
		return fmt.Errorf("clearing users: %w", err)
	}
	middleware.Logger.Info("cleared all seed data")
	return nil
}

// SeedUsers creates count demo users sharing DefaultPassword.
func (s *Seeder) SeedUsers(count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user, err := s.factory.CreateUser(DefaultPassword)
		if err != nil {
			return nil, fmt.Errorf("seeding user %d: %w", i, err)
		}
		users = append(users, user)
	}
	middleware.Logger.Info("seeded users", "count", len(users))
	return users, nil
}

// SeedGifts creates count gifts across all categories.
func (s *Seeder) SeedGifts(count int) ([]*models.Gift, error) {
	gifts := make([]*models.Gift, 0, count)
	for i := 0; i < count; i++ {
		gift, err := s.factory.CreateGift()
		if err != nil {
			return nil, fmt.Errorf("seeding gift %d: %w", i, err)
		}
		gifts = append(gifts, gift)
	}
	middleware.Logger.Info("seeded gifts", "count", len(gifts))
	return gifts, nil
}

// SeedComments creates up to perGift comments on each gift, authored by
// random seeded users.
func (s *Seeder) SeedComments(gifts []*models.Gift, users []*models.User, perGift int) (int, error) {
	if len(users) == 0 {
		return 0, fmt.Errorf("cannot seed comments without users")
	}

	total := 0
	for _, gift := range gifts {
		n := s.factory.rand.Intn(perGift + 1)
		for i := 0; i < n; i++ {
			author := users[s.factory.rand.Intn(len(users))]
			if _, err := s.factory.CreateComment(gift, author.Name); err != nil {
				return total, fmt.Errorf("seeding comment on gift %d: %w", gift.ID, err)
			}
			total++
		}
	}
	middleware.Logger.Info("seeded comments", "count", total)
	return total, nil
}

// Run executes a full seed pass: users, gifts, then comments. It appends to
// whatever is already in the database; callers wanting a fresh start run
// ClearAll first.
func (s *Seeder) Run(userCount, giftCount, commentsPerGift int) error {
	users, err := s.SeedUsers(userCount)
	if err != nil {
		return err
	}
	gifts, err := s.SeedGifts(giftCount)
	if err != nil {
		return err
	}
	if _, err := s.SeedComments(gifts, users, commentsPerGift); err != nil {
		return err
	}
	return nil
}
