package models

import "time"

// Gift conditions as shown in the catalog filters.
const (
	ConditionNew     = "New"
	ConditionLikeNew = "Like New"
	ConditionOlder   = "Older"
)

// Gift represents a catalog item available for listing, search, and detail view.
// Gifts are read-only through the API; rows are created by the seeder.
type Gift struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;index" json:"name"`
	Category    string `gorm:"index" json:"category"`
	Condition   string `gorm:"index" json:"condition"`
	Image       string `json:"image"`
	Description string `gorm:"type:text" json:"description"`
	// DateAdded is epoch seconds, as the frontend renders it.
	DateAdded int64     `json:"date_added"`
	AgeYears  int       `json:"age_years"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
