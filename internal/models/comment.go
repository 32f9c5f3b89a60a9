package models

import "time"

// Sentiment labels assigned by the enrichment step.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Comment represents a user comment on a gift. Comments are immutable after
// creation and reference their gift by id; the service layer verifies the
// gift exists before inserting.
type Comment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	GiftID         uint      `gorm:"not null;index" json:"giftId"`
	Author         string    `gorm:"not null" json:"author"`
	Content        string    `gorm:"type:text;not null" json:"comment"`
	Sentiment      string    `gorm:"default:neutral" json:"sentiment"`
	SentimentScore float64   `json:"sentimentScore"`
	Timestamp      time.Time `json:"timestamp"`
	CreatedAt      time.Time `json:"created_at"`
}
