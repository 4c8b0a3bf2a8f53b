package models

import "time"

type RatingModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	DealID     string `gorm:"type:uuid;not null;uniqueIndex:idx_rating_triple"`
	FromUserID int64  `gorm:"not null;uniqueIndex:idx_rating_triple"`
	ToUserID   int64  `gorm:"not null;uniqueIndex:idx_rating_triple;index"`
	Score      int    `gorm:"not null;check:score >= 1 AND score <= 5"`
	Comment    string
	CreatedAt  time.Time
}

func (RatingModel) TableName() string {
	return "ratings"
}
