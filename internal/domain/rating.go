package domain

import "time"

type Rating struct {
	ID         string
	DealID     string
	FromUserID int64
	ToUserID   int64
	Score      int
	Comment    string
	CreatedAt  time.Time
}

type RatingRepository interface {
	// CreateRating returns ErrDuplicateRating when the
	// (deal, rater, ratee) triple already exists.
	CreateRating(rating *Rating) error
	// RatingStats returns the mean and count of all scores received by
	// userID.
	RatingStats(userID int64) (avg float64, count int64, err error)
	GetDealRatings(dealID string) ([]*Rating, error)
}
