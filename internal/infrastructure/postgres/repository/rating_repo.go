package repository

import (
	"errors"

	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/infrastructure/postgres/mappers"
	"escrow-deal-service/internal/infrastructure/postgres/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type DefaultRatingRepository struct {
	DB *gorm.DB
}

func NewDefaultRatingRepository(db *gorm.DB) *DefaultRatingRepository {
	return &DefaultRatingRepository{DB: db}
}

// CreateRating relies on the unique (deal_id, from_user_id, to_user_id)
// index, so concurrent double-submission collapses to one row.
func (r *DefaultRatingRepository) CreateRating(rating *domain.Rating) error {
	ratingModel := mappers.ToGORMRating(rating)
	if err := r.DB.Create(ratingModel).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateRating
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateRating
		}
		return err
	}
	return nil
}

func (r *DefaultRatingRepository) RatingStats(userID int64) (float64, int64, error) {
	var stats struct {
		Avg   float64
		Count int64
	}
	err := r.DB.Model(&models.RatingModel{}).
		Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS count").
		Where("to_user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		return 0, 0, err
	}
	return stats.Avg, stats.Count, nil
}

func (r *DefaultRatingRepository) GetDealRatings(dealID string) ([]*domain.Rating, error) {
	var ratingModels []models.RatingModel
	err := r.DB.
		Where("deal_id = ?", dealID).
		Order("created_at ASC").
		Find(&ratingModels).Error
	if err != nil {
		return nil, err
	}
	ratings := make([]*domain.Rating, 0, len(ratingModels))
	for i := range ratingModels {
		ratings = append(ratings, mappers.ToDomainRating(&ratingModels[i]))
	}
	return ratings, nil
}
