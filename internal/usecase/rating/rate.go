package rating

import (
	"fmt"
	"math"
	"strconv"

	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/infrastructure/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DefaultRatingUsecase struct {
	ratingRepo           domain.RatingRepository
	dealRepo             domain.DealRepository
	userRepo             domain.UserRepository
	audit                domain.AuditLogger
	metrics              *metrics.DealMetrics
	log                  *zap.Logger
	minRatingsForAverage int64
}

func NewDefaultRatingUsecase(
	ratingRepo domain.RatingRepository,
	dealRepo domain.DealRepository,
	userRepo domain.UserRepository,
	audit domain.AuditLogger,
	dealMetrics *metrics.DealMetrics,
	log *zap.Logger,
	minRatingsForAverage int64,
) *DefaultRatingUsecase {
	return &DefaultRatingUsecase{
		ratingRepo:           ratingRepo,
		dealRepo:             dealRepo,
		userRepo:             userRepo,
		audit:                audit,
		metrics:              dealMetrics,
		log:                  log,
		minRatingsForAverage: minRatingsForAverage,
	}
}

// Rate records a post-deal score from one counterparty to the other.
// Only seller and buyer rate; the ratee is always the rater's
// counterparty, never chosen by the caller. The user's displayed rating
// stays at the default until enough scores accumulate.
func (uc *DefaultRatingUsecase) Rate(dealID string, raterID int64, score int, comment string) (*domain.Rating, error) {
	if score < 1 || score > 5 {
		return nil, domain.ErrInvalidScore
	}

	deal, err := uc.dealRepo.GetDealByID(dealID)
	if err != nil {
		return nil, err
	}
	if deal.Status != domain.StatusCompleted {
		return nil, domain.ErrDealNotCompleted
	}

	var rateeID int64
	switch {
	case raterID == deal.SellerID && deal.BuyerID != nil:
		rateeID = *deal.BuyerID
	case deal.BuyerID != nil && raterID == *deal.BuyerID:
		rateeID = deal.SellerID
	default:
		return nil, domain.ErrNotParticipant
	}

	rating := &domain.Rating{
		ID:         uuid.NewString(),
		DealID:     dealID,
		FromUserID: raterID,
		ToUserID:   rateeID,
		Score:      score,
		Comment:    comment,
	}
	if err := uc.ratingRepo.CreateRating(rating); err != nil {
		if err != domain.ErrDuplicateRating {
			uc.metrics.DealErrorsTotal.WithLabelValues("rate").Inc()
		}
		return nil, err
	}

	uc.metrics.RatingsSubmittedTotal.WithLabelValues(strconv.Itoa(score)).Inc()

	if err := uc.recomputeRating(rateeID); err != nil {
		uc.log.Error("rating recompute failed",
			zap.Int64("user_id", rateeID), zap.Error(err))
	}

	details := fmt.Sprintf("score: %d, to: %d", score, rateeID)
	if err := uc.audit.LogAction("rating_submitted", raterID, dealID, details); err != nil {
		uc.log.Error("audit log write failed", zap.Error(err))
	}

	return rating, nil
}

// recomputeRating refreshes the ratee's displayed mean, rounded to one
// decimal. Below the threshold the stored default is left untouched.
func (uc *DefaultRatingUsecase) recomputeRating(userID int64) error {
	avg, count, err := uc.ratingRepo.RatingStats(userID)
	if err != nil {
		return err
	}
	if count < uc.minRatingsForAverage {
		return nil
	}
	rounded := math.Round(avg*10) / 10
	return uc.userRepo.UpdateRating(userID, rounded)
}

// DealRatings lists scores already submitted for a deal, so the bot can
// tell a participant they have rated already.
func (uc *DefaultRatingUsecase) DealRatings(dealID string) ([]*domain.Rating, error) {
	return uc.ratingRepo.GetDealRatings(dealID)
}
