package rating

import (
	"fmt"
	"testing"

	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/infrastructure/metrics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testMetrics = metrics.NewDealMetrics()

type memRatingRepo struct {
	ratings []*domain.Rating
}

func (r *memRatingRepo) CreateRating(rating *domain.Rating) error {
	for _, existing := range r.ratings {
		if existing.DealID == rating.DealID &&
			existing.FromUserID == rating.FromUserID &&
			existing.ToUserID == rating.ToUserID {
			return domain.ErrDuplicateRating
		}
	}
	copied := *rating
	r.ratings = append(r.ratings, &copied)
	return nil
}

func (r *memRatingRepo) RatingStats(userID int64) (float64, int64, error) {
	var sum, count int64
	for _, rating := range r.ratings {
		if rating.ToUserID == userID {
			sum += int64(rating.Score)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func (r *memRatingRepo) GetDealRatings(dealID string) ([]*domain.Rating, error) {
	var result []*domain.Rating
	for _, rating := range r.ratings {
		if rating.DealID == dealID {
			result = append(result, rating)
		}
	}
	return result, nil
}

type stubDealRepo struct {
	domain.DealRepository
	deals map[string]*domain.Deal
}

func (r *stubDealRepo) GetDealByID(dealID string) (*domain.Deal, error) {
	deal, ok := r.deals[dealID]
	if !ok {
		return nil, domain.ErrDealNotFound
	}
	return deal, nil
}

type memUserRepo struct {
	ratings map[int64]float64
}

func (r *memUserRepo) CreateUser(*domain.User) error           { return nil }
func (r *memUserRepo) SetBanned(int64, bool) error             { return nil }
func (r *memUserRepo) SetGuarantor(int64, bool) error          { return nil }
func (r *memUserRepo) IncrementDealStats(...int64) error       { return nil }
func (r *memUserRepo) ListGuarantors() ([]*domain.User, error) { return nil, nil }
func (r *memUserRepo) ListUsers() ([]*domain.User, error)      { return nil, nil }

func (r *memUserRepo) GetUserByID(userID int64) (*domain.User, error) {
	rating, ok := r.ratings[userID]
	if !ok {
		rating = domain.DefaultRating
	}
	return &domain.User{ID: userID, Rating: rating}, nil
}

func (r *memUserRepo) UpdateRating(userID int64, rating float64) error {
	r.ratings[userID] = rating
	return nil
}

func (r *memUserRepo) AdjustBalance(int64, domain.Currency, decimal.Decimal) error {
	return nil
}

type nopAudit struct{}

func (nopAudit) LogAction(string, int64, string, string) error { return nil }
func (nopAudit) GetLogs(int) ([]*domain.AuditEntry, error)     { return nil, nil }

func ptr(v int64) *int64 { return &v }

func completedDeal(id string, sellerID, buyerID int64) *domain.Deal {
	return &domain.Deal{
		ID:       id,
		Code:     "AB12CD",
		SellerID: sellerID,
		BuyerID:  ptr(buyerID),
		Status:   domain.StatusCompleted,
	}
}

func fixture() (*DefaultRatingUsecase, *memRatingRepo, *memUserRepo, *stubDealRepo) {
	ratings := &memRatingRepo{}
	users := &memUserRepo{ratings: make(map[int64]float64)}
	deals := &stubDealRepo{deals: map[string]*domain.Deal{
		"d1": completedDeal("d1", 1, 2),
	}}
	uc := NewDefaultRatingUsecase(ratings, deals, users, nopAudit{}, testMetrics, zap.NewNop(), 3)
	return uc, ratings, users, deals
}

func TestRate(t *testing.T) {
	uc, ratings, _, _ := fixture()

	rating, err := uc.Rate("d1", 1, 5, "smooth deal")
	require.NoError(t, err)
	assert.Equal(t, int64(2), rating.ToUserID)
	assert.Len(t, ratings.ratings, 1)

	// The buyer rates back; the ratee flips.
	rating, err = uc.Rate("d1", 2, 4, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rating.ToUserID)
}

func TestRateRejections(t *testing.T) {
	uc, _, _, deals := fixture()

	t.Run("score out of range", func(t *testing.T) {
		_, err := uc.Rate("d1", 1, 0, "")
		assert.ErrorIs(t, err, domain.ErrInvalidScore)
		_, err = uc.Rate("d1", 1, 6, "")
		assert.ErrorIs(t, err, domain.ErrInvalidScore)
	})

	t.Run("deal not completed", func(t *testing.T) {
		deals.deals["d2"] = &domain.Deal{
			ID: "d2", SellerID: 1, BuyerID: ptr(2), Status: domain.StatusInProgress,
		}
		_, err := uc.Rate("d2", 1, 5, "")
		assert.ErrorIs(t, err, domain.ErrDealNotCompleted)
	})

	t.Run("outsider", func(t *testing.T) {
		_, err := uc.Rate("d1", 7, 5, "")
		assert.ErrorIs(t, err, domain.ErrNotParticipant)
	})

	t.Run("guarantor cannot rate", func(t *testing.T) {
		deal := deals.deals["d1"]
		deal.GuarantorID = ptr(10)
		_, err := uc.Rate("d1", 10, 5, "")
		assert.ErrorIs(t, err, domain.ErrNotParticipant)
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := uc.Rate("d1", 1, 5, "")
		require.NoError(t, err)
		_, err = uc.Rate("d1", 1, 3, "changed my mind")
		assert.ErrorIs(t, err, domain.ErrDuplicateRating)
	})
}

func TestRatingThreshold(t *testing.T) {
	uc, _, users, deals := fixture()

	// Seller 1 completes deals with three different buyers.
	for i, buyerID := range []int64{2, 3, 4} {
		dealID := fmt.Sprintf("t%d", i)
		deals.deals[dealID] = completedDeal(dealID, 1, buyerID)
	}

	_, err := uc.Rate("t0", 2, 5, "")
	require.NoError(t, err)
	_, err = uc.Rate("t1", 3, 4, "")
	require.NoError(t, err)

	// Two ratings: below the threshold, the stored default stands.
	_, tracked := users.ratings[1]
	assert.False(t, tracked)

	_, err = uc.Rate("t2", 4, 4, "")
	require.NoError(t, err)

	// Third rating crosses the threshold: mean of 5,4,4 rounded to one
	// decimal.
	assert.InDelta(t, 4.3, users.ratings[1], 0.001)
}

func TestDealRatings(t *testing.T) {
	uc, _, _, _ := fixture()

	_, err := uc.Rate("d1", 1, 5, "")
	require.NoError(t, err)

	found, err := uc.DealRatings("d1")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, 5, found[0].Score)
}
