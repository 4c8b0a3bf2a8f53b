package repository

import (
	"errors"
	"time"

	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/infrastructure/postgres/mappers"
	"escrow-deal-service/internal/infrastructure/postgres/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var nonTerminalStatuses = []domain.DealStatus{
	domain.StatusWaitingBuyer,
	domain.StatusWaitingGuarantor,
	domain.StatusInProgress,
}

type DefaultDealRepository struct {
	DB *gorm.DB
}

func NewDefaultDealRepository(db *gorm.DB) *DefaultDealRepository {
	return &DefaultDealRepository{DB: db}
}

func (r *DefaultDealRepository) CreateDeal(deal *domain.Deal) error {
	dealModel := mappers.ToGORMDeal(deal)
	if err := r.DB.Create(dealModel).Error; err != nil {
		return err
	}
	return nil
}

// ReserveCode claims a code forever. Reaped and cancelled deals keep their
// reservation, so a code is never handed out twice.
func (r *DefaultDealRepository) ReserveCode(code string) (bool, error) {
	err := r.DB.Create(&models.DealCodeModel{Code: code}).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return false, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *DefaultDealRepository) GetDealByID(dealID string) (*domain.Deal, error) {
	var deal models.DealModel
	if err := r.DB.First(&deal, "id = ?", dealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDealNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDeal(&deal), nil
}

func (r *DefaultDealRepository) GetDealByCode(code string) (*domain.Deal, error) {
	var deal models.DealModel
	if err := r.DB.First(&deal, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDealNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDeal(&deal), nil
}

// JoinDeal attaches the buyer with a single conditional update. The
// buyer_id IS NULL guard makes the first committer win; the loser sees
// zero affected rows.
func (r *DefaultDealRepository) JoinDeal(code string, buyerID int64) (bool, error) {
	result := r.DB.Model(&models.DealModel{}).
		Where("code = ? AND buyer_id IS NULL AND status = ?", code, domain.StatusWaitingBuyer).
		Updates(map[string]interface{}{
			"buyer_id": buyerID,
			"status":   domain.StatusWaitingGuarantor,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// AssignGuarantor is guarded on status so that of N racing guarantors
// exactly one flips the deal to in_progress.
func (r *DefaultDealRepository) AssignGuarantor(dealID string, guarantorID int64) (bool, error) {
	result := r.DB.Model(&models.DealModel{}).
		Where("id = ? AND status = ?", dealID, domain.StatusWaitingGuarantor).
		Updates(map[string]interface{}{
			"guarantor_id": guarantorID,
			"status":       domain.StatusInProgress,
			"started_at":   time.Now(),
		})
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			// Partial unique index: one in_progress deal per guarantor.
			return false, domain.ErrGuarantorBusy
		}
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *DefaultDealRepository) SetGuarantorCalled(dealID string, called bool) error {
	var calledAt *time.Time
	if called {
		now := time.Now()
		calledAt = &now
	}
	return r.DB.Model(&models.DealModel{}).
		Where("id = ?", dealID).
		Updates(map[string]interface{}{
			"guarantor_called":    called,
			"guarantor_called_at": calledAt,
		}).Error
}

func (r *DefaultDealRepository) CompleteDeal(dealID string) (bool, error) {
	result := r.DB.Model(&models.DealModel{}).
		Where("id = ? AND status = ?", dealID, domain.StatusInProgress).
		Updates(map[string]interface{}{
			"status":       domain.StatusCompleted,
			"completed_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *DefaultDealRepository) CancelDeal(dealID string) (bool, error) {
	result := r.DB.Model(&models.DealModel{}).
		Where("id = ? AND status IN ?", dealID, nonTerminalStatuses).
		Updates(map[string]interface{}{
			"status":              domain.StatusCancelled,
			"guarantor_called":    false,
			"guarantor_called_at": nil,
			"completed_at":        time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *DefaultDealRepository) ActiveDealForParticipant(userID int64) (*domain.Deal, error) {
	var deal models.DealModel
	err := r.DB.
		Where("(seller_id = ? OR buyer_id = ?) AND status IN ?", userID, userID, nonTerminalStatuses).
		First(&deal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainDeal(&deal), nil
}

func (r *DefaultDealRepository) ActiveDealForGuarantor(guarantorID int64) (*domain.Deal, error) {
	var deal models.DealModel
	err := r.DB.
		Where("guarantor_id = ? AND status = ?", guarantorID, domain.StatusInProgress).
		First(&deal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainDeal(&deal), nil
}

func (r *DefaultDealRepository) PendingDeals() ([]*domain.Deal, error) {
	var dealModels []models.DealModel
	err := r.DB.
		Where("status = ?", domain.StatusWaitingGuarantor).
		Order("created_at ASC").
		Find(&dealModels).Error
	if err != nil {
		return nil, err
	}
	deals := make([]*domain.Deal, 0, len(dealModels))
	for i := range dealModels {
		deals = append(deals, mappers.ToDomainDeal(&dealModels[i]))
	}
	return deals, nil
}

func (r *DefaultDealRepository) DealsHistory(userID int64) ([]*domain.Deal, error) {
	var dealModels []models.DealModel
	err := r.DB.
		Where("seller_id = ? OR buyer_id = ? OR guarantor_id = ?", userID, userID, userID).
		Order("created_at DESC").
		Find(&dealModels).Error
	if err != nil {
		return nil, err
	}
	deals := make([]*domain.Deal, 0, len(dealModels))
	for i := range dealModels {
		deals = append(deals, mappers.ToDomainDeal(&dealModels[i]))
	}
	return deals, nil
}

func (r *DefaultDealRepository) ListDeals() ([]*domain.Deal, error) {
	var dealModels []models.DealModel
	if err := r.DB.Order("created_at DESC").Find(&dealModels).Error; err != nil {
		return nil, err
	}
	deals := make([]*domain.Deal, 0, len(dealModels))
	for i := range dealModels {
		deals = append(deals, mappers.ToDomainDeal(&dealModels[i]))
	}
	return deals, nil
}

// DeleteExpiredWaiting purges deals nobody ever joined. Hard delete:
// no second party was engaged, so there is nothing to preserve. The
// deal_codes reservation stays.
func (r *DefaultDealRepository) DeleteExpiredWaiting(cutoff time.Time) (int64, error) {
	result := r.DB.
		Where("status = ? AND created_at < ?", domain.StatusWaitingBuyer, cutoff).
		Delete(&models.DealModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *DefaultDealRepository) ResetStaleGuarantorCalls(cutoff time.Time) (int64, error) {
	result := r.DB.Model(&models.DealModel{}).
		Where("status = ? AND guarantor_called = ? AND guarantor_called_at < ?",
			domain.StatusWaitingGuarantor, true, cutoff).
		Updates(map[string]interface{}{
			"guarantor_called":    false,
			"guarantor_called_at": nil,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
