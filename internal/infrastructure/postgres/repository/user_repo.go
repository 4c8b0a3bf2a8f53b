package repository

import (
	"errors"

	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/infrastructure/postgres/mappers"
	"escrow-deal-service/internal/infrastructure/postgres/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) CreateUser(user *domain.User) error {
	userModel := mappers.ToGORMUser(user)
	if err := r.DB.Create(userModel).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			// First-contact registration is idempotent.
			return nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

func (r *DefaultUserRepository) GetUserByID(userID int64) (*domain.User, error) {
	var user models.UserModel
	if err := r.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&user), nil
}

func (r *DefaultUserRepository) SetBanned(userID int64, banned bool) error {
	return r.DB.Model(&models.UserModel{}).
		Where("id = ?", userID).
		Update("is_banned", banned).Error
}

func (r *DefaultUserRepository) SetGuarantor(userID int64, isGuarantor bool) error {
	return r.DB.Model(&models.UserModel{}).
		Where("id = ?", userID).
		Update("is_guarantor", isGuarantor).Error
}

func (r *DefaultUserRepository) UpdateRating(userID int64, rating float64) error {
	return r.DB.Model(&models.UserModel{}).
		Where("id = ?", userID).
		Update("rating", rating).Error
}

func (r *DefaultUserRepository) AdjustBalance(userID int64, currency domain.Currency, delta decimal.Decimal) error {
	var column string
	switch currency {
	case domain.CurrencyStars:
		column = "balance_stars"
	case domain.CurrencyRub:
		column = "balance_rub"
	case domain.CurrencyCrypto:
		column = "balance_crypto"
	default:
		return domain.ErrInvalidCurrency
	}
	return r.DB.Model(&models.UserModel{}).
		Where("id = ?", userID).
		Update(column, gorm.Expr(column+" + ?", delta)).Error
}

func (r *DefaultUserRepository) IncrementDealStats(userIDs ...int64) error {
	if len(userIDs) == 0 {
		return nil
	}
	return r.DB.Model(&models.UserModel{}).
		Where("id IN ?", userIDs).
		Updates(map[string]interface{}{
			"total_deals":     gorm.Expr("total_deals + 1"),
			"completed_deals": gorm.Expr("completed_deals + 1"),
		}).Error
}

func (r *DefaultUserRepository) ListGuarantors() ([]*domain.User, error) {
	var userModels []models.UserModel
	err := r.DB.
		Where("is_guarantor = ? AND is_banned = ?", true, false).
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, mappers.ToDomainUser(&userModels[i]))
	}
	return users, nil
}

func (r *DefaultUserRepository) ListUsers() ([]*domain.User, error) {
	var userModels []models.UserModel
	if err := r.DB.Order("created_at DESC").Find(&userModels).Error; err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, mappers.ToDomainUser(&userModels[i]))
	}
	return users, nil
}
