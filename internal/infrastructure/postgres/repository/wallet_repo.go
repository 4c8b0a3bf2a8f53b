package repository

import (
	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/infrastructure/postgres/mappers"
	"escrow-deal-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultWalletRepository struct {
	DB *gorm.DB
}

func NewDefaultWalletRepository(db *gorm.DB) *DefaultWalletRepository {
	return &DefaultWalletRepository{DB: db}
}

func (r *DefaultWalletRepository) CreateWallet(wallet *domain.Wallet) error {
	walletModel := mappers.ToGORMWallet(wallet)
	return r.DB.Create(walletModel).Error
}

func (r *DefaultWalletRepository) GetUserWallets(userID int64) ([]*domain.Wallet, error) {
	var walletModels []models.WalletModel
	err := r.DB.
		Where("user_id = ? AND active = ?", userID, true).
		Order("created_at ASC").
		Find(&walletModels).Error
	if err != nil {
		return nil, err
	}
	wallets := make([]*domain.Wallet, 0, len(walletModels))
	for i := range walletModels {
		wallets = append(wallets, mappers.ToDomainWallet(&walletModels[i]))
	}
	return wallets, nil
}

// DeactivateWallet soft-deletes. The row survives so historical deals can
// still reference the payout address.
func (r *DefaultWalletRepository) DeactivateWallet(walletID string, userID int64) (bool, error) {
	result := r.DB.Model(&models.WalletModel{}).
		Where("id = ? AND user_id = ? AND active = ?", walletID, userID, true).
		Update("active", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
