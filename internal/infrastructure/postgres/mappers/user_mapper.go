package mappers

import (
	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/infrastructure/postgres/models"
)

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:             model.ID,
		Username:       model.Username,
		FirstName:      model.FirstName,
		Rating:         model.Rating,
		TotalDeals:     model.TotalDeals,
		CompletedDeals: model.CompletedDeals,
		IsBanned:       model.IsBanned,
		IsGuarantor:    model.IsGuarantor,
		BalanceStars:   model.BalanceStars,
		BalanceRub:     model.BalanceRub,
		BalanceCrypto:  model.BalanceCrypto,
		CreatedAt:      model.CreatedAt,
	}
}

func ToGORMUser(user *domain.User) *models.UserModel {
	return &models.UserModel{
		ID:             user.ID,
		Username:       user.Username,
		FirstName:      user.FirstName,
		Rating:         user.Rating,
		TotalDeals:     user.TotalDeals,
		CompletedDeals: user.CompletedDeals,
		IsBanned:       user.IsBanned,
		IsGuarantor:    user.IsGuarantor,
		BalanceStars:   user.BalanceStars,
		BalanceRub:     user.BalanceRub,
		BalanceCrypto:  user.BalanceCrypto,
		CreatedAt:      user.CreatedAt,
	}
}

func ToDomainWallet(model *models.WalletModel) *domain.Wallet {
	return &domain.Wallet{
		ID:        model.ID,
		UserID:    model.UserID,
		Type:      domain.WalletType(model.Type),
		Address:   model.Address,
		Active:    model.Active,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMWallet(wallet *domain.Wallet) *models.WalletModel {
	return &models.WalletModel{
		ID:        wallet.ID,
		UserID:    wallet.UserID,
		Type:      string(wallet.Type),
		Address:   wallet.Address,
		Active:    wallet.Active,
		CreatedAt: wallet.CreatedAt,
	}
}
