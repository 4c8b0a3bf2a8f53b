package identity

import (
	"fmt"

	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/validate"
	"github.com/google/uuid"
)

// AddWallet validates the address for the wallet type before storing it.
// A rejected address returns ErrInvalidWallet plus the human-readable
// reason for the bot to display.
func (uc *DefaultIdentityUsecase) AddWallet(userID int64, walletType domain.WalletType, address string) (*domain.Wallet, string, error) {
	if _, err := uc.userRepo.GetUserByID(userID); err != nil {
		return nil, "", err
	}

	ok, reason := validate.Wallet(walletType, address)
	if !ok {
		return nil, reason, domain.ErrInvalidWallet
	}

	wallet := &domain.Wallet{
		ID:      uuid.NewString(),
		UserID:  userID,
		Type:    walletType,
		Address: address,
		Active:  true,
	}
	if err := uc.walletRepo.CreateWallet(wallet); err != nil {
		return nil, "", err
	}
	uc.logAction("wallet_added", userID, fmt.Sprintf("type: %s", walletType))
	return wallet, "", nil
}

func (uc *DefaultIdentityUsecase) ListWallets(userID int64) ([]*domain.Wallet, error) {
	return uc.walletRepo.GetUserWallets(userID)
}

// HasCompatibleWallet reports whether the user holds an active wallet
// able to receive a payout in the given currency.
func (uc *DefaultIdentityUsecase) HasCompatibleWallet(userID int64, currency domain.Currency) (bool, error) {
	wallets, err := uc.walletRepo.GetUserWallets(userID)
	if err != nil {
		return false, err
	}
	for _, wallet := range wallets {
		for _, walletType := range domain.CompatibleWalletTypes(currency) {
			if wallet.Type == walletType {
				return true, nil
			}
		}
	}
	return false, nil
}

func (uc *DefaultIdentityUsecase) DeactivateWallet(userID int64, walletID string) (bool, error) {
	removed, err := uc.walletRepo.DeactivateWallet(walletID, userID)
	if err != nil {
		return false, err
	}
	if removed {
		uc.logAction("wallet_removed", userID, walletID)
	}
	return removed, nil
}
