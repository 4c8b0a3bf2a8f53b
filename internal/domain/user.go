package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultRating = 5.0

type User struct {
	ID             int64
	Username       string
	FirstName      string
	Rating         float64
	TotalDeals     int64
	CompletedDeals int64
	IsBanned       bool
	IsGuarantor    bool
	BalanceStars   int64
	BalanceRub     decimal.Decimal
	BalanceCrypto  decimal.Decimal
	CreatedAt      time.Time
}

type UserRepository interface {
	CreateUser(user *User) error
	GetUserByID(userID int64) (*User, error)
	SetBanned(userID int64, banned bool) error
	SetGuarantor(userID int64, isGuarantor bool) error
	UpdateRating(userID int64, rating float64) error
	AdjustBalance(userID int64, currency Currency, delta decimal.Decimal) error
	// IncrementDealStats bumps total_deals and completed_deals for all
	// given users in one statement.
	IncrementDealStats(userIDs ...int64) error
	// ListGuarantors returns users with is_guarantor set and not banned.
	ListGuarantors() ([]*User, error)
	ListUsers() ([]*User, error)
}

type WalletType string

const (
	WalletCard WalletType = "card"
	WalletBTC  WalletType = "btc"
	WalletUSDT WalletType = "usdt"
	WalletTON  WalletType = "ton"
)

type Wallet struct {
	ID        string
	UserID    int64
	Type      WalletType
	Address   string
	Active    bool
	CreatedAt time.Time
}

type WalletRepository interface {
	CreateWallet(wallet *Wallet) error
	// GetUserWallets returns active wallets only.
	GetUserWallets(userID int64) ([]*Wallet, error)
	// DeactivateWallet soft-deletes; the row stays for deal history.
	DeactivateWallet(walletID string, userID int64) (bool, error)
}

// CompatibleWalletTypes maps a deal currency to the wallet types that can
// receive it. Stars settle to any wallet.
func CompatibleWalletTypes(currency Currency) []WalletType {
	switch currency {
	case CurrencyRub:
		return []WalletType{WalletCard}
	case CurrencyCrypto:
		return []WalletType{WalletBTC, WalletUSDT, WalletTON}
	case CurrencyStars:
		return []WalletType{WalletCard, WalletBTC, WalletUSDT, WalletTON}
	}
	return nil
}

type ScammerRecord struct {
	ID          string
	UserID      int64
	Username    string
	FirstName   string
	Description string
	AddedBy     int64
	CreatedAt   time.Time
}

type ScammerRepository interface {
	AddScammer(record *ScammerRecord) error
	RemoveScammer(userID int64) (bool, error)
	IsScammer(userID int64) (bool, error)
	GetScammer(userID int64) (*ScammerRecord, error)
	ListScammers() ([]*ScammerRecord, error)
}
