package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserModel struct {
	ID             int64           `gorm:"primaryKey;autoIncrement:false"`
	Username       string          `gorm:"index"`
	FirstName      string
	Rating         float64         `gorm:"not null;default:5.0"`
	TotalDeals     int64           `gorm:"not null;default:0"`
	CompletedDeals int64           `gorm:"not null;default:0"`
	IsBanned       bool            `gorm:"not null;default:false"`
	IsGuarantor    bool            `gorm:"not null;default:false;index"`
	BalanceStars   int64           `gorm:"not null;default:0"`
	BalanceRub     decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	BalanceCrypto  decimal.Decimal `gorm:"type:numeric(28,8);not null;default:0"`
	CreatedAt      time.Time
}

func (UserModel) TableName() string {
	return "users"
}
