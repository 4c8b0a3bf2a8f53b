package models

import (
	"time"

	"escrow-deal-service/internal/domain"

	"github.com/shopspring/decimal"
)

type DealModel struct {
	ID                string            `gorm:"primaryKey;type:uuid"`
	Code              string            `gorm:"uniqueIndex;size:16;not null"`
	SellerID          int64             `gorm:"not null;index"`
	BuyerID           *int64            `gorm:"index"`
	GuarantorID       *int64            `gorm:"index"`
	Currency          string            `gorm:"not null"`
	Amount            decimal.Decimal   `gorm:"type:numeric(20,8);not null"`
	Description       string            `gorm:"size:200;not null"`
	Status            domain.DealStatus `gorm:"index:idx_status_created;not null"`
	CommissionPercent float64           `gorm:"not null"`
	GuarantorCalled   bool              `gorm:"not null;default:false"`
	GuarantorCalledAt *time.Time
	CreatedAt         time.Time `gorm:"index:idx_status_created"`
	StartedAt         *time.Time
	CompletedAt       *time.Time
}

func (DealModel) TableName() string {
	return "deals"
}

// DealCodeModel permanently reserves every code ever issued. Rows are
// never deleted, so codes stay unique even after a deal is reaped.
type DealCodeModel struct {
	Code      string `gorm:"primaryKey;size:16"`
	CreatedAt time.Time
}

func (DealCodeModel) TableName() string {
	return "deal_codes"
}
