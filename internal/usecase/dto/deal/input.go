package dealdto

import (
	"escrow-deal-service/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateDealInput struct {
	SellerID    int64
	Currency    domain.Currency
	Amount      decimal.Decimal
	Description string
}
