package mappers

import (
	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/infrastructure/postgres/models"
)

func ToDomainDeal(model *models.DealModel) *domain.Deal {
	return &domain.Deal{
		ID:                model.ID,
		Code:              model.Code,
		SellerID:          model.SellerID,
		BuyerID:           model.BuyerID,
		GuarantorID:       model.GuarantorID,
		Currency:          domain.Currency(model.Currency),
		Amount:            model.Amount,
		Description:       model.Description,
		Status:            model.Status,
		CommissionPercent: model.CommissionPercent,
		GuarantorCalled:   model.GuarantorCalled,
		GuarantorCalledAt: model.GuarantorCalledAt,
		CreatedAt:         model.CreatedAt,
		StartedAt:         model.StartedAt,
		CompletedAt:       model.CompletedAt,
	}
}

func ToGORMDeal(deal *domain.Deal) *models.DealModel {
	return &models.DealModel{
		ID:                deal.ID,
		Code:              deal.Code,
		SellerID:          deal.SellerID,
		BuyerID:           deal.BuyerID,
		GuarantorID:       deal.GuarantorID,
		Currency:          string(deal.Currency),
		Amount:            deal.Amount,
		Description:       deal.Description,
		Status:            deal.Status,
		CommissionPercent: deal.CommissionPercent,
		GuarantorCalled:   deal.GuarantorCalled,
		GuarantorCalledAt: deal.GuarantorCalledAt,
		CreatedAt:         deal.CreatedAt,
		StartedAt:         deal.StartedAt,
		CompletedAt:       deal.CompletedAt,
	}
}
