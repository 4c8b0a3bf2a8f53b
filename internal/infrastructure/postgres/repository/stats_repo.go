package repository

import (
	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DefaultStatsRepository struct {
	DB *gorm.DB
}

func NewDefaultStatsRepository(db *gorm.DB) *DefaultStatsRepository {
	return &DefaultStatsRepository{DB: db}
}

func (r *DefaultStatsRepository) PlatformStats() (*domain.PlatformStats, error) {
	stats := &domain.PlatformStats{}

	if err := r.DB.Model(&models.UserModel{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&models.UserModel{}).Where("is_banned = ?", true).Count(&stats.BannedUsers).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&models.UserModel{}).Where("is_guarantor = ?", true).Count(&stats.Guarantors).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&models.DealModel{}).Count(&stats.TotalDeals).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&models.DealModel{}).Where("status IN ?", nonTerminalStatuses).Count(&stats.ActiveDeals).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&models.DealModel{}).Where("status = ?", domain.StatusCompleted).Count(&stats.CompletedDeals).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&models.DealModel{}).Where("status = ?", domain.StatusCancelled).Count(&stats.CancelledDeals).Error; err != nil {
		return nil, err
	}

	var volume decimal.NullDecimal
	err := r.DB.Model(&models.DealModel{}).
		Select("SUM(amount)").
		Where("status = ?", domain.StatusCompleted).
		Scan(&volume).Error
	if err != nil {
		return nil, err
	}
	if volume.Valid {
		stats.TotalVolume = volume.Decimal.String()
	} else {
		stats.TotalVolume = "0"
	}

	return stats, nil
}
