package repository

import (
	"errors"

	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/infrastructure/postgres/mappers"
	"escrow-deal-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultScammerRepository struct {
	DB *gorm.DB
}

func NewDefaultScammerRepository(db *gorm.DB) *DefaultScammerRepository {
	return &DefaultScammerRepository{DB: db}
}

func (r *DefaultScammerRepository) AddScammer(record *domain.ScammerRecord) error {
	scammerModel := mappers.ToGORMScammer(record)
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "first_name", "description", "added_by"}),
	}).Create(scammerModel).Error
}

func (r *DefaultScammerRepository) RemoveScammer(userID int64) (bool, error) {
	result := r.DB.Where("user_id = ?", userID).Delete(&models.ScammerModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *DefaultScammerRepository) IsScammer(userID int64) (bool, error) {
	var count int64
	err := r.DB.Model(&models.ScammerModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

func (r *DefaultScammerRepository) GetScammer(userID int64) (*domain.ScammerRecord, error) {
	var scammer models.ScammerModel
	if err := r.DB.First(&scammer, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainScammer(&scammer), nil
}

func (r *DefaultScammerRepository) ListScammers() ([]*domain.ScammerRecord, error) {
	var scammerModels []models.ScammerModel
	if err := r.DB.Order("created_at DESC").Find(&scammerModels).Error; err != nil {
		return nil, err
	}
	records := make([]*domain.ScammerRecord, 0, len(scammerModels))
	for i := range scammerModels {
		records = append(records, mappers.ToDomainScammer(&scammerModels[i]))
	}
	return records, nil
}
