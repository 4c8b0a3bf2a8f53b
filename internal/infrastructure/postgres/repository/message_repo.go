package repository

import (
	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/infrastructure/postgres/mappers"
	"escrow-deal-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultMessageRepository struct {
	DB *gorm.DB
}

func NewDefaultMessageRepository(db *gorm.DB) *DefaultMessageRepository {
	return &DefaultMessageRepository{DB: db}
}

func (r *DefaultMessageRepository) AddMessage(message *domain.DealMessage) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	messageModel := mappers.ToGORMMessage(message)
	if err := r.DB.Create(messageModel).Error; err != nil {
		return err
	}
	message.CreatedAt = messageModel.CreatedAt
	return nil
}

func (r *DefaultMessageRepository) GetMessages(dealID string, limit int) ([]*domain.DealMessage, error) {
	var messageModels []models.DealMessageModel
	query := r.DB.
		Where("deal_id = ?", dealID).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&messageModels).Error; err != nil {
		return nil, err
	}
	messages := make([]*domain.DealMessage, 0, len(messageModels))
	for i := range messageModels {
		messages = append(messages, mappers.ToDomainMessage(&messageModels[i]))
	}
	return messages, nil
}

func (r *DefaultMessageRepository) UnreadCount(dealID string, readerID int64) (int64, error) {
	var count int64
	err := r.DB.Model(&models.DealMessageModel{}).
		Where("deal_id = ? AND sender_id != ? AND read_by_partner = ?", dealID, readerID, false).
		Count(&count).Error
	return count, err
}

func (r *DefaultMessageRepository) MarkRead(dealID string, readerID int64) error {
	return r.DB.Model(&models.DealMessageModel{}).
		Where("deal_id = ? AND sender_id != ? AND read_by_partner = ?", dealID, readerID, false).
		Update("read_by_partner", true).Error
}

func (r *DefaultMessageRepository) SearchMessages(term string, limit int) ([]*domain.DealMessage, error) {
	var messageModels []models.DealMessageModel
	err := r.DB.
		Where("text LIKE ?", "%"+term+"%").
		Order("created_at DESC").
		Limit(limit).
		Find(&messageModels).Error
	if err != nil {
		return nil, err
	}
	messages := make([]*domain.DealMessage, 0, len(messageModels))
	for i := range messageModels {
		messages = append(messages, mappers.ToDomainMessage(&messageModels[i]))
	}
	return messages, nil
}

func (r *DefaultMessageRepository) ThreadSummaries(limit int) ([]*domain.ThreadSummary, error) {
	var summaries []*domain.ThreadSummary
	err := r.DB.Model(&models.DealMessageModel{}).
		Select("deals.id AS deal_id, deals.code AS code, deals.status AS status, COUNT(deal_messages.id) AS message_count, MAX(deal_messages.created_at) AS last_message").
		Joins("JOIN deals ON deals.id = deal_messages.deal_id").
		Group("deals.id, deals.code, deals.status").
		Order("MAX(deal_messages.created_at) DESC").
		Limit(limit).
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
