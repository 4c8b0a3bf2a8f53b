package mappers

import (
	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/infrastructure/postgres/models"
)

func ToDomainMessage(model *models.DealMessageModel) *domain.DealMessage {
	return &domain.DealMessage{
		ID:            model.ID,
		DealID:        model.DealID,
		SenderID:      model.SenderID,
		Text:          model.Text,
		Kind:          domain.MessageKind(model.Kind),
		ReadByPartner: model.ReadByPartner,
		CreatedAt:     model.CreatedAt,
	}
}

func ToGORMMessage(message *domain.DealMessage) *models.DealMessageModel {
	return &models.DealMessageModel{
		ID:            message.ID,
		DealID:        message.DealID,
		SenderID:      message.SenderID,
		Text:          message.Text,
		Kind:          string(message.Kind),
		ReadByPartner: message.ReadByPartner,
		CreatedAt:     message.CreatedAt,
	}
}

func ToDomainRating(model *models.RatingModel) *domain.Rating {
	return &domain.Rating{
		ID:         model.ID,
		DealID:     model.DealID,
		FromUserID: model.FromUserID,
		ToUserID:   model.ToUserID,
		Score:      model.Score,
		Comment:    model.Comment,
		CreatedAt:  model.CreatedAt,
	}
}

func ToGORMRating(rating *domain.Rating) *models.RatingModel {
	return &models.RatingModel{
		ID:         rating.ID,
		DealID:     rating.DealID,
		FromUserID: rating.FromUserID,
		ToUserID:   rating.ToUserID,
		Score:      rating.Score,
		Comment:    rating.Comment,
		CreatedAt:  rating.CreatedAt,
	}
}

func ToDomainScammer(model *models.ScammerModel) *domain.ScammerRecord {
	return &domain.ScammerRecord{
		ID:          model.ID,
		UserID:      model.UserID,
		Username:    model.Username,
		FirstName:   model.FirstName,
		Description: model.Description,
		AddedBy:     model.AddedBy,
		CreatedAt:   model.CreatedAt,
	}
}

func ToGORMScammer(record *domain.ScammerRecord) *models.ScammerModel {
	return &models.ScammerModel{
		ID:          record.ID,
		UserID:      record.UserID,
		Username:    record.Username,
		FirstName:   record.FirstName,
		Description: record.Description,
		AddedBy:     record.AddedBy,
		CreatedAt:   record.CreatedAt,
	}
}
