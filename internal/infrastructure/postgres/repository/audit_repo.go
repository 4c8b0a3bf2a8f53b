package repository

import (
	"time"

	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// PGAuditLogger persists every state-changing action for the admin views.
type PGAuditLogger struct {
	DB *gorm.DB
}

func NewPGAuditLogger(db *gorm.DB) *PGAuditLogger {
	return &PGAuditLogger{DB: db}
}

func (l *PGAuditLogger) LogAction(action string, userID int64, dealID string, details string) error {
	entry := models.AuditLogModel{
		Action:    action,
		UserID:    userID,
		DealID:    dealID,
		Details:   details,
		Timestamp: time.Now(),
	}
	return l.DB.Create(&entry).Error
}

func (l *PGAuditLogger) GetLogs(limit int) ([]*domain.AuditEntry, error) {
	var logModels []models.AuditLogModel
	err := l.DB.Order("timestamp DESC").Limit(limit).Find(&logModels).Error
	if err != nil {
		return nil, err
	}
	entries := make([]*domain.AuditEntry, 0, len(logModels))
	for i := range logModels {
		m := &logModels[i]
		entries = append(entries, &domain.AuditEntry{
			ID:        m.ID,
			Action:    m.Action,
			UserID:    m.UserID,
			DealID:    m.DealID,
			Details:   m.Details,
			Timestamp: m.Timestamp,
		})
	}
	return entries, nil
}
