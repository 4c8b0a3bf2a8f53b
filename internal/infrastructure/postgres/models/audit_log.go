package models

import "time"

type AuditLogModel struct {
	ID        uint   `gorm:"primaryKey"`
	Action    string `gorm:"not null;index"`
	UserID    int64  `gorm:"index"`
	DealID    string `gorm:"index"`
	Details   string
	Timestamp time.Time `gorm:"index"`
}

func (AuditLogModel) TableName() string {
	return "logs"
}

type SettingModel struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

func (SettingModel) TableName() string {
	return "settings"
}
