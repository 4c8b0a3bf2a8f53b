package models

import "time"

type ScammerModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	UserID      int64  `gorm:"not null;uniqueIndex"`
	Username    string
	FirstName   string
	Description string `gorm:"not null"`
	AddedBy     int64  `gorm:"not null"`
	CreatedAt   time.Time
}

func (ScammerModel) TableName() string {
	return "scammers"
}
