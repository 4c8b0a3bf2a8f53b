package models

import "time"

type DealMessageModel struct {
	ID            string    `gorm:"primaryKey;type:uuid"`
	DealID        string    `gorm:"type:uuid;not null;index"`
	Deal          DealModel `gorm:"foreignKey:DealID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	SenderID      int64     `gorm:"not null;index"`
	Text          string    `gorm:"size:1000;not null"`
	Kind          string    `gorm:"not null;default:'user'"`
	ReadByPartner bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time `gorm:"index"`
}

func (DealMessageModel) TableName() string {
	return "deal_messages"
}
