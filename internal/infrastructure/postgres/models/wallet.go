package models

import "time"

type WalletModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	UserID    int64  `gorm:"not null;index"`
	User      UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Type      string `gorm:"not null"`
	Address   string `gorm:"not null"`
	Active    bool   `gorm:"not null;default:true;index"`
	CreatedAt time.Time
}

func (WalletModel) TableName() string {
	return "wallets"
}
