package postgres

import (
	"log"

	"escrow-deal-service/internal/config"
	"escrow-deal-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.EscrowConfig) *gorm.DB {
	dsn := cfg.EscrowDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.UserModel{},
		&models.WalletModel{},
		&models.DealModel{},
		&models.DealCodeModel{},
		&models.DealMessageModel{},
		&models.RatingModel{},
		&models.ScammerModel{},
		&models.AuditLogModel{},
		&models.SettingModel{},
	)

	return db
}
