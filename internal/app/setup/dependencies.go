package setup

import (
	"fmt"

	"escrow-deal-service/internal/config"
	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/infrastructure/archive"
	"escrow-deal-service/internal/infrastructure/kafka"
	"escrow-deal-service/internal/infrastructure/logger"
	"escrow-deal-service/internal/infrastructure/metrics"
	"escrow-deal-service/internal/infrastructure/migrate"
	"escrow-deal-service/internal/infrastructure/postgres"
	"escrow-deal-service/internal/infrastructure/postgres/repository"
	"escrow-deal-service/internal/infrastructure/telegram"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config    *config.EscrowConfig
	Log       *zap.Logger
	DB        *gorm.DB
	Metrics   *metrics.DealMetrics
	Publisher *kafka.DealEventPublisher
	Sink      domain.NotificationSink
	Archive   domain.TranscriptArchive
	Audit     domain.AuditLogger

	Repositories *Repositories
}

type Repositories struct {
	DealRepo     domain.DealRepository
	UserRepo     domain.UserRepository
	WalletRepo   domain.WalletRepository
	MessageRepo  domain.MessageRepository
	RatingRepo   domain.RatingRepository
	ScammerRepo  domain.ScammerRepository
	SettingsRepo domain.SettingsRepository
	StatsRepo    domain.StatsRepository
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()
	log := logger.MustInit(cfg.LogConfig)

	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.EscrowDB.MigrationsPath); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	dealPublisher := kafka.NewDealEventPublisher(brokers, cfg.KafkaService.Topic)

	sink, err := telegram.NewNotifier(cfg.TelegramBot.Token)
	if err != nil {
		return nil, fmt.Errorf("telegram notifier: %w", err)
	}

	repos := &Repositories{
		DealRepo:     repository.NewDefaultDealRepository(db),
		UserRepo:     repository.NewDefaultUserRepository(db),
		WalletRepo:   repository.NewDefaultWalletRepository(db),
		MessageRepo:  repository.NewDefaultMessageRepository(db),
		RatingRepo:   repository.NewDefaultRatingRepository(db),
		ScammerRepo:  repository.NewDefaultScammerRepository(db),
		SettingsRepo: repository.NewDefaultSettingsRepository(db),
		StatsRepo:    repository.NewDefaultStatsRepository(db),
	}

	return &Dependencies{
		Config:       cfg,
		Log:          log,
		DB:           db,
		Metrics:      metrics.NewDealMetrics(),
		Publisher:    dealPublisher,
		Sink:         sink,
		Archive:      archive.NewClient(cfg.Archive.BaseURL),
		Audit:        repository.NewPGAuditLogger(db),
		Repositories: repos,
	}, nil
}
