package thread

import (
	"escrow-deal-service/internal/domain"
	"escrow-deal-service/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

// defaultMessageLimit bounds a single thread read.
const defaultMessageLimit = 50

type DefaultThreadUsecase struct {
	messageRepo   domain.MessageRepository
	dealRepo      domain.DealRepository
	archive       domain.TranscriptArchive
	audit         domain.AuditLogger
	metrics       *metrics.DealMetrics
	log           *zap.Logger
	adminID       int64
	maxMessageLen int
}

func NewDefaultThreadUsecase(
	messageRepo domain.MessageRepository,
	dealRepo domain.DealRepository,
	archive domain.TranscriptArchive,
	audit domain.AuditLogger,
	dealMetrics *metrics.DealMetrics,
	log *zap.Logger,
	adminID int64,
	maxMessageLen int,
) *DefaultThreadUsecase {
	return &DefaultThreadUsecase{
		messageRepo:   messageRepo,
		dealRepo:      dealRepo,
		archive:       archive,
		audit:         audit,
		metrics:       dealMetrics,
		log:           log,
		adminID:       adminID,
		maxMessageLen: maxMessageLen,
	}
}

func (uc *DefaultThreadUsecase) isAdmin(userID int64) bool {
	return uc.adminID != 0 && userID == uc.adminID
}

// canRead covers participants plus the admin (read-only inspection).
func (uc *DefaultThreadUsecase) canRead(deal *domain.Deal, userID int64) bool {
	return deal.IsParticipant(userID) || uc.isAdmin(userID)
}
