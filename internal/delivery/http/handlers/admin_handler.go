package handlers

import (
	"net/http"
	"strconv"

	"escrow-deal-service/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the operator API: platform stats, deal listing,
// the audit trail and the maintenance switch. The Telegram bot remains
// the only user-facing surface.
type AdminHandler struct {
	dealRepo  domain.DealRepository
	statsRepo domain.StatsRepository
	settings  domain.SettingsRepository
	audit     domain.AuditLogger
	log       *zap.Logger
}

func NewAdminHandler(
	dealRepo domain.DealRepository,
	statsRepo domain.StatsRepository,
	settings domain.SettingsRepository,
	audit domain.AuditLogger,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		dealRepo:  dealRepo,
		statsRepo: statsRepo,
		settings:  settings,
		audit:     audit,
		log:       log,
	}
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.statsRepo.PlatformStats()
	if err != nil {
		h.log.Error("stats query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ListDeals(c *gin.Context) {
	deals, err := h.dealRepo.ListDeals()
	if err != nil {
		h.log.Error("deal listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list deals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deals": deals, "count": len(deals)})
}

func (h *AdminHandler) GetLogs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	entries, err := h.audit.GetLogs(limit)
	if err != nil {
		h.log.Error("audit log query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": entries, "count": len(entries)})
}

type maintenanceRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *AdminHandler) SetMaintenance(c *gin.Context) {
	var req maintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.settings.SetSetting(domain.SettingMaintenanceMode, strconv.FormatBool(req.Enabled)); err != nil {
		h.log.Error("maintenance switch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update setting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"maintenance": req.Enabled})
}
