package domain

const SettingMaintenanceMode = "maintenance_mode"

type SettingsRepository interface {
	GetSetting(key, defaultValue string) (string, error)
	SetSetting(key, value string) error
}

// PlatformStats is the admin-facing aggregate view.
type PlatformStats struct {
	TotalUsers     int64
	BannedUsers    int64
	Guarantors     int64
	TotalDeals     int64
	ActiveDeals    int64
	CompletedDeals int64
	CancelledDeals int64
	TotalVolume    string
}

type StatsRepository interface {
	PlatformStats() (*PlatformStats, error)
}
