package identity

import (
	"strconv"

	"escrow-deal-service/internal/domain"
)

// MaintenanceMode reads the kill switch. While enabled, deal creation
// and joining are rejected; everything already in flight proceeds.
func (uc *DefaultIdentityUsecase) MaintenanceMode() (bool, error) {
	value, err := uc.settingsRepo.GetSetting(domain.SettingMaintenanceMode, "false")
	if err != nil {
		return false, err
	}
	return value == "true", nil
}

func (uc *DefaultIdentityUsecase) SetMaintenanceMode(actingUserID int64, enabled bool) error {
	if !uc.isAdmin(actingUserID) {
		return domain.ErrNotAllowed
	}
	if err := uc.settingsRepo.SetSetting(domain.SettingMaintenanceMode, strconv.FormatBool(enabled)); err != nil {
		return err
	}
	uc.logAction("maintenance_mode_set", actingUserID, strconv.FormatBool(enabled))
	return nil
}
