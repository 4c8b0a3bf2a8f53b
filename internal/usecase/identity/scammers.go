package identity

import (
	"fmt"

	"escrow-deal-service/internal/domain"
	"github.com/google/uuid"
)

// FlagScammer puts a user on the scammer list. Flagged users cannot
// create or join deals; counterparties see a warning when one is
// involved in a deal they look at.
func (uc *DefaultIdentityUsecase) FlagScammer(actingUserID, targetID int64, description string) (*domain.ScammerRecord, error) {
	if !uc.isAdmin(actingUserID) {
		return nil, domain.ErrNotAllowed
	}

	record := &domain.ScammerRecord{
		ID:          uuid.NewString(),
		UserID:      targetID,
		Description: description,
		AddedBy:     actingUserID,
	}
	if user, err := uc.userRepo.GetUserByID(targetID); err == nil {
		record.Username = user.Username
		record.FirstName = user.FirstName
	}

	if err := uc.scammerRepo.AddScammer(record); err != nil {
		return nil, err
	}
	uc.logAction("scammer_flagged", actingUserID, fmt.Sprintf("target: %d", targetID))
	return record, nil
}

func (uc *DefaultIdentityUsecase) UnflagScammer(actingUserID, targetID int64) (bool, error) {
	if !uc.isAdmin(actingUserID) {
		return false, domain.ErrNotAllowed
	}
	removed, err := uc.scammerRepo.RemoveScammer(targetID)
	if err != nil {
		return false, err
	}
	if removed {
		uc.logAction("scammer_unflagged", actingUserID, fmt.Sprintf("target: %d", targetID))
	}
	return removed, nil
}

func (uc *DefaultIdentityUsecase) GetScammer(userID int64) (*domain.ScammerRecord, error) {
	return uc.scammerRepo.GetScammer(userID)
}

func (uc *DefaultIdentityUsecase) ListScammers() ([]*domain.ScammerRecord, error) {
	return uc.scammerRepo.ListScammers()
}
