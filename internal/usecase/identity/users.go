package identity

import (
	"fmt"

	"escrow-deal-service/internal/domain"
	"github.com/shopspring/decimal"
)

// RegisterUser upserts the user on every /start. Re-registration is a
// no-op apart from keeping the profile fields fresh.
func (uc *DefaultIdentityUsecase) RegisterUser(userID int64, username, firstName string) (*domain.User, error) {
	user := &domain.User{
		ID:        userID,
		Username:  username,
		FirstName: firstName,
		Rating:    domain.DefaultRating,
	}
	if err := uc.userRepo.CreateUser(user); err != nil {
		return nil, err
	}
	uc.logAction("user_registered", userID, "")
	return uc.userRepo.GetUserByID(userID)
}

func (uc *DefaultIdentityUsecase) GetUser(userID int64) (*domain.User, error) {
	return uc.userRepo.GetUserByID(userID)
}

func (uc *DefaultIdentityUsecase) SetBanned(actingUserID, targetID int64, banned bool) error {
	if !uc.isAdmin(actingUserID) {
		return domain.ErrNotAllowed
	}
	if err := uc.userRepo.SetBanned(targetID, banned); err != nil {
		return err
	}
	action := "user_banned"
	if !banned {
		action = "user_unbanned"
	}
	uc.logAction(action, actingUserID, fmt.Sprintf("target: %d", targetID))
	return nil
}

func (uc *DefaultIdentityUsecase) SetGuarantor(actingUserID, targetID int64, isGuarantor bool) error {
	if !uc.isAdmin(actingUserID) {
		return domain.ErrNotAllowed
	}
	if err := uc.userRepo.SetGuarantor(targetID, isGuarantor); err != nil {
		return err
	}
	action := "guarantor_granted"
	if !isGuarantor {
		action = "guarantor_revoked"
	}
	uc.logAction(action, actingUserID, fmt.Sprintf("target: %d", targetID))
	return nil
}

// AdjustBalance credits or debits one of the user's per-currency
// balances. Admin only; normal balance movement happens through deals.
func (uc *DefaultIdentityUsecase) AdjustBalance(actingUserID, targetID int64, currency domain.Currency, delta decimal.Decimal) error {
	if !uc.isAdmin(actingUserID) {
		return domain.ErrNotAllowed
	}
	if !currency.Valid() {
		return domain.ErrInvalidCurrency
	}
	if err := uc.userRepo.AdjustBalance(targetID, currency, delta); err != nil {
		return err
	}
	uc.logAction("balance_adjusted", actingUserID,
		fmt.Sprintf("target: %d, currency: %s, delta: %s", targetID, currency, delta.String()))
	return nil
}

func (uc *DefaultIdentityUsecase) ListUsers(actingUserID int64) ([]*domain.User, error) {
	if !uc.isAdmin(actingUserID) {
		return nil, domain.ErrNotAllowed
	}
	return uc.userRepo.ListUsers()
}
