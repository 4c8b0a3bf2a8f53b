package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserBanned      = errors.New("user is banned")
	ErrMaintenanceMode = errors.New("maintenance mode is enabled")

	ErrActiveDealExists   = errors.New("user already has an active deal")
	ErrNoCompatibleWallet = errors.New("no active wallet compatible with deal currency")
	ErrScammerFlagged     = errors.New("user is on the scammer list")
	ErrInvalidAmount      = errors.New("deal amount is invalid")
	ErrInvalidDescription = errors.New("deal description length is out of bounds")
	ErrInvalidCurrency    = errors.New("unknown deal currency")

	ErrDealNotFound      = errors.New("deal not found")
	ErrDealUnavailable   = errors.New("deal is no longer available")
	ErrCannotJoinOwnDeal = errors.New("seller cannot join own deal")
	ErrWrongStatus       = errors.New("deal status does not allow this action")

	ErrGuarantorAlreadyCalled = errors.New("guarantor already called for this deal")
	ErrNoGuarantorsAvailable  = errors.New("no guarantors available")
	ErrNotGuarantor           = errors.New("user is not a guarantor")
	ErrGuarantorBusy          = errors.New("guarantor already mediates another deal")

	ErrNotAllowed     = errors.New("user may not perform this action")
	ErrNotParticipant = errors.New("user is not a deal participant")
	ErrChatClosed     = errors.New("deal chat is closed")
	ErrMessageTooLong = errors.New("message text exceeds the limit")
	ErrEmptyMessage   = errors.New("message text is empty")

	ErrDealNotCompleted = errors.New("deal is not completed")
	ErrDuplicateRating  = errors.New("rating already submitted for this deal")
	ErrInvalidScore     = errors.New("score must be between 1 and 5")

	ErrInvalidWallet = errors.New("wallet address failed validation")
)
