// Package validate holds address validators for payout wallets.
package validate

import (
	"regexp"
	"strings"

	"escrow-deal-service/internal/domain"
)

var (
	cardRe      = regexp.MustCompile(`^\d{16}$`)
	btcLegacyRe = regexp.MustCompile(`^[13][a-km-zA-HJ-NP-Z1-9]{24,33}$`)
	btcBech32Re = regexp.MustCompile(`^bc1[a-z0-9]{8,87}$`)
	usdtErc20Re = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	usdtTrc20Re = regexp.MustCompile(`^T[a-zA-Z0-9]{33}$`)
	tonRe       = regexp.MustCompile(`^[a-zA-Z0-9_-]{48}$`)
)

// Wallet checks an address against its declared wallet type. The second
// return value is a user-facing reason when validation fails.
func Wallet(walletType domain.WalletType, address string) (bool, string) {
	address = strings.TrimSpace(address)
	switch walletType {
	case domain.WalletCard:
		return Card(address)
	case domain.WalletBTC:
		return BTC(address)
	case domain.WalletUSDT:
		return USDT(address)
	case domain.WalletTON:
		return TON(address)
	}
	return false, "Unknown wallet type."
}

func Card(number string) (bool, string) {
	number = strings.ReplaceAll(number, " ", "")
	if !cardRe.MatchString(number) {
		return false, "Card number must be exactly 16 digits."
	}
	return true, ""
}

func BTC(address string) (bool, string) {
	if btcLegacyRe.MatchString(address) || btcBech32Re.MatchString(address) {
		return true, ""
	}
	return false, "Invalid BTC address. Expected a legacy (1... or 3...) or bech32 (bc1...) address."
}

// USDT accepts ERC-20 and TRC-20 addresses.
func USDT(address string) (bool, string) {
	if usdtErc20Re.MatchString(address) || usdtTrc20Re.MatchString(address) {
		return true, ""
	}
	return false, "Invalid USDT address. Expected an ERC-20 (0x..., 42 chars) or TRC-20 (T..., 34 chars) address."
}

func TON(address string) (bool, string) {
	if !tonRe.MatchString(address) {
		return false, "Invalid TON address. Expected 48 characters."
	}
	return true, ""
}
