package validate

import (
	"testing"

	"escrow-deal-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCard(t *testing.T) {
	ok, _ := Card("4111111111111111")
	assert.True(t, ok)

	// Spaces in the pasted number are tolerated.
	ok, _ = Card("4111 1111 1111 1111")
	assert.True(t, ok)

	for _, bad := range []string{"411111111111111", "41111111111111112", "4111-1111-1111-1111", "abcd1111 11111111"} {
		ok, reason := Card(bad)
		assert.False(t, ok, bad)
		assert.NotEmpty(t, reason)
	}
}

func TestBTC(t *testing.T) {
	for _, good := range []string{
		"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
		"3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy",
		"bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq",
	} {
		ok, _ := BTC(good)
		assert.True(t, ok, good)
	}

	for _, bad := range []string{"0A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", "bc2qar0srrr7xfkvy5l", "1short"} {
		ok, _ := BTC(bad)
		assert.False(t, ok, bad)
	}
}

func TestUSDT(t *testing.T) {
	ok, _ := USDT("0x742d35Cc6634C0532925a3b844Bc454e4438f44e")
	assert.True(t, ok)

	ok, _ = USDT("TJRabPrwbZy45sbavfcjinPJC18kjpRTv8")
	assert.True(t, ok)

	for _, bad := range []string{"0x742d35Cc6634C0532925a3b844Bc454e4438f44", "T123", "742d35Cc6634C0532925a3b844Bc454e4438f44e"} {
		ok, _ := USDT(bad)
		assert.False(t, ok, bad)
	}
}

func TestTON(t *testing.T) {
	ok, _ := TON("EQCD39VS5jcptHL8vMjEXrzGaRcCVYto7HUn4bpAOg8xqB2N")
	assert.True(t, ok)

	ok, _ = TON("too-short")
	assert.False(t, ok)
}

func TestWalletDispatch(t *testing.T) {
	ok, _ := Wallet(domain.WalletCard, " 4111111111111111 ")
	assert.True(t, ok)

	ok, reason := Wallet(domain.WalletType("paypal"), "whatever")
	assert.False(t, ok)
	assert.Equal(t, "Unknown wallet type.", reason)
}
