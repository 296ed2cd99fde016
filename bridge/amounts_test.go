package bridge

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWFLOPAmountExact(t *testing.T) {
	amount, err := decimal.NewFromString("150.00000000")
	require.NoError(t, err)

	minted, err := ToWFLOPAmount(amount)
	require.NoError(t, err)
	assert.Equal(t, "150000000000000000000", minted.String())
}

func TestToWFLOPAmountSmallestUnit(t *testing.T) {
	amount, err := decimal.NewFromString("0.00000001")
	require.NoError(t, err)

	minted, err := ToWFLOPAmount(amount)
	require.NoError(t, err)
	assert.Equal(t, "10000000000", minted.String())
}

func TestToWFLOPAmountRejectsZero(t *testing.T) {
	_, err := ToWFLOPAmount(decimal.Zero)
	assert.Error(t, err)
}

func TestToWFLOPAmountRejectsNegative(t *testing.T) {
	amount, _ := decimal.NewFromString("-1.5")
	_, err := ToWFLOPAmount(amount)
	assert.Error(t, err)
}

func TestToWFLOPAmountRejectsSubSatoshiPrecision(t *testing.T) {
	for _, raw := range []string{"0.000000001", "1.123456789", "150.000000005"} {
		amount, err := decimal.NewFromString(raw)
		require.NoError(t, err)

		_, err = ToWFLOPAmount(amount)
		assert.Error(t, err, "accepted %s", raw)
	}
}

func TestToWFLOPAmountAlwaysMultipleOfGap(t *testing.T) {
	gap, ok := new(big.Int).SetString("10000000000", 10)
	require.True(t, ok)

	for _, raw := range []string{"0.00000001", "1.12345678", "150"} {
		minted, err := ToWFLOPAmount(decimal.RequireFromString(raw))
		require.NoError(t, err)
		rem := new(big.Int).Mod(minted, gap)
		assert.Zero(t, rem.Sign(), "minted %s for %s", minted.String(), raw)
	}
}

func TestToFLOPAmountExact(t *testing.T) {
	burned, ok := new(big.Int).SetString("2500000000000000000000", 10)
	require.True(t, ok)

	coins, err := ToFLOPAmount(burned)
	require.NoError(t, err)
	assert.Equal(t, "2500.00000000", FormatFLOPAmount(coins))
}

func TestToFLOPAmountTruncatesRemainder(t *testing.T) {
	// one minor unit above 2500 coins must still pay out exactly 2500
	burned, ok := new(big.Int).SetString("2500000000009999999999", 10)
	require.True(t, ok)

	coins, err := ToFLOPAmount(burned)
	require.NoError(t, err)
	assert.Equal(t, "2500.00000000", FormatFLOPAmount(coins))
}

func TestToFLOPAmountNeverRoundsUp(t *testing.T) {
	// anything below one satoshi truncates to zero coins
	burned := big.NewInt(9999999999)
	coins, err := ToFLOPAmount(burned)
	require.NoError(t, err)
	assert.Equal(t, "0.00000000", FormatFLOPAmount(coins))
}

func TestToFLOPAmountRejectsNonPositive(t *testing.T) {
	_, err := ToFLOPAmount(big.NewInt(0))
	assert.Error(t, err)

	_, err = ToFLOPAmount(nil)
	assert.Error(t, err)
}

func TestRoundTripIsIdentityAtSatoshiPrecision(t *testing.T) {
	amount, err := decimal.NewFromString("0.12345678")
	require.NoError(t, err)

	minted, err := ToWFLOPAmount(amount)
	require.NoError(t, err)

	back, err := ToFLOPAmount(minted)
	require.NoError(t, err)
	assert.True(t, amount.Equal(back), "got %s", back.String())
}
