package bridge

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// FLOP carries 8 decimal places, WFLOP 18, so one FLOP satoshi is 1e10
// WFLOP minor units.
const decimalsGap = 10

var decimalsGapExp = new(big.Int).Exp(big.NewInt(10), big.NewInt(decimalsGap), nil)

// ToWFLOPAmount converts a FLOP coin amount into WFLOP minor units, exactly.
// Amounts with more than 8 decimal places are rejected rather than rounded,
// so every minted amount is a whole multiple of 10^10 minor units.
func ToWFLOPAmount(amount decimal.Decimal) (*big.Int, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("non-positive FLOP amount %s", amount.String())
	}

	satoshis := amount.Shift(8)
	if !satoshis.IsInteger() {
		return nil, fmt.Errorf("FLOP amount %s has more than 8 decimal places", amount.String())
	}
	return new(big.Int).Mul(satoshis.BigInt(), decimalsGapExp), nil
}

// ToFLOPAmount converts WFLOP minor units into a FLOP coin amount at 8
// decimal places. Sub-satoshi remainders are truncated, never rounded up:
// the native payout must not exceed the tokens actually burned.
func ToFLOPAmount(minorUnits *big.Int) (decimal.Decimal, error) {
	if minorUnits == nil || minorUnits.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("non-positive WFLOP amount")
	}

	satoshis := new(big.Int).Quo(minorUnits, decimalsGapExp)
	return decimal.NewFromBigInt(satoshis, -8), nil
}

// FormatFLOPAmount renders a FLOP amount the way the node expects it,
// always with 8 decimal places.
func FormatFLOPAmount(amount decimal.Decimal) string {
	return amount.StringFixed(8)
}
