package bridge

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// VerifyDeposit fetches the FLOP transaction and returns the amount of the
// first output paying the bridge deposit address. Multiple qualifying
// outputs are not summed.
func VerifyDeposit(flop FLOPClient, txid, depositAddress string) (decimal.Decimal, error) {
	tx, err := flop.GetTransaction(txid)
	if err != nil {
		return decimal.Zero, err
	}
	if tx == nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrTransactionNotFound, txid)
	}
	if tx.Details == nil {
		return decimal.Zero, fmt.Errorf("%w: missing output list", ErrMalformedTransaction)
	}

	for _, out := range tx.Details {
		if out.Address != "" && strings.EqualFold(out.Address, depositAddress) && out.Amount.Sign() > 0 {
			return out.Amount, nil
		}
	}

	return decimal.Zero, ErrDepositAddressMismatch
}
