package bridge

import (
	"fmt"

	"goflopbridge/config"

	"github.com/shopspring/decimal"
)

// PayoutNative unlocks the custodial FLOP wallet for a short window and
// sends the coin amount to the target address. The returned id may be empty
// when the node answers with an empty success result.
func PayoutNative(flop FLOPClient, passphrase, address string, amount decimal.Decimal) (string, error) {
	if err := flop.WalletPassphrase(passphrase, config.FLOP_WALLET_UNLOCK_SECONDS); err != nil {
		return "", fmt.Errorf("%w: %s", ErrWalletUnlockFailed, err.Error())
	}

	txid, err := flop.SendToAddress(address, FormatFLOPAmount(amount))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrPayoutRPC, err.Error())
	}
	return txid, nil
}
