package bridge

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// AwaitReceipt polls for a receipt until one with a real block reference
// shows up or the timeout elapses. Transient fetch errors are swallowed and
// retried; the only failure mode is ErrConfirmationTimeout.
func AwaitReceipt(ctx context.Context, source ReceiptSource, txHash common.Hash, timeout, interval time.Duration) (*ethtypes.Receipt, error) {
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		receipt, err := source.TransactionReceipt(ctx, txHash)
		if err == nil && confirmed(receipt) {
			return receipt, nil
		}
		time.Sleep(interval)
	}

	return nil, ErrConfirmationTimeout
}

func confirmed(receipt *ethtypes.Receipt) bool {
	if receipt == nil {
		return false
	}
	if receipt.BlockHash == (common.Hash{}) {
		return false
	}
	return receipt.BlockNumber != nil && receipt.BlockNumber.Sign() > 0
}
