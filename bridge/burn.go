package bridge

import (
	"math/big"

	"goflopbridge/config"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// BurnEvidence is what a WFLOP transfer into the custody address proves:
// who burned, how much, and in which transaction.
type BurnEvidence struct {
	Burner common.Address
	Amount *big.Int
	TxHash common.Hash
}

// ExtractBurnEvidence scans the receipt logs in order and returns the first
// Transfer whose recipient is the custody address. Logs are not filtered by
// emitting contract.
func ExtractBurnEvidence(receipt *ethtypes.Receipt, custodyAddress common.Address) (*BurnEvidence, error) {
	transferTopic := common.HexToHash(config.EVM_TOKEN_TRANSFER)

	for _, lg := range receipt.Logs {
		if lg == nil || len(lg.Topics) < 3 || lg.Topics[0] != transferTopic {
			continue
		}
		if common.BytesToAddress(lg.Topics[2].Bytes()) != custodyAddress {
			continue
		}
		return &BurnEvidence{
			Burner: common.BytesToAddress(lg.Topics[1].Bytes()),
			Amount: new(big.Int).SetBytes(lg.Data),
			TxHash: receipt.TxHash,
		}, nil
	}

	return nil, ErrBurnEventNotFound
}
