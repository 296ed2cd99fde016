package types

import "github.com/shopspring/decimal"

// it is assumed FLOP mainnet has 8 decimal places
// and WFLOP on the EVM side has 18

type SwapDirection string

const (
	DIRECTION_FLOP_TO_WFLOP SwapDirection = "FLOP_TO_WFLOP"
	DIRECTION_WFLOP_TO_FLOP SwapDirection = "WFLOP_TO_FLOP"
)

func ParseSwapDirection(s string) (SwapDirection, bool) {
	switch SwapDirection(s) {
	case DIRECTION_FLOP_TO_WFLOP, DIRECTION_WFLOP_TO_FLOP:
		return SwapDirection(s), true
	}
	return "", false
}

// SwapRequest is a single settlement request as it enters the engine.
// Not persisted beyond the request lifetime.
type SwapRequest struct {
	SourceTxID    string
	SignerAddress string // caller-asserted, only used for the chain-A verifymessage call
	TargetAddress string
	Direction     SwapDirection
	Signature     string
	SignedMessage string
}

// ProcessedTxRecord is the permanent ledger entry for a consumed source
// transaction. Written exactly once, after the destination-side effect,
// never mutated or deleted.
type ProcessedTxRecord struct {
	ID        string
	TxID      string
	Direction SwapDirection
	TsCreated int64
}

// FLOPTransaction mirrors the subset of the FLOP node gettransaction
// response the bridge consumes.
type FLOPTransaction struct {
	TxID    string       `json:"txid"`
	Details []FLOPOutput `json:"details"`
}

type FLOPOutput struct {
	Address  string          `json:"address"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Vout     int             `json:"vout"`
}
