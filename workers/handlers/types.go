package handlers

import (
	ethtypes "github.com/ethereum/go-ethereum/core/types"

	"goflopbridge/FLOPRPC"
	"goflopbridge/bridge"
	"goflopbridge/types"
)

// Ledger is the read side of the settlement store the stats endpoints
// consume. redis.Store implements it.
type Ledger interface {
	GetProcessed(txid string) (*types.ProcessedTxRecord, error)
	FindAllProcessed() ([]*types.ProcessedTxRecord, error)
}

// Handler carries the request-independent dependencies, constructed once at
// process start.
type Handler struct {
	Engine *bridge.Engine
	FLOP   *FLOPRPC.Client
	Store  Ledger
}

type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	// set when a payout failed after a confirmed burn, so an operator can
	// complete the native side manually
	BurnTxHash string `json:"burnTxHash,omitempty"`
}

type APISwapResponse struct {
	Status     string            `json:"status"`
	Message    string            `json:"message"`
	Warning    string            `json:"warning,omitempty"`
	SourceTxID string            `json:"sourceTxId"`
	EVMTxHash  string            `json:"evmTxHash,omitempty"`
	FLOPTxID   string            `json:"flopTxId,omitempty"`
	Amount     string            `json:"amount,omitempty"`
	Receipt    *ethtypes.Receipt `json:"receipt,omitempty"`
}

type APIStateResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
