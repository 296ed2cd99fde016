package bridge

import (
	"context"
	"math/big"

	"goflopbridge/types"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// FLOPClient is the chain-A node surface the engine consumes.
// FLOPRPC.Client implements it.
type FLOPClient interface {
	GetTransaction(txid string) (*types.FLOPTransaction, error)
	VerifyMessage(address, signature, message string) (bool, error)
	WalletPassphrase(passphrase string, timeoutSeconds int) error
	SendToAddress(address, amount string) (string, error)
}

// EVMBackend is the chain-B node surface the engine consumes.
// ethclient.Client implements it.
type EVMBackend interface {
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error)
}

// Token is the wrapped-token contract surface. wflop.Wflop implements it.
type Token interface {
	Address() common.Address
	BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error)
	Mint(opts *bind.TransactOpts, to common.Address, amount *big.Int) (*ethtypes.Transaction, error)
	Burn(opts *bind.TransactOpts, from common.Address, amount *big.Int) (*ethtypes.Transaction, error)
	PackBurn(from common.Address, amount *big.Int) ([]byte, error)
	PackMint(to common.Address, amount *big.Int) ([]byte, error)
}

// Store is the idempotency guard's backing store. The redis package
// implements it.
type Store interface {
	IsProcessed(txid string) (bool, error)
	Reserve(txid string) (bool, error)
	Release(txid string) error
	Commit(rec *types.ProcessedTxRecord) error
}

// ReceiptSource is the subset of EVMBackend the confirmation poller needs.
type ReceiptSource interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error)
}
