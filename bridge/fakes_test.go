package bridge

import (
	"context"
	"errors"
	"math/big"

	"goflopbridge/types"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

var errReceiptNotFound = errors.New("not found")

type fakeFLOP struct {
	tx        *types.FLOPTransaction
	txErr     error
	verifyOK  bool
	verifyErr error
	unlockErr error
	sendTxID  string
	sendErr   error

	getTxCalls  int
	verifyCalls int
	unlockCalls int
	sendCalls   int
	sentAddress string
	sentAmount  string
}

func (f *fakeFLOP) GetTransaction(txid string) (*types.FLOPTransaction, error) {
	f.getTxCalls++
	return f.tx, f.txErr
}

func (f *fakeFLOP) VerifyMessage(address, signature, message string) (bool, error) {
	f.verifyCalls++
	return f.verifyOK, f.verifyErr
}

func (f *fakeFLOP) WalletPassphrase(passphrase string, timeoutSeconds int) error {
	f.unlockCalls++
	return f.unlockErr
}

func (f *fakeFLOP) SendToAddress(address, amount string) (string, error) {
	f.sendCalls++
	f.sentAddress = address
	f.sentAmount = amount
	return f.sendTxID, f.sendErr
}

type fakeStore struct {
	processed map[string]bool
	reserved  map[string]bool
	records   []*types.ProcessedTxRecord

	isErr      error
	reserveErr error
	commitErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		processed: map[string]bool{},
		reserved:  map[string]bool{},
	}
}

func (f *fakeStore) IsProcessed(txid string) (bool, error) {
	if f.isErr != nil {
		return false, f.isErr
	}
	return f.processed[txid], nil
}

func (f *fakeStore) Reserve(txid string) (bool, error) {
	if f.reserveErr != nil {
		return false, f.reserveErr
	}
	if f.reserved[txid] {
		return false, nil
	}
	f.reserved[txid] = true
	return true, nil
}

func (f *fakeStore) Release(txid string) error {
	delete(f.reserved, txid)
	return nil
}

func (f *fakeStore) Commit(rec *types.ProcessedTxRecord) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.processed[rec.TxID] = true
	f.records = append(f.records, rec)
	delete(f.reserved, rec.TxID)
	return nil
}

type fakeBackend struct {
	gasPrice    *big.Int
	gasPriceErr error
	estimate    uint64
	estimateErr error
	nonce       uint64

	// receipts for known hashes; receiptDefault answers everything else,
	// nil default means "not found yet"
	receipts       map[common.Hash]*ethtypes.Receipt
	receiptDefault *ethtypes.Receipt

	estimateCalls int
	receiptCalls  int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		gasPrice: big.NewInt(1000000000),
		estimate: 60000,
		receipts: map[common.Hash]*ethtypes.Receipt{},
	}
}

func (f *fakeBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	if f.gasPriceErr != nil {
		return nil, f.gasPriceErr
	}
	return new(big.Int).Set(f.gasPrice), nil
}

func (f *fakeBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	f.estimateCalls++
	return f.estimate, f.estimateErr
}

func (f *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return f.nonce, nil
}

func (f *fakeBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
	f.receiptCalls++
	if r, ok := f.receipts[txHash]; ok {
		return r, nil
	}
	if f.receiptDefault != nil {
		return f.receiptDefault, nil
	}
	return nil, errReceiptNotFound
}

type fakeToken struct {
	addr    common.Address
	balance *big.Int

	mintErr error
	burnErr error

	mintCalls      int
	burnCalls      int
	lastMintTo     common.Address
	lastMintAmount *big.Int
	lastBurnAmount *big.Int
}

func (f *fakeToken) Address() common.Address {
	return f.addr
}

func (f *fakeToken) BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error) {
	return new(big.Int).Set(f.balance), nil
}

func (f *fakeToken) Mint(opts *bind.TransactOpts, to common.Address, amount *big.Int) (*ethtypes.Transaction, error) {
	f.mintCalls++
	f.lastMintTo = to
	f.lastMintAmount = new(big.Int).Set(amount)
	if f.mintErr != nil {
		return nil, f.mintErr
	}
	return f.newTx(), nil
}

func (f *fakeToken) Burn(opts *bind.TransactOpts, from common.Address, amount *big.Int) (*ethtypes.Transaction, error) {
	f.burnCalls++
	f.lastBurnAmount = new(big.Int).Set(amount)
	if f.burnErr != nil {
		return nil, f.burnErr
	}
	return f.newTx(), nil
}

func (f *fakeToken) PackMint(to common.Address, amount *big.Int) ([]byte, error) {
	return []byte{0x01}, nil
}

func (f *fakeToken) PackBurn(from common.Address, amount *big.Int) ([]byte, error) {
	return []byte{0x02}, nil
}

func (f *fakeToken) newTx() *ethtypes.Transaction {
	return ethtypes.NewTx(&ethtypes.LegacyTx{
		Nonce:    uint64(f.mintCalls + f.burnCalls),
		To:       &f.addr,
		Value:    big.NewInt(0),
		Gas:      60000,
		GasPrice: big.NewInt(1000000000),
	})
}

func confirmedReceipt(txHash common.Hash) *ethtypes.Receipt {
	return &ethtypes.Receipt{
		TxHash:      txHash,
		BlockHash:   common.HexToHash("0x01"),
		BlockNumber: big.NewInt(18350000),
		Status:      ethtypes.ReceiptStatusSuccessful,
	}
}

func pendingReceipt(txHash common.Hash) *ethtypes.Receipt {
	return &ethtypes.Receipt{TxHash: txHash}
}

func addressTopic(addr common.Address) common.Hash {
	return common.BytesToHash(common.LeftPadBytes(addr.Bytes(), 32))
}

func transferLog(from, to common.Address, amount *big.Int) *ethtypes.Log {
	return &ethtypes.Log{
		Topics: []common.Hash{
			common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"),
			addressTopic(from),
			addressTopic(to),
		},
		Data: common.LeftPadBytes(amount.Bytes(), 32),
	}
}
