package bridge

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log"
	"math/big"
	"strings"

	"goflopbridge/config"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// TokenBridge submits WFLOP state changes with the bridge gas policy:
// suggested gas price plus 10%, estimated gas limit with a fixed fallback.
// It returns submitted transactions immediately; confirmation is the
// poller's job.
type TokenBridge struct {
	Backend        EVMBackend
	Token          Token
	ChainID        *big.Int
	PrivateKey     *ecdsa.PrivateKey
	CustodyAddress common.Address
}

func (tb *TokenBridge) Mint(ctx context.Context, to common.Address, amount *big.Int) (*ethtypes.Transaction, error) {
	auth, err := tb.transactor(ctx)
	if err != nil {
		return nil, err
	}

	calldata, err := tb.Token.PackMint(to, amount)
	if err != nil {
		return nil, fmt.Errorf("error packing mint call: %w", err)
	}
	auth.GasLimit = tb.gasLimit(ctx, calldata)

	tx, err := tb.Token.Mint(auth, to, amount)
	if err != nil {
		return nil, fmt.Errorf("error calling mint method: %w", err)
	}
	return tx, nil
}

// Burn destroys tokens held by the custody address. Before burning it
// checks that the signing key controls the custody address and that the
// custody balance covers the amount.
func (tb *TokenBridge) Burn(ctx context.Context, amount *big.Int) (*ethtypes.Transaction, error) {
	if err := tb.VerifyCustodyKey(); err != nil {
		return nil, err
	}

	balance, err := tb.Token.BalanceOf(&bind.CallOpts{Context: ctx}, tb.CustodyAddress)
	if err != nil {
		return nil, fmt.Errorf("error getting custody token balance: %w", err)
	}
	if balance.Cmp(amount) < 0 {
		return nil, fmt.Errorf("%w: have %s, need %s", ErrInsufficientBalance, balance.String(), amount.String())
	}

	auth, err := tb.transactor(ctx)
	if err != nil {
		return nil, err
	}

	calldata, err := tb.Token.PackBurn(tb.CustodyAddress, amount)
	if err != nil {
		return nil, fmt.Errorf("error packing burn call: %w", err)
	}
	auth.GasLimit = tb.gasLimit(ctx, calldata)

	tx, err := tb.Token.Burn(auth, tb.CustodyAddress, amount)
	if err != nil {
		return nil, fmt.Errorf("error calling burn method: %w", err)
	}
	return tx, nil
}

// VerifyCustodyKey checks that the configured signing key actually controls
// the custody address. A mismatch is an operator fault, not a user error.
func (tb *TokenBridge) VerifyCustodyKey() error {
	signer := crypto.PubkeyToAddress(tb.PrivateKey.PublicKey)
	if !strings.EqualFold(signer.Hex(), tb.CustodyAddress.Hex()) {
		return fmt.Errorf("%w: key controls %s, configured %s", ErrConfigMismatch, signer.Hex(), tb.CustodyAddress.Hex())
	}
	return nil
}

func (tb *TokenBridge) transactor(ctx context.Context) (*bind.TransactOpts, error) {
	nonce, err := tb.Backend.PendingNonceAt(ctx, tb.CustodyAddress)
	if err != nil {
		return nil, fmt.Errorf("error getting nonce for wallet: %w", err)
	}

	gasPrice, err := tb.Backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting suggested gas price: %w", err)
	}
	// +10% to reduce stuck-transaction risk under price volatility
	gasPrice = gasPrice.Mul(gasPrice, big.NewInt(110))
	gasPrice = gasPrice.Div(gasPrice, big.NewInt(100))

	auth, err := bind.NewKeyedTransactorWithChainID(tb.PrivateKey, tb.ChainID)
	if err != nil {
		return nil, fmt.Errorf("error instantiating contract call: %w", err)
	}

	auth.Context = ctx
	auth.Nonce = big.NewInt(int64(nonce))
	auth.Value = big.NewInt(0)
	auth.GasPrice = gasPrice

	return auth, nil
}

func (tb *TokenBridge) gasLimit(ctx context.Context, calldata []byte) uint64 {
	to := tb.Token.Address()
	limit, err := tb.Backend.EstimateGas(ctx, ethereum.CallMsg{
		From: tb.CustodyAddress,
		To:   &to,
		Data: calldata,
	})
	if err != nil {
		log.Printf("Gas estimation failed, using fallback limit %d: %s", config.EVM_FALLBACK_GAS_LIMIT, err.Error())
		return config.EVM_FALLBACK_GAS_LIMIT
	}
	return limit
}
