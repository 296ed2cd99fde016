// Package wflop binds the WFLOP token contract surface the bridge uses:
// mint, burn, balanceOf and the standard Transfer event.
package wflop

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

const WflopABI = `[
	{"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"name":"mint","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"from","type":"address"},{"name":"amount","type":"uint256"}],"name":"burn","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":true,"name":"to","type":"address"},{"indexed":false,"name":"value","type":"uint256"}],"name":"Transfer","type":"event"}
]`

type Wflop struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
}

func NewWflop(address common.Address, backend bind.ContractBackend) (*Wflop, error) {
	parsed, err := abi.JSON(strings.NewReader(WflopABI))
	if err != nil {
		return nil, err
	}
	return &Wflop{
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
	}, nil
}

func (w *Wflop) Address() common.Address {
	return w.address
}

func (w *Wflop) BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error) {
	var out []interface{}
	err := w.contract.Call(opts, &out, "balanceOf", account)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (w *Wflop) Mint(opts *bind.TransactOpts, to common.Address, amount *big.Int) (*ethtypes.Transaction, error) {
	return w.contract.Transact(opts, "mint", to, amount)
}

func (w *Wflop) Burn(opts *bind.TransactOpts, from common.Address, amount *big.Int) (*ethtypes.Transaction, error) {
	return w.contract.Transact(opts, "burn", from, amount)
}

// PackBurn returns the calldata for a burn call, used for gas estimation.
func (w *Wflop) PackBurn(from common.Address, amount *big.Int) ([]byte, error) {
	return w.abi.Pack("burn", from, amount)
}

// PackMint returns the calldata for a mint call, used for gas estimation.
func (w *Wflop) PackMint(to common.Address, amount *big.Int) ([]byte, error) {
	return w.abi.Pack("mint", to, amount)
}
