package bridge

import (
	"fmt"
	"regexp"

	ethav "github.com/KOREAN139/ethereum-address-validator"
	"github.com/ethereum/go-ethereum/common"
)

// canonical FLOP address shape: 34 characters, leading literal F
var flopAddressPattern = regexp.MustCompile(`^F[A-Za-z0-9]{33}$`)

func ParseFLOPAddress(address string) (string, error) {
	if !flopAddressPattern.MatchString(address) {
		return "", fmt.Errorf("%w: not a valid FLOP address: %q", ErrInvalidAddress, address)
	}
	return address, nil
}

func ParseEVMAddress(address string) (common.Address, error) {
	if !common.IsHexAddress(address) {
		return common.Address{}, fmt.Errorf("%w: not a valid EVM address: %q", ErrInvalidAddress, address)
	}
	if err := ethav.Validate(common.HexToAddress(address).Hex()); err != nil {
		return common.Address{}, fmt.Errorf("%w: not a valid EVM address: %q", ErrInvalidAddress, address)
	}
	return common.HexToAddress(address), nil
}
