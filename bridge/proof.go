package bridge

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// VerifyFLOPOwnership asks the FLOP node to check the request signature
// against the asserted depositor address.
func VerifyFLOPOwnership(flop FLOPClient, address, signature, message string) error {
	ok, err := flop.VerifyMessage(address, signature, message)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrProofInvalid, err.Error())
	}
	if !ok {
		return fmt.Errorf("%w: FLOP signature verification failed", ErrProofInvalid)
	}
	return nil
}

// RecoverEVMSigner recovers the address that produced an EIP-191 personal
// signature over msg. The caller compares it against the on-chain burn
// sender; the caller-asserted signer address is never trusted.
func RecoverEVMSigner(msg string, sig string) (common.Address, error) {
	sigBytes, err := hexutil.Decode(sig)
	if err != nil {
		log.Printf("Invalid signature '%s' hex: %s", sig, err.Error())
		return common.Address{}, fmt.Errorf("%w: invalid signature hex", ErrProofInvalid)
	}

	if len(sigBytes) != 65 {
		log.Printf("Wrong signature '%s' length: %d", sig, len(sigBytes))
		return common.Address{}, fmt.Errorf("%w: wrong signature length", ErrProofInvalid)
	}

	if sigBytes[64] != 27 && sigBytes[64] != 28 && sigBytes[64] != 0 && sigBytes[64] != 1 {
		log.Printf("Wrong signature '%s' checksum: %v", sig, sigBytes[64])
		return common.Address{}, fmt.Errorf("%w: wrong signature checksum", ErrProofInvalid)
	}

	if sigBytes[64] == 27 || sigBytes[64] == 28 {
		sigBytes[64] = sigBytes[64] - 27
	}

	msgHash := prefixHash([]byte(msg))
	sigPublicKey, err := crypto.Ecrecover(msgHash.Bytes(), sigBytes)
	if err != nil {
		log.Printf("Cannot decode public key: %s", err.Error())
		return common.Address{}, fmt.Errorf("%w: cannot decode public key", ErrProofInvalid)
	}

	address := publicKeyBytesToAddress(sigPublicKey)
	if address == nil {
		return common.Address{}, fmt.Errorf("%w: cannot derive signer address", ErrProofInvalid)
	}

	return *address, nil
}

func prefixHash(data []byte) common.Hash {
	msg := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(data), data)
	return crypto.Keccak256Hash([]byte(msg))
}

func publicKeyBytesToAddress(publicKey []byte) *common.Address {
	if len(publicKey) < 1 {
		return nil
	}

	hash := crypto.Keccak256Hash(publicKey[1:]).Bytes()
	address := hash[12:]

	addr := common.HexToAddress(hex.EncodeToString(address))
	return &addr
}
