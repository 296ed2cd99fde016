package bridge

import "errors"

// Settlement failure kinds. Handlers pick the response status by matching
// with errors.Is; everything else is a plain server error.
var (
	// input validation, rejected before any network call
	ErrInvalidAddress   = errors.New("invalid address")
	ErrInvalidDirection = errors.New("invalid swap direction")

	// duplicate submission of an already settled source transaction
	ErrAlreadyProcessed = errors.New("transaction already processed")

	// proof and verification failures, only read-only calls happened
	ErrProofInvalid           = errors.New("ownership proof invalid")
	ErrProofMismatch          = errors.New("ownership proof does not match burn sender")
	ErrTransactionNotFound    = errors.New("source transaction not found")
	ErrMalformedTransaction   = errors.New("malformed source transaction")
	ErrDepositAddressMismatch = errors.New("transaction does not pay the deposit address")
	ErrBurnEventNotFound      = errors.New("no burn transfer to the custody address found")
	ErrInsufficientBalance    = errors.New("insufficient custody token balance")

	// operator fault, not a user error
	ErrConfigMismatch = errors.New("bridge signing key does not control the custody address")

	// external-system failures, caller should retry
	ErrStoreUnavailable = errors.New("settlement store unavailable")

	// destination transaction submitted but receipt not observed in time
	ErrConfirmationTimeout = errors.New("transaction confirmation timed out")

	// chain-A side failures after a confirmed burn
	ErrWalletUnlockFailed = errors.New("FLOP wallet unlock failed")
	ErrPayoutRPC          = errors.New("FLOP payout RPC failed")
)
