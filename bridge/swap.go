package bridge

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"goflopbridge/types"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// Result statuses visible to the caller. A submitted result means the
// destination transaction went out but no receipt was observed in time; the
// source transaction is intentionally left uncommitted so it can be retried
// once an operator has reconciled.
const (
	StatusSettled   = "settled"
	StatusSubmitted = "submitted"
)

type Result struct {
	Status     string
	Message    string
	Warning    string
	SourceTxID string
	EVMTxHash  string // mint or burn transaction on the EVM side
	PayoutTxID string // native FLOP payout transaction
	Amount     string // minted or burned amount, WFLOP minor units
	Receipt    *ethtypes.Receipt
}

type stage string

const (
	stageReceived       stage = "received"
	stageDuplicateCheck stage = "duplicate_check"
	stageVerifying      stage = "verifying"
	stageExecuting      stage = "executing"
	stageConfirming     stage = "confirming"
	stageSettled        stage = "settled"
	stageSubmitted      stage = "submitted_unconfirmed"
)

// Engine composes the verifiers, the token bridge, the poller, the payout
// executor and the idempotency guard into the two directional settlement
// flows. Every request is an independent unit of work; the engine keeps no
// per-request state.
type Engine struct {
	Guard   *Guard
	FLOP    FLOPClient
	Backend EVMBackend
	Tokens  *TokenBridge

	FLOPDepositAddress   string
	FLOPWalletPassphrase string

	PollTimeout  time.Duration
	PollInterval time.Duration
}

func (e *Engine) Swap(req types.SwapRequest) (*Result, error) {
	e.enter(req.SourceTxID, stageReceived)

	switch req.Direction {
	case types.DIRECTION_FLOP_TO_WFLOP:
		return e.swapFLOPToWFLOP(req)
	case types.DIRECTION_WFLOP_TO_FLOP:
		return e.swapWFLOPToFLOP(req)
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, string(req.Direction))
}

func (e *Engine) swapFLOPToWFLOP(req types.SwapRequest) (*Result, error) {
	ctx := context.Background()

	e.enter(req.SourceTxID, stageDuplicateCheck)
	if err := e.Guard.Reserve(req.SourceTxID); err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			if err := e.Guard.Release(req.SourceTxID); err != nil {
				log.Printf("swap %s: error releasing reservation: %s", req.SourceTxID, err.Error())
			}
		}
	}()

	e.enter(req.SourceTxID, stageVerifying)
	target, err := ParseEVMAddress(req.TargetAddress)
	if err != nil {
		return nil, err
	}

	depositAmount, err := VerifyDeposit(e.FLOP, req.SourceTxID, e.FLOPDepositAddress)
	if err != nil {
		return nil, err
	}

	if err := VerifyFLOPOwnership(e.FLOP, req.SignerAddress, req.Signature, req.SignedMessage); err != nil {
		return nil, err
	}

	mintAmount, err := ToWFLOPAmount(depositAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedTransaction, err.Error())
	}

	e.enter(req.SourceTxID, stageExecuting)
	log.Printf("swap %s: minting %s WFLOP to %s for a %s FLOP deposit",
		req.SourceTxID, mintAmount.String(), target.Hex(), FormatFLOPAmount(depositAmount))
	tx, err := e.Tokens.Mint(ctx, target, mintAmount)
	if err != nil {
		return nil, err
	}

	e.enter(req.SourceTxID, stageConfirming)
	receipt, err := AwaitReceipt(ctx, e.Backend, tx.Hash(), e.PollTimeout, e.PollInterval)
	if err != nil {
		// the mint may still confirm later; report it and keep the
		// source transaction uncommitted for reconciliation
		e.enter(req.SourceTxID, stageSubmitted)
		return &Result{
			Status:     StatusSubmitted,
			Message:    "Swap transaction sent but not yet confirmed.",
			Warning:    "Transaction confirmation timed out. Please check back later.",
			SourceTxID: req.SourceTxID,
			EVMTxHash:  tx.Hash().Hex(),
			Amount:     mintAmount.String(),
		}, nil
	}

	if err := e.Guard.Commit(req.SourceTxID, req.Direction); err != nil {
		log.Printf("swap %s: mint %s confirmed but record not stored: %s", req.SourceTxID, tx.Hash().Hex(), err.Error())
		return nil, err
	}
	committed = true

	e.enter(req.SourceTxID, stageSettled)
	return &Result{
		Status:     StatusSettled,
		Message:    "Swap Successful: FLOP to WFLOP",
		SourceTxID: req.SourceTxID,
		EVMTxHash:  tx.Hash().Hex(),
		Amount:     mintAmount.String(),
		Receipt:    receipt,
	}, nil
}

func (e *Engine) swapWFLOPToFLOP(req types.SwapRequest) (*Result, error) {
	ctx := context.Background()

	e.enter(req.SourceTxID, stageDuplicateCheck)
	if err := e.Guard.Reserve(req.SourceTxID); err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			if err := e.Guard.Release(req.SourceTxID); err != nil {
				log.Printf("swap %s: error releasing reservation: %s", req.SourceTxID, err.Error())
			}
		}
	}()

	e.enter(req.SourceTxID, stageVerifying)
	target, err := ParseFLOPAddress(req.TargetAddress)
	if err != nil {
		return nil, err
	}

	sourceReceipt, err := e.Backend.TransactionReceipt(ctx, common.HexToHash(req.SourceTxID))
	if err != nil || sourceReceipt == nil {
		return nil, fmt.Errorf("%w: no receipt for %s", ErrTransactionNotFound, req.SourceTxID)
	}

	evidence, err := ExtractBurnEvidence(sourceReceipt, e.Tokens.CustodyAddress)
	if err != nil {
		return nil, err
	}

	// the signed message is the exact source transaction id string
	signer, err := RecoverEVMSigner(req.SourceTxID, req.Signature)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(signer.Hex(), evidence.Burner.Hex()) {
		return nil, fmt.Errorf("%w: recovered %s, burn sender %s", ErrProofMismatch, signer.Hex(), evidence.Burner.Hex())
	}

	e.enter(req.SourceTxID, stageExecuting)
	log.Printf("swap %s: burning %s WFLOP from custody for %s", req.SourceTxID, evidence.Amount.String(), signer.Hex())
	burnTx, err := e.Tokens.Burn(ctx, evidence.Amount)
	if err != nil {
		return nil, err
	}

	e.enter(req.SourceTxID, stageConfirming)
	burnReceipt, err := AwaitReceipt(ctx, e.Backend, burnTx.Hash(), e.PollTimeout, e.PollInterval)
	if err != nil {
		e.enter(req.SourceTxID, stageSubmitted)
		return &Result{
			Status:     StatusSubmitted,
			Message:    "Burn transaction sent but not yet confirmed.",
			Warning:    "Burn confirmation timed out. Please check back later.",
			SourceTxID: req.SourceTxID,
			EVMTxHash:  burnTx.Hash().Hex(),
			Amount:     evidence.Amount.String(),
		}, nil
	}

	coinAmount, err := ToFLOPAmount(evidence.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedTransaction, err.Error())
	}

	log.Printf("swap %s: paying out %s FLOP to %s", req.SourceTxID, FormatFLOPAmount(coinAmount), target)
	payoutTx, err := PayoutNative(e.FLOP, e.FLOPWalletPassphrase, target, coinAmount)
	if err != nil {
		// the burn is already confirmed; surface the burn hash so an
		// operator can complete the native side manually
		log.Printf("swap %s: payout failed after confirmed burn %s: %s", req.SourceTxID, burnTx.Hash().Hex(), err.Error())
		return &Result{
			SourceTxID: req.SourceTxID,
			EVMTxHash:  burnTx.Hash().Hex(),
			Amount:     evidence.Amount.String(),
		}, err
	}

	if err := e.Guard.Commit(req.SourceTxID, req.Direction); err != nil {
		log.Printf("swap %s: payout %s sent but record not stored: %s", req.SourceTxID, payoutTx, err.Error())
		return nil, err
	}
	committed = true

	e.enter(req.SourceTxID, stageSettled)
	return &Result{
		Status:     StatusSettled,
		Message:    "Swap Successful: WFLOP to FLOP",
		SourceTxID: req.SourceTxID,
		EVMTxHash:  burnTx.Hash().Hex(),
		PayoutTxID: payoutTx,
		Amount:     evidence.Amount.String(),
		Receipt:    burnReceipt,
	}, nil
}

func (e *Engine) enter(txid string, s stage) {
	log.Printf("swap %s: %s", txid, s)
}
