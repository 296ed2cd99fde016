package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"goflopbridge/bridge"
	"goflopbridge/types"
)

type SwapAPIRequest struct {
	TransactionHash string `json:"transactionHash"`
	SignerAddress   string `json:"signerAddress"`
	TargetAddress   string `json:"targetAddress"`
	SwapOption      string `json:"swapOption"`
	Signature       string `json:"signature"`
	SignMessageText string `json:"signMessageText"`
}

func (h *Handler) Swap(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading request body: %s", err.Error())
		responseJSON(w, &APIResponse{
			Status:  "error",
			Message: "Error reading request body",
		}, http.StatusBadRequest)
		return
	}

	var req SwapAPIRequest
	err = json.Unmarshal(body, &req)
	if err != nil {
		log.Printf("Error unmarshalling request body: %s\n", err.Error())
		responseJSON(w, &APIResponse{
			Status:  "error",
			Message: "Cannot unmarshal input JSON",
		}, http.StatusBadRequest)
		return
	}

	if req.TransactionHash == "" || req.SignerAddress == "" || req.TargetAddress == "" || req.SwapOption == "" || req.Signature == "" {
		responseJSON(w, &APIResponse{
			Status:  "error",
			Message: "Missing parameters. Please provide all required fields.",
		}, http.StatusBadRequest)
		return
	}

	direction, ok := types.ParseSwapDirection(req.SwapOption)
	if !ok {
		responseJSON(w, &APIResponse{
			Status:  "error",
			Field:   "swapOption",
			Message: "Invalid swap option provided.",
		}, http.StatusBadRequest)
		return
	}

	if direction == types.DIRECTION_FLOP_TO_WFLOP && req.SignMessageText == "" {
		responseJSON(w, &APIResponse{
			Status:  "error",
			Field:   "signMessageText",
			Message: "Missing signed message text.",
		}, http.StatusBadRequest)
		return
	}

	result, err := h.Engine.Swap(types.SwapRequest{
		SourceTxID:    req.TransactionHash,
		SignerAddress: req.SignerAddress,
		TargetAddress: req.TargetAddress,
		Direction:     direction,
		Signature:     req.Signature,
		SignedMessage: req.SignMessageText,
	})
	if err != nil {
		log.Printf("Swap %s failed: %s", req.TransactionHash, err.Error())

		resp := &APIResponse{
			Status:  "error",
			Message: err.Error(),
			Field:   fieldForError(err),
		}
		if result != nil && result.EVMTxHash != "" {
			// tokens already burned, give the operator the burn hash
			resp.BurnTxHash = result.EVMTxHash
		}
		responseJSON(w, resp, statusForError(err))
		return
	}

	status := "ok"
	if result.Status == bridge.StatusSubmitted {
		status = "submitted"
	}

	responseJSON(w, &APISwapResponse{
		Status:     status,
		Message:    result.Message,
		Warning:    result.Warning,
		SourceTxID: result.SourceTxID,
		EVMTxHash:  result.EVMTxHash,
		FLOPTxID:   result.PayoutTxID,
		Amount:     result.Amount,
		Receipt:    result.Receipt,
	}, http.StatusOK)
}

// statusForError maps rejection classes to client errors and everything
// operational (store, RPC, payout, configuration) to server errors.
func statusForError(err error) int {
	switch {
	case errors.Is(err, bridge.ErrInvalidAddress),
		errors.Is(err, bridge.ErrInvalidDirection),
		errors.Is(err, bridge.ErrAlreadyProcessed),
		errors.Is(err, bridge.ErrProofInvalid),
		errors.Is(err, bridge.ErrProofMismatch),
		errors.Is(err, bridge.ErrTransactionNotFound),
		errors.Is(err, bridge.ErrMalformedTransaction),
		errors.Is(err, bridge.ErrDepositAddressMismatch),
		errors.Is(err, bridge.ErrBurnEventNotFound),
		errors.Is(err, bridge.ErrInsufficientBalance):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fieldForError(err error) string {
	switch {
	case errors.Is(err, bridge.ErrInvalidAddress):
		return "targetAddress"
	case errors.Is(err, bridge.ErrInvalidDirection):
		return "swapOption"
	case errors.Is(err, bridge.ErrProofInvalid), errors.Is(err, bridge.ErrProofMismatch):
		return "signature"
	case errors.Is(err, bridge.ErrAlreadyProcessed),
		errors.Is(err, bridge.ErrTransactionNotFound),
		errors.Is(err, bridge.ErrMalformedTransaction),
		errors.Is(err, bridge.ErrDepositAddressMismatch),
		errors.Is(err, bridge.ErrBurnEventNotFound):
		return "transactionHash"
	}
	return ""
}
