package handlers

import (
	"fmt"
	"log"
	"net/http"
)

// BalanceFLOP reports the custodial FLOP wallet balance in whole coins.
func (h *Handler) BalanceFLOP(w http.ResponseWriter, r *http.Request) {
	balance, err := h.FLOP.GetBalance()
	if err != nil {
		log.Printf("Error getting FLOP balance: %s", err.Error())
		responsePlain(w, []byte("error"), 500)
		return
	}
	responsePlain(w, []byte(fmt.Sprintf("%d", int64(balance))), 200)
}
