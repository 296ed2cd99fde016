package handlers

import (
	"fmt"
	"log"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"goflopbridge/EVMRPC"
	"goflopbridge/EVMRPC/wflop"
	"goflopbridge/config"
)

// BalanceWFLOP reports the custody address WFLOP balance in whole tokens.
func (h *Handler) BalanceWFLOP(w http.ResponseWriter, r *http.Request) {
	balanceBI, err := WFLOPBalanceInt()
	if err != nil {
		responsePlain(w, []byte("error"), http.StatusInternalServerError)
		return
	}

	divisor, _ := big.NewInt(0).SetString("1000000000000000000", 10)
	balanceBI = balanceBI.Div(balanceBI, divisor)
	responsePlain(w, []byte(balanceBI.String()), 200)
}

func WFLOPBalanceInt() (*big.Int, error) {
	balanceBI, err := EVMRPC.WithClient(
		func(client *ethclient.Client) (*big.Int, error) {
			token, err := wflop.NewWflop(common.HexToAddress(config.Config.EVM.ContractAddress), client)
			if err != nil {
				log.Println(fmt.Sprintf("Error creating contract instance: %s", err))
				return nil, err
			}

			return token.BalanceOf(nil, common.HexToAddress(config.Config.EVM.CustodyAddress))
		},
	)
	if err != nil {
		log.Println(fmt.Sprintf("Error getting balance: %s", err))
		return nil, err
	}

	return balanceBI, nil
}
