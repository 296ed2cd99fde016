package main

import (
	"fmt"
	"log"
	"math/big"
	"os"
	"time"

	"goflopbridge/EVMRPC"
	"goflopbridge/EVMRPC/wflop"
	"goflopbridge/FLOPRPC"
	"goflopbridge/bridge"
	"goflopbridge/config"
	"goflopbridge/redis"
	"goflopbridge/workers"
	"goflopbridge/workers/handlers"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func main() {
	log.Print("Starting FLOP/WFLOP bridge")

	f, err := os.OpenFile(fmt.Sprintf("logs/log_%s.txt", time.Now().Format("2006-01-02")), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file for writing: %v", err)
	}
	defer f.Close()

	log.SetOutput(f)

	config.Init()

	// connect to Redis, without the settlement ledger do not continue
	redis.Init()
	store := redis.NewStore()

	flopClient := FLOPRPC.New()

	evmClient, err := EVMRPC.Dial()
	if err != nil {
		log.Fatalf("error connecting to EVM RPC: %v", err)
	}

	token, err := wflop.NewWflop(common.HexToAddress(config.Config.EVM.ContractAddress), evmClient)
	if err != nil {
		log.Fatalf("error binding WFLOP contract: %v", err)
	}

	privateKey, err := crypto.HexToECDSA(config.Config.EVM.PrivateKey)
	if err != nil {
		log.Fatalf("error instantiating private key: %v", err)
	}

	tokens := &bridge.TokenBridge{
		Backend:        evmClient,
		Token:          token,
		ChainID:        big.NewInt(int64(config.Config.EVM.ChainID)),
		PrivateKey:     privateKey,
		CustodyAddress: common.HexToAddress(config.Config.EVM.CustodyAddress),
	}

	// fail fast on a custody key misconfiguration instead of rejecting
	// every burn at runtime
	if err := tokens.VerifyCustodyKey(); err != nil {
		log.Fatalf("custody configuration: %v", err)
	}

	engine := &bridge.Engine{
		Guard:                &bridge.Guard{Store: store},
		FLOP:                 flopClient,
		Backend:              evmClient,
		Tokens:               tokens,
		FLOPDepositAddress:   config.Config.FLOP.DepositAddress,
		FLOPWalletPassphrase: config.Config.FLOP.WalletPassphrase,
		PollTimeout:          time.Duration(config.Config.Poll.TimeoutSeconds) * time.Second,
		PollInterval:         time.Duration(config.Config.Poll.IntervalSeconds) * time.Second,
	}

	workers.Worker_HTTP(&handlers.Handler{
		Engine: engine,
		FLOP:   flopClient,
		Store:  store,
	})
}
