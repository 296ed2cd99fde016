package EVMRPC

import (
	"fmt"
	"log"

	"goflopbridge/config"

	"github.com/ethereum/go-ethereum/ethclient"
)

// Dial connects to the first reachable endpoint from the configured RPC
// list. The caller owns the returned client.
func Dial() (*ethclient.Client, error) {
	var lastErr error
	for _, url := range config.Config.EVM.RPCList {
		client, err := ethclient.Dial(url)
		if err != nil {
			log.Println(fmt.Sprintf("Error connecting to %s: %s", url, err.Error()))
			lastErr = err
			continue
		}
		return client, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no EVM RPC endpoints configured")
	}
	return nil, lastErr
}

// WithClient runs f against the configured endpoints until one succeeds,
// trying at most EVM_RETRIES of them.
func WithClient[T any](f func(client *ethclient.Client) (T, error)) (res T, err error) {
	var client *ethclient.Client
	for i, url := range config.Config.EVM.RPCList {
		if i >= config.EVM_RETRIES {
			break
		}
		client, err = ethclient.Dial(url)
		if err != nil {
			log.Println(fmt.Sprintf("Error connecting to %s: %s", url, err.Error()))
			continue
		}

		res, err = f(client)
		client.Close()
		if err == nil {
			return
		}
	}
	return
}
