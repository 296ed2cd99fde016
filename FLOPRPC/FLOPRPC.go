package FLOPRPC

import (
	"encoding/base64"
	"fmt"

	"goflopbridge/config"
	"goflopbridge/types"

	"github.com/ybbus/jsonrpc"
)

// Client talks to the FLOP node over authenticated JSON-RPC. The node is
// Bitcoin-derived, so the consumed surface is the usual wallet RPC set.
type Client struct {
	rpc jsonrpc.RPCClient
}

func New() *Client {
	protocol := config.Config.FLOP.Protocol
	if protocol == "" {
		protocol = "http"
	}
	endpoint := fmt.Sprintf("%s://%s:%d", protocol, config.Config.FLOP.Host, config.Config.FLOP.Port)
	return NewWithEndpoint(endpoint, config.Config.FLOP.RPCUser, config.Config.FLOP.RPCPassword)
}

func NewWithEndpoint(endpoint, user, password string) *Client {
	auth := base64.StdEncoding.EncodeToString([]byte(user + ":" + password))
	rpc := jsonrpc.NewClientWithOpts(endpoint, &jsonrpc.RPCClientOpts{
		CustomHeaders: map[string]string{
			"Authorization": "Basic " + auth,
		},
	})
	return &Client{rpc: rpc}
}

// GetTransaction fetches a wallet transaction by id. A nil transaction with
// a nil error means the node returned an empty result.
func (c *Client) GetTransaction(txid string) (*types.FLOPTransaction, error) {
	resp, err := c.rpc.Call("gettransaction", txid)
	if err != nil {
		return nil, fmt.Errorf("FLOP RPC gettransaction: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("FLOP node gettransaction error %d: %s", resp.Error.Code, resp.Error.Message)
	}
	if resp.Result == nil {
		return nil, nil
	}

	var tx types.FLOPTransaction
	if err := resp.GetObject(&tx); err != nil {
		return nil, fmt.Errorf("FLOP RPC gettransaction result: %w", err)
	}
	return &tx, nil
}

// VerifyMessage checks a message signature against a FLOP address using the
// node's native verification. A node-side error counts as a failed
// verification, not a transport failure.
func (c *Client) VerifyMessage(address, signature, message string) (bool, error) {
	resp, err := c.rpc.Call("verifymessage", address, signature, message)
	if err != nil {
		return false, fmt.Errorf("FLOP RPC verifymessage: %w", err)
	}
	if resp.Error != nil {
		return false, nil
	}

	ok, err := resp.GetBool()
	if err != nil {
		return false, nil
	}
	return ok, nil
}

// WalletPassphrase unlocks the custodial wallet for the given window. The
// node reports code -15 when the wallet has no passphrase set; that is
// treated as an already-unlocked wallet.
func (c *Client) WalletPassphrase(passphrase string, timeoutSeconds int) error {
	resp, err := c.rpc.Call("walletpassphrase", passphrase, timeoutSeconds)
	if err != nil {
		return fmt.Errorf("FLOP RPC walletpassphrase: %w", err)
	}
	if resp.Error != nil && resp.Error.Code != config.FLOP_ERR_WALLET_UNENCRYPTED {
		return fmt.Errorf("FLOP node walletpassphrase error %d: %s", resp.Error.Code, resp.Error.Message)
	}
	return nil
}

// SendToAddress submits a native payment. The amount is a fixed-point
// string at 8 decimal places; the node parses it exactly.
func (c *Client) SendToAddress(address, amount string) (string, error) {
	resp, err := c.rpc.Call("sendtoaddress", address, amount)
	if err != nil {
		return "", fmt.Errorf("FLOP RPC sendtoaddress: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("FLOP node sendtoaddress error %d: %s", resp.Error.Code, resp.Error.Message)
	}
	if resp.Result == nil {
		// some node versions answer with an empty body on success
		return "", nil
	}

	txid, err := resp.GetString()
	if err != nil {
		return "", fmt.Errorf("FLOP RPC sendtoaddress result: %w", err)
	}
	return txid, nil
}

func (c *Client) GetBalance() (float64, error) {
	resp, err := c.rpc.Call("getbalance")
	if err != nil {
		return 0, fmt.Errorf("FLOP RPC getbalance: %w", err)
	}
	if resp.Error != nil {
		return 0, fmt.Errorf("FLOP node getbalance error %d: %s", resp.Error.Code, resp.Error.Message)
	}
	return resp.GetFloat()
}
