package config

type Configuration struct {
	// Server config
	Server struct {
		UseSSL    bool   `yaml:"ssl"`
		Port      int    `yaml:"port"`
		RedisHost string `yaml:"redis_host"`
		RedisPort int    `yaml:"redis_port"`
	} `yaml:"server"`
	// FLOP node config
	FLOP struct {
		Protocol       string `yaml:"protocol"`
		Host           string `yaml:"host"`
		Port           int    `yaml:"port"`
		DepositAddress string `yaml:"deposit_address"`
		// important private stuff
		RPCUser          string `yaml:"rpc_user"`
		RPCPassword      string `yaml:"rpc_pass"`
		WalletPassphrase string `yaml:"wallet_pass"`
	} `yaml:"FLOP"`
	// EVM-related config
	EVM struct {
		ChainID         int      `yaml:"chain_id"`
		RPCList         []string `yaml:"rpc_list"`
		ContractAddress string   `yaml:"contract"` // WFLOP token address
		CustodyAddress  string   `yaml:"address"`  // bridge EOA, also the burn/deposit address
		PrivateKey      string   `yaml:"private_key"`
	} `yaml:"EVM"`
	// Receipt confirmation polling
	Poll struct {
		TimeoutSeconds  int `yaml:"timeout_seconds"`
		IntervalSeconds int `yaml:"interval_seconds"`
	} `yaml:"poll"`
}

var Config Configuration

// log topic to look for
const EVM_TOKEN_TRANSFER = "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"

// maximum number of EVM RPC endpoints to try before giving up
const EVM_RETRIES = 3

// gas limit used when on-chain estimation fails
const EVM_FALLBACK_GAS_LIMIT = 200000

// seconds the FLOP wallet stays unlocked for a payout
const FLOP_WALLET_UNLOCK_SECONDS = 60

// FLOP node error code meaning the wallet has no passphrase set
const FLOP_ERR_WALLET_UNENCRYPTED = -15

// receipt polling defaults, used when the poll section is absent
const POLL_DEFAULT_TIMEOUT_SECONDS = 60
const POLL_DEFAULT_INTERVAL_SECONDS = 5
