package solana

import (
	"github.com/gagliardetto/solana-go/rpc"
)

// Named networks accepted by ResolveEndpoint.
const (
	NetworkMainnet = "mainnet"
	NetworkDevnet  = "devnet"
	NetworkTestnet = "testnet"
)

// ResolveEndpoint maps a network name or explicit override to an RPC base
// URL. An explicit URL wins and is returned verbatim. Unknown network names
// fall back to mainnet rather than erroring; the tool should always have
// somewhere to talk to.
func ResolveEndpoint(network, explicitURL string) string {
	if explicitURL != "" {
		return explicitURL
	}
	switch network {
	case NetworkDevnet:
		return rpc.DevNet_RPC
	case NetworkTestnet:
		return rpc.TestNet_RPC
	default:
		return rpc.MainNetBeta_RPC
	}
}
