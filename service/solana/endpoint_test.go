package solana

import (
	"testing"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
)

func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		name        string
		network     string
		explicitURL string
		want        string
	}{
		{
			name:        "explicit URL wins verbatim",
			network:     NetworkDevnet,
			explicitURL: "http://localhost:8899",
			want:        "http://localhost:8899",
		},
		{
			name:    "mainnet",
			network: NetworkMainnet,
			want:    rpc.MainNetBeta_RPC,
		},
		{
			name:    "devnet",
			network: NetworkDevnet,
			want:    rpc.DevNet_RPC,
		},
		{
			name:    "testnet",
			network: NetworkTestnet,
			want:    rpc.TestNet_RPC,
		},
		{
			name:    "unknown network falls back to mainnet",
			network: "moonnet",
			want:    rpc.MainNetBeta_RPC,
		},
		{
			name: "nothing set falls back to mainnet",
			want: rpc.MainNetBeta_RPC,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveEndpoint(tt.network, tt.explicitURL))
		})
	}
}
