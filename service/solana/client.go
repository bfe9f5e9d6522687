package solana

import (
	"context"
	"log/slog"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// RPCClient is an interface for the Solana RPC operations we need.
// This allows us to mock the RPC layer in tests without hitting real
// Solana nodes.
type RPCClient interface {
	GetSlot(
		ctx context.Context,
		commitment rpc.CommitmentType,
	) (uint64, error)

	GetBlockWithOpts(
		ctx context.Context,
		slot uint64,
		opts *rpc.GetBlockOpts,
	) (*rpc.GetBlockResult, error)

	GetSignaturesForAddress(
		ctx context.Context,
		address solana.PublicKey,
		opts *rpc.GetSignaturesForAddressOpts,
	) ([]*rpc.TransactionSignature, error)

	GetParsedTransaction(
		ctx context.Context,
		signature solana.Signature,
		opts *rpc.GetParsedTransactionOpts,
	) (*rpc.GetParsedTransactionResult, error)

	GetTransaction(
		ctx context.Context,
		signature solana.Signature,
		opts *rpc.GetTransactionOpts,
	) (*rpc.GetTransactionResult, error)
}

// Client resolves transaction signatures and fetches transactions.
// It wraps the RPC client with domain-specific operations; all queries run
// at confirmed commitment.
type Client struct {
	rpc    RPCClient
	logger *slog.Logger
}

// NewClient creates a new Solana client.
func NewClient(rpcClient RPCClient, logger *slog.Logger) *Client {
	return &Client{
		rpc:    rpcClient,
		logger: logger,
	}
}

// maxTransactionVersion is the newest transaction wire version we ask the
// node to return (v0, the only versioned format to date).
func maxTransactionVersion() *uint64 {
	v := uint64(0)
	return &v
}
