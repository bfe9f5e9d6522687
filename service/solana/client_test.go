package solana

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Valid base58 fixtures shared across the package tests.
const (
	testSig1Str = "5j7s6NiJS3JAkvgkoc18WVAsiSaci2pxB2A6ueCJP4tprA2TFg9wSyTLeYouxPBJEMzJinENTkpA52YStRW5Dia7"
	testSig2Str = "2TgM4N8qCMqLvfR8dxqTQgKygPNzT5KQkN5b5sT7eZPEkdxyLTXGnNQB3j7KG4DPFg5Qez5yNJBQRQ5r7DDnFfjG"
	testAddr    = "11111111111111111111111111111111"
)

// mockRPCClient implements RPCClient for testing.
// It's behavior-focused: we set what it should return, not verify call
// sequences. Call counters exist only where a test must prove a call never
// happened.
type mockRPCClient struct {
	slot          uint64
	slotErr       error
	block         *rpc.GetBlockResult
	blockErr      error
	signatures    []*rpc.TransactionSignature
	signaturesErr error
	parsed        *rpc.GetParsedTransactionResult
	parsedErr     error
	raw           *rpc.GetTransactionResult
	rawErr        error

	signaturesCalls int
	rawCalls        int
}

func (m *mockRPCClient) GetSlot(
	ctx context.Context,
	commitment rpc.CommitmentType,
) (uint64, error) {
	if m.slotErr != nil {
		return 0, m.slotErr
	}
	return m.slot, nil
}

func (m *mockRPCClient) GetBlockWithOpts(
	ctx context.Context,
	slot uint64,
	opts *rpc.GetBlockOpts,
) (*rpc.GetBlockResult, error) {
	if m.blockErr != nil {
		return nil, m.blockErr
	}
	return m.block, nil
}

func (m *mockRPCClient) GetSignaturesForAddress(
	ctx context.Context,
	address solana.PublicKey,
	opts *rpc.GetSignaturesForAddressOpts,
) ([]*rpc.TransactionSignature, error) {
	m.signaturesCalls++
	if m.signaturesErr != nil {
		return nil, m.signaturesErr
	}
	return m.signatures, nil
}

func (m *mockRPCClient) GetParsedTransaction(
	ctx context.Context,
	signature solana.Signature,
	opts *rpc.GetParsedTransactionOpts,
) (*rpc.GetParsedTransactionResult, error) {
	if m.parsedErr != nil {
		return nil, m.parsedErr
	}
	return m.parsed, nil
}

func (m *mockRPCClient) GetTransaction(
	ctx context.Context,
	signature solana.Signature,
	opts *rpc.GetTransactionOpts,
) (*rpc.GetTransactionResult, error) {
	m.rawCalls++
	if m.rawErr != nil {
		return nil, m.rawErr
	}
	return m.raw, nil
}

func newTestClient(mock *mockRPCClient) *Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(mock, logger)
}

func mustSig(t *testing.T, s string) solana.Signature {
	t.Helper()
	sig, err := solana.SignatureFromBase58(s)
	if err != nil {
		t.Fatalf("bad test signature %q: %v", s, err)
	}
	return sig
}
