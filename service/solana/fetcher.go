package solana

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/soltools/txfetch/service/encoding"
)

// Fetch retrieves the parsed transaction for sig and then tries to recover
// its exact original serialized bytes with a second RPC call. The parsed
// response is a decoded structure and cannot be re-serialized byte-exactly,
// which is why the raw form is fetched separately.
//
// Raw recovery is best effort: if the second call fails for any reason the
// parsed transaction is still returned with Raw left nil and a single
// warning logged. Parsed data is independently useful without the bytes.
func (c *Client) Fetch(ctx context.Context, sig solana.Signature) (*ResolvedTransaction, error) {
	parsed, err := c.rpc.GetParsedTransaction(ctx, sig, &rpc.GetParsedTransactionOpts{
		Commitment:                     rpc.CommitmentConfirmed,
		MaxSupportedTransactionVersion: maxTransactionVersion(),
	})
	if err != nil {
		// The RPC client reports an empty node result as rpc.ErrNotFound.
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, sig)
		}
		return nil, fmt.Errorf("get transaction %s: %w", sig, err)
	}
	if parsed == nil || parsed.Transaction == nil {
		return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, sig)
	}

	txn, err := resolvedFromParsed(sig, parsed)
	if err != nil {
		return nil, fmt.Errorf("decode transaction %s: %w", sig, err)
	}

	raw, version, err := c.fetchRaw(ctx, sig)
	if err != nil {
		c.logger.WarnContext(ctx, "could not recover raw transaction bytes, continuing with parsed data only",
			"signature", sig.String(),
			"error", err,
		)
		return txn, nil
	}
	txn.Raw = raw
	txn.Version = version

	return txn, nil
}

// fetchRaw re-fetches the transaction with base64 encoding and extracts the
// wire bytes. The node may deliver the payload as a bare string or as a
// one-element array holding that string; the response envelope accepts both
// shapes. Hex text is derived locally from the decoded buffer, never
// fetched, so the two encodings can not disagree.
func (c *Client) fetchRaw(ctx context.Context, sig solana.Signature) (*RawBytes, string, error) {
	result, err := c.rpc.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
		Encoding:                       solana.EncodingBase64,
		Commitment:                     rpc.CommitmentConfirmed,
		MaxSupportedTransactionVersion: maxTransactionVersion(),
	})
	if err != nil {
		return nil, "", err
	}
	if result == nil || result.Transaction == nil {
		return nil, "", errors.New("node returned an empty raw transaction response")
	}

	data := result.Transaction.GetBinary()
	if len(data) == 0 {
		return nil, "", errors.New("raw transaction payload is empty")
	}

	raw := &RawBytes{
		Data:   data,
		Base64: encoding.BytesToBase64(data),
		Hex:    encoding.BytesToHex(data),
	}
	return raw, formatVersion(result.Version), nil
}

// formatVersion renders the transaction wire version tag.
func formatVersion(v rpc.TransactionVersion) string {
	if v == rpc.LegacyTransactionVersion {
		return "legacy"
	}
	return fmt.Sprintf("v%d", int(v))
}
