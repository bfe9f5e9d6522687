package solana

import "errors"

// Sentinel errors for the resolution and fetch pipeline. Callers match them
// with errors.Is; everything else that bubbles up is an opaque transport
// failure from the RPC layer.
var (
	// ErrUsage indicates the invocation itself was malformed (no selection
	// mode, unknown encoding value).
	ErrUsage = errors.New("usage error")

	// ErrInvalidAddress indicates the supplied address is not a valid
	// base58-encoded account key. Detected locally, before any RPC call.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidSignatureFormat indicates the supplied signature string
	// failed the format pre-check.
	ErrInvalidSignatureFormat = errors.New("invalid signature format")

	// ErrNotFound indicates a signature lookup (by address or by block)
	// returned an empty list.
	ErrNotFound = errors.New("no signatures found")

	// ErrTransactionNotFound indicates the node has no record of the
	// requested signature.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNoRawBytes indicates an operation that requires the raw serialized
	// transaction (quiet output, file output) ran without it.
	ErrNoRawBytes = errors.New("raw transaction bytes unavailable")
)
