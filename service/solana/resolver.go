package solana

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// SelectionMode says how the transaction to fetch is chosen.
type SelectionMode int

const (
	// ModeSignature fetches the user-supplied signature directly.
	ModeSignature SelectionMode = iota
	// ModeLatestBlock fetches the first signature of the latest confirmed block.
	ModeLatestBlock
	// ModeAddress fetches the most recent signature for an address.
	ModeAddress
)

// Selection is the resolved selection mode for one invocation. Exactly one
// mode is active; Signature and Address are only meaningful for their
// respective modes.
type Selection struct {
	Mode      SelectionMode
	Signature string
	Address   string
}

// SelectionFromFlags derives the selection mode from CLI inputs with a
// deterministic precedence: --latest beats --address beats a positional
// signature. Supplying none of them is a usage error.
func SelectionFromFlags(latest bool, address, signature string) (Selection, error) {
	switch {
	case latest:
		return Selection{Mode: ModeLatestBlock}, nil
	case address != "":
		return Selection{Mode: ModeAddress, Address: address}, nil
	case signature != "":
		return Selection{Mode: ModeSignature, Signature: signature}, nil
	}
	return Selection{}, fmt.Errorf("%w: provide a signature, --latest, or --address", ErrUsage)
}

// minSignatureLen is a cheap format pre-check applied before any network
// call; base58 transaction signatures are longer than this.
const minSignatureLen = 64

// ParseSignature validates and parses a user-supplied signature string.
// No network calls are made.
func ParseSignature(s string) (solana.Signature, error) {
	if len(s) < minSignatureLen {
		return solana.Signature{}, fmt.Errorf("%w: %d characters is too short for a transaction signature", ErrInvalidSignatureFormat, len(s))
	}
	sig, err := solana.SignatureFromBase58(s)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("%w: %v", ErrInvalidSignatureFormat, err)
	}
	return sig, nil
}

// ResolveSignature determines the canonical signature to fetch for the
// given selection. Direct mode never touches the network; the other two
// modes issue the lookups they need.
func (c *Client) ResolveSignature(ctx context.Context, sel Selection) (solana.Signature, error) {
	switch sel.Mode {
	case ModeLatestBlock:
		sig, _, err := c.ResolveLatestInBlock(ctx)
		return sig, err
	case ModeAddress:
		return c.ResolveLatestForAddress(ctx, sel.Address)
	default:
		return ParseSignature(sel.Signature)
	}
}

// ResolveLatestInBlock queries the current confirmed slot, then that slot's
// signature list, and returns the first signature together with the slot it
// came from.
func (c *Client) ResolveLatestInBlock(ctx context.Context) (solana.Signature, uint64, error) {
	slot, err := c.rpc.GetSlot(ctx, rpc.CommitmentConfirmed)
	if err != nil {
		return solana.Signature{}, 0, fmt.Errorf("get current slot: %w", err)
	}

	c.logger.DebugContext(ctx, "resolving latest transaction in block", "slot", slot)

	block, err := c.rpc.GetBlockWithOpts(ctx, slot, &rpc.GetBlockOpts{
		TransactionDetails:             rpc.TransactionDetailsSignatures,
		Commitment:                     rpc.CommitmentConfirmed,
		MaxSupportedTransactionVersion: maxTransactionVersion(),
	})
	if err != nil {
		return solana.Signature{}, 0, fmt.Errorf("get block at slot %d: %w", slot, err)
	}
	if block == nil || len(block.Signatures) == 0 {
		return solana.Signature{}, slot, fmt.Errorf("%w: block at slot %d has an empty signature list", ErrNotFound, slot)
	}

	return block.Signatures[0], slot, nil
}

// ResolveLatestForAddress returns the most recent confirmed signature for
// the given address. The address is validated locally so a malformed key is
// reported as ErrInvalidAddress without depending on the node's error text.
func (c *Client) ResolveLatestForAddress(ctx context.Context, address string) (solana.Signature, error) {
	pubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, address, err)
	}

	c.logger.DebugContext(ctx, "resolving latest transaction for address", "address", address)

	limit := 1
	sigs, err := c.rpc.GetSignaturesForAddress(ctx, pubkey, &rpc.GetSignaturesForAddressOpts{
		Limit:      &limit,
		Commitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("get signatures for %s: %w", address, err)
	}
	if len(sigs) == 0 {
		return solana.Signature{}, fmt.Errorf("%w: address %s has no transactions", ErrNotFound, address)
	}

	return sigs[0].Signature, nil
}
