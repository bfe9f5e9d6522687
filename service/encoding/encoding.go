// Package encoding holds the pure byte/text conversions used by the fetch
// pipeline and the presenter. Every pair round-trips exactly.
package encoding

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/mr-tron/base58"
)

// BytesToHex returns the lowercase hex encoding of b.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// HexToBytes decodes a hex string produced by BytesToHex.
func HexToBytes(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// BytesToBase64 returns the standard base64 encoding of b.
func BytesToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base64ToBytes decodes a standard base64 string.
func Base64ToBytes(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// BytesToBase58 returns the base58 encoding of b, the alphabet Solana uses
// for keys and signatures.
func BytesToBase58(b []byte) string {
	return base58.Encode(b)
}

// Base58ToBytes decodes a base58 string.
func Base58ToBytes(s string) ([]byte, error) {
	return base58.Decode(s)
}
