package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soltools/txfetch/service/solana"
)

func TestWriteRawFile(t *testing.T) {
	payload := []byte{0xde, 0xad, 0xbe, 0xef}
	txn := &solana.ResolvedTransaction{
		Raw: &solana.RawBytes{Data: payload},
	}
	path := filepath.Join(t.TempDir(), "tx.bin")

	require.NoError(t, writeRawFile(path, txn))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, got, "bytes are written verbatim")
}

func TestWriteRawFile_NoRawBytes(t *testing.T) {
	txn := &solana.ResolvedTransaction{}
	path := filepath.Join(t.TempDir(), "tx.bin")

	err := writeRawFile(path, txn)
	require.ErrorIs(t, err, solana.ErrNoRawBytes)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file is created without raw bytes")
}
