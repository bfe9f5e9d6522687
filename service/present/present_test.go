package present

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soltools/txfetch/service/encoding"
	"github.com/soltools/txfetch/service/solana"
)

const testSig = "5j7s6NiJS3JAkvgkoc18WVAsiSaci2pxB2A6ueCJP4tprA2TFg9wSyTLeYouxPBJEMzJinENTkpA52YStRW5Dia7"

func sampleTransaction() *solana.ResolvedTransaction {
	payload := []byte("raw transaction wire bytes")
	bt := time.Unix(1700000000, 0)
	return &solana.ResolvedTransaction{
		Signature:  testSig,
		Slot:       100,
		BlockTime:  &bt,
		Fee:        5000,
		Version:    "legacy",
		Signatures: []string{testSig},
		Instructions: []solana.Instruction{
			{
				Kind:      solana.InstructionParsed,
				Program:   "system",
				ProgramID: "11111111111111111111111111111112",
				Type:      "transfer",
				Info:      map[string]any{"lamports": 1000},
			},
			{
				Kind:      solana.InstructionOpaque,
				ProgramID: "ComputeBudget111111111111111111111111111111",
			},
		},
		LogMessages: []string{
			"Program 11111111111111111111111111111112 invoke [1]",
			"Program log: Error: insufficient funds",
		},
		Raw: &solana.RawBytes{
			Data:   payload,
			Base64: encoding.BytesToBase64(payload),
			Hex:    encoding.BytesToHex(payload),
		},
	}
}

func TestParseEncoding(t *testing.T) {
	for _, valid := range []string{"base64", "base58", "jsonParsed"} {
		enc, err := ParseEncoding(valid)
		require.NoError(t, err)
		assert.Equal(t, Encoding(valid), enc)
	}

	_, err := ParseEncoding("base32")
	require.ErrorIs(t, err, solana.ErrUsage)
}

func TestQuiet_SingleBase64Line(t *testing.T) {
	txn := sampleTransaction()

	line, err := Quiet(txn, EncodingBase64)
	require.NoError(t, err)
	assert.Equal(t, txn.Raw.Base64, line)
	assert.NotContains(t, line, "\n")
}

func TestQuiet_Base58(t *testing.T) {
	txn := sampleTransaction()

	line, err := Quiet(txn, EncodingBase58)
	require.NoError(t, err)
	assert.Equal(t, encoding.BytesToBase58(txn.Raw.Data), line)
}

func TestQuiet_JSONParsedFallsBackToBase64(t *testing.T) {
	txn := sampleTransaction()

	line, err := Quiet(txn, EncodingJSONParsed)
	require.NoError(t, err)
	assert.Equal(t, txn.Raw.Base64, line)
}

func TestQuiet_NoRawBytes(t *testing.T) {
	txn := sampleTransaction()
	txn.Raw = nil

	_, err := Quiet(txn, EncodingBase64)
	require.ErrorIs(t, err, solana.ErrNoRawBytes)
}

func TestFull_AllSections(t *testing.T) {
	txn := sampleTransaction()
	var buf bytes.Buffer

	Full(&buf, txn, Options{Colorize: false, Encoding: EncodingBase64})
	out := buf.String()

	assert.Contains(t, out, "Status:     SUCCESS")
	assert.Contains(t, out, testSig)
	assert.Contains(t, out, "Slot:       100")
	assert.Contains(t, out, "Block Time: 2023-11-14T22:13:20Z")
	assert.Contains(t, out, "Fee:        5000 lamports")
	assert.Contains(t, out, "Version:    legacy")
	assert.Contains(t, out, "(fee payer)")
	assert.Contains(t, out, "Raw bytes (26 bytes):")
	assert.Contains(t, out, txn.Raw.Base64)
	assert.Contains(t, out, txn.Raw.Hex)
	assert.Contains(t, out, "system:transfer")
	assert.Contains(t, out, "program ComputeBudget111111111111111111111111111111 (opaque)")
	assert.Contains(t, out, "Program log: Error: insufficient funds")
	// Colorize off means no escape codes anywhere.
	assert.NotContains(t, out, "\x1b[")
}

func TestFull_Base58Section(t *testing.T) {
	txn := sampleTransaction()
	var buf bytes.Buffer

	Full(&buf, txn, Options{Encoding: EncodingBase58})
	assert.Contains(t, buf.String(), encoding.BytesToBase58(txn.Raw.Data))
}

func TestFull_MissingRawBytesWarns(t *testing.T) {
	txn := sampleTransaction()
	txn.Raw = nil
	txn.Version = ""
	var buf bytes.Buffer

	Full(&buf, txn, Options{})
	out := buf.String()

	assert.Contains(t, out, "raw transaction bytes could not be recovered")
	assert.Contains(t, out, "Version:    (unknown)")
	// Other sections still render.
	assert.Contains(t, out, "Status:     SUCCESS")
	assert.Contains(t, out, "Instructions (2):")
}

func TestFull_FailedTransaction(t *testing.T) {
	txn := sampleTransaction()
	errMsg := "InstructionError: [0 Custom]"
	txn.Err = &errMsg
	var buf bytes.Buffer

	Full(&buf, txn, Options{})
	assert.Contains(t, buf.String(), "FAILED: InstructionError")
}

func TestFull_ErrorLogHighlight(t *testing.T) {
	txn := sampleTransaction()
	var buf bytes.Buffer

	Full(&buf, txn, Options{Colorize: true})
	out := buf.String()

	// Only the log line containing "error" (case-insensitive) is painted red.
	require.Contains(t, out, "\x1b[31m")
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "invoke [1]") {
			assert.NotContains(t, line, "\x1b[31m")
		}
		if strings.Contains(line, "insufficient funds") {
			assert.Contains(t, line, "\x1b[31m")
		}
	}
}
