// Package present renders a resolved transaction as a full human-readable
// report, a single machine-parsable line, or JSON. Formatting is stateless:
// color is an explicit option, never a process-wide toggle.
package present

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/soltools/txfetch/service/encoding"
	"github.com/soltools/txfetch/service/solana"
)

// Encoding names the textual raw-byte encodings the CLI accepts.
type Encoding string

const (
	EncodingBase64     Encoding = "base64"
	EncodingBase58     Encoding = "base58"
	EncodingJSONParsed Encoding = "jsonParsed"
)

// ParseEncoding validates an --encoding flag value.
func ParseEncoding(s string) (Encoding, error) {
	switch Encoding(s) {
	case EncodingBase64, EncodingBase58, EncodingJSONParsed:
		return Encoding(s), nil
	}
	return "", fmt.Errorf("%w: unknown encoding %q (want base64, base58, or jsonParsed)", solana.ErrUsage, s)
}

// Options controls rendering of the full report.
type Options struct {
	// Colorize enables ANSI color on status and log highlights.
	Colorize bool
	// Encoding selects the raw-byte text encoding shown first. jsonParsed
	// has no raw text form and falls back to base64.
	Encoding Encoding
}

// Quiet returns the single-line raw-byte representation of txn in the
// requested encoding. Quiet output is a byte contract: when no raw bytes
// were recovered there is nothing valid to print and it fails instead of
// degrading to parsed-only display.
func Quiet(txn *solana.ResolvedTransaction, enc Encoding) (string, error) {
	if txn.Raw == nil {
		return "", fmt.Errorf("%w for %s", solana.ErrNoRawBytes, txn.Signature)
	}
	switch enc {
	case EncodingBase58:
		return encoding.BytesToBase58(txn.Raw.Data), nil
	default:
		if txn.Raw.Base64 != "" {
			return txn.Raw.Base64, nil
		}
		return txn.Raw.Hex, nil
	}
}

// Full writes the multi-section human-readable report for txn to w.
func Full(w io.Writer, txn *solana.ResolvedTransaction, opts Options) {
	writeStatus(w, txn, opts)

	fmt.Fprintf(w, "Signature:  %s\n", txn.Signature)
	fmt.Fprintf(w, "Slot:       %d\n", txn.Slot)
	fmt.Fprintf(w, "Block Time: %s\n", formatBlockTime(txn.BlockTime))
	fmt.Fprintf(w, "Fee:        %d lamports\n", txn.Fee)
	fmt.Fprintf(w, "Version:    %s\n", formatVersionTag(txn.Version))

	if len(txn.Signatures) > 0 {
		fmt.Fprintf(w, "\nSigners (%d):\n", len(txn.Signatures))
		for i, sig := range txn.Signatures {
			suffix := ""
			if i == 0 {
				suffix = " (fee payer)"
			}
			fmt.Fprintf(w, "  %d. %s%s\n", i+1, sig, suffix)
		}
	}

	writeRawBytes(w, txn, opts)
	writeInstructions(w, txn)
	writeLogs(w, txn, opts)
}

func writeStatus(w io.Writer, txn *solana.ResolvedTransaction, opts Options) {
	if txn.Succeeded() {
		fmt.Fprintf(w, "Status:     %s\n", paint(opts.Colorize, color.FgGreen, "SUCCESS"))
		return
	}
	fmt.Fprintf(w, "Status:     %s\n", paint(opts.Colorize, color.FgRed, "FAILED: "+*txn.Err))
}

func writeRawBytes(w io.Writer, txn *solana.ResolvedTransaction, opts Options) {
	if txn.Raw == nil {
		fmt.Fprintf(w, "\n%s\n", paint(opts.Colorize, color.FgYellow,
			"Warning: raw transaction bytes could not be recovered; showing parsed data only"))
		return
	}

	fmt.Fprintf(w, "\nRaw bytes (%d bytes):\n", len(txn.Raw.Data))
	if opts.Encoding == EncodingBase58 {
		fmt.Fprintf(w, "  base58 (%d chars): %s\n", len(encoding.BytesToBase58(txn.Raw.Data)), encoding.BytesToBase58(txn.Raw.Data))
	}
	fmt.Fprintf(w, "  base64 (%d chars): %s\n", len(txn.Raw.Base64), txn.Raw.Base64)
	fmt.Fprintf(w, "  hex    (%d chars): %s\n", len(txn.Raw.Hex), txn.Raw.Hex)
}

func writeInstructions(w io.Writer, txn *solana.ResolvedTransaction) {
	if len(txn.Instructions) == 0 {
		return
	}
	fmt.Fprintf(w, "\nInstructions (%d):\n", len(txn.Instructions))
	for i, instr := range txn.Instructions {
		fmt.Fprintf(w, "  #%d %s\n", i, formatInstruction(instr))
	}
}

// formatInstruction dispatches on the instruction's tag: decoded
// instructions render as program/type plus the info pairs, opaque ones as
// the bare program id.
func formatInstruction(instr solana.Instruction) string {
	switch instr.Kind {
	case solana.InstructionParsed:
		label := instr.Type
		if instr.Program != "" {
			label = instr.Program + ":" + instr.Type
		}
		if len(instr.Info) == 0 {
			return label
		}
		return label + " " + formatInfo(instr.Info)
	default:
		label := instr.ProgramID
		if instr.Program != "" {
			label = instr.Program + " " + label
		}
		return "program " + label + " (opaque)"
	}
}

// formatInfo renders info pairs in lexical key order so output is
// deterministic.
func formatInfo(info map[string]any) string {
	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, info[k]))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func writeLogs(w io.Writer, txn *solana.ResolvedTransaction, opts Options) {
	if len(txn.LogMessages) == 0 {
		return
	}
	fmt.Fprintf(w, "\nLogs (%d):\n", len(txn.LogMessages))
	for _, line := range txn.LogMessages {
		// Heuristic highlight, not authoritative error detection.
		if strings.Contains(strings.ToLower(line), "error") {
			line = paint(opts.Colorize, color.FgRed, line)
		}
		fmt.Fprintf(w, "  %s\n", line)
	}
}

func formatBlockTime(t *time.Time) string {
	if t == nil {
		return "(unknown)"
	}
	return t.UTC().Format(time.RFC3339)
}

func formatVersionTag(v string) string {
	if v == "" {
		return "(unknown)"
	}
	return v
}

// paint colors s when enabled. Enablement is forced per call so rendering
// never depends on the package-global color state or TTY detection.
func paint(enabled bool, attr color.Attribute, s string) string {
	c := color.New(attr)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}
