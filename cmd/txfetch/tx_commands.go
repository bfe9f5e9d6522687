package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/itchyny/gojq"
	"github.com/urfave/cli/v2"

	"github.com/soltools/txfetch/service/present"
	"github.com/soltools/txfetch/service/solana"
)

func fetchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "rpc",
			Usage:   "Explicit RPC endpoint URL (overrides --network)",
			EnvVars: []string{"TXFETCH_RPC_URL"},
		},
		&cli.StringFlag{
			Name:    "network",
			Aliases: []string{"n"},
			Usage:   "Named network: mainnet, devnet, or testnet",
			Value:   solana.NetworkMainnet,
		},
		&cli.BoolFlag{
			Name:    "latest",
			Aliases: []string{"l"},
			Usage:   "Fetch the most recent transaction in the latest confirmed block",
		},
		&cli.StringFlag{
			Name:    "address",
			Aliases: []string{"a"},
			Usage:   "Fetch the most recent transaction for this address",
		},
		&cli.StringFlag{
			Name:    "encoding",
			Aliases: []string{"e"},
			Usage:   "Raw-byte text encoding: base64, base58, or jsonParsed",
			Value:   string(present.EncodingBase64),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write the raw transaction bytes verbatim to this file",
		},
		&cli.BoolFlag{
			Name:    "json",
			Aliases: []string{"j"},
			Usage:   "Output the resolved transaction as JSON",
		},
		&cli.StringFlag{
			Name:  "jq",
			Usage: "Filter --json output through a jq expression",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Emit only the raw encoded transaction, one line",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable ANSI color in the full report",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Enable debug logging on stderr",
		},
	}
}

// fetchAction runs the whole pipeline: resolve endpoint, resolve signature,
// fetch, render. Output mode precedence is deterministic: --quiet beats
// --json beats the full report.
func fetchAction(c *cli.Context) error {
	enc, err := present.ParseEncoding(c.String("encoding"))
	if err != nil {
		return err
	}

	sel, err := solana.SelectionFromFlags(c.Bool("latest"), c.String("address"), c.Args().First())
	if err != nil {
		return err
	}

	logger := newLogger(c.Bool("verbose"))
	endpoint := solana.ResolveEndpoint(c.String("network"), c.String("rpc"))
	logger.Debug("resolved endpoint", "endpoint", endpoint)

	client := solana.NewClient(solana.NewRPCClient(endpoint), logger)

	ctx := context.Background()
	sig, err := client.ResolveSignature(ctx, sel)
	if err != nil {
		return fmt.Errorf("resolve signature: %w", err)
	}

	txn, err := client.Fetch(ctx, sig)
	if err != nil {
		return fmt.Errorf("fetch transaction: %w", err)
	}

	if path := c.String("output"); path != "" {
		if err := writeRawFile(path, txn); err != nil {
			return err
		}
		if !c.Bool("quiet") && !c.Bool("json") {
			fmt.Fprintf(os.Stderr, "wrote %d raw bytes to %s\n", len(txn.Raw.Data), path)
		}
	}

	switch {
	case c.Bool("quiet"):
		line, err := present.Quiet(txn, enc)
		if err != nil {
			return err
		}
		fmt.Println(line)
		return nil
	case c.Bool("json"):
		return outputJSON(txn, c.String("jq"))
	default:
		present.Full(os.Stdout, txn, present.Options{
			Colorize: !c.Bool("no-color"),
			Encoding: enc,
		})
		return nil
	}
}

// writeRawFile writes the recovered wire bytes verbatim. A transaction
// without recovered bytes has nothing valid to write.
func writeRawFile(path string, txn *solana.ResolvedTransaction) error {
	if txn.Raw == nil {
		return fmt.Errorf("%w: cannot write %s", solana.ErrNoRawBytes, path)
	}
	if err := os.WriteFile(path, txn.Raw.Data, 0o644); err != nil {
		return fmt.Errorf("write raw bytes: %w", err)
	}
	return nil
}

// newLogger builds the stderr logger. Warnings (the raw-recovery fallback)
// always surface; --verbose adds debug detail.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// outputJSON prints v indented to stdout, optionally filtered through a jq
// expression.
func outputJSON(v interface{}, jqExpr string) error {
	if jqExpr == "" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	query, err := gojq.Parse(jqExpr)
	if err != nil {
		return fmt.Errorf("%w: failed to parse jq filter %q: %v", solana.ErrUsage, jqExpr, err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return fmt.Errorf("%w: failed to compile jq filter %q: %v", solana.ErrUsage, jqExpr, err)
	}

	// gojq operates on generic JSON values, so round-trip the struct.
	blob, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode for jq: %w", err)
	}
	var generic interface{}
	if err := json.Unmarshal(blob, &generic); err != nil {
		return fmt.Errorf("decode for jq: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	iter := code.Run(generic)
	for {
		out, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := out.(error); isErr {
			return fmt.Errorf("jq filter: %w", err)
		}
		if err := enc.Encode(out); err != nil {
			return err
		}
	}
	return nil
}
