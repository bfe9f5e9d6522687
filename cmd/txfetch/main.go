package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	app := &cli.App{
		Name:      "txfetch",
		Usage:     "Fetch a Solana transaction and recover its raw wire bytes",
		ArgsUsage: "[signature]",
		Description: `Retrieves a single transaction from a Solana RPC node and prints both its
raw serialized bytes and a human-readable summary.

The transaction is selected one of three ways: an explicit signature, the
most recent transaction in the latest confirmed block (--latest), or the
most recent transaction for an address (--address).`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Flags:   fetchFlags(),
		Action:  fetchAction,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
