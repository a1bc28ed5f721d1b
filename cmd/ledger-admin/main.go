// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/lib/config"
	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/lib/digest"
	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/lib/ledger"
	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		printUsage()
		return fmt.Errorf("subcommand required")
	}

	subcommand := os.Args[1]
	args := os.Args[2:]

	switch subcommand {
	case "contains":
		return runDigestCommand(subcommand, args)
	case "consume":
		return runDigestCommand(subcommand, args)
	case "count":
		return runCount(args)
	case "export":
		return runExport(args)
	case "import":
		return runImport(args)
	case "version", "--version":
		fmt.Printf("ledger-admin %s\n", version.Info())
		return nil
	case "-h", "--help", "help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown subcommand: %q", subcommand)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: ledger-admin <subcommand> [flags]

Subcommands:
  contains <digest>   Report whether a digest has been consumed
  consume <digest>    Consume a digest by hand
  count               Print the number of consumed digests
  export <file>       Write a compressed ledger snapshot
  import <file>       Merge a snapshot into the ledger
  version             Print version information

Common flags:
  --config <path>     Config file (default: $CCTP_INTEGRATION_CONFIG)
`)
}

// openLedger parses the common flags from args and opens the ledger
// named by the config. Remaining positional arguments are returned.
func openLedger(name string, args []string) (*ledger.SQLite, []string, error) {
	var configPath string

	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "config file path")
	if err := flagSet.Parse(args); err != nil {
		return nil, nil, err
	}

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, err
	}

	store, err := ledger.OpenSQLite(ledger.SQLiteConfig{
		Path:     cfg.Ledger.Path,
		PoolSize: cfg.Ledger.PoolSize,
	})
	if err != nil {
		return nil, nil, err
	}
	return store, flagSet.Args(), nil
}

// runDigestCommand handles the two subcommands taking a single digest
// argument.
func runDigestCommand(name string, args []string) error {
	store, positional, err := openLedger(name, args)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(positional) != 1 {
		return fmt.Errorf("%s requires exactly one digest argument", name)
	}
	target, err := digest.Parse(positional[0])
	if err != nil {
		return err
	}

	ctx := context.Background()
	switch name {
	case "contains":
		found, err := store.Contains(ctx, target)
		if err != nil {
			return err
		}
		if found {
			fmt.Println("consumed")
		} else {
			fmt.Println("not consumed")
		}
		return nil
	case "consume":
		switch err := store.Consume(ctx, target); {
		case errors.Is(err, ledger.ErrAlreadyConsumed):
			return fmt.Errorf("digest %s already consumed", digest.Format(target))
		case err != nil:
			return err
		}
		fmt.Printf("consumed %s\n", digest.Format(target))
		return nil
	}
	panic("unreachable")
}

func runCount(args []string) error {
	store, positional, err := openLedger("count", args)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(positional) != 0 {
		return fmt.Errorf("count takes no arguments")
	}
	count, err := store.Count(context.Background())
	if err != nil {
		return err
	}
	fmt.Println(count)
	return nil
}

func runExport(args []string) error {
	store, positional, err := openLedger("export", args)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(positional) != 1 {
		return fmt.Errorf("export requires an output file argument")
	}
	out, err := os.Create(positional[0])
	if err != nil {
		return err
	}

	count, err := store.Export(context.Background(), out)
	if err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	fmt.Printf("exported %d digests to %s\n", count, positional[0])
	return nil
}

func runImport(args []string) error {
	store, positional, err := openLedger("import", args)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(positional) != 1 {
		return fmt.Errorf("import requires a snapshot file argument")
	}
	in, err := os.Open(positional[0])
	if err != nil {
		return err
	}
	defer in.Close()

	count, err := store.Import(context.Background(), in)
	if err != nil {
		return err
	}
	fmt.Printf("imported %d new digests from %s\n", count, positional[0])
	return nil
}
