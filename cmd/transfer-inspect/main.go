// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/lib/version"
	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/transfer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Handle --version before flag parsing to match the other binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("transfer-inspect %s\n", version.Info())
		return nil
	}

	var filePath string
	var rawDeposit bool
	var jsonOutput bool

	flagSet := pflag.NewFlagSet("transfer-inspect", pflag.ContinueOnError)
	flagSet.StringVar(&filePath, "file", "", "read the payload from this file instead of the command line")
	flagSet.BoolVar(&rawDeposit, "raw-deposit", false, "input is a bare deposit without the payload envelope")
	flagSet.BoolVar(&jsonOutput, "json", false, "print the deposit as JSON")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: transfer-inspect [flags] [hex-payload]

Decodes a transfer payload (hex on the command line, or raw bytes via
--file) and prints the deposit fields.

Flags:
%s`, flagSet.FlagUsages())
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	data, err := readInput(flagSet.Args(), filePath)
	if err != nil {
		return err
	}

	var deposit transfer.Deposit
	if rawDeposit {
		deposit, err = transfer.DecodeDeposit(data)
	} else {
		deposit, err = transfer.DecodePayload(data)
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		return printDepositJSON(deposit)
	}
	printDeposit(deposit)
	return nil
}

// readInput returns the payload bytes: hex from the command line, or
// raw bytes from --file. Exactly one source must be given.
func readInput(args []string, filePath string) ([]byte, error) {
	switch {
	case filePath != "" && len(args) > 0:
		return nil, fmt.Errorf("give either --file or a hex payload, not both")
	case filePath != "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		return data, nil
	case len(args) == 1:
		cleaned := strings.TrimPrefix(strings.TrimSpace(args[0]), "0x")
		data, err := hex.DecodeString(cleaned)
		if err != nil {
			return nil, fmt.Errorf("parsing hex payload: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("a hex payload or --file is required")
	}
}

func printDepositJSON(deposit transfer.Deposit) error {
	out := struct {
		Token             string `json:"token"`
		Amount            string `json:"amount"`
		SourceDomain      uint32 `json:"source_domain"`
		DestinationDomain uint32 `json:"destination_domain"`
		Nonce             uint64 `json:"nonce"`
		BurnSource        string `json:"burn_source"`
		MintRecipient     string `json:"mint_recipient"`
		Payload           string `json:"payload"`
	}{
		Token:             deposit.Token.String(),
		Amount:            deposit.Amount.String(),
		SourceDomain:      deposit.SourceDomain,
		DestinationDomain: deposit.DestinationDomain,
		Nonce:             deposit.Nonce,
		BurnSource:        deposit.BurnSource.String(),
		MintRecipient:     deposit.MintRecipient.String(),
		Payload:           hex.EncodeToString(deposit.Payload),
	}
	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

func printDeposit(deposit transfer.Deposit) {
	fmt.Printf("token:              %s\n", deposit.Token)
	fmt.Printf("amount:             %s\n", deposit.Amount)
	fmt.Printf("source domain:      %d\n", deposit.SourceDomain)
	fmt.Printf("destination domain: %d\n", deposit.DestinationDomain)
	fmt.Printf("nonce:              %d\n", deposit.Nonce)
	fmt.Printf("burn source:        %s\n", deposit.BurnSource)
	fmt.Printf("mint recipient:     %s\n", deposit.MintRecipient)
	if len(deposit.Payload) == 0 {
		fmt.Printf("payload:            (empty)\n")
	} else {
		fmt.Printf("payload:            %d bytes, %x\n", len(deposit.Payload), deposit.Payload)
	}
}
