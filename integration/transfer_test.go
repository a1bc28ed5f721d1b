// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package integration_test

import (
	"context"
	"errors"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/cctp/cctptest"
	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/inbound"
	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/lib/ledger"
	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/outbound"
	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/transfer"
	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/wormhole"
)

const (
	sourceDomain      = 1
	destinationDomain = 2
	originChain       = 21
)

var (
	tokenAddress   = transfer.Address{31: 0x10}
	burnSource     = transfer.Address{31: 0x20}
	mintRecipient  = transfer.Address{31: 0x30}
	emitterAddress = transfer.Address{31: 0xEE}
)

// TestTransferEndToEnd walks a transfer through the whole protocol:
// burn on the source chain, publish the deposit payload through the
// emitter, deliver the resulting message to the destination, verify
// the emitter against the registry, correlate the payload against the
// replay ledger, and finally redeem the mint. The replay ledger is the
// persistent SQLite implementation, reopened mid-test to prove the
// consumed digest survives a process restart.
func TestTransferEndToEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "replay.db")

	minter := cctptest.NewMinter(sourceDomain, tokenAddress, burnSource)
	emitter := &wormhole.Emitter{Address: emitterAddress}

	registry := inbound.NewRegistry()
	if err := registry.Register(originChain, emitterAddress); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// --- Source chain: burn and publish ---

	witness, err := outbound.DepositForBurn(minter, big.NewInt(250_000), destinationDomain, mintRecipient)
	if err != nil {
		t.Fatalf("DepositForBurn: %v", err)
	}
	message := witness.Message()

	ticket, err := outbound.Publish(emitter, 7, []byte("order-42"), witness)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}

	// The witness is spent: the same burn cannot be published twice.
	if _, err := outbound.Publish(emitter, 7, nil, witness); !errors.Is(err, outbound.ErrWitnessConsumed) {
		t.Fatalf("second Publish = %v, want ErrWitnessConsumed", err)
	}

	// --- Guardian layer: the observed message becomes a signed VAA ---

	vaa := wormhole.NewVAA(wormhole.VAAParams{
		EmitterChain:   originChain,
		EmitterAddress: ticket.Emitter,
		Sequence:       ticket.Sequence,
		Payload:        ticket.Payload,
	})

	// --- Destination chain: verify, correlate, redeem ---

	if err := registry.Verify(inbound.Origin{Chain: vaa.EmitterChain(), Sender: vaa.EmitterAddress()}); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	store, err := ledger.OpenSQLite(ledger.SQLiteConfig{Path: dbPath})
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	correlator := &inbound.Correlator{
		LocalDomain: destinationDomain,
		Ledger:      store,
		Minter:      minter,
	}

	// The transfer has not been redeemed against CCTP yet, so the
	// correlation is premature.
	if _, _, err := correlator.ConsumePayload(ctx, vaa); !errors.Is(err, inbound.ErrNonceNotYetClaimed) {
		t.Fatalf("premature ConsumePayload = %v, want ErrNonceNotYetClaimed", err)
	}

	stamped, err := correlator.Mint(vaa, cctptest.ReceiptFor(message))
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if stamped.Amount.Int64() != 250_000 {
		t.Errorf("minted amount = %v, want 250000", stamped.Amount)
	}
	if stamped.MintRecipient != mintRecipient {
		t.Errorf("mint recipient = %s, want %s", stamped.MintRecipient, mintRecipient)
	}

	origin, deposit, err := correlator.ConsumePayload(ctx, vaa)
	if err != nil {
		t.Fatalf("ConsumePayload: %v", err)
	}
	if origin.Chain != originChain || origin.Sender != emitterAddress {
		t.Errorf("origin = %+v", origin)
	}
	if deposit.Nonce != message.Nonce {
		t.Errorf("nonce = %d, want %d", deposit.Nonce, message.Nonce)
	}
	if string(deposit.Payload) != "order-42" {
		t.Errorf("payload = %q, want %q", deposit.Payload, "order-42")
	}

	// --- Restart: the consumed digest persists ---

	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	store, err = ledger.OpenSQLite(ledger.SQLiteConfig{Path: dbPath})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()
	correlator.Ledger = store

	if _, _, err := correlator.ConsumePayload(ctx, vaa); !errors.Is(err, inbound.ErrAlreadyReplayed) {
		t.Fatalf("replay after restart = %v, want ErrAlreadyReplayed", err)
	}
}

// TestTransferCallerRestricted covers the caller-restricted burn
// variant end to end: the CCTP message carries the destination caller
// and the deposit correlates normally.
func TestTransferCallerRestricted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	minter := cctptest.NewMinter(sourceDomain, tokenAddress, burnSource)
	emitter := &wormhole.Emitter{Address: emitterAddress}
	caller := transfer.Address{31: 0xCA}

	witness, err := outbound.DepositForBurnWithCaller(minter, big.NewInt(9), destinationDomain, mintRecipient, caller)
	if err != nil {
		t.Fatalf("DepositForBurnWithCaller: %v", err)
	}
	message := witness.Message()
	if message.DestinationCaller != caller {
		t.Fatalf("destination caller = %s, want %s", message.DestinationCaller, caller)
	}

	ticket, err := outbound.Publish(emitter, 0, nil, witness)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	vaa := wormhole.NewVAA(wormhole.VAAParams{
		EmitterChain:   originChain,
		EmitterAddress: ticket.Emitter,
		Sequence:       ticket.Sequence,
		Payload:        ticket.Payload,
	})

	minter.MarkNonceUsed(message.SourceDomain, message.Nonce)

	correlator := &inbound.Correlator{
		LocalDomain: destinationDomain,
		Ledger:      ledger.NewMemory(),
		Minter:      minter,
	}
	_, deposit, err := correlator.ConsumePayload(ctx, vaa)
	if err != nil {
		t.Fatalf("ConsumePayload: %v", err)
	}
	if deposit.Amount.Int64() != 9 {
		t.Errorf("amount = %v, want 9", deposit.Amount)
	}
}
