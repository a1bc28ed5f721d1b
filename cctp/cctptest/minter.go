// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

// Package cctptest provides an in-memory CCTP burn/mint state machine
// for tests, in the spirit of net/http/httptest: deterministic nonce
// assignment, used-nonce tracking, and a mint handler that redeems
// receipts produced by its own burns. It implements both the
// outbound.BurnMinter and inbound.MintState interfaces.
package cctptest

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"sync"

	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/cctp"
	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/transfer"
)

type nonceKey struct {
	domain uint32
	nonce  uint64
}

// Minter is an in-memory stand-in for the CCTP collaborator. One
// instance can play both the source side (Burn) and the destination
// side (NonceUsed, ReceiveAndMint) of a transfer.
//
// All methods are safe for concurrent use.
type Minter struct {
	// LocalDomain is the CCTP domain this instance burns from.
	LocalDomain uint32

	// Token is the universal token address reported on burns.
	Token transfer.Address

	// Sender is the burn-source address reported on burns.
	Sender transfer.Address

	mu        sync.Mutex
	nextNonce uint64
	used      map[nonceKey]bool
	burns     map[string]cctp.BurnMessage // keyed by raw message bytes
	messages  map[string]cctp.Message
}

// NewMinter returns a Minter for the given local domain.
func NewMinter(localDomain uint32, token, sender transfer.Address) *Minter {
	return &Minter{
		LocalDomain: localDomain,
		Token:       token,
		Sender:      sender,
		used:        make(map[nonceKey]bool),
		burns:       make(map[string]cctp.BurnMessage),
		messages:    make(map[string]cctp.Message),
	}
}

// Burn records a burn of amount toward mintRecipient on
// destinationDomain and returns the resulting burn and message records.
func (m *Minter) Burn(amount *big.Int, destinationDomain uint32, mintRecipient transfer.Address) (cctp.BurnMessage, cctp.Message, error) {
	return m.burn(amount, destinationDomain, mintRecipient, transfer.Address{})
}

// BurnWithCaller is Burn with a destination caller restriction.
func (m *Minter) BurnWithCaller(amount *big.Int, destinationDomain uint32, mintRecipient, destinationCaller transfer.Address) (cctp.BurnMessage, cctp.Message, error) {
	if destinationCaller.IsZero() {
		return cctp.BurnMessage{}, cctp.Message{}, fmt.Errorf("cctptest: destination caller must be nonzero")
	}
	return m.burn(amount, destinationDomain, mintRecipient, destinationCaller)
}

func (m *Minter) burn(amount *big.Int, destinationDomain uint32, mintRecipient, destinationCaller transfer.Address) (cctp.BurnMessage, cctp.Message, error) {
	if amount == nil || amount.Sign() <= 0 {
		return cctp.BurnMessage{}, cctp.Message{}, fmt.Errorf("cctptest: burn amount must be positive")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	nonce := m.nextNonce
	m.nextNonce++

	burn := cctp.BurnMessage{
		Token:         m.Token,
		Amount:        new(big.Int).Set(amount),
		Sender:        m.Sender,
		MintRecipient: mintRecipient,
	}
	message := cctp.Message{
		SourceDomain:      m.LocalDomain,
		DestinationDomain: destinationDomain,
		Nonce:             nonce,
		DestinationCaller: destinationCaller,
	}
	message.Raw = encodeRaw(message)

	m.burns[string(message.Raw)] = burn
	m.messages[string(message.Raw)] = message
	return burn, message, nil
}

// NonceUsed reports whether (sourceDomain, nonce) has been redeemed.
func (m *Minter) NonceUsed(sourceDomain uint32, nonce uint64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.used[nonceKey{sourceDomain, nonce}], nil
}

// MarkNonceUsed records (sourceDomain, nonce) as redeemed without going
// through ReceiveAndMint. Tests use this to simulate a transfer that
// some other caller already redeemed directly against CCTP.
func (m *Minter) MarkNonceUsed(sourceDomain uint32, nonce uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.used[nonceKey{sourceDomain, nonce}] = true
}

// ReceiveAndMint redeems a receipt produced by one of this Minter's own
// burns: marks the nonce used and returns the stamped mint record. A
// receipt for an unknown message or an already-redeemed nonce fails.
func (m *Minter) ReceiveAndMint(receipt cctp.Receipt) (cctp.StampedReceipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	message, ok := m.messages[string(receipt.Raw)]
	if !ok {
		return cctp.StampedReceipt{}, fmt.Errorf("cctptest: receipt does not match any burn")
	}
	burn := m.burns[string(receipt.Raw)]

	key := nonceKey{message.SourceDomain, message.Nonce}
	if m.used[key] {
		return cctp.StampedReceipt{}, fmt.Errorf("cctptest: nonce %d on domain %d already redeemed", message.Nonce, message.SourceDomain)
	}
	m.used[key] = true

	return cctp.StampedReceipt{
		Token:         burn.Token,
		Amount:        new(big.Int).Set(burn.Amount),
		MintRecipient: burn.MintRecipient,
		SourceDomain:  message.SourceDomain,
	}, nil
}

// ReceiptFor builds the Receipt a relayer would present for the given
// message record.
func ReceiptFor(message cctp.Message) cctp.Receipt {
	return cctp.Receipt{
		SourceDomain: message.SourceDomain,
		Raw:          message.Raw,
	}
}

// encodeRaw produces a deterministic stand-in for the transmitter's
// canonical message bytes. The exact layout is private to the fake;
// only equality matters.
func encodeRaw(message cctp.Message) []byte {
	out := make([]byte, 0, 4+4+8+32)
	out = binary.BigEndian.AppendUint32(out, message.SourceDomain)
	out = binary.BigEndian.AppendUint32(out, message.DestinationDomain)
	out = binary.BigEndian.AppendUint64(out, message.Nonce)
	out = append(out, message.DestinationCaller[:]...)
	return out
}
