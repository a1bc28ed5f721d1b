// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package cctp

import (
	"math/big"

	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/transfer"
)

// BurnMessage is the burn-side record a CCTP depositForBurn produces:
// what was burned, by whom, and who may claim the mint. These fields
// are authoritative — they come from the burn/mint subsystem, not from
// any caller-supplied value.
type BurnMessage struct {
	// Token is the universal address of the burned token.
	Token transfer.Address

	// Amount is the burned amount.
	Amount *big.Int

	// Sender is the address that initiated the burn.
	Sender transfer.Address

	// MintRecipient is the address the mint is restricted to on the
	// destination domain.
	MintRecipient transfer.Address
}

// Message is the header metadata of the CCTP message that carries a
// burn across domains.
type Message struct {
	// SourceDomain is the CCTP domain the message originates from.
	SourceDomain uint32

	// DestinationDomain is the CCTP domain the message is addressed to.
	DestinationDomain uint32

	// Nonce uniquely identifies the message within SourceDomain.
	Nonce uint64

	// DestinationCaller restricts which destination address may drive
	// the mint. Zero means unrestricted.
	DestinationCaller transfer.Address

	// Raw is the canonical encoded message as produced by the
	// message transmitter. Opaque to the integration.
	Raw []byte
}

// Receipt is an attested CCTP message presented for minting. The
// receipt type exposes the claimed source domain but NOT the message
// nonce — the collaborator does not surface that field, which is why
// the mint path cannot correlate nonces (see inbound.Correlator.Mint).
type Receipt struct {
	// SourceDomain is the CCTP domain the receipt claims the burn
	// happened on.
	SourceDomain uint32

	// Raw is the attested message plus attestation bytes, consumed
	// verbatim by the mint handler.
	Raw []byte
}

// StampedReceipt is the result of a successful receive-and-mint: the
// facts of the mint as recorded by the burn/mint subsystem.
type StampedReceipt struct {
	// Token is the universal address of the minted token.
	Token transfer.Address

	// Amount is the minted amount.
	Amount *big.Int

	// MintRecipient is the address the funds were credited to.
	MintRecipient transfer.Address

	// SourceDomain is the domain the corresponding burn happened on.
	SourceDomain uint32
}
