// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package inbound

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/cctp"
	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/lib/digest"
	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/lib/ledger"
	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/transfer"
)

// VerifiedMessage is a received message whose attestation the relay
// subsystem has already verified. Origin fields and payload are
// trusted at this layer; only replay and burn-state correlation
// remain.
type VerifiedMessage interface {
	// Digest returns the 32-byte content hash identifying the
	// message for replay protection.
	Digest() [32]byte

	// EmitterChain returns the relay chain ID the message was
	// emitted on.
	EmitterChain() uint16

	// EmitterAddress returns the universal address of the emitting
	// contract.
	EmitterAddress() transfer.Address

	// Payload returns the encoded payload envelope.
	Payload() []byte
}

// MintState is the destination-side surface of the CCTP collaborator.
type MintState interface {
	// NonceUsed reports whether (sourceDomain, nonce) has been
	// redeemed.
	NonceUsed(sourceDomain uint32, nonce uint64) (bool, error)

	// ReceiveAndMint redeems an attested receipt, minting to its
	// recipient.
	ReceiveAndMint(receipt cctp.Receipt) (cctp.StampedReceipt, error)
}

// Origin identifies where a verified message came from. The caller is
// responsible for deciding whether this origin is a trusted emitter;
// the correlator only reports it.
type Origin struct {
	// Chain is the relay chain ID.
	Chain uint16

	// Sender is the emitting contract's universal address.
	Sender transfer.Address
}

// Correlator binds received messages to CCTP burn/mint state.
type Correlator struct {
	// LocalDomain is the CCTP domain this instance runs on. Deposits
	// addressed elsewhere are rejected on the Mint path.
	LocalDomain uint32

	// Ledger is the replay ledger. Required.
	Ledger ledger.Ledger

	// Minter is the CCTP destination-side state. Required.
	Minter MintState

	// Logger receives structured log output. If nil, slog.Default()
	// is used. Accepted transfers are logged at Debug; rejections at
	// Info.
	Logger *slog.Logger
}

func (c *Correlator) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// ConsumePayload authenticates a received transfer message and marks
// it processed. On success the message's digest is consumed from the
// ledger and the decoded Deposit is returned along with its origin.
//
// The operation is all-or-nothing: the ledger insert is the only local
// mutation and it happens after every check has passed, so a failed
// call leaves no state behind. In particular a message rejected with
// [ErrNonceNotYetClaimed] can be resubmitted once the underlying
// transfer has been redeemed. A message whose digest is already in the
// ledger fails with [ErrAlreadyReplayed] — checked up front, and
// enforced again atomically by the insert itself against concurrent
// callers.
func (c *Correlator) ConsumePayload(ctx context.Context, msg VerifiedMessage) (Origin, transfer.Deposit, error) {
	messageDigest := msg.Digest()

	replayed, err := c.Ledger.Contains(ctx, messageDigest)
	if err != nil {
		return Origin{}, transfer.Deposit{}, fmt.Errorf("checking replay ledger: %w", err)
	}
	if replayed {
		return Origin{}, transfer.Deposit{}, ErrAlreadyReplayed
	}

	origin := Origin{
		Chain:  msg.EmitterChain(),
		Sender: msg.EmitterAddress(),
	}

	deposit, err := transfer.DecodePayload(msg.Payload())
	if err != nil {
		return Origin{}, transfer.Deposit{}, fmt.Errorf("decoding payload: %w", err)
	}

	used, err := c.Minter.NonceUsed(deposit.SourceDomain, deposit.Nonce)
	if err != nil {
		return Origin{}, transfer.Deposit{}, fmt.Errorf("querying nonce state: %w", err)
	}
	if !used {
		return Origin{}, transfer.Deposit{}, fmt.Errorf("%w: domain %d nonce %d",
			ErrNonceNotYetClaimed, deposit.SourceDomain, deposit.Nonce)
	}

	// Final commit point. A concurrent ConsumePayload for the same
	// digest loses here even though both passed the Contains check.
	if err := c.Ledger.Consume(ctx, messageDigest); err != nil {
		if errors.Is(err, ledger.ErrAlreadyConsumed) {
			return Origin{}, transfer.Deposit{}, ErrAlreadyReplayed
		}
		return Origin{}, transfer.Deposit{}, fmt.Errorf("consuming digest: %w", err)
	}

	c.logger().Debug("transfer payload consumed",
		"digest", digest.Format(messageDigest),
		"origin_chain", origin.Chain,
		"origin_sender", origin.Sender.String(),
		"source_domain", deposit.SourceDomain,
		"nonce", deposit.Nonce,
	)
	return origin, deposit, nil
}

// Mint correlates a received message with a CCTP receipt and forwards
// both to the mint handler as one unit. The decoded Deposit's source
// domain must equal the receipt's claimed source domain and its
// destination domain must equal the local domain.
//
// Nonce equality between message and receipt is NOT checked: the
// receipt type does not expose a nonce. The redemption itself is still
// single-use (the burn/mint subsystem consumes the nonce), but
// correlation on this path is weaker than on ConsumePayload.
func (c *Correlator) Mint(msg VerifiedMessage, receipt cctp.Receipt) (cctp.StampedReceipt, error) {
	deposit, err := transfer.DecodePayload(msg.Payload())
	if err != nil {
		return cctp.StampedReceipt{}, fmt.Errorf("decoding payload: %w", err)
	}

	if deposit.SourceDomain != receipt.SourceDomain {
		return cctp.StampedReceipt{}, fmt.Errorf("%w: deposit %d, receipt %d",
			ErrSourceDomainMismatch, deposit.SourceDomain, receipt.SourceDomain)
	}
	if deposit.DestinationDomain != c.LocalDomain {
		return cctp.StampedReceipt{}, fmt.Errorf("%w: deposit %d, local %d",
			ErrDestinationDomainMismatch, deposit.DestinationDomain, c.LocalDomain)
	}

	stamped, err := c.Minter.ReceiveAndMint(receipt)
	if err != nil {
		return cctp.StampedReceipt{}, fmt.Errorf("minting: %w", err)
	}

	c.logger().Debug("receipt minted",
		"source_domain", stamped.SourceDomain,
		"mint_recipient", stamped.MintRecipient.String(),
	)
	return stamped, nil
}
