// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package inbound

import "errors"

var (
	// ErrAlreadyReplayed means the message's digest was already
	// consumed from the replay ledger: this exact message has been
	// processed before.
	ErrAlreadyReplayed = errors.New("inbound: message already replayed")

	// ErrNonceNotYetClaimed means the burn/mint subsystem does not
	// report the decoded (source domain, nonce) pair as used. The
	// underlying transfer has not been redeemed; the caller may
	// resubmit the message after redemption settles.
	ErrNonceNotYetClaimed = errors.New("inbound: burn nonce not yet claimed")

	// ErrSourceDomainMismatch means the decoded Deposit's source
	// domain disagrees with the receipt's claimed source domain.
	ErrSourceDomainMismatch = errors.New("inbound: source domain mismatch")

	// ErrDestinationDomainMismatch means the decoded Deposit is not
	// addressed to the local domain.
	ErrDestinationDomainMismatch = errors.New("inbound: destination domain mismatch")

	// ErrUnknownEmitter means the message origin is not present in
	// the emitter registry.
	ErrUnknownEmitter = errors.New("inbound: unknown emitter")
)
