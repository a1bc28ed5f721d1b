// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

// Package inbound authenticates received transfer messages against
// CCTP burn/mint state.
//
// A verified message arrives with its attestation already checked by
// the relay subsystem; what remains is correlation. [Correlator.ConsumePayload]
// enforces replay protection through the ledger, decodes the payload
// envelope, and anchors the decoded (source domain, nonce) pair
// against the burn/mint subsystem's used-nonce state: the message's
// embedded fields are trusted only once that pair is confirmed as
// already redeemed, because the burn/mint subsystem guarantees the
// pair is unique and reachable through exactly one valid transfer.
//
// The correlator deliberately does NOT decide whether the message's
// emitter is trustworthy — it returns the origin chain and sender so
// the caller can make that decision, typically against a [Registry]
// of known emitters.
//
// [Correlator.Mint] is the alternate flow for callers that drive the
// message check and the CCTP redemption as one unit. It correlates
// domains only: the receipt type does not expose the message nonce, so
// nonce correlation on this path is strictly weaker than on
// ConsumePayload, a known and accepted gap.
package inbound
