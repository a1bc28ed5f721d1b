// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

// Package cctp defines the data types exchanged with the Circle CCTP
// burn/mint subsystem.
//
// The burn/mint state machine itself — burning funds, minting funds,
// assigning nonces, tracking which nonces have been redeemed, verifying
// Circle attestations — is an external collaborator. This package only
// models its outputs and inputs: the [BurnMessage] and [Message] records
// a burn produces, the [Receipt] a caller presents for minting, and the
// [StampedReceipt] the mint handler returns. The integration never
// re-verifies these records; it correlates them.
//
// Package cctp/cctptest provides an in-memory implementation of the
// collaborator for tests.
package cctp
