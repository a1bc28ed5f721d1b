// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest computes and formats the keccak-256 content digests
// used for replay protection. A verified Wormhole message is identified
// by the double keccak-256 of its canonical body; the replay ledger
// stores exactly these 32-byte digests.
package digest
