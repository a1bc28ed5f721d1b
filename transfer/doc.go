// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

// Package transfer defines the canonical transfer descriptor carried in
// every cross-chain integration message, and its exact byte-level wire
// encoding.
//
// A [Deposit] binds one Circle CCTP burn to one Wormhole message: the
// burned token, the amount, the CCTP source and destination domains, the
// burn nonce, the burning address, the mint recipient, and an opaque
// caller-supplied payload. Deposits travel inside a tagged payload
// envelope (one discriminant byte, then the variant body) so that new
// payload kinds can be added later without breaking existing decoders.
// An unrecognized discriminant is a hard decode error, never a default.
//
// The wire format is fixed-width big-endian with no padding:
//
//	token           32 bytes
//	amount          32 bytes (u256)
//	source domain    4 bytes (u32)
//	dest domain      4 bytes (u32)
//	nonce            8 bytes (u64)
//	burn source     32 bytes
//	mint recipient  32 bytes
//	payload length   2 bytes (u16)
//	payload         variable
//
// Decoding requires the buffer to be fully and exactly consumed:
// leftover bytes after the payload fail with [ErrTrailingBytes], and a
// short read anywhere fails with [ErrTruncatedBuffer]. Every valid
// Deposit round-trips byte-exactly through Encode and DecodeDeposit.
package transfer
