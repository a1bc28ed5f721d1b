// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package transfer

import "errors"

var (
	// ErrTruncatedBuffer means the buffer ended before a fixed-width
	// field or the declared payload could be read in full.
	ErrTruncatedBuffer = errors.New("transfer: truncated buffer")

	// ErrTrailingBytes means bytes remained after the payload. The
	// wire format requires exact consumption — a decoder that
	// tolerated trailing garbage would let two distinct byte strings
	// decode to the same Deposit.
	ErrTrailingBytes = errors.New("transfer: trailing bytes after payload")

	// ErrInvalidTag means the payload envelope was too short to carry
	// its one-byte discriminant.
	ErrInvalidTag = errors.New("transfer: missing payload tag")

	// ErrInvalidPayload means the payload envelope carried a
	// discriminant outside the known set.
	ErrInvalidPayload = errors.New("transfer: unknown payload tag")

	// ErrPayloadTooLong means the auxiliary payload exceeds the
	// 16-bit length prefix.
	ErrPayloadTooLong = errors.New("transfer: payload exceeds 65535 bytes")

	// ErrAmountOverflow means the amount is negative or does not fit
	// in 256 bits.
	ErrAmountOverflow = errors.New("transfer: amount does not fit in u256")
)
