// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package transfer

import "fmt"

// PayloadID is the one-byte discriminant of the payload envelope.
type PayloadID uint8

// Known payload variants. New variants get new discriminants; existing
// discriminants are never reused or renumbered.
const (
	// PayloadIDDeposit tags a Deposit body.
	PayloadIDDeposit PayloadID = 1
)

// EncodeDepositPayload serializes d inside the tagged payload envelope:
// the Deposit discriminant byte followed by the Deposit wire form.
func EncodeDepositPayload(d Deposit) ([]byte, error) {
	body, err := d.Encode()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 1+len(body))
	out = append(out, byte(PayloadIDDeposit))
	out = append(out, body...)
	return out, nil
}

// DecodePayload parses a tagged payload envelope. The discriminant
// dispatch is exhaustive over the known variants: an empty buffer fails
// with [ErrInvalidTag], an unknown discriminant fails with
// [ErrInvalidPayload]. There is no default variant.
func DecodePayload(data []byte) (Deposit, error) {
	if len(data) == 0 {
		return Deposit{}, ErrInvalidTag
	}
	switch PayloadID(data[0]) {
	case PayloadIDDeposit:
		return DecodeDeposit(data[1:])
	default:
		return Deposit{}, fmt.Errorf("%w: %d", ErrInvalidPayload, data[0])
	}
}
