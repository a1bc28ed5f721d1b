// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// MaxPayloadLen is the largest auxiliary payload a Deposit can carry,
// bounded by the 2-byte length prefix on the wire.
const MaxPayloadLen = 1<<16 - 1

// fixedLen is the wire size of a Deposit with an empty payload:
// token (32) + amount (32) + source domain (4) + destination domain (4)
// + nonce (8) + burn source (32) + mint recipient (32) + length (2).
const fixedLen = 32 + 32 + 4 + 4 + 8 + 32 + 32 + 2

// Deposit is the canonical transfer descriptor: the facts of one CCTP
// burn plus an opaque caller-supplied payload. A Deposit is immutable
// once constructed and is consumed by value.
//
// Amount is a 256-bit unsigned integer. Encode rejects negative values
// and values wider than 256 bits with [ErrAmountOverflow].
type Deposit struct {
	// Token is the universal address of the burned token on the
	// source chain.
	Token Address

	// Amount is the burned amount.
	Amount *big.Int

	// SourceDomain is the CCTP domain the burn happened on.
	SourceDomain uint32

	// DestinationDomain is the CCTP domain the mint is destined for.
	DestinationDomain uint32

	// Nonce uniquely identifies the burn within SourceDomain.
	Nonce uint64

	// BurnSource is the address that initiated the burn.
	BurnSource Address

	// MintRecipient is the address the minted funds are credited to
	// on the destination domain.
	MintRecipient Address

	// Payload is the caller-supplied auxiliary payload, opaque to
	// this protocol. At most [MaxPayloadLen] bytes.
	Payload []byte
}

// Encode serializes the Deposit into its canonical wire form: the
// fixed-width big-endian fields in declared order, then the 2-byte
// payload length, then the payload bytes.
func (d Deposit) Encode() ([]byte, error) {
	if len(d.Payload) > MaxPayloadLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLong, len(d.Payload))
	}
	amount, err := encodeAmount(d.Amount)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, fixedLen+len(d.Payload))
	out = append(out, d.Token[:]...)
	out = append(out, amount[:]...)
	out = binary.BigEndian.AppendUint32(out, d.SourceDomain)
	out = binary.BigEndian.AppendUint32(out, d.DestinationDomain)
	out = binary.BigEndian.AppendUint64(out, d.Nonce)
	out = append(out, d.BurnSource[:]...)
	out = append(out, d.MintRecipient[:]...)
	out = binary.BigEndian.AppendUint16(out, uint16(len(d.Payload)))
	out = append(out, d.Payload...)
	return out, nil
}

// DecodeDeposit parses the canonical wire form. The buffer must be
// fully and exactly consumed: a short field fails with
// [ErrTruncatedBuffer], leftover bytes fail with [ErrTrailingBytes].
func DecodeDeposit(data []byte) (Deposit, error) {
	r := reader{buf: data}

	var d Deposit
	token, err := r.bytes32()
	if err != nil {
		return Deposit{}, fmt.Errorf("%w: token", err)
	}
	d.Token = token

	amount, err := r.bytes32()
	if err != nil {
		return Deposit{}, fmt.Errorf("%w: amount", err)
	}
	d.Amount = new(big.Int).SetBytes(amount[:])

	if d.SourceDomain, err = r.uint32(); err != nil {
		return Deposit{}, fmt.Errorf("%w: source domain", err)
	}
	if d.DestinationDomain, err = r.uint32(); err != nil {
		return Deposit{}, fmt.Errorf("%w: destination domain", err)
	}
	if d.Nonce, err = r.uint64(); err != nil {
		return Deposit{}, fmt.Errorf("%w: nonce", err)
	}
	if d.BurnSource, err = r.bytes32(); err != nil {
		return Deposit{}, fmt.Errorf("%w: burn source", err)
	}
	if d.MintRecipient, err = r.bytes32(); err != nil {
		return Deposit{}, fmt.Errorf("%w: mint recipient", err)
	}

	length, err := r.uint16()
	if err != nil {
		return Deposit{}, fmt.Errorf("%w: payload length", err)
	}
	payload, err := r.take(int(length))
	if err != nil {
		return Deposit{}, fmt.Errorf("%w: payload", err)
	}
	if length > 0 {
		d.Payload = append([]byte(nil), payload...)
	}

	if r.remaining() != 0 {
		return Deposit{}, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, r.remaining())
	}
	return d, nil
}

// Equal reports whether two Deposits describe the same transfer. Amount
// is compared numerically (nil is treated as zero); Payload is compared
// byte-wise.
func (d Deposit) Equal(other Deposit) bool {
	return d.Token == other.Token &&
		amountOrZero(d.Amount).Cmp(amountOrZero(other.Amount)) == 0 &&
		d.SourceDomain == other.SourceDomain &&
		d.DestinationDomain == other.DestinationDomain &&
		d.Nonce == other.Nonce &&
		d.BurnSource == other.BurnSource &&
		d.MintRecipient == other.MintRecipient &&
		string(d.Payload) == string(other.Payload)
}

func amountOrZero(a *big.Int) *big.Int {
	if a == nil {
		return new(big.Int)
	}
	return a
}

// encodeAmount renders a non-negative *big.Int as a 32-byte big-endian
// value. nil encodes as zero.
func encodeAmount(a *big.Int) ([32]byte, error) {
	var out [32]byte
	if a == nil {
		return out, nil
	}
	if a.Sign() < 0 || a.BitLen() > 256 {
		return out, ErrAmountOverflow
	}
	a.FillBytes(out[:])
	return out, nil
}

// reader is a consuming cursor over a byte buffer. Every read either
// returns the requested bytes or fails with ErrTruncatedBuffer.
type reader struct {
	buf []byte
	off int
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

func (r *reader) take(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, ErrTruncatedBuffer
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) bytes32() (Address, error) {
	var a Address
	b, err := r.take(32)
	if err != nil {
		return a, err
	}
	copy(a[:], b)
	return a, nil
}

func (r *reader) uint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *reader) uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *reader) uint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}
