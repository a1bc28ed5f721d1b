// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package wormhole

import (
	"encoding/binary"

	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/lib/digest"
	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/transfer"
)

// VAA is a verified Wormhole message: origin chain, emitter, sequence,
// and payload, with the guardian attestation already checked by the
// relay subsystem. Fields are unexported — a VAA is constructed by the
// verification path (or [NewVAA] in tests and reference flows) and read
// through getters, never mutated.
type VAA struct {
	timestamp        uint32
	nonce            uint32
	emitterChain     uint16
	emitterAddress   transfer.Address
	sequence         uint64
	consistencyLevel uint8
	payload          []byte
}

// VAAParams carries the body fields of a verified message.
type VAAParams struct {
	Timestamp        uint32
	Nonce            uint32
	EmitterChain     uint16
	EmitterAddress   transfer.Address
	Sequence         uint64
	ConsistencyLevel uint8
	Payload          []byte
}

// NewVAA builds a VAA from already-verified body fields. The payload is
// copied so later mutation of the argument cannot change the message.
func NewVAA(params VAAParams) *VAA {
	return &VAA{
		timestamp:        params.Timestamp,
		nonce:            params.Nonce,
		emitterChain:     params.EmitterChain,
		emitterAddress:   params.EmitterAddress,
		sequence:         params.Sequence,
		consistencyLevel: params.ConsistencyLevel,
		payload:          append([]byte(nil), params.Payload...),
	}
}

// EmitterChain returns the Wormhole chain ID the message was emitted on.
func (v *VAA) EmitterChain() uint16 { return v.emitterChain }

// EmitterAddress returns the universal address of the emitting contract.
func (v *VAA) EmitterAddress() transfer.Address { return v.emitterAddress }

// Sequence returns the emitter-scoped sequence number.
func (v *VAA) Sequence() uint64 { return v.sequence }

// Payload returns the message payload. The returned slice is shared;
// callers must not mutate it.
func (v *VAA) Payload() []byte { return v.payload }

// Digest returns the double keccak-256 of the canonical message body.
// This is the content hash the replay ledger consumes: two messages
// with identical bodies have identical digests regardless of which
// guardian set signed them.
func (v *VAA) Digest() [32]byte {
	return digest.Double(v.body())
}

// body serializes the VAA body in the canonical signing layout:
// timestamp, nonce, emitter chain, emitter address, sequence,
// consistency level, payload. All integers big-endian.
func (v *VAA) body() []byte {
	out := make([]byte, 0, 4+4+2+32+8+1+len(v.payload))
	out = binary.BigEndian.AppendUint32(out, v.timestamp)
	out = binary.BigEndian.AppendUint32(out, v.nonce)
	out = binary.BigEndian.AppendUint16(out, v.emitterChain)
	out = append(out, v.emitterAddress[:]...)
	out = binary.BigEndian.AppendUint64(out, v.sequence)
	out = append(out, v.consistencyLevel)
	out = append(out, v.payload...)
	return out
}
