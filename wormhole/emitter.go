// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package wormhole

import (
	"fmt"
	"sync/atomic"

	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/transfer"
)

// MessageTicket is a prepared outbound message: the proof that a
// payload was handed to the relay subsystem for publication, carrying
// the emitter-assigned sequence number a caller needs to track the
// resulting VAA.
type MessageTicket struct {
	// Emitter is the universal address of the emitting contract.
	Emitter transfer.Address

	// Nonce is the caller-chosen relay nonce (distinct from the CCTP
	// burn nonce inside the payload).
	Nonce uint32

	// Sequence is the emitter-scoped sequence assigned to this
	// message.
	Sequence uint64

	// Payload is the encoded payload envelope handed to the relay.
	Payload []byte
}

// Emitter is a reference message sender bound to one emitter address.
// It assigns strictly increasing sequence numbers and is safe for
// concurrent use.
type Emitter struct {
	// Address is the emitter's universal address.
	Address transfer.Address

	sequence atomic.Uint64
}

// PrepareMessage assigns the next sequence number and returns the
// ticket for the given payload.
func (e *Emitter) PrepareMessage(nonce uint32, payload []byte) (MessageTicket, error) {
	if len(payload) == 0 {
		return MessageTicket{}, fmt.Errorf("wormhole: empty payload")
	}
	return MessageTicket{
		Emitter:  e.Address,
		Nonce:    nonce,
		Sequence: e.sequence.Add(1) - 1,
		Payload:  append([]byte(nil), payload...),
	}, nil
}
