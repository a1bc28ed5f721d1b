// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package outbound

import (
	"errors"
	"fmt"

	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/transfer"
	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/wormhole"
)

// ErrWitnessConsumed means the burn witness was already spent by an
// earlier Publish call.
var ErrWitnessConsumed = errors.New("outbound: burn witness already consumed")

// MessageSender is the outbound surface of the message-relay
// collaborator, bound to one emitter.
type MessageSender interface {
	// PrepareMessage hands an encoded payload to the relay for
	// publication and returns the ticket carrying the assigned
	// sequence.
	PrepareMessage(nonce uint32, payload []byte) (wormhole.MessageTicket, error)
}

// Publish consumes the witness and emits the transfer message: it
// builds a Deposit from the witness-held burn facts plus the
// caller-supplied auxiliary payload, serializes the payload envelope,
// and hands it to the relay.
//
// Every Deposit field except the auxiliary payload comes from the burn
// records inside the witness. Fails with [ErrWitnessConsumed] if the
// witness was already spent; the witness stays spent either way once
// this function has claimed it.
func Publish(sender MessageSender, relayNonce uint32, auxPayload []byte, witness *BurnWitness) (wormhole.MessageTicket, error) {
	if witness == nil {
		return wormhole.MessageTicket{}, fmt.Errorf("outbound: nil burn witness")
	}
	if !witness.consume() {
		return wormhole.MessageTicket{}, ErrWitnessConsumed
	}

	deposit := transfer.Deposit{
		Token:             witness.burn.Token,
		Amount:            witness.burn.Amount,
		SourceDomain:      witness.message.SourceDomain,
		DestinationDomain: witness.message.DestinationDomain,
		Nonce:             witness.message.Nonce,
		BurnSource:        witness.burn.Sender,
		MintRecipient:     witness.burn.MintRecipient,
		Payload:           auxPayload,
	}

	encoded, err := transfer.EncodeDepositPayload(deposit)
	if err != nil {
		return wormhole.MessageTicket{}, fmt.Errorf("encoding deposit payload: %w", err)
	}

	ticket, err := sender.PrepareMessage(relayNonce, encoded)
	if err != nil {
		return wormhole.MessageTicket{}, fmt.Errorf("preparing relay message: %w", err)
	}
	return ticket, nil
}
