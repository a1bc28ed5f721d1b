// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

// Package wormhole models the message-relay collaborator surface: the
// verified message ([VAA]) the integration consumes on the destination
// side, the [MessageTicket] it hands to the relay on the source side,
// and a reference [Emitter] that sequences outbound messages.
//
// Guardian signature verification is out of scope. A VAA value in this
// package represents a message whose attestation the relay subsystem
// has already checked; code receiving one trusts its origin fields and
// re-verifies nothing except what the transfer correlator anchors
// against CCTP state.
package wormhole
