// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

// Package outbound builds and publishes the Wormhole message for a CCTP
// burn.
//
// The core of the package is [BurnWitness], an unforgeable single-use
// proof that a burn actually happened. [DepositForBurn] and
// [DepositForBurnWithCaller] are the only two functions that can
// produce one — they call the burn/mint subsystem and wrap its raw
// output — and [Publish] is the only function that can consume one.
// The Deposit that Publish emits is built exclusively from the
// witness-held burn facts, so a caller cannot forge the amount, the
// domains, the nonce, or the mint recipient: the only caller-supplied
// field in the emitted message is the opaque auxiliary payload.
//
// A witness has no copy semantics worth exploiting: its fields are
// unexported and consumption is an atomic check-and-set, so two racing
// Publish calls on the same witness cannot both succeed.
package outbound
