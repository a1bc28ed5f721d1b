// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

// Transfer-inspect decodes a cross-chain transfer payload and prints
// its deposit fields in a human-readable form. It accepts the tagged
// payload envelope as published on chain (hex on the command line, raw
// bytes via --file), or a bare deposit with --raw-deposit.
//
// Typical use is debugging a stuck transfer: paste the VAA payload hex
// and read off the nonce, domains, and mint recipient.
package main
