// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

// Ledger-admin manages the persistent replay ledger.
//
// Subcommands:
//
//	contains   report whether a digest has been consumed
//	consume    consume a digest by hand (marks a transfer redeemed)
//	count      print the number of consumed digests
//	export     write a compressed snapshot of the ledger to a file
//	import     merge a snapshot into the ledger
//
// The ledger database is located through the config file named by
// CCTP_INTEGRATION_CONFIG or --config.
package main
