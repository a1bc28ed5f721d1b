// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

// Package sqlitepool provides the SQLite connection pool backing the
// replay ledger. It wraps zombiezen.com/go/sqlite with the pragmas the
// ledger's consistency model requires.
//
// The replay ledger is the one place where losing a committed write is
// a security bug, not an inconvenience: a digest insert that vanishes
// in a crash re-enables replay of an already-processed message. Every
// connection therefore runs with journal_mode=WAL for concurrent
// readers and synchronous=FULL so that a committed Consume survives OS
// crashes and power failure, not just process crashes.
//
// Callers [Pool.Take] a connection, perform work, and [Pool.Put] it
// back. Connections are not safe for concurrent use — each goroutine
// must hold its own connection for the duration of its work.
package sqlitepool
