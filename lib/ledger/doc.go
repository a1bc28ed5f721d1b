// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

// Package ledger implements the replay ledger: the set of message
// digests that have already been processed. Consuming a digest is an
// atomic check-and-set — of two concurrent attempts to consume the
// same digest, exactly one succeeds and the other fails with
// [ErrAlreadyConsumed].
//
// Two implementations are provided. [Memory] is a mutex-guarded set
// for tests and single-process embedding. [SQLite] persists digests
// through lib/sqlitepool with a primary-key insert as the atomic
// check-and-set, and is the implementation production deployments
// should use — replay protection is only as durable as the ledger
// behind it.
//
// Both implementations can export their contents as a zstd-compressed
// snapshot stream and import one, for backup and migration.
package ledger
