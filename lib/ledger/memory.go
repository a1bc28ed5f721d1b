// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package ledger

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"sync"
)

// Memory is an in-process replay ledger. It satisfies the same
// atomicity contract as the SQLite implementation but provides no
// durability — suitable for tests and for embedders that already
// persist state transactionally elsewhere.
type Memory struct {
	mu      sync.RWMutex
	digests map[[32]byte]struct{}
}

// NewMemory returns an empty in-memory ledger.
func NewMemory() *Memory {
	return &Memory{digests: make(map[[32]byte]struct{})}
}

// Contains reports whether digest is present.
func (m *Memory) Contains(_ context.Context, digest [32]byte) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.digests[digest]
	return ok, nil
}

// Consume inserts digest, failing with ErrAlreadyConsumed if present.
func (m *Memory) Consume(_ context.Context, digest [32]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.digests[digest]; ok {
		return ErrAlreadyConsumed
	}
	m.digests[digest] = struct{}{}
	return nil
}

// Len returns the number of consumed digests.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.digests)
}

// Export writes a snapshot of the ledger to w. Digests are emitted in
// sorted order so identical ledgers produce identical snapshots.
func (m *Memory) Export(_ context.Context, w io.Writer) (int, error) {
	m.mu.RLock()
	sorted := make([][32]byte, 0, len(m.digests))
	for d := range m.digests {
		sorted = append(sorted, d)
	}
	m.mu.RUnlock()

	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i][:], sorted[j][:]) < 0
	})

	return writeSnapshot(w, sorted)
}

// Import reads a snapshot from r and consumes every digest in it.
// Digests already present are skipped. Returns the number of digests
// newly inserted.
func (m *Memory) Import(ctx context.Context, r io.Reader) (int, error) {
	return readSnapshot(r, func(digest [32]byte) (bool, error) {
		switch err := m.Consume(ctx, digest); {
		case err == nil:
			return true, nil
		case errors.Is(err, ErrAlreadyConsumed):
			return false, nil
		default:
			return false, err
		}
	})
}
