// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package ledger

import (
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// snapshotMagic opens every ledger snapshot, before the compressed
// body. Changing it invalidates all existing snapshots.
var snapshotMagic = []byte("cctp-replay-ledger/1\n")

// writeSnapshot writes the magic header followed by a zstd frame of
// concatenated 32-byte digests. Returns the number of digests written.
func writeSnapshot(w io.Writer, digests [][32]byte) (int, error) {
	if _, err := w.Write(snapshotMagic); err != nil {
		return 0, fmt.Errorf("writing snapshot header: %w", err)
	}

	encoder, err := zstd.NewWriter(w)
	if err != nil {
		return 0, fmt.Errorf("creating zstd encoder: %w", err)
	}

	for i, digest := range digests {
		if _, err := encoder.Write(digest[:]); err != nil {
			encoder.Close()
			return i, fmt.Errorf("writing digest %d: %w", i, err)
		}
	}

	if err := encoder.Close(); err != nil {
		return len(digests), fmt.Errorf("finalizing snapshot: %w", err)
	}
	return len(digests), nil
}

// readSnapshot validates the magic header, decompresses the body, and
// calls insert for each digest. insert reports whether the digest was
// newly inserted; readSnapshot returns the number of new insertions.
func readSnapshot(r io.Reader, insert func([32]byte) (bool, error)) (int, error) {
	header := make([]byte, len(snapshotMagic))
	if _, err := io.ReadFull(r, header); err != nil {
		return 0, fmt.Errorf("reading snapshot header: %w", err)
	}
	if string(header) != string(snapshotMagic) {
		return 0, fmt.Errorf("not a ledger snapshot (bad header %q)", header)
	}

	decoder, err := zstd.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("creating zstd decoder: %w", err)
	}
	defer decoder.Close()

	inserted := 0
	var digest [32]byte
	for {
		_, err := io.ReadFull(decoder, digest[:])
		if errors.Is(err, io.EOF) {
			return inserted, nil
		}
		if err != nil {
			// io.ErrUnexpectedEOF here means a digest was cut short:
			// the snapshot is corrupt, not merely finished.
			return inserted, fmt.Errorf("reading snapshot digest: %w", err)
		}

		fresh, err := insert(digest)
		if err != nil {
			return inserted, err
		}
		if fresh {
			inserted++
		}
	}
}
