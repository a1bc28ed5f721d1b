// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package ledger_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/lib/ledger"
)

func digestOf(b byte) [32]byte {
	var d [32]byte
	for i := range d {
		d[i] = b
	}
	return d
}

func openSQLite(t *testing.T) *ledger.SQLite {
	t.Helper()
	l, err := ledger.OpenSQLite(ledger.SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "ledger.db"),
	})
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() {
		if err := l.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return l
}

// eachImplementation runs the test body against Memory and SQLite so
// the two stay behaviorally identical.
func eachImplementation(t *testing.T, body func(t *testing.T, l ledger.Ledger)) {
	t.Run("memory", func(t *testing.T) {
		body(t, ledger.NewMemory())
	})
	t.Run("sqlite", func(t *testing.T) {
		body(t, openSQLite(t))
	})
}

func TestConsumeOnce(t *testing.T) {
	eachImplementation(t, func(t *testing.T, l ledger.Ledger) {
		ctx := context.Background()
		d := digestOf(0x01)

		found, err := l.Contains(ctx, d)
		if err != nil {
			t.Fatalf("Contains: %v", err)
		}
		if found {
			t.Fatal("fresh ledger should not contain digest")
		}

		if err := l.Consume(ctx, d); err != nil {
			t.Fatalf("Consume: %v", err)
		}

		found, err = l.Contains(ctx, d)
		if err != nil {
			t.Fatalf("Contains after Consume: %v", err)
		}
		if !found {
			t.Error("digest should be present after Consume")
		}

		if err := l.Consume(ctx, d); !errors.Is(err, ledger.ErrAlreadyConsumed) {
			t.Errorf("second Consume = %v, want ErrAlreadyConsumed", err)
		}
	})
}

func TestConsumeDistinctDigests(t *testing.T) {
	eachImplementation(t, func(t *testing.T, l ledger.Ledger) {
		ctx := context.Background()
		for b := byte(0); b < 10; b++ {
			if err := l.Consume(ctx, digestOf(b)); err != nil {
				t.Fatalf("Consume(%d): %v", b, err)
			}
		}
	})
}

func TestConcurrentConsumeSameDigest(t *testing.T) {
	eachImplementation(t, func(t *testing.T, l ledger.Ledger) {
		ctx := context.Background()
		d := digestOf(0x42)

		const attempts = 16
		var successes atomic.Int32
		var wg sync.WaitGroup
		for range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				switch err := l.Consume(ctx, d); {
				case err == nil:
					successes.Add(1)
				case errors.Is(err, ledger.ErrAlreadyConsumed):
				default:
					t.Errorf("Consume: %v", err)
				}
			}()
		}
		wg.Wait()

		if got := successes.Load(); got != 1 {
			t.Errorf("%d Consume calls succeeded, want exactly 1", got)
		}
	})
}

func TestMemorySnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := ledger.NewMemory()
	for b := byte(0); b < 5; b++ {
		if err := source.Consume(ctx, digestOf(b)); err != nil {
			t.Fatalf("Consume: %v", err)
		}
	}

	var snapshot bytes.Buffer
	exported, err := source.Export(ctx, &snapshot)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if exported != 5 {
		t.Fatalf("exported %d digests, want 5", exported)
	}

	restored := ledger.NewMemory()
	imported, err := restored.Import(ctx, &snapshot)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if imported != 5 {
		t.Errorf("imported %d digests, want 5", imported)
	}

	for b := byte(0); b < 5; b++ {
		found, err := restored.Contains(ctx, digestOf(b))
		if err != nil {
			t.Fatalf("Contains: %v", err)
		}
		if !found {
			t.Errorf("digest %d missing after import", b)
		}
	}
}

func TestSnapshotCrossImplementation(t *testing.T) {
	ctx := context.Background()
	source := openSQLite(t)
	for b := byte(0); b < 3; b++ {
		if err := source.Consume(ctx, digestOf(b)); err != nil {
			t.Fatalf("Consume: %v", err)
		}
	}

	var snapshot bytes.Buffer
	if _, err := source.Export(ctx, &snapshot); err != nil {
		t.Fatalf("Export: %v", err)
	}

	restored := ledger.NewMemory()
	imported, err := restored.Import(ctx, &snapshot)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if imported != 3 {
		t.Errorf("imported %d digests, want 3", imported)
	}
}

func TestImportSkipsExisting(t *testing.T) {
	ctx := context.Background()
	source := ledger.NewMemory()
	for b := byte(0); b < 4; b++ {
		if err := source.Consume(ctx, digestOf(b)); err != nil {
			t.Fatalf("Consume: %v", err)
		}
	}

	var snapshot bytes.Buffer
	if _, err := source.Export(ctx, &snapshot); err != nil {
		t.Fatalf("Export: %v", err)
	}

	target := ledger.NewMemory()
	if err := target.Consume(ctx, digestOf(0)); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	imported, err := target.Import(ctx, &snapshot)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if imported != 3 {
		t.Errorf("imported %d digests, want 3 (one already present)", imported)
	}
	if target.Len() != 4 {
		t.Errorf("ledger has %d digests, want 4", target.Len())
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	target := ledger.NewMemory()
	if _, err := target.Import(context.Background(), bytes.NewReader([]byte("not a snapshot"))); err == nil {
		t.Error("Import of garbage should fail")
	}
}

func TestSQLiteCount(t *testing.T) {
	ctx := context.Background()
	l := openSQLite(t)

	count, err := l.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("fresh ledger Count = %d, want 0", count)
	}

	for b := byte(0); b < 7; b++ {
		if err := l.Consume(ctx, digestOf(b)); err != nil {
			t.Fatalf("Consume: %v", err)
		}
	}

	count, err = l.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 7 {
		t.Errorf("Count = %d, want 7", count)
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.db")

	first, err := ledger.OpenSQLite(ledger.SQLiteConfig{Path: path})
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := first.Consume(ctx, digestOf(0xAA)); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := ledger.OpenSQLite(ledger.SQLiteConfig{Path: path})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	if err := second.Consume(ctx, digestOf(0xAA)); !errors.Is(err, ledger.ErrAlreadyConsumed) {
		t.Errorf("Consume after reopen = %v, want ErrAlreadyConsumed", err)
	}
}
