// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package upgrade

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveRestoreState(t *testing.T) {
	deps := newTestDeps()
	deps.wormhole.version = 3
	deps.transmitter.version = 5
	cap := mustInit(t, newFakePermission(), deps.deps())

	path := filepath.Join(t.TempDir(), "state.cbor")
	if err := cap.SaveState(path); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	fresh := mustInit(t, newFakePermission(), newTestDeps().deps())
	if err := fresh.RestoreState(path); err != nil {
		t.Fatalf("RestoreState: %v", err)
	}

	want := Versions{Wormhole: 3, MessageTransmitter: 5, TokenMessengerMinter: 1}
	if fresh.Counters() != want {
		t.Errorf("restored counters = %+v, want %+v", fresh.Counters(), want)
	}
}

func TestRestoreStateNeverMovesBackward(t *testing.T) {
	stale := mustInit(t, newFakePermission(), newTestDeps().deps())
	path := filepath.Join(t.TempDir(), "state.cbor")
	if err := stale.SaveState(path); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	deps := newTestDeps()
	deps.wormhole.version = 9
	cap := mustInit(t, newFakePermission(), deps.deps())

	if err := cap.RestoreState(path); err != nil {
		t.Fatalf("RestoreState: %v", err)
	}
	if got := cap.Counters().Wormhole; got != 9 {
		t.Errorf("wormhole counter = %d, want 9 (stale snapshot must not lower it)", got)
	}
}

func TestRestoreStateRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.cbor")
	if err := os.WriteFile(path, []byte("not cbor at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	cap := mustInit(t, newFakePermission(), newTestDeps().deps())
	if err := cap.RestoreState(path); err == nil {
		t.Error("RestoreState should reject a malformed snapshot")
	}
}

func TestSaveStateAtomic(t *testing.T) {
	cap := mustInit(t, newFakePermission(), newTestDeps().deps())

	dir := t.TempDir()
	path := filepath.Join(dir, "state.cbor")
	if err := cap.SaveState(path); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	if err := cap.SaveState(path); err != nil {
		t.Fatalf("second SaveState: %v", err)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "state.cbor" {
		t.Errorf("directory contents = %v, want only state.cbor", entries)
	}
}
