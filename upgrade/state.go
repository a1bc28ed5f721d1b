// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package upgrade

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/lib/codec"
)

// stateFile is the on-disk CBOR snapshot of the version counters.
type stateFile struct {
	Wormhole             uint64 `cbor:"wormhole"`
	MessageTransmitter   uint64 `cbor:"message_transmitter"`
	TokenMessengerMinter uint64 `cbor:"token_messenger_minter"`
}

// SaveState writes the current version counters to path as a CBOR
// snapshot. The write is atomic: a temp file in the same directory is
// renamed over the target, so a crash mid-write never leaves a
// truncated snapshot.
func (c *Cap) SaveState(path string) error {
	versions := c.Counters()

	data, err := codec.Marshal(stateFile{
		Wormhole:             versions.Wormhole,
		MessageTransmitter:   versions.MessageTransmitter,
		TokenMessengerMinter: versions.TokenMessengerMinter,
	})
	if err != nil {
		return fmt.Errorf("encoding upgrade state: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upgrade-state-*")
	if err != nil {
		return fmt.Errorf("creating temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing upgrade state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("installing upgrade state: %w", err)
	}
	return nil
}

// RestoreState merges a CBOR snapshot into the cap's counters. Each
// counter takes the element-wise maximum of its current value and the
// snapshot value: a stale snapshot can never move a counter backward,
// so restoring from an old backup cannot reopen a downgrade window.
func (c *Cap) RestoreState(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading upgrade state: %w", err)
	}

	var saved stateFile
	if err := codec.Unmarshal(data, &saved); err != nil {
		return fmt.Errorf("decoding upgrade state: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions.Wormhole = max(c.versions.Wormhole, saved.Wormhole)
	c.versions.MessageTransmitter = max(c.versions.MessageTransmitter, saved.MessageTransmitter)
	c.versions.TokenMessengerMinter = max(c.versions.TokenMessengerMinter, saved.TokenMessengerMinter)
	return nil
}
