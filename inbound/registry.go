// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package inbound

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/tidwall/jsonc"

	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/transfer"
)

// Registry maps relay chain IDs to the one integration emitter trusted
// on each chain. Callers use it for the sender-trust decision the
// correlator leaves to them: after ConsumePayload returns an Origin,
// Verify rejects origins that are not registered.
//
// Registration is write-once per chain — re-registering a chain with a
// different address is an error, never a silent overwrite.
type Registry struct {
	mu       sync.RWMutex
	emitters map[uint16]transfer.Address
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{emitters: make(map[uint16]transfer.Address)}
}

// Register records the trusted emitter for chain. Fails if the chain
// already has a different emitter or the address is zero.
func (r *Registry) Register(chain uint16, emitter transfer.Address) error {
	if emitter.IsZero() {
		return fmt.Errorf("registry: zero emitter for chain %d", chain)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.emitters[chain]; ok && existing != emitter {
		return fmt.Errorf("registry: chain %d already registered to %s", chain, existing)
	}
	r.emitters[chain] = emitter
	return nil
}

// Lookup returns the registered emitter for chain.
func (r *Registry) Lookup(chain uint16) (transfer.Address, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	emitter, ok := r.emitters[chain]
	return emitter, ok
}

// Verify fails with [ErrUnknownEmitter] unless origin matches the
// registered emitter for its chain.
func (r *Registry) Verify(origin Origin) error {
	emitter, ok := r.Lookup(origin.Chain)
	if !ok {
		return fmt.Errorf("%w: no emitter registered for chain %d", ErrUnknownEmitter, origin.Chain)
	}
	if emitter != origin.Sender {
		return fmt.Errorf("%w: chain %d sender %s, registered %s",
			ErrUnknownEmitter, origin.Chain, origin.Sender, emitter)
	}
	return nil
}

// registryFile is the on-disk shape of a registry definition. The file
// is JSONC — JSON with comments — since emitter lists are hand-edited
// and each entry deserves a note about where the address came from.
type registryFile struct {
	Emitters map[string]string `json:"emitters"`
}

// LoadRegistry reads a JSONC registry file mapping relay chain IDs
// (as decimal string keys) to hex emitter addresses.
func LoadRegistry(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry: %w", err)
	}
	return ParseRegistry(raw)
}

// ParseRegistry parses a JSONC registry definition.
func ParseRegistry(raw []byte) (*Registry, error) {
	var file registryFile
	if err := json.Unmarshal(jsonc.ToJSON(raw), &file); err != nil {
		return nil, fmt.Errorf("parsing registry: %w", err)
	}

	registry := NewRegistry()
	for chainString, addressString := range file.Emitters {
		chain64, err := strconv.ParseUint(chainString, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("parsing registry chain %q: %w", chainString, err)
		}
		chain := uint16(chain64)
		address, err := transfer.ParseAddress(addressString)
		if err != nil {
			return nil, fmt.Errorf("parsing registry emitter for chain %d: %w", chain, err)
		}
		if err := registry.Register(chain, address); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
