// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package inbound

import (
	"errors"
	"strings"
	"testing"

	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/transfer"
)

func TestRegistryVerify(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(originChain, emitterAddress); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := registry.Verify(Origin{Chain: originChain, Sender: emitterAddress}); err != nil {
		t.Errorf("Verify registered origin: %v", err)
	}

	err := registry.Verify(Origin{Chain: originChain, Sender: transfer.Address{31: 0xBB}})
	if !errors.Is(err, ErrUnknownEmitter) {
		t.Errorf("Verify wrong sender = %v, want ErrUnknownEmitter", err)
	}

	err = registry.Verify(Origin{Chain: originChain + 1, Sender: emitterAddress})
	if !errors.Is(err, ErrUnknownEmitter) {
		t.Errorf("Verify unregistered chain = %v, want ErrUnknownEmitter", err)
	}
}

func TestRegistryWriteOnce(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(originChain, emitterAddress); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Re-registering the same pair is idempotent.
	if err := registry.Register(originChain, emitterAddress); err != nil {
		t.Errorf("idempotent Register: %v", err)
	}

	// A different address for the same chain is rejected.
	if err := registry.Register(originChain, transfer.Address{31: 0xBB}); err == nil {
		t.Error("Register with conflicting address should fail")
	}
}

func TestRegistryRejectsZeroEmitter(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(originChain, transfer.Address{}); err == nil {
		t.Error("Register with zero emitter should fail")
	}
}

func TestParseRegistry(t *testing.T) {
	raw := []byte(`{
		// Integration emitters by Wormhole chain ID.
		"emitters": {
			"2": "00000000000000000000000000000000000000000000000000000000000000aa", // Ethereum
			"21": "00000000000000000000000000000000000000000000000000000000000000ee", // Sui
		},
	}`)

	registry, err := ParseRegistry(raw)
	if err != nil {
		t.Fatalf("ParseRegistry: %v", err)
	}

	emitter, ok := registry.Lookup(21)
	if !ok {
		t.Fatal("chain 21 not registered")
	}
	if emitter != (transfer.Address{31: 0xEE}) {
		t.Errorf("chain 21 emitter = %s", emitter)
	}
	if _, ok := registry.Lookup(3); ok {
		t.Error("chain 3 should not be registered")
	}
}

func TestParseRegistryRejectsBadInput(t *testing.T) {
	cases := []string{
		`{"emitters": {"notanumber": "00"}}`,
		`{"emitters": {"2": "zz"}}`,
		`{"emitters": {"2": "1234"}}`,    // wrong length
		`{"emitters": {"99999": "` + strings.Repeat("00", 32) + `"}}`, // chain out of u16 range
	}
	for _, raw := range cases {
		if _, err := ParseRegistry([]byte(raw)); err == nil {
			t.Errorf("ParseRegistry(%q) should fail", raw)
		}
	}
}
