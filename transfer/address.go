// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"encoding/hex"
	"fmt"
)

// Address is a universal 32-byte chain address. Shorter native address
// formats (EVM 20-byte accounts, CCTP domain-local identifiers) are
// left-padded with zeros, matching the Wormhole convention.
type Address [32]byte

// AddressFromBytes converts a byte slice to an Address. Slices shorter
// than 32 bytes are left-padded with zeros; longer slices are an error.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) > len(a) {
		return a, fmt.Errorf("address is %d bytes, want at most 32", len(b))
	}
	copy(a[len(a)-len(b):], b)
	return a, nil
}

// ParseAddress parses a hex-encoded address, with or without a 0x
// prefix. The input must encode exactly 32 bytes.
func ParseAddress(s string) (Address, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	var a Address
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("parsing address: %w", err)
	}
	if len(decoded) != len(a) {
		return a, fmt.Errorf("address is %d bytes, want 32", len(decoded))
	}
	copy(a[:], decoded)
	return a, nil
}

// IsZero reports whether the address is all zeros. The zero address is
// the CCTP encoding for "no destination caller restriction".
func (a Address) IsZero() bool {
	return a == Address{}
}

// String returns the lowercase hex encoding without a 0x prefix. This
// is the canonical format used in log output and the emitter registry.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}
