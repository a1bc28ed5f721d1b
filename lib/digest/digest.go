// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Keccak256 computes the legacy keccak-256 digest of data. This is the
// pre-standard Keccak used throughout the EVM and Wormhole ecosystems,
// not NIST SHA3-256.
func Keccak256(data []byte) [32]byte {
	hash := sha3.NewLegacyKeccak256()
	hash.Write(data)
	var out [32]byte
	copy(out[:], hash.Sum(nil))
	return out
}

// Double computes keccak256(keccak256(data)), the Wormhole signing
// digest construction. Replay-ledger entries are Double digests of the
// message body.
func Double(data []byte) [32]byte {
	first := Keccak256(data)
	return Keccak256(first[:])
}

// Format returns the lowercase hex encoding of a digest. This is the
// canonical format for log output and the ledger-admin CLI.
func Format(d [32]byte) string {
	return hex.EncodeToString(d[:])
}

// Parse parses a hex-encoded digest string into a 32-byte array.
// Returns an error unless the string is a valid 64-character hex
// encoding.
func Parse(hexString string) ([32]byte, error) {
	var d [32]byte
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return d, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) != 32 {
		return d, fmt.Errorf("digest is %d bytes, want 32", len(decoded))
	}
	copy(d[:], decoded)
	return d, nil
}
