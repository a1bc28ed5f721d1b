// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package upgrade

import (
	"encoding/binary"
	"sort"

	"github.com/zeebo/blake3"
)

// packageDomainKey is a 32-byte key for BLAKE3 keyed hashing of
// upgrade package contents. A fixed domain key means package digests
// cannot collide with digests computed in any other context. The byte
// values are the ASCII encoding of the domain name, zero-padded to 32
// bytes, so the key is inspectable in hex dumps.
var packageDomainKey = [32]byte{
	'c', 'c', 't', 'p', '-', 'i', 'n', 't', 'e', 'g', 'r', 'a', 't', 'i', 'o', 'n',
	'.', 'u', 'p', 'g', 'r', 'a', 'd', 'e', '.', 'p', 'k', 'g', 0, 0, 0, 0,
}

// PackageDigest computes the content digest of an upgrade package from
// its compiled modules. Modules are hashed in lexicographic order of
// their raw bytes, each prefixed by its big-endian length, so the
// digest is independent of the order modules are supplied in and two
// different module lists cannot produce the same hashed stream.
//
// This is the digest passed to [Cap.Authorize]; the host verifies the
// applied package against it before issuing a receipt.
func PackageDigest(modules [][]byte) [32]byte {
	sorted := make([][]byte, len(modules))
	copy(sorted, modules)
	sort.Slice(sorted, func(i, j int) bool {
		return string(sorted[i]) < string(sorted[j])
	})

	hasher, err := blake3.NewKeyed(packageDomainKey[:])
	if err != nil {
		panic("upgrade: BLAKE3 keyed hash initialization failed: " + err.Error())
	}

	var length [8]byte
	for _, module := range sorted {
		binary.BigEndian.PutUint64(length[:], uint64(len(module)))
		hasher.Write(length[:])
		hasher.Write(module)
	}

	var digest [32]byte
	hasher.Sum(digest[:0])
	return digest
}
