// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the integration's standard CBOR encoding
// configuration, used for on-disk state files: the upgrade ratchet's
// version-counter snapshot and any future persisted protocol state.
//
// The wire format of transfer messages is NOT CBOR — package transfer
// owns that fixed big-endian layout. This package covers the ambient
// persistence concern only.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// Same logical data always produces identical bytes, so state files
// can be compared and content-addressed.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// Stream variants NewEncoder/NewDecoder mirror the buffer API.
package codec
