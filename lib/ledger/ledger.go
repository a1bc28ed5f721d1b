// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package ledger

import (
	"context"
	"errors"
)

// ErrAlreadyConsumed means the digest is already present in the
// ledger: the message it identifies has been processed before.
var ErrAlreadyConsumed = errors.New("ledger: digest already consumed")

// Ledger is the replay-protection store. Implementations must make
// Consume an atomic check-and-set relative to concurrent callers.
type Ledger interface {
	// Contains reports whether digest is present without consuming it.
	Contains(ctx context.Context, digest [32]byte) (bool, error)

	// Consume inserts digest, failing with [ErrAlreadyConsumed] if it
	// is already present.
	Consume(ctx context.Context, digest [32]byte) error
}
