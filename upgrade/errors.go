// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package upgrade

import "errors"

var (
	// ErrNotInitialVersion means InitPolicy was given an upgrade
	// permission that has already performed an upgrade.
	ErrNotInitialVersion = errors.New("upgrade: permission is not at its initial version")

	// ErrDependencyVersionDecreased means a tracked dependency's
	// observed version is below the cap's stored counter. The whole
	// check aborts; no counter is updated.
	ErrDependencyVersionDecreased = errors.New("upgrade: dependency version decreased")

	// ErrCheckTokenConsumed means the check token was already spent
	// by an earlier CheckVersions call.
	ErrCheckTokenConsumed = errors.New("upgrade: check token already consumed")
)
