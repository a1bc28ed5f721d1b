// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

// Package upgrade guards the integration's permissionless
// dependency-upgrade authority against version downgrade.
//
// Anyone may mechanically apply a dependency bump — the host upgrade
// permission, once wrapped by [InitPolicy], is restricted to
// dependency-only upgrades and requires no privileged signer. What no
// one may do is move a tracked dependency backward. The [Cap] persists
// the last observed version of each tracked dependency (the Wormhole
// core, the CCTP message transmitter, and the CCTP token messenger
// minter) and the two-phase commit/check protocol enforces
// monotonicity:
//
//	ticket, err := cap.Authorize(upgrade.PolicyDependencyOnly, digest)
//	// ... host applies the upgrade, yielding a receipt ...
//	token, err := cap.Commit(receipt)
//	err = cap.CheckVersions(token)
//
// The [CheckToken] returned by Commit is a linear value: producible
// only by Commit, consumable only by CheckVersions, spendable once.
// Skipping the post-commit version check is therefore not a
// convention to follow but a dead end in the API — nothing else
// accepts or discharges the token.
//
// InitPolicy refuses to wrap a permission that has already performed
// an upgrade ([ErrNotInitialVersion]): wrapping a used permission
// would let an attacker seed the counters from a stale version
// baseline.
package upgrade
