// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package upgrade

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Policy is a host upgrade-compatibility policy code.
type Policy uint8

const (
	// PolicyCompatible allows any compatible upgrade.
	PolicyCompatible Policy = 0

	// PolicyAdditive allows adding new functionality only.
	PolicyAdditive Policy = 128

	// PolicyDependencyOnly allows changing dependencies only. This is
	// the policy the cap's wrapped permission is restricted to.
	PolicyDependencyOnly Policy = 192
)

// initialVersion is the version a pristine, never-upgraded permission
// reports.
const initialVersion = 1

// Ticket is an opaque host upgrade ticket, produced by Authorize and
// consumed by the host's upgrade machinery.
type Ticket interface{}

// Receipt is an opaque host upgrade receipt, produced by the host's
// upgrade machinery and consumed by Commit.
type Receipt interface{}

// Permission is the host's upgrade-authorization capability.
type Permission interface {
	// Version returns how many upgrades the permission has performed,
	// plus one: a pristine permission reports 1.
	Version() (uint64, error)

	// RestrictToDependencyOnly narrows the permission's policy so it
	// can only authorize dependency-only upgrades. Irreversible.
	RestrictToDependencyOnly() error

	// Authorize issues an upgrade ticket for a package with the given
	// content digest under the given policy.
	Authorize(policy Policy, digest [32]byte) (Ticket, error)

	// Commit finalizes an applied upgrade.
	Commit(receipt Receipt) error
}

// VersionSource reports the currently linked version of one tracked
// dependency.
type VersionSource interface {
	CurrentVersion() (uint64, error)
}

// Dependencies names the three tracked dependency modules.
type Dependencies struct {
	Wormhole             VersionSource
	MessageTransmitter   VersionSource
	TokenMessengerMinter VersionSource
}

// Versions is a snapshot of the three version counters.
type Versions struct {
	Wormhole             uint64
	MessageTransmitter   uint64
	TokenMessengerMinter uint64
}

// decreasedFrom reports which counter, if any, moved backward relative
// to the stored baseline.
func (v Versions) decreasedFrom(stored Versions) (string, bool) {
	switch {
	case v.Wormhole < stored.Wormhole:
		return "wormhole", true
	case v.MessageTransmitter < stored.MessageTransmitter:
		return "message_transmitter", true
	case v.TokenMessengerMinter < stored.TokenMessengerMinter:
		return "token_messenger_minter", true
	}
	return "", false
}

// Cap is the long-lived, shared upgrade capability: the restricted
// host permission plus the monotone version counters. All state
// transitions are mutex-guarded check-and-sets — two concurrent
// commit-then-check sequences cannot both advance the counters from
// the same baseline without both being validated.
type Cap struct {
	mu       sync.Mutex
	perm     Permission
	deps     Dependencies
	versions Versions
}

// CheckToken is the linear value linking Commit to CheckVersions. It
// is produced only by [Cap.Commit] and spent only by
// [Cap.CheckVersions]; a spent token cannot be reused.
type CheckToken struct {
	cap   *Cap
	spent atomic.Bool
}

// InitPolicy wraps a pristine host upgrade permission into a Cap:
// verifies the permission has never performed an upgrade, restricts it
// to dependency-only scope, and seeds the version counters from the
// currently linked dependency versions.
//
// Fails with [ErrNotInitialVersion] for a used permission — wrapping
// one would seed the ratchet from a baseline an attacker may have
// already moved.
func InitPolicy(perm Permission, deps Dependencies) (*Cap, error) {
	if perm == nil {
		return nil, fmt.Errorf("upgrade: nil permission")
	}
	if deps.Wormhole == nil || deps.MessageTransmitter == nil || deps.TokenMessengerMinter == nil {
		return nil, fmt.Errorf("upgrade: all three dependency version sources are required")
	}

	version, err := perm.Version()
	if err != nil {
		return nil, fmt.Errorf("reading permission version: %w", err)
	}
	if version != initialVersion {
		return nil, fmt.Errorf("%w: version %d", ErrNotInitialVersion, version)
	}

	if err := perm.RestrictToDependencyOnly(); err != nil {
		return nil, fmt.Errorf("restricting permission: %w", err)
	}

	versions, err := readVersions(deps)
	if err != nil {
		return nil, err
	}

	return &Cap{perm: perm, deps: deps, versions: versions}, nil
}

// Authorize issues an upgrade ticket through the wrapped permission.
// It does not change ratchet state.
func (c *Cap) Authorize(policy Policy, digest [32]byte) (Ticket, error) {
	ticket, err := c.perm.Authorize(policy, digest)
	if err != nil {
		return nil, fmt.Errorf("authorizing upgrade: %w", err)
	}
	return ticket, nil
}

// Commit finalizes an applied upgrade through the wrapped permission
// and returns the CheckToken that forces the subsequent version check.
func (c *Cap) Commit(receipt Receipt) (*CheckToken, error) {
	if err := c.perm.Commit(receipt); err != nil {
		return nil, fmt.Errorf("committing upgrade: %w", err)
	}
	return &CheckToken{cap: c}, nil
}

// CheckVersions consumes the token, reads the current version of each
// tracked dependency, and advances the counters. If any observed
// version is below its stored counter the whole check fails with
// [ErrDependencyVersionDecreased] and no counter is updated.
func (c *Cap) CheckVersions(token *CheckToken) error {
	if token == nil {
		return fmt.Errorf("upgrade: nil check token")
	}
	if token.cap != c {
		return fmt.Errorf("upgrade: check token belongs to a different cap")
	}
	if !token.spent.CompareAndSwap(false, true) {
		return ErrCheckTokenConsumed
	}

	observed, err := readVersions(c.deps)
	if err != nil {
		// A transient read failure must not strand the upgrade: the
		// commit that produced this token cannot be redone, so the
		// token is released for a retry.
		token.spent.Store(false)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if name, decreased := observed.decreasedFrom(c.versions); decreased {
		return fmt.Errorf("%w: %s", ErrDependencyVersionDecreased, name)
	}
	c.versions = observed
	return nil
}

// Counters returns a snapshot of the stored version counters.
func (c *Cap) Counters() Versions {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.versions
}

// readVersions reads all three dependency versions. Any read error
// aborts the whole operation.
func readVersions(deps Dependencies) (Versions, error) {
	var v Versions
	var err error
	if v.Wormhole, err = deps.Wormhole.CurrentVersion(); err != nil {
		return Versions{}, fmt.Errorf("reading wormhole version: %w", err)
	}
	if v.MessageTransmitter, err = deps.MessageTransmitter.CurrentVersion(); err != nil {
		return Versions{}, fmt.Errorf("reading message transmitter version: %w", err)
	}
	if v.TokenMessengerMinter, err = deps.TokenMessengerMinter.CurrentVersion(); err != nil {
		return Versions{}, fmt.Errorf("reading token messenger minter version: %w", err)
	}
	return v, nil
}
