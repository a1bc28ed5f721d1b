// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the integration's
// command-line tools.
//
// Configuration is loaded from a single YAML file specified by:
//   - CCTP_INTEGRATION_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. The config file is
// the single source of truth; environment variables never override
// its values. The only expansion performed is ${HOME} and similar
// path variables for portability.
package config
