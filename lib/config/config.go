// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config is the integration tool configuration.
type Config struct {
	// LocalDomain is the CCTP domain of the chain this deployment
	// redeems transfers on.
	LocalDomain uint32 `yaml:"local_domain"`

	// Ledger configures the replay ledger database.
	Ledger LedgerConfig `yaml:"ledger"`

	// RegistryPath is the path to the JSONC emitter registry mapping
	// Wormhole chain IDs to trusted integration emitter addresses.
	RegistryPath string `yaml:"registry_path"`

	// UpgradeStatePath is where the dependency version counters are
	// snapshotted between runs.
	UpgradeStatePath string `yaml:"upgrade_state_path"`
}

// LedgerConfig configures the replay ledger database.
type LedgerConfig struct {
	// Path is the SQLite database file holding consumed VAA digests.
	Path string `yaml:"path"`

	// PoolSize is the number of pooled database connections.
	// Default: 4.
	PoolSize int `yaml:"pool_size"`
}

// Default returns the configuration defaults applied before the file
// is read.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			PoolSize: 4,
		},
	}
}

// Load loads configuration from the CCTP_INTEGRATION_CONFIG
// environment variable. There are no fallbacks: if the variable is
// not set, this fails.
func Load() (*Config, error) {
	path := os.Getenv("CCTP_INTEGRATION_CONFIG")
	if path == "" {
		return nil, fmt.Errorf("CCTP_INTEGRATION_CONFIG environment variable not set; " +
			"set it to the path of your config file, or use --config flag")
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path, applies
// defaults, expands path variables, and validates the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Ledger.Path == "" {
		return fmt.Errorf("ledger.path is required")
	}
	if c.Ledger.PoolSize <= 0 {
		return fmt.Errorf("ledger.pool_size must be positive, got %d", c.Ledger.PoolSize)
	}
	return nil
}

// pathVariable matches ${NAME} references in path values.
var pathVariable = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandVariables expands ${HOME} and similar references in path
// fields. Unset variables expand to the empty string.
func (c *Config) expandVariables() {
	c.Ledger.Path = expandPath(c.Ledger.Path)
	c.RegistryPath = expandPath(c.RegistryPath)
	c.UpgradeStatePath = expandPath(c.UpgradeStatePath)
}

func expandPath(path string) string {
	return pathVariable.ReplaceAllStringFunc(path, func(match string) string {
		name := pathVariable.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})
}
