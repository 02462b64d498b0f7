// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable Load reads the config path from.
const EnvironmentVariable = "FILECHAIN_CONFIG"

// Config is the master configuration.
type Config struct {
	// Paths configures directory locations.
	Paths PathsConfig `yaml:"paths"`

	// Ledger configures where the chain is persisted.
	Ledger LedgerConfig `yaml:"ledger"`

	// Hashing configures content digests.
	Hashing HashingConfig `yaml:"hashing"`

	// Logging configures the command logger.
	Logging LoggingConfig `yaml:"logging"`
}

// PathsConfig configures directory locations.
type PathsConfig struct {
	// Root is the base directory for filechain data.
	Root string `yaml:"root"`
}

// LedgerConfig configures the persisted chain.
type LedgerConfig struct {
	// Path is the ledger file. Its extension selects the on-disk format
	// (.json, .cbor, optionally followed by .zst or .lz4).
	// Default: ${FILECHAIN_ROOT}/ledger.json
	Path string `yaml:"path"`
}

// HashingConfig configures content digests.
type HashingConfig struct {
	// Algorithm is sha256, blake3, or sha3-256.
	// Default: sha256
	Algorithm string `yaml:"algorithm"`

	// ChunkSize is the streaming read size in bytes.
	// Default: 65536
	ChunkSize int `yaml:"chunk_size"`
}

// LoggingConfig configures the command logger.
type LoggingConfig struct {
	// Level is debug, info, warn, or error.
	// Default: info
	Level string `yaml:"level"`
}

// Default returns the default configuration. Loaded files are merged on
// top of it.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultRoot := filepath.Join(homeDir, ".local", "share", "filechain")

	return &Config{
		Paths: PathsConfig{
			Root: defaultRoot,
		},
		Ledger: LedgerConfig{
			Path: filepath.Join(defaultRoot, "ledger.json"),
		},
		Hashing: HashingConfig{
			Algorithm: "sha256",
			ChunkSize: 64 * 1024,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the file named by FILECHAIN_CONFIG. It
// fails when the variable is unset; callers that want defaults in that
// case check the variable first.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your filechain.yaml config file, or use --config flag", EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, on top of the
// defaults, and expands path variables.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.expandVariables()

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current
// config. When the file sets paths.root but not ledger.path, the ledger
// follows the new root.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	defaultLedger := c.Ledger.Path
	c.Ledger.Path = ""
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	if c.Ledger.Path == "" {
		if c.Paths.Root != Default().Paths.Root {
			c.Ledger.Path = "${FILECHAIN_ROOT}/ledger.json"
		} else {
			c.Ledger.Path = defaultLedger
		}
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"FILECHAIN_ROOT": c.Paths.Root,
		"HOME":           os.Getenv("HOME"),
	}

	c.Paths.Root = expandVars(c.Paths.Root, vars)
	vars["FILECHAIN_ROOT"] = c.Paths.Root // Update for dependent paths.

	c.Ledger.Path = expandVars(c.Ledger.Path, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

var (
	algorithms = []string{"sha256", "blake3", "sha3-256"}
	levels     = []string{"debug", "info", "warn", "error"}
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Ledger.Path == "" {
		errs = append(errs, fmt.Errorf("ledger.path is required"))
	}

	if !slices.Contains(algorithms, c.Hashing.Algorithm) {
		errs = append(errs, fmt.Errorf("hashing.algorithm must be one of: %v", algorithms))
	}

	if c.Hashing.ChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("hashing.chunk_size must be positive, got %d", c.Hashing.ChunkSize))
	}

	if !slices.Contains(levels, c.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level must be one of: %v", levels))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// EnsurePaths creates the data root and the ledger's directory. init
// calls it before writing the first ledger.
func (c *Config) EnsurePaths() error {
	paths := []string{
		c.Paths.Root,
		filepath.Dir(c.Ledger.Path),
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
	}

	return nil
}
