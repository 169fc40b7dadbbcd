// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     config
// Description: Locating and loading the presenty configuration file
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"

	fconfig "github.com/msto63/presenty/foundation/core/config"
)

// EnvPrefix prefixes all environment overrides, e.g. PRESENTY_MONEY_SYMBOL
const EnvPrefix = "PRESENTY"

// EnvConfigPath names the environment variable holding an explicit config path
const EnvConfigPath = "PRESENTY_CONFIG"

// SearchPaths returns the locations tried when no path is given, in order
func SearchPaths() []string {
	paths := []string{
		"./presenty.toml",
		"./presenty.yaml",
		"./presenty.yml",
		"./configs/presenty.toml",
	}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(dir, "presenty", "config.toml"),
			filepath.Join(dir, "presenty", "config.yaml"),
		)
	}
	return paths
}

// Locate returns the configuration file to use: PRESENTY_CONFIG when set,
// else the first existing entry of SearchPaths. It returns "" when there is
// none.
func Locate() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return os.ExpandEnv(path)
	}
	for _, p := range SearchPaths() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// Load loads path with environment overrides enabled. Environment
// variables in path are expanded. A blank path means Locate, and when
// nothing is found the result is an empty configuration that still honours
// PRESENTY_* variables. envFile, when set, names a .env file whose
// PRESENTY_* entries act like environment variables.
func Load(path, envFile string) (*fconfig.Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}
	if envFile != "" {
		if err := cfg.LoadEnvFile(os.ExpandEnv(envFile)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func load(path string) (*fconfig.Config, error) {
	if path == "" {
		path = Locate()
	}
	if path == "" {
		return fconfig.Empty().WithEnvPrefix(EnvPrefix), nil
	}

	return fconfig.LoadWithOptions(os.ExpandEnv(path), fconfig.LoadOptions{
		EnvPrefix: EnvPrefix,
	})
}
