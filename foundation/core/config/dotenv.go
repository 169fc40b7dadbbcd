// File: dotenv.go
// Title: .env File Overrides
// Description: Reads KEY=value files in dotenv syntax as a second source of
//              environment overrides, consulted after the process
//              environment. The process environment itself is not modified.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package config

import (
	"os"

	"github.com/joho/godotenv"

	mdwerror "github.com/msto63/presenty/foundation/core/error"
)

// LoadEnvFile reads a .env file whose variables act as environment
// overrides for this configuration. Variables set in the process
// environment still take precedence. Overrides apply only when an env
// prefix is configured.
func (c *Config) LoadEnvFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return mdwerror.Wrap(err, "failed to read env file").
			WithCode(code).
			WithOperation("config.LoadEnvFile").
			WithDetail("filePath", path)
	}

	values, err := godotenv.Unmarshal(string(content))
	if err != nil {
		return mdwerror.Wrap(err, "failed to parse env file").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadEnvFile").
			WithDetail("filePath", path)
	}

	c.mu.Lock()
	c.dotenv = values
	c.mu.Unlock()
	return nil
}
