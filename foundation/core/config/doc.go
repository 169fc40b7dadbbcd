// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration with
//              dotted-key access, environment overrides, validation and
//              hot reloading.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: fsnotify based reloading, .env overrides

/*
Package config provides configuration management for presenty.

Files are parsed with BurntSushi/toml or gopkg.in/yaml.v3 depending on the
extension. Values are read with dotted keys and typed getters that accept a
fallback:

	cfg, err := config.LoadWithOptions("presenty.toml", config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: "PRESENTY",
		Watch:     true,
	})
	if err != nil {
		return err
	}
	defer cfg.StopWatching()

	sep := cfg.GetString("number.decimal_separator", ",")

With an env prefix, PRESENTY_NUMBER_DECIMAL_SEPARATOR overrides the file
value. Without one, the environment is ignored. LoadEnvFile adds a .env file
(parsed with joho/godotenv) as a further override source that the process
environment still beats.

When Watch is set, the file's directory is observed with fsnotify; after a
change the file is re-parsed and every OnChange handler receives the old and
the new configuration. A file that fails to parse keeps the previous values.
*/
package config
