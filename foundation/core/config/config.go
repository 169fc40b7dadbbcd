// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading, parsing, and
//              accessing configuration data from TOML and YAML files with
//              dotted-key access and environment variable overrides.
// Author: msto63
// Version: v0.3.1
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Env overrides only with a prefix, fsnotify watching
// - 2026-10-17 v0.3.0: Overrides from .env files
// - 2026-10-17 v0.3.1: Error handlers for failed reloads

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/presenty/foundation/core/error"
	mdwstringx "github.com/msto63/presenty/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
	defaults  map[string]interface{}
	dotenv    map[string]string
	watchers  []ChangeHandler
	failures  []ErrorHandler
	watch     *watcher
}

// ChangeHandler is called when configuration changes are detected
type ChangeHandler func(oldConfig, newConfig *Config)

// ErrorHandler is called when watching fails, for example when a changed
// file cannot be read or parsed. The previous data stays in effect.
type ErrorHandler func(err error)

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix; empty disables env overrides
	Defaults  map[string]interface{} // Default values
	Watch     bool                   // Reload on file changes
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if mdwstringx.IsBlank(filePath) {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.LoadWithOptions")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", filePath)).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	config := &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
		defaults:  options.Defaults,
		watchers:  make([]ChangeHandler, 0),
	}

	if options.Watch {
		if err := config.startWatching(); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config from string").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{
		data:     data,
		format:   format,
		watchers: make([]ChangeHandler, 0),
	}, nil
}

// Empty returns a configuration without any values, so every getter falls
// back to its default.
func Empty() *Config {
	return &Config{
		data:     make(map[string]interface{}),
		watchers: make([]ChangeHandler, 0),
	}
}

// WithEnvPrefix returns a copy of the configuration reading overrides from
// environment variables with the given prefix
func (c *Config) WithEnvPrefix(prefix string) *Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return &Config{
		data:      deepCopyMap(c.data),
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: prefix,
		defaults:  c.defaults,
		dotenv:    c.dotenv,
		watchers:  make([]ChangeHandler, 0),
	}
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	if data == nil {
		data = make(map[string]interface{})
	}

	return data, nil
}

func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(defaults)+len(data))

	for k, v := range defaults {
		result[k] = v
	}

	for k, v := range data {
		// nested tables merge key by key
		if sub, ok := v.(map[string]interface{}); ok {
			if def, ok := result[k].(map[string]interface{}); ok {
				result[k] = mergeDefaults(sub, def)
				continue
			}
		}
		result[k] = v
	}

	return result
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		return envValue
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		if intVal, err := strconv.Atoi(strings.TrimSpace(envValue)); err == nil {
			return intVal
		}
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetStringSlice returns a string slice configuration value with optional default
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch v := c.getValue(key).(type) {
	case []string:
		return v
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		return []string{v}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// getValue retrieves a configuration value by dotted key
func (c *Config) getValue(key string) interface{} {
	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}

		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}

	return nil
}

// getEnvValue looks up the environment override for a key, first in the
// process environment and then in a loaded .env file. Overrides are only
// consulted when an env prefix is configured.
func (c *Config) getEnvValue(key string) (string, bool) {
	if c.envPrefix == "" {
		return "", false
	}
	envKey := c.formatEnvKey(key)
	if value, ok := os.LookupEnv(envKey); ok && value != "" {
		return value, true
	}
	if value := c.dotenv[envKey]; value != "" {
		return value, true
	}
	return "", false
}

// formatEnvKey converts a config key to environment variable format:
// number.decimal_separator with prefix PRESENTY -> PRESENTY_NUMBER_DECIMAL_SEPARATOR
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// Has checks if a configuration key exists in the file data
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.getValue(key) != nil
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}

		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// GetAll returns a deep copy of all configuration data
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return deepCopyMap(c.data)
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))

	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}

	return dst
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// OnChange registers a change handler for configuration updates
func (c *Config) OnChange(handler ChangeHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watchers = append(c.watchers, handler)
}

// OnError registers a handler for reload and watcher errors
func (c *Config) OnError(handler ErrorHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = append(c.failures, handler)
}

// String returns a short description of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return fmt.Sprintf("Config{file=%q, format=%s, keys=%d}", c.filePath, c.format, len(c.data))
}
