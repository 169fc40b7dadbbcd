// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against declarative rules:
//              required keys, expected types and integer / length bounds.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation of validation
// - 2026-10-17 v0.2.0: Read-only validation, results as structured error
// - 2026-10-17 v0.2.1: Validate env and .env overrides like file values

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	mdwerror "github.com/msto63/presenty/foundation/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool        // Whether the key must be present
	Type     string      // Expected type: "string", "int" or "bool"
	Min      interface{} // Minimum integer value, or minimum rune length for strings
	Max      interface{} // Maximum integer value, or maximum rune length for strings
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err returns the result as a structured error, or nil when valid
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("configuration is invalid: "+strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", len(r.Errors))
}

// Validate validates the configuration against the provided rules
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	value, err := c.effectiveValue(key, rule)
	if err != nil {
		return err
	}

	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "":
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}
	case "int":
		if _, ok := toInt64(value); !ok {
			return fmt.Errorf("field '%s' must be an integer, got %T", key, value)
		}
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}
	default:
		return fmt.Errorf("unknown validation type: %s", rule.Type)
	}

	measured, ok := toInt64(value)
	if s, isString := value.(string); isString {
		measured, ok = int64(utf8.RuneCountInString(s)), true
	}
	if !ok {
		return nil
	}

	if min, ok := toInt64(rule.Min); ok && measured < min {
		return fmt.Errorf("field '%s' value %d is less than minimum %d", key, measured, min)
	}
	if max, ok := toInt64(rule.Max); ok && measured > max {
		return fmt.Errorf("field '%s' value %d is greater than maximum %d", key, measured, max)
	}

	return nil
}

// effectiveValue returns what the getters would read for key: an env or
// .env override converted to the rule's type, else the file value
func (c *Config) effectiveValue(key string, rule ValidationRule) (interface{}, error) {
	raw, ok := c.getEnvValue(key)
	if !ok {
		return c.getValue(key), nil
	}

	envKey := c.formatEnvKey(key)
	switch rule.Type {
	case "int":
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("field '%s' must be an integer, got %q from %s", key, raw, envKey)
		}
		return v, nil
	case "bool":
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("field '%s' must be a boolean, got %q from %s", key, raw, envKey)
		}
		return v, nil
	default:
		return raw, nil
	}
}

func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
	}
	return 0, false
}
