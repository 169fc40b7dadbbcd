// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML parsing, defaults, environment
//              overrides, validation and file watching.
// Author: msto63
// Version: v0.3.1
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test implementation
// - 2026-10-17 v0.2.0: Watch and validation tests
// - 2026-10-17 v0.3.0: .env file tests
// - 2026-10-17 v0.3.1: Override validation and reload error tests

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/presenty/foundation/core/error"
)

const tomlContent = `
encoding = "UTF-8"

[number]
decimals = 2
decimal_separator = ","
group_separator = "."

[boolean]
labels = ["si", "no"]
enabled = true
`

const yamlContent = `
encoding: ISO-8859-1
number:
  decimals: 3
  decimal_separator: "."
boolean:
  enabled: false
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, tempDir, "test.toml", tomlContent))
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if got := cfg.GetString("encoding"); got != "UTF-8" {
			t.Errorf("encoding = %q, want UTF-8", got)
		}
		if got := cfg.GetInt("number.decimals"); got != 2 {
			t.Errorf("number.decimals = %d, want 2", got)
		}
		if got := cfg.GetBool("boolean.enabled"); !got {
			t.Error("boolean.enabled = false, want true")
		}
		if got := cfg.GetStringSlice("boolean.labels"); !reflect.DeepEqual(got, []string{"si", "no"}) {
			t.Errorf("boolean.labels = %v", got)
		}
		if cfg.Format() != FormatTOML {
			t.Errorf("Format() = %v, want toml", cfg.Format())
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, tempDir, "test.yaml", yamlContent))
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if got := cfg.GetString("encoding"); got != "ISO-8859-1" {
			t.Errorf("encoding = %q", got)
		}
		if got := cfg.GetInt("number.decimals"); got != 3 {
			t.Errorf("number.decimals = %d, want 3", got)
		}
		if got := cfg.GetBool("boolean.enabled", true); got {
			t.Error("boolean.enabled = true, want false")
		}
		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v, want yaml", cfg.Format())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "nope.toml"))
		if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("expected NOT_FOUND, got %v", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
			t.Errorf("expected VALIDATION_FAILED, got %v", err)
		}
	})

	t.Run("invalid content", func(t *testing.T) {
		_, err := Load(writeFile(t, tempDir, "broken.toml", "[number\ndecimals = "))
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
			t.Errorf("expected INVALID_CONFIG, got %v", err)
		}
	})
}

func TestGettersDefaults(t *testing.T) {
	cfg := Empty()

	if got := cfg.GetString("missing", "fallback"); got != "fallback" {
		t.Errorf("GetString() = %q", got)
	}
	if got := cfg.GetInt("missing", 7); got != 7 {
		t.Errorf("GetInt() = %d", got)
	}
	if got := cfg.GetBool("missing", true); !got {
		t.Error("GetBool() = false")
	}
	if got := cfg.GetStringSlice("missing"); got != nil {
		t.Errorf("GetStringSlice() = %v", got)
	}
	if cfg.Has("missing") {
		t.Error("Has() = true for missing key")
	}
}

func TestSetAndGetAll(t *testing.T) {
	cfg := Empty()
	cfg.Set("money.symbol", "$")

	if !cfg.Has("money.symbol") {
		t.Fatal("Has() = false after Set()")
	}

	all := cfg.GetAll()
	all["money"].(map[string]interface{})["symbol"] = "£"
	if got := cfg.GetString("money.symbol"); got != "$" {
		t.Errorf("GetAll() must return a copy, got %q", got)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "partial.toml", "[number]\ndecimals = 4\n")

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"encoding": "UTF-8",
			"number": map[string]interface{}{
				"decimals":          0,
				"decimal_separator": ",",
			},
		},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if got := cfg.GetInt("number.decimals"); got != 4 {
		t.Errorf("number.decimals = %d, want 4", got)
	}
	if got := cfg.GetString("number.decimal_separator"); got != "," {
		t.Errorf("number.decimal_separator = %q, want default ','", got)
	}
	if got := cfg.GetString("encoding"); got != "UTF-8" {
		t.Errorf("encoding = %q", got)
	}
}

func TestEnvOverride(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	t.Setenv("PRESENTY_NUMBER_DECIMALS", "5")

	if got := cfg.GetInt("number.decimals"); got != 2 {
		t.Errorf("without prefix env must be ignored, got %d", got)
	}

	prefixed := cfg.WithEnvPrefix("presenty")
	if got := prefixed.GetInt("number.decimals"); got != 5 {
		t.Errorf("number.decimals = %d, want env override 5", got)
	}
	if got := prefixed.GetString("number.group_separator"); got != "." {
		t.Errorf("non-overridden key = %q", got)
	}
}

func TestEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# presenter overrides\nPRESENTY_MONEY_SYMBOL=\"$\"\nexport PRESENTY_NUMBER_DECIMALS=4\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Empty().WithEnvPrefix("PRESENTY")
	if err := cfg.LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}

	if got := cfg.GetString("money.symbol", "€"); got != "$" {
		t.Errorf("money.symbol = %q, want $ from env file", got)
	}
	if got := cfg.GetInt("number.decimals"); got != 4 {
		t.Errorf("number.decimals = %d, want 4 from env file", got)
	}

	t.Setenv("PRESENTY_MONEY_SYMBOL", "£")
	if got := cfg.GetString("money.symbol"); got != "£" {
		t.Errorf("process environment must win, got %q", got)
	}

	unprefixed := Empty()
	if err := unprefixed.LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}
	if got := unprefixed.GetString("money.symbol", "€"); got != "€" {
		t.Errorf("env file must be ignored without prefix, got %q", got)
	}
}

func TestEnvFileMissing(t *testing.T) {
	err := Empty().LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("LoadEnvFile() error = %v, want NOT_FOUND", err)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadFromString(`
[truncate]
length = 0
ellipsis = "......"
`, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	result := cfg.Validate(ValidationRules{
		"truncate.length":   {Type: "int", Min: 1},
		"truncate.ellipsis": {Type: "string", Max: 3},
		"encoding":          {Required: true},
		"number.decimals":   {Type: "int", Min: 0},
	})

	if result.Valid {
		t.Fatal("Validate() should fail")
	}
	if len(result.Errors) != 3 {
		t.Errorf("Validate() errors = %v, want 3", result.Errors)
	}
	if !mdwerror.HasCode(result.Err(), mdwerror.CodeInvalidConfig) {
		t.Errorf("Err() = %v", result.Err())
	}

	ok := cfg.Validate(ValidationRules{"truncate.length": {Type: "int", Max: 10}})
	if !ok.Valid || ok.Err() != nil {
		t.Errorf("Validate() = %+v, want valid", ok)
	}
}

func TestValidateOverrides(t *testing.T) {
	t.Setenv("PRESENTY_TRUNCATE_LENGTH", "0")
	t.Setenv("PRESENTY_NUMBER_DECIMALS", "x")
	t.Setenv("PRESENTY_MONEY_SYMBOL", "")

	cfg, err := LoadFromString("[truncate]\nlength = 5\n", FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	rules := ValidationRules{
		"truncate.length": {Type: "int", Min: 1},
		"number.decimals": {Type: "int"},
		"money.symbol":    {Type: "string", Max: 3},
	}

	if result := cfg.Validate(rules); !result.Valid {
		t.Errorf("Validate() without prefix = %v, want valid", result.Errors)
	}

	prefixed := cfg.WithEnvPrefix("PRESENTY")
	result := prefixed.Validate(rules)
	if result.Valid || len(result.Errors) != 2 {
		t.Fatalf("Validate() errors = %v, want 2", result.Errors)
	}
	if !strings.Contains(result.Errors[0], `got "x" from PRESENTY_NUMBER_DECIMALS`) {
		t.Errorf("errors[0] = %q", result.Errors[0])
	}
	if !strings.Contains(result.Errors[1], "value 0 is less than minimum 1") {
		t.Errorf("errors[1] = %q", result.Errors[1])
	}

	envFile := writeFile(t, t.TempDir(), ".env", "PRESENTY_MONEY_SYMBOL=EURO\n")
	if err := prefixed.LoadEnvFile(envFile); err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}
	result = prefixed.Validate(rules)
	if len(result.Errors) != 3 || !strings.Contains(result.Errors[0], "'money.symbol' value 4 is greater than maximum 3") {
		t.Errorf("Validate() errors = %v", result.Errors)
	}
}

func TestWatchReportsReloadErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "watched.toml", "[money]\nsymbol = \"€\"\n")

	cfg, err := LoadWithOptions(path, LoadOptions{Format: FormatAuto, Watch: true})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}
	defer cfg.StopWatching()

	failed := make(chan error, 1)
	cfg.OnError(func(err error) {
		select {
		case failed <- err:
		default:
		}
	})

	writeFile(t, dir, "watched.toml", "[money\nsymbol =\n")

	select {
	case err := <-failed:
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
			t.Errorf("reload error = %v, want INVALID_CONFIG", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload error reported")
	}

	if got := cfg.GetString("money.symbol"); got != "€" {
		t.Errorf("money.symbol = %q after failed reload, want €", got)
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "watched.toml", "[money]\nsymbol = \"€\"\n")

	cfg, err := LoadWithOptions(path, LoadOptions{Format: FormatAuto, Watch: true})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}
	defer cfg.StopWatching()

	if !cfg.IsWatching() {
		t.Fatal("IsWatching() = false")
	}

	changed := make(chan string, 1)
	cfg.OnChange(func(oldConfig, newConfig *Config) {
		select {
		case changed <- oldConfig.GetString("money.symbol") + "->" + newConfig.GetString("money.symbol"):
		default:
		}
	})

	writeFile(t, dir, "watched.toml", "[money]\nsymbol = \"$\"\n")

	select {
	case got := <-changed:
		if got != "€->$" {
			t.Errorf("change = %q, want €->$", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification received")
	}

	if got := cfg.GetString("money.symbol"); got != "$" {
		t.Errorf("money.symbol = %q after reload", got)
	}

	cfg.StopWatching()
	if cfg.IsWatching() {
		t.Error("IsWatching() = true after StopWatching()")
	}
}
