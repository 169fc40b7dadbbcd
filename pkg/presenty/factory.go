// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     presenty
// Description: Presenter factory with shared, hot-reloadable defaults
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package presenty

import (
	"sync"

	"github.com/msto63/presenty/foundation/core/config"
	mdwlog "github.com/msto63/presenty/foundation/core/log"
)

// Factory creates presenters sharing one set of defaults and one logger.
// The defaults may be replaced at any time, also from a config watcher;
// presenters already created keep the defaults they started with.
type Factory struct {
	mu       sync.RWMutex
	defaults Defaults
	logger   *mdwlog.Logger
}

// NewFactory creates a factory. A nil logger disables logging.
func NewFactory(defaults Defaults, logger *mdwlog.Logger) *Factory {
	if logger == nil {
		logger = mdwlog.Nop()
	}
	return &Factory{
		defaults: defaults,
		logger:   logger,
	}
}

// NewFactoryFromConfig creates a factory whose defaults come from cfg. The
// configuration is validated first, including environment overrides. When
// cfg is watched, every valid reload replaces the defaults; a reload that
// fails to parse or validate is logged and ignored.
func NewFactoryFromConfig(cfg *config.Config, logger *mdwlog.Logger) (*Factory, error) {
	if cfg == nil {
		return NewFactory(DefaultDefaults(), logger), nil
	}
	if err := cfg.Validate(ValidationRules()).Err(); err != nil {
		return nil, err
	}

	f := NewFactory(DefaultsFromConfig(cfg), logger)
	cfg.OnChange(func(_, updated *config.Config) {
		if err := updated.Validate(ValidationRules()).Err(); err != nil {
			f.logger.Warn("ignoring invalid presenter configuration", mdwlog.Err(err))
			return
		}
		f.SetDefaults(DefaultsFromConfig(updated))
		f.logger.Info("presenter defaults reloaded", mdwlog.String("file", updated.FilePath()))
	})
	cfg.OnError(f.logger.LogError)

	return f, nil
}

// Defaults returns the current defaults
func (f *Factory) Defaults() Defaults {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.defaults
}

// SetDefaults replaces the defaults used for presenters created afterwards
func (f *Factory) SetDefaults(defaults Defaults) {
	f.mu.Lock()
	f.defaults = defaults
	f.mu.Unlock()
}

// Create wraps input in a presenter using the factory's defaults and
// logger. opts are applied after them and may override either.
func (f *Factory) Create(input any, opts ...Option) (*Presenter, error) {
	base := []Option{WithDefaults(f.Defaults()), WithLogger(f.logger)}
	return New(input, append(base, opts...)...)
}
