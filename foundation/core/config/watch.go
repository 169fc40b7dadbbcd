// File: watch.go
// Title: Configuration File Watching
// Description: Reloads the configuration when its file changes on disk and
//              notifies registered change handlers. Uses fsnotify on the
//              parent directory so editors that replace files by rename are
//              picked up too. Failed reloads are reported to error
//              handlers.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Polling watcher
// - 2026-10-17 v0.2.0: Switched to fsnotify with debounce
// - 2026-10-17 v0.2.1: Failed reloads reach the error handlers

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/presenty/foundation/core/error"
	mdwstringx "github.com/msto63/presenty/foundation/utils/stringx"
)

// reloadDebounce collapses the burst of events a single save produces
const reloadDebounce = 100 * time.Millisecond

type watcher struct {
	fs   *fsnotify.Watcher
	stop chan struct{}
	done chan struct{}
}

// startWatching begins monitoring the configuration file for changes
func (c *Config) startWatching() error {
	if mdwstringx.IsBlank(c.filePath) {
		return mdwerror.New("file path required for watching").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.startWatching")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create file watcher").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.startWatching")
	}

	if err := fsw.Add(filepath.Dir(c.filePath)); err != nil {
		fsw.Close()
		return mdwerror.Wrap(err, "failed to watch config directory").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.startWatching").
			WithDetail("filePath", c.filePath)
	}

	w := &watcher{
		fs:   fsw,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	c.mu.Lock()
	c.watch = w
	c.mu.Unlock()

	go c.watchLoop(w)
	return nil
}

func (c *Config) watchLoop(w *watcher) {
	defer close(w.done)
	defer w.fs.Close()

	target := filepath.Clean(c.filePath)
	var pending <-chan time.Time

	for {
		select {
		case <-w.stop:
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(reloadDebounce)

		case <-pending:
			pending = nil
			// a failed reload keeps the previous data
			if err := c.reload(); err != nil {
				c.reportError(err)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			c.reportError(mdwerror.Wrap(err, "config file watcher failed").
				WithCode(mdwerror.CodeConfigError).
				WithSeverity(mdwerror.SeverityMedium).
				WithOperation("config.watchLoop").
				WithDetail("filePath", c.filePath))
		}
	}
}

// reportError passes err to every registered error handler
func (c *Config) reportError(err error) {
	c.mu.RLock()
	handlers := make([]ErrorHandler, len(c.failures))
	copy(handlers, c.failures)
	c.mu.RUnlock()

	for _, handler := range handlers {
		if handler != nil {
			handler(err)
		}
	}
}

// reload reloads the configuration from the file and notifies watchers.
// Its errors have medium severity since the previous data stays in use.
func (c *Config) reload() error {
	content, err := os.ReadFile(c.filePath)
	if err != nil {
		return mdwerror.Wrap(err, "failed to read config file during reload").
			WithCode(mdwerror.CodeConfigError).
			WithSeverity(mdwerror.SeverityMedium).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath)
	}

	newData, err := parseContent(content, c.format)
	if err != nil {
		return mdwerror.Wrap(err, "failed to parse config file during reload").
			WithCode(mdwerror.CodeInvalidConfig).
			WithSeverity(mdwerror.SeverityMedium).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath)
	}

	c.mu.Lock()
	if c.defaults != nil {
		newData = mergeDefaults(newData, c.defaults)
	}
	oldConfig := &Config{
		data:      c.data,
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: c.envPrefix,
		dotenv:    c.dotenv,
	}
	c.data = newData
	handlers := make([]ChangeHandler, len(c.watchers))
	copy(handlers, c.watchers)
	newConfig := &Config{
		data:      deepCopyMap(newData),
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: c.envPrefix,
		dotenv:    c.dotenv,
	}
	c.mu.Unlock()

	for _, handler := range handlers {
		if handler != nil {
			handler(oldConfig, newConfig)
		}
	}

	return nil
}

// StopWatching stops file monitoring and waits for the watcher to exit
func (c *Config) StopWatching() {
	c.mu.Lock()
	w := c.watch
	c.watch = nil
	c.mu.Unlock()

	if w == nil {
		return
	}
	close(w.stop)
	<-w.done
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watch != nil
}
