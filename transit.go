// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package transit prepares a GPU for a deferred renderer:
// it selects formats and queue families according to a
// Config and reports the result as a Profile.
//
// Layout transitions are recorded with package barrier,
// capability queries are in package caps and render pass
// presets are in package gbuffer.
package transit

import (
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/gviegas/transit/driver"
	"github.com/gviegas/transit/internal/logger"
)

// SetLogger sets the logger used by every package in the
// module. By default nothing is logged.
// A nil l restores the default.
func SetLogger(l *slog.Logger) { logger.Set(l) }

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger { return logger.Get() }

var errNoDriver = errors.New("transit: driver not found")

// LoadDriver opens the first registered driver whose name
// contains name. It is case insensitive.
// If name is the empty string, then all registered
// drivers are considered.
// Drivers register themselves when their packages are
// imported (e.g., github.com/gviegas/transit/driver/vk).
func LoadDriver(name string) (driver.Driver, driver.GPU, error) {
	drivers := driver.Drivers()
	err := errNoDriver
	name = strings.ToLower(name)
	for i := range drivers {
		if !strings.Contains(strings.ToLower(drivers[i].Name()), name) {
			continue
		}
		var gpu driver.GPU
		if gpu, err = drivers[i].Open(); err != nil {
			logger.Get().Warn("driver failed to open", "name", drivers[i].Name(), "err", err)
			continue
		}
		return drivers[i], gpu, nil
	}
	return nil, nil, errors.WithStack(err)
}
