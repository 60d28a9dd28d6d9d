// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package driver defines the data model and the device
// boundaries used to manage image layout transitions and
// to query GPU capabilities.
// It is designed to allow platform-specific APIs to be
// implemented in a mostly straightforward manner.
package driver

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/gviegas/transit/internal/logger"
)

// Driver is the interface that provides methods for
// loading and unloading an underlying implementation.
type Driver interface {
	// Open initializes the driver.
	// If it succeeds, further calls with the same receiver
	// have no effect and must return the same GPU instance.
	// Callers should assume that Open is not safe for
	// parallel execution.
	Open() (GPU, error)

	// Name returns the name of the driver.
	// It must not cause the driver to be opened.
	Name() string

	// Close deinitializes the driver.
	// Closing a driver that is not open has no effect.
	// Callers should assume that Close is not safe for
	// parallel execution.
	Close()
}

// ErrNotInstalled means that a platform-specific library
// required for the driver to work is not present in the
// system.
var ErrNotInstalled = errors.New("driver: missing required library")

// ErrNoDevice means that no suitable device could be
// found.
var ErrNoDevice = errors.New("driver: no suitable device found")

// ErrNoHostMemory means that host memory could not be
// allocated.
var ErrNoHostMemory = errors.New("driver: out of host memory")

// ErrNoDeviceMemory means that device memory could not
// be allocated.
var ErrNoDeviceMemory = errors.New("driver: out of device memory")

// ErrFatal means that the driver is in an unrecoverable
// state. Upon encountering such an error, the application
// must destroy everything that it created using the
// driver's GPU and then call the Close method. It may call
// Open again to reinitialize the driver for further use.
var ErrFatal = errors.New("driver: fatal error")

// ErrUnsupported means that the device cannot satisfy a
// requirement of the caller.
// Errors of type *ConfigError wrap it.
var ErrUnsupported = errors.New("driver: requirement not supported")

// ErrNotSupported means that the driver cannot answer a
// query, usually because the feature or extension it
// depends on is not exposed by the implementation.
var ErrNotSupported = errors.New("driver: query not supported")

// ErrNoSurfaceFormat means that the driver reported no
// formats for a surface.
var ErrNoSurfaceFormat = errors.New("driver: no surface formats reported")

// ConfigError describes a device incompatibility.
// Req names the unmet requirement (e.g., "depth format")
// and Detail describes what was asked for.
// There is no point in retrying the operation that
// produced a ConfigError using the same device.
type ConfigError struct {
	Req    string
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return "driver: unsupported " + e.Req
	}
	return "driver: unsupported " + e.Req + " (" + e.Detail + ")"
}

// Unwrap returns ErrUnsupported.
func (e *ConfigError) Unwrap() error { return ErrUnsupported }

// Drivers returns the registered Drivers.
// Client code imports specific driver packages, and then
// call this function from init. As such, drivers that do
// not register themselves on init will not be considered
// for selection.
func Drivers() []Driver {
	mu.Lock()
	defer mu.Unlock()
	drv := make([]Driver, len(drivers))
	copy(drv, drivers)
	return drv
}

// Register registers a Driver.
// Driver implementations are expected to call Register
// exactly once, from an init function.
// If a driver with the same name has already been
// registered, it will be replaced by drv.
func Register(drv Driver) {
	mu.Lock()
	defer mu.Unlock()
	for i := range drivers {
		if drivers[i].Name() == drv.Name() {
			drivers[i] = drv
			logger.Get().Warn("driver replaced", "name", drv.Name())
			return
		}
	}
	drivers = append(drivers, drv)
	logger.Get().Info("driver registered", "name", drv.Name())
}

// Variables used for driver registration.
var (
	mu      sync.Mutex
	drivers []Driver = make([]Driver, 0, 2)
)
