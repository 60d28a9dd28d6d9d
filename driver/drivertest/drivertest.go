// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package drivertest provides in-memory implementations
// of the driver interfaces, for use in tests.
package drivertest

import (
	"slices"
	"sync"

	"github.com/gviegas/transit/driver"
)

// Driver is a driver.Driver that opens a fixed GPU.
type Driver struct {
	N string
	G *GPU
}

// Open returns d.G, or driver.ErrNoDevice if it is nil.
func (d *Driver) Open() (driver.GPU, error) {
	if d.G == nil {
		return nil, driver.ErrNoDevice
	}
	d.G.drv = d
	return d.G, nil
}

// Name returns d.N.
func (d *Driver) Name() string { return d.N }

// Close does nothing.
func (d *Driver) Close() {}

// GPU is a driver.GPU whose capabilities are set by the
// test. It also implements driver.CompressionQuerier.
// Fields must not be modified after the GPU is in use.
type GPU struct {
	// Props maps formats to their features.
	// Absent formats have no features.
	Props map[driver.PixelFmt]driver.FormatProps
	// Families is returned by QueueFamilies.
	Families []driver.QueueFlag
	// Surface is returned by SurfaceFormats.
	Surface []driver.SurfaceFormat
	// SurfaceErr, if not nil, is returned by
	// SurfaceFormats.
	SurfaceErr error
	// Compress maps formats to the compression that
	// the device supports for them. A nil map
	// causes the compression queries to fail with
	// driver.ErrNotSupported.
	Compress map[driver.PixelFmt]driver.Compression

	drv driver.Driver

	mu      sync.Mutex
	queries []driver.PixelFmt
}

// Driver returns the Driver that opened g, if any.
func (g *GPU) Driver() driver.Driver { return g.drv }

// FormatProps returns g.Props[pf] and records the query.
func (g *GPU) FormatProps(pf driver.PixelFmt) driver.FormatProps {
	g.mu.Lock()
	g.queries = append(g.queries, pf)
	g.mu.Unlock()
	return g.Props[pf]
}

// Queries returns the formats passed to FormatProps, in
// call order.
func (g *GPU) Queries() []driver.PixelFmt {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.queries)
}

// ResetQueries clears the record of FormatProps calls.
func (g *GPU) ResetQueries() {
	g.mu.Lock()
	g.queries = g.queries[:0]
	g.mu.Unlock()
}

// QueueFamilies returns a copy of g.Families.
func (g *GPU) QueueFamilies() []driver.QueueFlag { return slices.Clone(g.Families) }

// SurfaceFormats returns a copy of g.Surface.
func (g *GPU) SurfaceFormats(sf driver.Surface) ([]driver.SurfaceFormat, error) {
	if g.SurfaceErr != nil {
		return nil, g.SurfaceErr
	}
	return slices.Clone(g.Surface), nil
}

// ImageCompression returns the compression set for
// info.Format. Images created with storage usage or with
// driver.CompressDisabled are never compressed.
func (g *GPU) ImageCompression(info *driver.ImageInfo) (driver.Compression, error) {
	if g.Compress == nil {
		return driver.Compression{}, driver.ErrNotSupported
	}
	if info.Usage&driver.UStorage != 0 || info.Compression&driver.CompressDisabled != 0 {
		return driver.Compression{Flags: driver.CompressDisabled}, nil
	}
	return g.Compress[info.Format], nil
}

// AppliedCompression returns the compression recorded in
// img, which must be an *Image.
func (g *GPU) AppliedCompression(img driver.Image) (driver.Compression, error) {
	if g.Compress == nil {
		return driver.Compression{}, driver.ErrNotSupported
	}
	return img.(*Image).Compression, nil
}

// Image is a driver.Image.
type Image struct {
	Fmt         driver.PixelFmt
	Compression driver.Compression
}

// Format returns i.Fmt.
func (i *Image) Format() driver.PixelFmt { return i.Fmt }

// Surface is a driver.Surface.
type Surface struct {
	Destroyed bool
}

// Destroy marks s as destroyed.
func (s *Surface) Destroy() { s.Destroyed = true }

// CmdBuffer is a driver.CmdBuffer that records the
// transitions it receives.
// Each call to Transition is recorded as a separate
// synchronization point.
type CmdBuffer struct {
	Calls [][]driver.Transition
}

// Transition records a copy of t.
func (cb *CmdBuffer) Transition(t []driver.Transition) {
	cb.Calls = append(cb.Calls, slices.Clone(t))
}

// Reset discards the recorded transitions.
func (cb *CmdBuffer) Reset() { cb.Calls = cb.Calls[:0] }
