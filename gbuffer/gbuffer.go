// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package gbuffer provides load/store configurations for
// the render targets of a deferred shading pass.
//
// Render targets are laid out in a fixed order: the output
// image (usually a swapchain image), the depth buffer, the
// albedo buffer and the normal buffer.
package gbuffer

import (
	"math"

	"github.com/gviegas/transit/driver"
)

// Render target slots.
const (
	Output = iota
	Depth
	Albedo
	Normal
	NSlot
)

// LoadStore pairs the load and store operations of a
// render target.
type LoadStore struct {
	Load  driver.LoadOp
	Store driver.StoreOp
}

// Preset is a load/store configuration for every slot.
type Preset [NSlot]LoadStore

// LoadAllStoreOutput returns a Preset that loads the
// geometry buffers and stores the output only.
// The output is not loaded, since the lighting pass
// overwrites all of it.
func LoadAllStoreOutput() Preset {
	return Preset{
		Output: {driver.LDontCare, driver.SStore},
		Depth:  {driver.LLoad, driver.SDontCare},
		Albedo: {driver.LLoad, driver.SDontCare},
		Normal: {driver.LLoad, driver.SDontCare},
	}
}

// ClearAllStoreOutput returns a Preset that clears every
// render target and stores the output only.
func ClearAllStoreOutput() Preset {
	return Preset{
		Output: {driver.LClear, driver.SStore},
		Depth:  {driver.LClear, driver.SDontCare},
		Albedo: {driver.LClear, driver.SDontCare},
		Normal: {driver.LClear, driver.SDontCare},
	}
}

// ClearStoreAll returns a Preset that clears and stores
// every render target.
// It is useful when the geometry buffers must be read by
// a later pass.
func ClearStoreAll() Preset {
	return Preset{
		Output: {driver.LClear, driver.SStore},
		Depth:  {driver.LClear, driver.SStore},
		Albedo: {driver.LClear, driver.SStore},
		Normal: {driver.LClear, driver.SStore},
	}
}

// Clear values.
// Depth uses the reversed convention, so the depth test
// must pass for greater values.
const (
	clearDepth   = 0
	clearStencil = math.MaxUint32
)

// ClearValues returns the clear value of every slot.
// Color targets are cleared to opaque black.
func ClearValues() [NSlot]driver.ClearValue {
	black := driver.ClearValue{Color: [4]float32{0, 0, 0, 1}}
	return [NSlot]driver.ClearValue{
		Output: black,
		Depth:  {Depth: clearDepth, Stencil: clearStencil},
		Albedo: black,
		Normal: black,
	}
}

// Attachments returns the attachment descriptions of a
// render pass that uses p.
// formats contains the pixel format of each slot.
// The stencil aspect of the depth slot uses the same
// operations as the depth aspect, if present.
func Attachments(p Preset, formats [NSlot]driver.PixelFmt) []driver.Attachment {
	att := make([]driver.Attachment, NSlot)
	for i := range att {
		att[i] = driver.Attachment{
			Format:  formats[i],
			Samples: 1,
			Load:    [2]driver.LoadOp{p[i].Load, driver.LDontCare},
			Store:   [2]driver.StoreOp{p[i].Store, driver.SDontCare},
		}
		if driver.AspectOf(formats[i])&driver.AspectStencil != 0 {
			att[i].Load[1] = p[i].Load
			att[i].Store[1] = p[i].Store
		}
	}
	return att
}
