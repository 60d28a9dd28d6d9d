// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package gbuffer

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gviegas/transit/driver"
)

// WebGPU has no "don't care" load operation. Clearing is
// the cheapest way to not load.
func loadOp(op driver.LoadOp) gputypes.LoadOp {
	switch op {
	case driver.LLoad:
		return gputypes.LoadOpLoad
	case driver.LClear, driver.LDontCare:
		return gputypes.LoadOpClear
	}
	// Expected to be unreachable.
	return gputypes.LoadOpClear
}

func storeOp(op driver.StoreOp) gputypes.StoreOp {
	switch op {
	case driver.SStore:
		return gputypes.StoreOpStore
	case driver.SDontCare:
		return gputypes.StoreOpDiscard
	}
	// Expected to be unreachable.
	return gputypes.StoreOpStore
}

// WebGPU returns render pass attachment templates for p.
// color contains the Output, Albedo and Normal slots, in
// this order. Views must be set by the caller.
func WebGPU(p Preset) (color [3]hal.RenderPassColorAttachment, ds hal.RenderPassDepthStencilAttachment) {
	for i, slot := range [3]int{Output, Albedo, Normal} {
		color[i] = hal.RenderPassColorAttachment{
			LoadOp:     loadOp(p[slot].Load),
			StoreOp:    storeOp(p[slot].Store),
			ClearValue: gputypes.Color{R: 0, G: 0, B: 0, A: 1},
		}
	}
	ds = hal.RenderPassDepthStencilAttachment{
		DepthLoadOp:       loadOp(p[Depth].Load),
		DepthStoreOp:      storeOp(p[Depth].Store),
		DepthClearValue:   clearDepth,
		StencilLoadOp:     loadOp(p[Depth].Load),
		StencilStoreOp:    storeOp(p[Depth].Store),
		StencilClearValue: clearStencil,
	}
	return
}
