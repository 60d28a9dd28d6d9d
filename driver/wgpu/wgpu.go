// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package wgpu implements driver.CmdBuffer on top of a
// WebGPU HAL command encoder.
//
// WebGPU has no explicit layouts. Each driver.Layout is
// mapped to the texture usage that implies it, and the HAL
// derives the native barrier from the usage transition.
// Scopes in driver.Barrier are ignored for this reason.
package wgpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gviegas/transit/driver"
	"github.com/gviegas/transit/internal/logger"
)

// Encoder is the subset of hal.CommandEncoder used to
// record transitions.
type Encoder interface {
	TransitionTextures(barriers []hal.TextureBarrier)
}

// Texture is a driver.Image backed by a HAL texture.
type Texture struct {
	Tex hal.Texture
	Fmt driver.PixelFmt
}

// Format returns t.Fmt.
func (t *Texture) Format() driver.PixelFmt { return t.Fmt }

// CmdBuffer is a driver.CmdBuffer that records into a
// HAL command encoder.
type CmdBuffer struct {
	enc Encoder
}

// NewCmdBuffer creates a new CmdBuffer that records into
// enc, which must be encoding.
func NewCmdBuffer(enc Encoder) *CmdBuffer { return &CmdBuffer{enc: enc} }

// usageOf returns the texture usage that corresponds to
// layout l. It returns false if l has no equivalent.
func usageOf(l driver.Layout) (gputypes.TextureUsage, bool) {
	switch l {
	case driver.LUndefined:
		return 0, true
	case driver.LColorTarget, driver.LDepthTarget:
		return gputypes.TextureUsageRenderAttachment, true
	case driver.LShaderRead:
		return gputypes.TextureUsageTextureBinding, true
	case driver.LCopySrc:
		return gputypes.TextureUsageCopySrc, true
	case driver.LCopyDst:
		return gputypes.TextureUsageCopyDst, true
	case driver.LGeneral:
		return gputypes.TextureUsageStorageBinding, true
	}
	// Presentation is implicit and neither preinitialized
	// images nor shading rate attachments exist in WebGPU.
	return 0, false
}

// aspectOf converts a driver.Aspect to a TextureAspect.
// Color images and combined depth/stencil ranges select
// every aspect of the texture.
func aspectOf(a driver.Aspect) gputypes.TextureAspect {
	switch a {
	case driver.AspectDepth:
		return gputypes.TextureAspectDepthOnly
	case driver.AspectStencil:
		return gputypes.TextureAspectStencilOnly
	}
	return gputypes.TextureAspectAll
}

// rangeOf converts a driver.SubresRange to a TextureRange.
func rangeOf(r driver.SubresRange) hal.TextureRange {
	return hal.TextureRange{
		Aspect:          aspectOf(r.Aspect),
		BaseMipLevel:    uint32(r.Level),
		MipLevelCount:   uint32(r.Levels),
		BaseArrayLayer:  uint32(r.Layer),
		ArrayLayerCount: uint32(r.Layers),
	}
}

// Transition records a single TransitionTextures call
// containing every element of t.
// Elements whose layouts have no WebGPU equivalent, or
// that do not change the usage, are skipped.
// Every Img must be a *Texture.
func (cb *CmdBuffer) Transition(t []driver.Transition) {
	var buf []hal.TextureBarrier
	for i := range t {
		before, ok1 := usageOf(t[i].LayoutBefore)
		after, ok2 := usageOf(t[i].LayoutAfter)
		if !ok1 || !ok2 {
			logger.Get().Debug("wgpu: transition skipped", "before", t[i].LayoutBefore, "after", t[i].LayoutAfter)
			continue
		}
		if before == after {
			continue
		}
		buf = append(buf, hal.TextureBarrier{
			Texture: t[i].Img.(*Texture).Tex,
			Range:   rangeOf(t[i].Range),
			Usage: hal.TextureUsageTransition{
				OldUsage: before,
				NewUsage: after,
			},
		})
	}
	if len(buf) > 0 {
		cb.enc.TransitionTextures(buf)
	}
}
