// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package caps implements capability queries on top of
// driver.GPU: selection of depth, blendable and surface
// formats, sampler filter validation, fixed-rate
// compression probes and queue family selection.
//
// Priority lists are ordered by preference. When more than
// one candidate is supported, the earliest one is chosen.
package caps

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"

	"github.com/gviegas/transit/driver"
	"github.com/gviegas/transit/internal/logger"
)

// DefaultDepthFormats is a reasonable priority list for
// DepthFormat.
var DefaultDepthFormats = []driver.PixelFmt{
	driver.D32f,
	driver.D24unS8ui,
	driver.D16un,
}

// DefaultBlendableFormats is a reasonable priority list
// for BlendableFormat.
var DefaultBlendableFormats = []driver.PixelFmt{
	driver.A2BGR10unPack32,
	driver.RGBA16f,
}

// DefaultSurfaceFormats is a reasonable list of preferred
// formats for SurfaceFormat.
var DefaultSurfaceFormats = []driver.PixelFmt{
	driver.RGBA8sRGB,
	driver.BGRA8sRGB,
	driver.RGBA8un,
	driver.BGRA8un,
}

// firstSupported returns the first format in prio that
// passes filter and whose optimal tiling features contain
// feat.
func firstSupported(gpu driver.GPU, prio []driver.PixelFmt, feat driver.FormatFeature, filter func(driver.PixelFmt) bool) (driver.PixelFmt, bool) {
	for _, pf := range prio {
		if filter != nil && !filter(pf) {
			continue
		}
		if gpu.FormatProps(pf).Optimal&feat != 0 {
			return pf, true
		}
	}
	return driver.FUndefined, false
}

// DepthFormat selects a format for depth attachments.
// If depthOnly is true, formats with a stencil component
// are not considered.
// It returns a *driver.ConfigError if no candidate in prio
// can be used as a depth/stencil attachment with optimal
// tiling.
func DepthFormat(gpu driver.GPU, depthOnly bool, prio []driver.PixelFmt) (driver.PixelFmt, error) {
	var filter func(driver.PixelFmt) bool
	if depthOnly {
		filter = driver.PixelFmt.IsDepthOnly
	}
	pf, ok := firstSupported(gpu, prio, driver.FeatDSTarget, filter)
	if !ok {
		detail := fmt.Sprintf("no format in %v supports depth/stencil attachment", prio)
		if depthOnly {
			detail += " (depth only)"
		}
		return driver.FUndefined, errors.WithStack(&driver.ConfigError{Req: "depth format", Detail: detail})
	}
	logger.Get().Info("depth format selected", "format", pf)
	return pf, nil
}

// BlendableFormat selects a format for color attachments
// that support blending.
// It returns a *driver.ConfigError if no candidate in prio
// supports color attachment blending with optimal tiling.
func BlendableFormat(gpu driver.GPU, prio []driver.PixelFmt) (driver.PixelFmt, error) {
	pf, ok := firstSupported(gpu, prio, driver.FeatColorBlend, nil)
	if !ok {
		detail := fmt.Sprintf("no format in %v supports color attachment blending", prio)
		return driver.FUndefined, errors.WithStack(&driver.ConfigError{Req: "blendable format", Detail: detail})
	}
	logger.Get().Info("blendable format selected", "format", pf)
	return pf, nil
}

// ValidFilter returns a filter that is valid for sampling
// images of format pf.
// If mipmap is not nil, *mipmap is updated to a valid mode
// as well.
// Nearest filtering is always valid, so the GPU is not
// queried when filter is FNearest and mipmap is either nil
// or MNearest. Otherwise, if pf does not support linear
// filtering with optimal tiling, both are downgraded to
// nearest.
func ValidFilter(gpu driver.GPU, pf driver.PixelFmt, filter driver.Filter, mipmap *driver.MipmapMode) driver.Filter {
	if filter == driver.FNearest && (mipmap == nil || *mipmap == driver.MNearest) {
		return filter
	}
	if gpu.FormatProps(pf).Optimal&driver.FeatLinearFilter == 0 {
		filter = driver.FNearest
		if mipmap != nil {
			*mipmap = driver.MNearest
		}
	}
	return filter
}

// SurfaceFormat selects a format for presentation to sf.
// It returns the first format enumerated by the driver
// that is present in preferred. The order of preferred
// does not matter. If none is present, the first format
// enumerated by the driver is returned.
// It fails with driver.ErrNoSurfaceFormat if the driver
// reports no formats at all.
func SurfaceFormat(gpu driver.GPU, sf driver.Surface, preferred []driver.PixelFmt) (driver.SurfaceFormat, error) {
	fmts, err := gpu.SurfaceFormats(sf)
	if err != nil {
		return driver.SurfaceFormat{}, errors.Wrap(err, "caps: surface formats")
	}
	if len(fmts) == 0 {
		return driver.SurfaceFormat{}, errors.WithStack(driver.ErrNoSurfaceFormat)
	}
	for _, f := range fmts {
		if slices.Contains(preferred, f.Format) {
			logger.Get().Info("surface format selected", "format", f.Format, "preferred", true)
			return f, nil
		}
	}
	logger.Get().Info("surface format selected", "format", fmts[0].Format, "preferred", false)
	return fmts[0], nil
}
