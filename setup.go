// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package transit

import (
	"github.com/pkg/errors"

	"github.com/gviegas/transit/caps"
	"github.com/gviegas/transit/driver"
	"github.com/gviegas/transit/internal/logger"
)

// Profile describes the choices made by Setup.
type Profile struct {
	Depth     driver.PixelFmt
	Blendable driver.PixelFmt
	// Surface is the zero value if Setup was called
	// with a nil surface.
	Surface driver.SurfaceFormat

	// Queue family indices.
	Graphics int
	Compute  int
	Transfer int

	// SwapchainUsage is the usage with which swapchain
	// images must be created.
	SwapchainUsage driver.ImageUsage
	// Compression is the compression that the device
	// supports for swapchain images. It is the zero value
	// if the device cannot answer.
	Compression driver.Compression
}

// Setup selects formats and queue families from gpu, as
// configured by cfg. sf may be nil, in which case no
// surface format is selected.
// A nil cfg means DefaultConfig().
// Errors name the requirement that the device does not
// meet, and wrap a *driver.ConfigError when the device is
// incompatible.
func Setup(gpu driver.GPU, sf driver.Surface, cfg *Config) (*Profile, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var p Profile
	var err error
	if p.Depth, err = caps.DepthFormat(gpu, cfg.DepthOnly, cfg.DepthFormats); err != nil {
		return nil, errors.Wrap(err, "transit: depth attachment")
	}
	if p.Blendable, err = caps.BlendableFormat(gpu, cfg.BlendableFormats); err != nil {
		return nil, errors.Wrap(err, "transit: color attachment")
	}

	fams := gpu.QueueFamilies()
	for _, x := range [...]struct {
		idx  *int
		want driver.QueueFlag
	}{
		{&p.Graphics, driver.QGraphics},
		{&p.Compute, driver.QCompute},
		{&p.Transfer, driver.QTransfer},
	} {
		if *x.idx, err = caps.QueueFamily(fams, x.want); err != nil {
			// Graphics families support transfer operations
			// whether or not they report it.
			if x.want == driver.QTransfer {
				logger.Get().Debug("no transfer queue family, using graphics", "index", p.Graphics)
				p.Transfer = p.Graphics
				continue
			}
			return nil, errors.Wrapf(err, "transit: %v queue", x.want)
		}
	}

	p.SwapchainUsage = caps.SwapchainUsage(cfg.Compression)
	if sf != nil {
		if p.Surface, err = caps.SurfaceFormat(gpu, sf, cfg.SurfaceFormats); err != nil {
			return nil, errors.Wrap(err, "transit: presentation")
		}
		info := driver.ImageInfo{
			Format: p.Surface.Format,
			Type:   driver.Image2D,
			Tiling: driver.TOptimal,
			Usage:  p.SwapchainUsage,
		}
		if !cfg.Compression {
			info.Compression = driver.CompressDisabled
		}
		switch c, err := caps.SupportedCompression(gpu, &info); {
		case err == nil:
			p.Compression = c
		case errors.Is(err, driver.ErrNotSupported):
			logger.Get().Debug("compression query not supported")
		default:
			return nil, errors.Wrap(err, "transit: swapchain compression")
		}
	}

	logger.Get().Info("setup complete",
		"depth", p.Depth,
		"blendable", p.Blendable,
		"surface", p.Surface.Format,
		"graphics", p.Graphics,
		"compute", p.Compute,
		"transfer", p.Transfer,
		"compression", p.Compression)
	return &p, nil
}
