// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package caps

import (
	"github.com/pkg/errors"

	"github.com/gviegas/transit/driver"
)

// SupportedCompression returns the fixed-rate compression
// that gpu supports for images created from info.
// It fails with driver.ErrNotSupported if gpu does not
// implement driver.CompressionQuerier.
func SupportedCompression(gpu driver.GPU, info *driver.ImageInfo) (driver.Compression, error) {
	q, ok := gpu.(driver.CompressionQuerier)
	if !ok {
		return driver.Compression{}, errors.WithStack(driver.ErrNotSupported)
	}
	c, err := q.ImageCompression(info)
	if err != nil {
		return driver.Compression{}, errors.Wrapf(err, "caps: compression of %v", info.Format)
	}
	return c, nil
}

// AppliedCompression returns the compression in effect on
// the first level and layer of img.
// It fails with driver.ErrNotSupported if gpu does not
// implement driver.CompressionQuerier.
func AppliedCompression(gpu driver.GPU, img driver.Image) (driver.Compression, error) {
	q, ok := gpu.(driver.CompressionQuerier)
	if !ok {
		return driver.Compression{}, errors.WithStack(driver.ErrNotSupported)
	}
	c, err := q.AppliedCompression(img)
	if err != nil {
		return driver.Compression{}, errors.Wrap(err, "caps: applied compression")
	}
	return c, nil
}

// SwapchainUsage returns the usage with which swapchain
// images should be created.
// Implementations do not compress images that can be
// used as storage, so storage usage is added when
// compression is false.
func SwapchainUsage(compression bool) driver.ImageUsage {
	usg := driver.UColorTarget
	if !compression {
		usg |= driver.UStorage
	}
	return usg
}
