// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vk

import (
	vk "github.com/vulkan-go/vulkan"

	"github.com/gviegas/transit/driver"
)

// Image implements driver.Image.
// It wraps a VkImage that was created elsewhere, such as
// a swapchain image. The driver does not own it.
type Image struct {
	img vk.Image
	fmt driver.PixelFmt
}

// NewImage wraps img, whose format is pf.
func NewImage(img vk.Image, pf driver.PixelFmt) *Image {
	return &Image{img: img, fmt: pf}
}

// Format returns the image's pixel format.
func (im *Image) Format() driver.PixelFmt { return im.fmt }

// VK returns the VkImage handle.
func (im *Image) VK() vk.Image { return im.img }

// Surface implements driver.Surface.
// It wraps a VkSurfaceKHR that was created elsewhere,
// usually by the windowing system. The driver takes
// ownership of it.
type Surface struct {
	d  *Driver
	sf vk.Surface
}

// NewSurface wraps sf, which must have been created from
// the driver's instance.
func (d *Driver) NewSurface(sf vk.Surface) *Surface {
	return &Surface{d: d, sf: sf}
}

// VK returns the VkSurfaceKHR handle.
func (s *Surface) VK() vk.Surface { return s.sf }

// Destroy destroys the surface.
func (s *Surface) Destroy() {
	if s == nil {
		return
	}
	if s.d != nil && s.d.inst != nil {
		vk.DestroySurface(s.d.inst, s.sf, nil)
	}
	*s = Surface{}
}
