// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package barrier records image layout transitions into
// command buffers.
//
// Scopes can be given explicitly, with Transition, or
// derived from the layouts, with the remaining functions.
// Derivation panics if either layout is driver.LGeneral,
// since no single scope is correct for images in the
// general layout.
//
// Transitions never transfer queue family ownership.
// The functions in this package do not retain cb or the
// images they are given.
package barrier

import (
	"github.com/gviegas/transit/driver"
)

// ImageRange pairs an image with a subresource range.
type ImageRange struct {
	Img   driver.Image
	Range driver.SubresRange
}

// Transition records a layout transition of the rng
// subresources of img, from before to after, using the
// scopes in b.
func Transition(cb driver.CmdBuffer, img driver.Image, b driver.Barrier, before, after driver.Layout, rng driver.SubresRange) {
	cb.Transition([]driver.Transition{{
		Barrier:      b,
		LayoutBefore: before,
		LayoutAfter:  after,
		Img:          img,
		Range:        rng,
	}})
}

// Layout records a layout transition of the rng
// subresources of img, from before to after.
// Scopes are derived from the layouts.
func Layout(cb driver.CmdBuffer, img driver.Image, before, after driver.Layout, rng driver.SubresRange) {
	Transition(cb, img, driver.BarrierOf(before, after), before, after, rng)
}

// Image records a layout transition of the first level
// and layer of img's color aspect, from before to after.
// Scopes are derived from the layouts.
func Image(cb driver.CmdBuffer, img driver.Image, before, after driver.Layout) {
	Layout(cb, img, before, after, driver.DefaultRange)
}

// Batch records the same layout transition for every
// element of imgs, in a single synchronization point.
// Scopes are derived from the layouts once.
// It records nothing if imgs is empty.
func Batch(cb driver.CmdBuffer, imgs []ImageRange, before, after driver.Layout) {
	if len(imgs) == 0 {
		return
	}
	b := driver.BarrierOf(before, after)
	t := make([]driver.Transition, len(imgs))
	for i := range imgs {
		t[i] = driver.Transition{
			Barrier:      b,
			LayoutBefore: before,
			LayoutAfter:  after,
			Img:          imgs[i].Img,
			Range:        imgs[i].Range,
		}
	}
	cb.Transition(t)
}
