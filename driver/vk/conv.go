// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vk

import (
	vk "github.com/vulkan-go/vulkan"

	"github.com/gviegas/transit/driver"
)

// The driver's enumerations and masks use the same values
// as Vulkan's, so most conversions are casts.

// convPixelFmt converts a driver.PixelFmt to a VkFormat.
func convPixelFmt(pf driver.PixelFmt) vk.Format { return vk.Format(pf) }

// convLayout converts a driver.Layout to a VkImageLayout.
// The device is created without separate depth/stencil
// layouts, so driver.LDepthTarget becomes the combined
// depth/stencil attachment layout.
func convLayout(l driver.Layout) vk.ImageLayout {
	if l == driver.LDepthTarget {
		return vk.ImageLayoutDepthStencilAttachmentOptimal
	}
	return vk.ImageLayout(l)
}

// convSync converts a driver.Sync to a VkPipelineStageFlags.
func convSync(s driver.Sync) vk.PipelineStageFlags { return vk.PipelineStageFlags(s) }

// convAccess converts a driver.Access to a VkAccessFlags.
func convAccess(a driver.Access) vk.AccessFlags { return vk.AccessFlags(a) }

// convAspect converts a driver.Aspect to a VkImageAspectFlags.
func convAspect(a driver.Aspect) vk.ImageAspectFlags { return vk.ImageAspectFlags(a) }

// convRange converts a driver.SubresRange to a
// VkImageSubresourceRange.
func convRange(r driver.SubresRange) vk.ImageSubresourceRange {
	return vk.ImageSubresourceRange{
		AspectMask:     convAspect(r.Aspect),
		BaseMipLevel:   uint32(r.Level),
		LevelCount:     uint32(r.Levels),
		BaseArrayLayer: uint32(r.Layer),
		LayerCount:     uint32(r.Layers),
	}
}

// convImageRange converts the range of an image of format
// pf. Barriers on combined depth/stencil formats must name
// both aspects.
func convImageRange(pf driver.PixelFmt, r driver.SubresRange) vk.ImageSubresourceRange {
	if pf.IsDepthStencil() && r.Aspect&(driver.AspectDepth|driver.AspectStencil) != 0 {
		r.Aspect |= driver.AspectDepth | driver.AspectStencil
	}
	return convRange(r)
}

// convLoadOp converts a driver.LoadOp to a VkAttachmentLoadOp.
func convLoadOp(op driver.LoadOp) vk.AttachmentLoadOp {
	switch op {
	case driver.LDontCare:
		return vk.AttachmentLoadOpDontCare
	case driver.LClear:
		return vk.AttachmentLoadOpClear
	case driver.LLoad:
		return vk.AttachmentLoadOpLoad
	}

	// Expected to be unreachable.
	return ^vk.AttachmentLoadOp(0)
}

// convStoreOp converts a driver.StoreOp to a VkAttachmentStoreOp.
func convStoreOp(op driver.StoreOp) vk.AttachmentStoreOp {
	switch op {
	case driver.SDontCare:
		return vk.AttachmentStoreOpDontCare
	case driver.SStore:
		return vk.AttachmentStoreOpStore
	}

	// Expected to be unreachable.
	return ^vk.AttachmentStoreOp(0)
}

// convSamples converts a sample count to a
// VkSampleCountFlagBits.
func convSamples(n int) vk.SampleCountFlagBits {
	switch n {
	case 1:
		return vk.SampleCount1Bit
	case 2:
		return vk.SampleCount2Bit
	case 4:
		return vk.SampleCount4Bit
	case 8:
		return vk.SampleCount8Bit
	case 16:
		return vk.SampleCount16Bit
	case 32:
		return vk.SampleCount32Bit
	case 64:
		return vk.SampleCount64Bit
	}

	// Expected to be unreachable.
	return vk.SampleCount1Bit
}

// AttachmentDescs converts att to render pass attachment
// descriptions.
// initial and final must have one element per attachment.
func AttachmentDescs(att []driver.Attachment, initial, final []driver.Layout) []vk.AttachmentDescription {
	descs := make([]vk.AttachmentDescription, len(att))
	for i := range att {
		descs[i] = vk.AttachmentDescription{
			Format:         convPixelFmt(att[i].Format),
			Samples:        convSamples(att[i].Samples),
			LoadOp:         convLoadOp(att[i].Load[0]),
			StoreOp:        convStoreOp(att[i].Store[0]),
			StencilLoadOp:  convLoadOp(att[i].Load[1]),
			StencilStoreOp: convStoreOp(att[i].Store[1]),
			InitialLayout:  convLayout(initial[i]),
			FinalLayout:    convLayout(final[i]),
		}
	}
	return descs
}

// ClearValues converts cv to VkClearValues.
// aspect determines which member of each clear value is
// used.
func ClearValues(cv []driver.ClearValue, aspect []driver.Aspect) []vk.ClearValue {
	vcs := make([]vk.ClearValue, len(cv))
	for i := range cv {
		if aspect[i]&driver.AspectColor != 0 {
			vcs[i] = vk.NewClearValue(cv[i].Color[:])
		} else {
			vcs[i] = vk.NewClearDepthStencil(cv[i].Depth, cv[i].Stencil)
		}
	}
	return vcs
}
