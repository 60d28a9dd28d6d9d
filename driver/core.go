// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"github.com/gviegas/transit/internal/flags"
)

// GPU is the main interface to an underlying driver
// implementation.
// It answers capability queries about the device.
// A GPU is obtained from a call to Driver.Open.
// Query results are immutable for the lifetime of the GPU,
// so implementations must be safe for concurrent use.
type GPU interface {
	// Driver returns the Driver that owns the GPU.
	Driver() Driver

	// FormatProps returns the features that the device
	// supports for a given pixel format.
	FormatProps(pf PixelFmt) FormatProps

	// QueueFamilies returns the capabilities of every
	// queue family, in the order that the driver
	// enumerates them.
	QueueFamilies() []QueueFlag

	// SurfaceFormats returns the formats that the device
	// supports for presentation to sf, in the order that
	// the driver enumerates them.
	SurfaceFormats(sf Surface) ([]SurfaceFormat, error)
}

// CompressionQuerier is an optional interface that a GPU
// may implement to answer fixed-rate compression queries.
type CompressionQuerier interface {
	// ImageCompression returns the compression that the
	// device supports for images created from info.
	ImageCompression(info *ImageInfo) (Compression, error)

	// AppliedCompression returns the compression in effect
	// on the first level/layer of img.
	AppliedCompression(img Image) (Compression, error)
}

// Destroyer is the interface that wraps the Destroy method.
// Types that implement this interface may allocate external
// memory that is not managed by GC, so Destroy must be
// called explicitly to ensure such memory is deallocated.
type Destroyer interface {
	Destroy()
}

// CmdBuffer is the interface that defines the recording
// scope into which barriers are appended.
// The command buffer must be open for recording. Opening,
// closing and committing it is responsibility of the
// caller.
// A CmdBuffer must not be used from multiple goroutines
// at the same time. Distinct command buffers can be
// recorded concurrently.
type CmdBuffer interface {
	// Transition inserts a single synchronization point
	// containing every layout transition in t.
	// The execution scopes of the barrier are the union of
	// the scopes of all elements of t.
	// Images are neither retained nor owned by the command
	// buffer.
	Transition(t []Transition)
}

// Image is the interface that defines a GPU image.
// Its current layout is not tracked by the driver. The
// caller must know it when recording a transition.
type Image interface {
	// Format returns the image's pixel format.
	Format() PixelFmt
}

// Surface is the interface that defines a presentation
// surface. Creating surfaces is outside the scope of this
// package.
type Surface interface {
	Destroyer
}

// Aspect is the type of an image aspect.
type Aspect int

// Image aspects.
const (
	AspectColor Aspect = 1 << iota
	AspectDepth
	AspectStencil
)

// SubresRange specifies a range of image subresources.
// Levels and Layers must be greater than zero.
type SubresRange struct {
	Aspect Aspect
	Level  int
	Levels int
	Layer  int
	Layers int
}

// DefaultRange is the range used when the caller does not
// specify one: the color aspect of the first level and
// layer.
var DefaultRange = SubresRange{
	Aspect: AspectColor,
	Levels: 1,
	Layers: 1,
}

// AspectOf returns the aspects of a given pixel format.
func AspectOf(pf PixelFmt) Aspect {
	switch {
	case pf.IsDepthOnly() || pf == X8D24unPack32:
		return AspectDepth
	case pf.IsDepthStencil():
		return AspectDepth | AspectStencil
	case pf == S8ui:
		return AspectStencil
	}
	return AspectColor
}

// Barrier represents a synchronization barrier.
type Barrier struct {
	SyncBefore   Sync
	SyncAfter    Sync
	AccessBefore Access
	AccessAfter  Access
}

// Transition represents a layout transition on a
// specific image subresource range.
// Transitions never transfer queue ownership.
type Transition struct {
	Barrier

	LayoutBefore Layout
	LayoutAfter  Layout
	Img          Image
	Range        SubresRange
}

// LoadOp is the type of an attachment's load operation.
type LoadOp int

// Load operations.
const (
	LDontCare LoadOp = iota
	LClear
	LLoad
)

// StoreOp is the type of an attachment's store operation.
type StoreOp int

// Store operations.
const (
	SDontCare StoreOp = iota
	SStore
)

// Attachment describes the configuration of a single
// render target for use in a render pass.
// Load and Store are indexed by aspect: the first element
// applies to color/depth and the second to stencil.
type Attachment struct {
	Format  PixelFmt
	Samples int
	Load    [2]LoadOp
	Store   [2]StoreOp
}

// ClearValue defines clear values for color or depth/stencil
// aspects of a render target.
type ClearValue struct {
	Color   [4]float32
	Depth   float32
	Stencil uint32
}

// Filter is the type of sampler filters.
type Filter int

// Filters.
const (
	FNearest Filter = iota
	FLinear
)

// MipmapMode is the type of sampler mipmap modes.
type MipmapMode int

// Mipmap modes.
const (
	MNearest MipmapMode = iota
	MLinear
)

// QueueFlag is the type of queue family capabilities.
type QueueFlag int

// Queue capabilities.
const (
	QGraphics QueueFlag = 1 << iota
	QCompute
	QTransfer
	QSparse
	QProtected
	QVideoDecode
	QVideoEncode
)

var queueNames = [...]string{
	"Graphics",
	"Compute",
	"Transfer",
	"Sparse",
	"Protected",
	"VideoDecode",
	"VideoEncode",
}

func (q QueueFlag) String() string {
	return flags.String(q, "None", func(b QueueFlag) string {
		if i := bitIndex(int(b)); i < len(queueNames) {
			return queueNames[i]
		}
		return ""
	})
}

// FormatFeature is the type of pixel format features.
type FormatFeature int

// Format features.
const (
	FeatSampled FormatFeature = 1 << iota
	FeatStorage
	FeatStorageAtomic
	FeatUniformTexel
	FeatStorageTexel
	FeatStorageTexelAtomic
	FeatVertexBuf
	FeatColorTarget
	FeatColorBlend
	FeatDSTarget
	FeatBlitSrc
	FeatBlitDst
	FeatLinearFilter
	_
	FeatCopySrc
	FeatCopyDst
)

var featNames = [...]string{
	"Sampled",
	"Storage",
	"StorageAtomic",
	"UniformTexel",
	"StorageTexel",
	"StorageTexelAtomic",
	"VertexBuf",
	"ColorTarget",
	"ColorBlend",
	"DSTarget",
	"BlitSrc",
	"BlitDst",
	"LinearFilter",
	"",
	"CopySrc",
	"CopyDst",
}

func (f FormatFeature) String() string {
	return flags.String(f, "None", func(b FormatFeature) string {
		if i := bitIndex(int(b)); i < len(featNames) {
			return featNames[i]
		}
		return ""
	})
}

// FormatProps describes the features supported by a
// pixel format, per tiling mode and for buffers.
type FormatProps struct {
	Linear  FormatFeature
	Optimal FormatFeature
	Buffer  FormatFeature
}

// Tiling is the type of image tiling modes.
type Tiling int

// Tiling modes.
const (
	TOptimal Tiling = iota
	TLinear
)

// ImageType is the type of image dimensionality.
type ImageType int

// Image types.
const (
	Image1D ImageType = iota
	Image2D
	Image3D
)

// ImageUsage is the type of image usages.
type ImageUsage int

// Image usages.
const (
	UCopySrc ImageUsage = 1 << iota
	UCopyDst
	USampled
	UStorage
	UColorTarget
	UDSTarget
	UTransient
	UInput
)

var usageNames = [...]string{
	"CopySrc",
	"CopyDst",
	"Sampled",
	"Storage",
	"ColorTarget",
	"DSTarget",
	"Transient",
	"Input",
}

func (u ImageUsage) String() string {
	return flags.String(u, "None", func(b ImageUsage) string {
		if i := bitIndex(int(b)); i < len(usageNames) {
			return usageNames[i]
		}
		return ""
	})
}

// ImageInfo describes the parameters of image creation
// that are relevant to capability queries.
type ImageInfo struct {
	Format PixelFmt
	Type   ImageType
	Tiling Tiling
	Usage  ImageUsage
	// Compression is the compression requested for the
	// image.
	Compression CompressionFlag
}

// ColorSpace is the type of presentation color spaces.
type ColorSpace int

// Color spaces.
const (
	SRGBNonlinear ColorSpace = iota
)

// SurfaceFormat pairs a pixel format with the color space
// used to present it.
type SurfaceFormat struct {
	Format     PixelFmt
	ColorSpace ColorSpace
}
