// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"math/bits"
	"strconv"
)

// PixelFmt describes the format of a pixel.
// Values match the native format enumerants, so that
// backends can convert by cast.
// Only uncompressed formats are enumerated.
type PixelFmt int

// Pixel formats.
//
// Suffixes describe the numeric type of the channels:
// un/n are unsigned/signed normalized, us/ss are
// unsigned/signed scaled, ui/i are unsigned/signed
// integers, f is floating-point and sRGB is unsigned
// normalized with sRGB nonlinear encoding. PackN
// indicates that all channels are packed in a single
// N-bit word.
const (
	FUndefined PixelFmt = iota
	// Packed.
	RG4unPack8
	RGBA4unPack16
	BGRA4unPack16
	R5G6B5unPack16
	B5G6R5unPack16
	RGB5A1unPack16
	BGR5A1unPack16
	A1RGB5unPack16
	// 8-bit channels.
	R8un
	R8n
	R8us
	R8ss
	R8ui
	R8i
	R8sRGB
	RG8un
	RG8n
	RG8us
	RG8ss
	RG8ui
	RG8i
	RG8sRGB
	RGB8un
	RGB8n
	RGB8us
	RGB8ss
	RGB8ui
	RGB8i
	RGB8sRGB
	BGR8un
	BGR8n
	BGR8us
	BGR8ss
	BGR8ui
	BGR8i
	BGR8sRGB
	RGBA8un
	RGBA8n
	RGBA8us
	RGBA8ss
	RGBA8ui
	RGBA8i
	RGBA8sRGB
	BGRA8un
	BGRA8n
	BGRA8us
	BGRA8ss
	BGRA8ui
	BGRA8i
	BGRA8sRGB
	ABGR8unPack32
	ABGR8nPack32
	ABGR8usPack32
	ABGR8ssPack32
	ABGR8uiPack32
	ABGR8iPack32
	ABGR8sRGBPack32
	// 10-bit channels.
	A2RGB10unPack32
	A2RGB10nPack32
	A2RGB10usPack32
	A2RGB10ssPack32
	A2RGB10uiPack32
	A2RGB10iPack32
	A2BGR10unPack32
	A2BGR10nPack32
	A2BGR10usPack32
	A2BGR10ssPack32
	A2BGR10uiPack32
	A2BGR10iPack32
	// 16-bit channels.
	R16un
	R16n
	R16us
	R16ss
	R16ui
	R16i
	R16f
	RG16un
	RG16n
	RG16us
	RG16ss
	RG16ui
	RG16i
	RG16f
	RGB16un
	RGB16n
	RGB16us
	RGB16ss
	RGB16ui
	RGB16i
	RGB16f
	RGBA16un
	RGBA16n
	RGBA16us
	RGBA16ss
	RGBA16ui
	RGBA16i
	RGBA16f
	// 32-bit channels.
	R32ui
	R32i
	R32f
	RG32ui
	RG32i
	RG32f
	RGB32ui
	RGB32i
	RGB32f
	RGBA32ui
	RGBA32i
	RGBA32f
	// 64-bit channels.
	R64ui
	R64i
	R64f
	RG64ui
	RG64i
	RG64f
	RGB64ui
	RGB64i
	RGB64f
	RGBA64ui
	RGBA64i
	RGBA64f
	// Shared exponent/unsigned float.
	B10G11R11ufPack32
	E5BGR9ufPack32
	// Depth/Stencil.
	D16un
	X8D24unPack32
	D32f
	S8ui
	D16unS8ui
	D24unS8ui
	D32fS8ui
)

// IsDepthOnly returns whether f is a depth format with no
// stencil component.
func (f PixelFmt) IsDepthOnly() bool {
	switch f {
	case D16un, D32f:
		return true
	}
	return false
}

// IsDepthStencil returns whether f is a combined
// depth/stencil format.
func (f PixelFmt) IsDepthStencil() bool {
	switch f {
	case D16unS8ui, D24unS8ui, D32fS8ui:
		return true
	}
	return false
}

// IsDepth returns whether f has a depth component.
func (f PixelFmt) IsDepth() bool { return f.IsDepthOnly() || f.IsDepthStencil() }

// BitsPerPixel returns the size in bits of a single pixel
// of format f.
// It returns -1 if f is FUndefined or not a known format.
func (f PixelFmt) BitsPerPixel() int {
	if f <= FUndefined || int(f) >= len(bppTable) {
		return -1
	}
	return int(bppTable[f])
}

func (f PixelFmt) String() string {
	if f >= FUndefined && int(f) < len(fmtNames) {
		return fmtNames[f]
	}
	return "PixelFmt(" + strconv.Itoa(int(f)) + ")"
}

// bppTable maps every PixelFmt to its size in bits.
// Zero means unknown.
var bppTable [D32fS8ui + 1]int16

func init() {
	for _, r := range [...]struct {
		first, last PixelFmt
		bits        int16
	}{
	{RG4unPack8, RG4unPack8, 8},
	{RGBA4unPack16, A1RGB5unPack16, 16},
	{R8un, R8sRGB, 8},
	{RG8un, RG8sRGB, 16},
	{RGB8un, BGR8sRGB, 24},
	{RGBA8un, ABGR8sRGBPack32, 32},
	{A2RGB10unPack32, A2BGR10iPack32, 32},
	{R16un, R16f, 16},
	{RG16un, RG16f, 32},
	{RGB16un, RGB16f, 48},
	{RGBA16un, RGBA16f, 64},
	{R32ui, R32f, 32},
	{RG32ui, RG32f, 64},
	{RGB32ui, RGB32f, 96},
	{RGBA32ui, RGBA32f, 128},
	{R64ui, R64f, 64},
	{RG64ui, RG64f, 128},
	{RGB64ui, RGB64f, 192},
	{RGBA64ui, RGBA64f, 256},
	{B10G11R11ufPack32, E5BGR9ufPack32, 32},
	{D16un, D16un, 16},
	{X8D24unPack32, X8D24unPack32, 32},
	{D32f, D32f, 32},
	{S8ui, S8ui, 8},
	{D16unS8ui, D16unS8ui, 24},
	{D24unS8ui, D24unS8ui, 32},
	{D32fS8ui, D32fS8ui, 40},
	} {
		for f := r.first; f <= r.last; f++ {
			bppTable[f] = r.bits
		}
	}
}

var fmtNames = [...]string{
	"Undefined",
	"RG4unPack8",
	"RGBA4unPack16",
	"BGRA4unPack16",
	"R5G6B5unPack16",
	"B5G6R5unPack16",
	"RGB5A1unPack16",
	"BGR5A1unPack16",
	"A1RGB5unPack16",
	"R8un",
	"R8n",
	"R8us",
	"R8ss",
	"R8ui",
	"R8i",
	"R8sRGB",
	"RG8un",
	"RG8n",
	"RG8us",
	"RG8ss",
	"RG8ui",
	"RG8i",
	"RG8sRGB",
	"RGB8un",
	"RGB8n",
	"RGB8us",
	"RGB8ss",
	"RGB8ui",
	"RGB8i",
	"RGB8sRGB",
	"BGR8un",
	"BGR8n",
	"BGR8us",
	"BGR8ss",
	"BGR8ui",
	"BGR8i",
	"BGR8sRGB",
	"RGBA8un",
	"RGBA8n",
	"RGBA8us",
	"RGBA8ss",
	"RGBA8ui",
	"RGBA8i",
	"RGBA8sRGB",
	"BGRA8un",
	"BGRA8n",
	"BGRA8us",
	"BGRA8ss",
	"BGRA8ui",
	"BGRA8i",
	"BGRA8sRGB",
	"ABGR8unPack32",
	"ABGR8nPack32",
	"ABGR8usPack32",
	"ABGR8ssPack32",
	"ABGR8uiPack32",
	"ABGR8iPack32",
	"ABGR8sRGBPack32",
	"A2RGB10unPack32",
	"A2RGB10nPack32",
	"A2RGB10usPack32",
	"A2RGB10ssPack32",
	"A2RGB10uiPack32",
	"A2RGB10iPack32",
	"A2BGR10unPack32",
	"A2BGR10nPack32",
	"A2BGR10usPack32",
	"A2BGR10ssPack32",
	"A2BGR10uiPack32",
	"A2BGR10iPack32",
	"R16un",
	"R16n",
	"R16us",
	"R16ss",
	"R16ui",
	"R16i",
	"R16f",
	"RG16un",
	"RG16n",
	"RG16us",
	"RG16ss",
	"RG16ui",
	"RG16i",
	"RG16f",
	"RGB16un",
	"RGB16n",
	"RGB16us",
	"RGB16ss",
	"RGB16ui",
	"RGB16i",
	"RGB16f",
	"RGBA16un",
	"RGBA16n",
	"RGBA16us",
	"RGBA16ss",
	"RGBA16ui",
	"RGBA16i",
	"RGBA16f",
	"R32ui",
	"R32i",
	"R32f",
	"RG32ui",
	"RG32i",
	"RG32f",
	"RGB32ui",
	"RGB32i",
	"RGB32f",
	"RGBA32ui",
	"RGBA32i",
	"RGBA32f",
	"R64ui",
	"R64i",
	"R64f",
	"RG64ui",
	"RG64i",
	"RG64f",
	"RGB64ui",
	"RGB64i",
	"RGB64f",
	"RGBA64ui",
	"RGBA64i",
	"RGBA64f",
	"B10G11R11ufPack32",
	"E5BGR9ufPack32",
	"D16un",
	"X8D24unPack32",
	"D32f",
	"S8ui",
	"D16unS8ui",
	"D24unS8ui",
	"D32fS8ui",
}

// bitIndex returns the index of the least significant
// bit set in b.
func bitIndex(b int) int { return bits.TrailingZeros(uint(b)) }
