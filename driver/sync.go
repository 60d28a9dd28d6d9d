// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"strconv"

	"github.com/gviegas/transit/internal/flags"
)

// Sync is the type of a synchronization scope
// (i.e., a mask of pipeline stages).
type Sync int

// Synchronization scopes.
const (
	STopOfPipe Sync = 1 << iota
	SDrawIndirect
	SVertexInput
	SVertexShading
	STessControl
	STessEval
	SGeometry
	SFragmentShading
	SEarlyTests
	SLateTests
	SColorOutput
	SComputeShading
	SCopy
	SBottomOfPipe
	SHost
	SAllGraphics
	SAll
	SShadingRate Sync = 1 << 22
	SNone        Sync = 0
)

var syncNames = [...]string{
	"TopOfPipe",
	"DrawIndirect",
	"VertexInput",
	"VertexShading",
	"TessControl",
	"TessEval",
	"Geometry",
	"FragmentShading",
	"EarlyTests",
	"LateTests",
	"ColorOutput",
	"ComputeShading",
	"Copy",
	"BottomOfPipe",
	"Host",
	"AllGraphics",
	"All",
	22: "ShadingRate",
}

func (s Sync) String() string {
	return flags.String(s, "None", func(b Sync) string {
		if i := bitIndex(int(b)); i < len(syncNames) {
			return syncNames[i]
		}
		return ""
	})
}

// Access is the type of a memory access scope.
type Access int

// Memory access scopes.
const (
	AIndirectRead Access = 1 << iota
	AIndexBufRead
	AVertexBufRead
	AUniformRead
	AInputRead
	AShaderRead
	AShaderWrite
	AColorRead
	AColorWrite
	ADSRead
	ADSWrite
	ACopyRead
	ACopyWrite
	AHostRead
	AHostWrite
	AAnyRead
	AAnyWrite
	AShadingRateRead Access = 1 << 23
	ANone            Access = 0
)

var accessNames = [...]string{
	"IndirectRead",
	"IndexBufRead",
	"VertexBufRead",
	"UniformRead",
	"InputRead",
	"ShaderRead",
	"ShaderWrite",
	"ColorRead",
	"ColorWrite",
	"DSRead",
	"DSWrite",
	"CopyRead",
	"CopyWrite",
	"HostRead",
	"HostWrite",
	"AnyRead",
	"AnyWrite",
	23: "ShadingRateRead",
}

func (a Access) String() string {
	return flags.String(a, "None", func(b Access) string {
		if i := bitIndex(int(b)); i < len(accessNames) {
			return accessNames[i]
		}
		return ""
	})
}

// Layout is the type of an image layout.
type Layout int

// Image layouts.
const (
	LUndefined   Layout = 0
	LGeneral     Layout = 1
	LColorTarget Layout = 2
	LShaderRead  Layout = 5
	LCopySrc     Layout = 6
	LCopyDst     Layout = 7
	LPreinit     Layout = 8
	LPresent     Layout = 1000001002
	LShadingRate Layout = 1000164003
	LDepthTarget Layout = 1000241000
)

func (l Layout) String() string {
	switch l {
	case LUndefined:
		return "Undefined"
	case LGeneral:
		return "General"
	case LColorTarget:
		return "ColorTarget"
	case LShaderRead:
		return "ShaderRead"
	case LCopySrc:
		return "CopySrc"
	case LCopyDst:
		return "CopyDst"
	case LPreinit:
		return "Preinit"
	case LPresent:
		return "Present"
	case LShadingRate:
		return "ShadingRate"
	case LDepthTarget:
		return "DepthTarget"
	}
	return "Layout(" + strconv.Itoa(int(l)) + ")"
}

// scope is the synchronization and access scope implied
// by a layout.
type scope struct {
	sync   Sync
	access Access
}

// layoutScopes maps every layout that has an unambiguous
// scope. LGeneral is absent.
// It is not modified after initialization.
var layoutScopes = map[Layout]scope{
	LUndefined:   {STopOfPipe, ANone},
	LPreinit:     {SHost, AHostWrite},
	LCopySrc:     {SCopy, ACopyRead},
	LCopyDst:     {SCopy, ACopyWrite},
	LColorTarget: {SColorOutput, AColorRead | AColorWrite},
	LDepthTarget: {SEarlyTests | SLateTests, ADSRead | ADSWrite},
	LShadingRate: {SShadingRate, AShadingRateRead},
	LShaderRead:  {SVertexShading | SFragmentShading, AShaderRead | AInputRead},
	LPresent:     {SBottomOfPipe, ANone},
}

func scopeOf(l Layout) scope {
	s, ok := layoutScopes[l]
	if !ok {
		if l == LGeneral {
			panic("driver: LGeneral has no implicit scope; use explicit masks")
		}
		panic("driver: unknown layout " + l.String())
	}
	return s
}

// SyncOf returns the synchronization scope that must be
// considered when an image is in layout l.
// It panics if l is LGeneral, since images in the general
// layout may be used by any stage. Barriers on such images
// must specify their scopes explicitly.
func SyncOf(l Layout) Sync { return scopeOf(l).sync }

// AccessOf returns the memory access scope that must be
// considered when an image is in layout l.
// It panics if l is LGeneral.
func AccessOf(l Layout) Access { return scopeOf(l).access }

// BarrierOf returns the Barrier that transitions an image
// from layout before to layout after.
// It panics if either layout is LGeneral.
func BarrierOf(before, after Layout) Barrier {
	b, a := scopeOf(before), scopeOf(after)
	return Barrier{
		SyncBefore:   b.sync,
		SyncAfter:    a.sync,
		AccessBefore: b.access,
		AccessAfter:  a.access,
	}
}
