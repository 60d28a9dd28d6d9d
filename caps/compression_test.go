// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package caps

import (
	"errors"
	"testing"

	"github.com/gviegas/transit/driver"
	"github.com/gviegas/transit/driver/drivertest"
)

// noCompression is a driver.GPU that does not implement
// driver.CompressionQuerier.
type noCompression struct{ driver.GPU }

func TestSupportedCompression(t *testing.T) {
	gpu := newGPU()
	gpu.Compress = map[driver.PixelFmt]driver.Compression{
		driver.RGBA8un: {Flags: driver.CompressFixedRateDefault, FixedRate: driver.Rate2BPC | driver.Rate4BPC},
	}
	for _, x := range [...]struct {
		info driver.ImageInfo
		want driver.Compression
	}{
		{
			driver.ImageInfo{Format: driver.RGBA8un, Type: driver.Image2D, Usage: driver.UColorTarget},
			driver.Compression{Flags: driver.CompressFixedRateDefault, FixedRate: driver.Rate2BPC | driver.Rate4BPC},
		},
		{
			driver.ImageInfo{Format: driver.RGBA8un, Type: driver.Image2D, Usage: SwapchainUsage(false)},
			driver.Compression{Flags: driver.CompressDisabled},
		},
		{
			driver.ImageInfo{Format: driver.RGBA16f, Type: driver.Image2D, Usage: driver.UColorTarget},
			driver.Compression{},
		},
	} {
		have, err := SupportedCompression(gpu, &x.info)
		if err != nil || have != x.want {
			t.Fatalf("SupportedCompression(%+v):\nhave %v, %v\nwant %v, nil", x.info, have, err, x.want)
		}
	}

	info := driver.ImageInfo{Format: driver.RGBA8un}
	if _, err := SupportedCompression(noCompression{gpu}, &info); !errors.Is(err, driver.ErrNotSupported) {
		t.Fatalf("SupportedCompression (no querier):\nhave %v\nwant %v", err, driver.ErrNotSupported)
	}
	gpu.Compress = nil
	if _, err := SupportedCompression(gpu, &info); !errors.Is(err, driver.ErrNotSupported) {
		t.Fatalf("SupportedCompression (failed query):\nhave %v\nwant %v", err, driver.ErrNotSupported)
	}
}

func TestAppliedCompression(t *testing.T) {
	gpu := newGPU()
	gpu.Compress = map[driver.PixelFmt]driver.Compression{}
	img := &drivertest.Image{
		Fmt:         driver.BGRA8sRGB,
		Compression: driver.Compression{Flags: driver.CompressFixedRateExplicit, FixedRate: driver.Rate5BPC},
	}
	have, err := AppliedCompression(gpu, img)
	if err != nil || have != img.Compression {
		t.Fatalf("AppliedCompression:\nhave %v, %v\nwant %v, nil", have, err, img.Compression)
	}
	if s := have.FixedRate.String(); s != "5BPC" {
		t.Fatalf("FixedRate.String():\nhave %s\nwant 5BPC", s)
	}
	if _, err := AppliedCompression(noCompression{gpu}, img); !errors.Is(err, driver.ErrNotSupported) {
		t.Fatalf("AppliedCompression (no querier):\nhave %v\nwant %v", err, driver.ErrNotSupported)
	}
}

func TestSwapchainUsage(t *testing.T) {
	if have, want := SwapchainUsage(true), driver.UColorTarget; have != want {
		t.Fatalf("SwapchainUsage(true):\nhave %v\nwant %v", have, want)
	}
	if have, want := SwapchainUsage(false), driver.UColorTarget|driver.UStorage; have != want {
		t.Fatalf("SwapchainUsage(false):\nhave %v\nwant %v", have, want)
	}
}
