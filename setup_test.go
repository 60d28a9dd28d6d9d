// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package transit

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gviegas/transit/driver"
	"github.com/gviegas/transit/driver/drivertest"
)

func newGPU() *drivertest.GPU {
	return &drivertest.GPU{
		Props: map[driver.PixelFmt]driver.FormatProps{
			driver.D24unS8ui: {Optimal: driver.FeatDSTarget},
			driver.D16un:     {Optimal: driver.FeatDSTarget},
			driver.RGBA16f:   {Optimal: driver.FeatColorTarget | driver.FeatColorBlend},
		},
		Families: []driver.QueueFlag{
			driver.QGraphics | driver.QCompute | driver.QTransfer,
			driver.QCompute | driver.QTransfer,
			driver.QTransfer | driver.QSparse,
		},
		Surface: []driver.SurfaceFormat{
			{Format: driver.RGBA16f},
			{Format: driver.BGRA8sRGB},
			{Format: driver.RGBA8sRGB},
		},
		Compress: map[driver.PixelFmt]driver.Compression{
			driver.BGRA8sRGB: {Flags: driver.CompressFixedRateDefault, FixedRate: driver.Rate2BPC},
		},
	}
}

func TestSetup(t *testing.T) {
	gpu := newGPU()
	p, err := Setup(gpu, &drivertest.Surface{}, nil)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	want := Profile{
		Depth:          driver.D24unS8ui,
		Blendable:      driver.RGBA16f,
		Surface:        driver.SurfaceFormat{Format: driver.BGRA8sRGB},
		Graphics:       0,
		Compute:        1,
		Transfer:       2,
		SwapchainUsage: driver.UColorTarget,
		Compression:    driver.Compression{Flags: driver.CompressFixedRateDefault, FixedRate: driver.Rate2BPC},
	}
	if *p != want {
		t.Fatalf("Setup:\nhave %+v\nwant %+v", *p, want)
	}

	cfg := DefaultConfig()
	cfg.DepthOnly = true
	cfg.Compression = false
	if p, err = Setup(gpu, nil, cfg); err != nil {
		t.Fatalf("Setup (no surface): %v", err)
	}
	if p.Depth != driver.D16un {
		t.Fatalf("Setup (depth only).Depth:\nhave %v\nwant %v", p.Depth, driver.D16un)
	}
	if p.Surface != (driver.SurfaceFormat{}) || p.Compression != (driver.Compression{}) {
		t.Fatalf("Setup (no surface):\nhave %+v, %+v\nwant zero values", p.Surface, p.Compression)
	}
	if p.SwapchainUsage != driver.UColorTarget|driver.UStorage {
		t.Fatalf("Setup (no compression).SwapchainUsage:\nhave %v\nwant %v", p.SwapchainUsage, driver.UColorTarget|driver.UStorage)
	}

	gpu.Compress = nil
	if p, err = Setup(gpu, &drivertest.Surface{}, nil); err != nil {
		t.Fatalf("Setup (compression query not supported): %v", err)
	}
	if p.Compression != (driver.Compression{}) {
		t.Fatalf("Setup (compression query not supported).Compression:\nhave %v\nwant zero value", p.Compression)
	}
}

func TestSetupTransferFallback(t *testing.T) {
	for _, x := range [...]struct {
		fams     []driver.QueueFlag
		graphics int
		compute  int
	}{
		{[]driver.QueueFlag{driver.QGraphics | driver.QCompute}, 0, 0},
		{[]driver.QueueFlag{driver.QCompute, driver.QGraphics}, 1, 0},
		{[]driver.QueueFlag{driver.QSparse, driver.QGraphics | driver.QCompute, driver.QCompute}, 1, 2},
	} {
		gpu := newGPU()
		gpu.Families = x.fams
		p, err := Setup(gpu, nil, nil)
		if err != nil {
			t.Fatalf("Setup (%v): %v", x.fams, err)
		}
		if p.Graphics != x.graphics || p.Compute != x.compute || p.Transfer != x.graphics {
			t.Fatalf("Setup (%v): queues\nhave %d, %d, %d\nwant %d, %d, %d", x.fams,
				p.Graphics, p.Compute, p.Transfer, x.graphics, x.compute, x.graphics)
		}
	}
}

func TestSetupErrors(t *testing.T) {
	for _, x := range [...]struct {
		name   string
		edit   func(*drivertest.GPU, *Config)
		substr string
		config bool
	}{
		{"depth", func(g *drivertest.GPU, c *Config) {
			c.DepthFormats = []driver.PixelFmt{driver.D32f}
		}, "depth format", true},
		{"blendable", func(g *drivertest.GPU, c *Config) {
			delete(g.Props, driver.RGBA16f)
		}, "blendable format", true},
		{"graphics", func(g *drivertest.GPU, c *Config) {
			g.Families = []driver.QueueFlag{driver.QCompute}
		}, "Graphics queue", true},
		{"compute", func(g *drivertest.GPU, c *Config) {
			g.Families = []driver.QueueFlag{driver.QGraphics, driver.QTransfer}
		}, "Compute queue", true},
		{"surface", func(g *drivertest.GPU, c *Config) {
			g.Surface = nil
		}, "presentation", false},
		{"config", func(g *drivertest.GPU, c *Config) {
			c.BlendableFormats = nil
		}, "blendable format list", false},
	} {
		gpu := newGPU()
		cfg := DefaultConfig()
		x.edit(gpu, cfg)
		p, err := Setup(gpu, &drivertest.Surface{}, cfg)
		if p != nil || err == nil {
			t.Fatalf("Setup (%s):\nhave %v, %v\nwant nil, error", x.name, p, err)
		}
		if !strings.Contains(err.Error(), x.substr) {
			t.Fatalf("Setup (%s): error should name the requirement\nhave %q\nwant substring %q", x.name, err, x.substr)
		}
		var ce *driver.ConfigError
		if errors.As(err, &ce) != x.config {
			t.Fatalf("Setup (%s): errors.As(*driver.ConfigError)\nhave %t\nwant %t", x.name, !x.config, x.config)
		}
	}
}

func TestSetupLogs(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)
	if _, err := Setup(newGPU(), &drivertest.Surface{}, nil); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	for _, s := range [...]string{
		"depth format selected",
		"format=D24unS8ui",
		"blendable format selected",
		"surface format selected",
		"dedicated compute queue family",
		"setup complete",
	} {
		if !strings.Contains(buf.String(), s) {
			t.Fatalf("Setup: log should contain %q\nhave\n%s", s, buf.String())
		}
	}
}

func TestLoadDriver(t *testing.T) {
	gpu := newGPU()
	driver.Register(&drivertest.Driver{N: "transit-test", G: gpu})
	driver.Register(&drivertest.Driver{N: "transit-broken"})

	drv, u, err := LoadDriver("TRANSIT-TEST")
	if err != nil || drv.Name() != "transit-test" || u != driver.GPU(gpu) {
		t.Fatalf("LoadDriver(\"TRANSIT-TEST\"):\nhave %v, %v, %v\nwant transit-test, %v, nil", drv, u, err, gpu)
	}
	if gpu.Driver() != drv {
		t.Fatalf("GPU.Driver():\nhave %v\nwant %v", gpu.Driver(), drv)
	}
	if _, _, err = LoadDriver("transit-broken"); !errors.Is(err, driver.ErrNoDevice) {
		t.Fatalf("LoadDriver(\"transit-broken\"):\nhave %v\nwant %v", err, driver.ErrNoDevice)
	}
	if _, _, err = LoadDriver("no such driver"); !errors.Is(err, errNoDriver) {
		t.Fatalf("LoadDriver(\"no such driver\"):\nhave %v\nwant %v", err, errNoDriver)
	}
}
