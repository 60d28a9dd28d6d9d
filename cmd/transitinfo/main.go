// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Transitinfo opens a driver and prints the formats and
// queue families that Setup selects for it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gviegas/transit"
	_ "github.com/gviegas/transit/driver/vk"
)

type options struct {
	driver      string
	shading     string
	compression bool
	depthOnly   bool
	verbose     bool
}

func newFlagSet(o *options, h flag.ErrorHandling) *flag.FlagSet {
	fs := flag.NewFlagSet("transitinfo", h)
	fs.StringVar(&o.driver, "driver", "", "name of the driver to load")
	fs.StringVar(&o.shading, "shading", "", "shading language (glsl, hlsl or slang)")
	fs.BoolVar(&o.compression, "compression", true, "allow fixed-rate compression")
	fs.BoolVar(&o.depthOnly, "depth-only", false, "select a depth format with no stencil")
	fs.BoolVar(&o.verbose, "v", false, "log debug messages")
	return fs
}

func main() {
	var o options
	fs := newFlagSet(&o, flag.ExitOnError)
	fs.Parse(os.Args[1:])

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	transit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(fs, &o); err != nil {
		fmt.Fprintf(os.Stderr, "transitinfo: %+v\n", err)
		os.Exit(1)
	}
}

func run(fs *flag.FlagSet, o *options) error {
	cfg, err := transit.ConfigFromEnv()
	if err != nil {
		return err
	}
	if err = applyFlags(fs, o, cfg); err != nil {
		return err
	}

	drv, gpu, err := transit.LoadDriver(o.driver)
	if err != nil {
		return err
	}
	defer drv.Close()

	p, err := transit.Setup(gpu, nil, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("driver:          %s\n", drv.Name())
	fmt.Printf("shaders:         %s\n", cfg.ShaderDir())
	fmt.Printf("depth:           %v\n", p.Depth)
	fmt.Printf("blendable:       %v\n", p.Blendable)
	fmt.Printf("graphics queue:  %d\n", p.Graphics)
	fmt.Printf("compute queue:   %d\n", p.Compute)
	fmt.Printf("transfer queue:  %d\n", p.Transfer)
	fmt.Printf("swapchain usage: %v\n", p.SwapchainUsage)
	return nil
}

// applyFlags updates cfg with the flags that were set on
// the command line. Flags left unset do not override the
// environment.
func applyFlags(fs *flag.FlagSet, o *options, cfg *transit.Config) (err error) {
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "shading":
			cfg.Shading, err = transit.ParseShadingLang(o.shading)
		case "compression":
			cfg.Compression = o.compression
		case "depth-only":
			cfg.DepthOnly = o.depthOnly
		}
	})
	return
}
