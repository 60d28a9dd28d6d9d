// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package transit

import (
	"testing"

	"github.com/gviegas/transit/driver"
)

func TestShadingLang(t *testing.T) {
	for _, x := range [...]struct {
		s    string
		lang ShadingLang
		dir  string
	}{
		{"glsl", GLSL, "shaders/glsl"},
		{"HLSL", HLSL, "shaders/hlsl"},
		{"Slang", Slang, "shaders/slang"},
	} {
		lang, err := ParseShadingLang(x.s)
		if err != nil || lang != x.lang {
			t.Fatalf("ParseShadingLang(%q):\nhave %v, %v\nwant %v, nil", x.s, lang, err, x.lang)
		}
		cfg := DefaultConfig()
		cfg.Shading = lang
		if have := cfg.ShaderDir(); have != x.dir {
			t.Fatalf("Config.ShaderDir():\nhave %s\nwant %s", have, x.dir)
		}
		if have, want := cfg.ShaderPath("gbuffer.frag"), x.dir+"/gbuffer.frag"; have != want {
			t.Fatalf("Config.ShaderPath():\nhave %s\nwant %s", have, want)
		}
	}
	if _, err := ParseShadingLang("msl"); err == nil {
		t.Fatal("ParseShadingLang(\"msl\"): should have failed")
	}
	if s := ShadingLang(7).String(); s != "ShadingLang(7)" {
		t.Fatalf("ShadingLang(7).String():\nhave %s\nwant ShadingLang(7)", s)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate(): %v", err)
	}
	if cfg.Shading != GLSL || !cfg.Compression {
		t.Fatalf("DefaultConfig():\nhave %+v", cfg)
	}
	cfg.DepthFormats[0] = driver.D16un
	if DefaultConfig().DepthFormats[0] == driver.D16un {
		t.Fatal("DefaultConfig: format lists must not be shared")
	}
}

func TestValidate(t *testing.T) {
	for _, x := range [...]struct {
		name string
		edit func(*Config)
	}{
		{"invalid shading", func(c *Config) { c.Shading = -1 }},
		{"no depth formats", func(c *Config) { c.DepthFormats = nil }},
		{"color depth format", func(c *Config) { c.DepthFormats = []driver.PixelFmt{driver.RGBA8un} }},
		{"stencil-only depth format", func(c *Config) { c.DepthFormats = []driver.PixelFmt{driver.S8ui} }},
		{"no depth-only format", func(c *Config) {
			c.DepthOnly = true
			c.DepthFormats = []driver.PixelFmt{driver.D24unS8ui}
		}},
		{"no blendable formats", func(c *Config) { c.BlendableFormats = []driver.PixelFmt{} }},
		{"depth blendable format", func(c *Config) { c.BlendableFormats = []driver.PixelFmt{driver.D32f} }},
		{"undefined blendable format", func(c *Config) { c.BlendableFormats = []driver.PixelFmt{driver.FUndefined} }},
	} {
		cfg := DefaultConfig()
		x.edit(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("Config.Validate (%s): should have failed", x.name)
		}
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvShading, "hlsl")
	t.Setenv(EnvCompression, "false")
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Shading != HLSL || cfg.Compression {
		t.Fatalf("ConfigFromEnv:\nhave %v, %t\nwant %v, false", cfg.Shading, cfg.Compression, HLSL)
	}

	t.Setenv(EnvShading, "spirv")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatalf("ConfigFromEnv (%s=spirv): should have failed", EnvShading)
	}
	t.Setenv(EnvShading, "slang")
	t.Setenv(EnvCompression, "maybe")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatalf("ConfigFromEnv (%s=maybe): should have failed", EnvCompression)
	}
}
