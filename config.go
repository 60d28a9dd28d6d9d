// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package transit

import (
	"os"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gviegas/transit/caps"
	"github.com/gviegas/transit/driver"
)

// ShadingLang is the type of shading languages.
type ShadingLang int

// Shading languages.
const (
	GLSL ShadingLang = iota
	HLSL
	Slang
)

func (s ShadingLang) String() string {
	switch s {
	case GLSL:
		return "glsl"
	case HLSL:
		return "hlsl"
	case Slang:
		return "slang"
	}
	return "ShadingLang(" + strconv.Itoa(int(s)) + ")"
}

// ParseShadingLang parses the name of a shading language.
// It is case insensitive.
func ParseShadingLang(s string) (ShadingLang, error) {
	switch strings.ToLower(s) {
	case "glsl":
		return GLSL, nil
	case "hlsl":
		return HLSL, nil
	case "slang":
		return Slang, nil
	}
	return 0, errors.Errorf("transit: unknown shading language %q", s)
}

// Config is the configuration of Setup.
// It is set once during startup and must not be modified
// after being passed to Setup.
type Config struct {
	// Shading is the language of the shaders.
	Shading ShadingLang
	// ShaderRoot is the directory that contains one
	// subdirectory per shading language.
	ShaderRoot string

	// DepthOnly restricts depth format selection to
	// formats with no stencil component.
	DepthOnly bool
	// DepthFormats, BlendableFormats and SurfaceFormats
	// are ordered by preference.
	// SurfaceFormats only determines which formats are
	// acceptable. The order that the driver reports
	// surface formats takes precedence.
	DepthFormats     []driver.PixelFmt
	BlendableFormats []driver.PixelFmt
	SurfaceFormats   []driver.PixelFmt

	// Compression enables fixed-rate compression of
	// swapchain images.
	Compression bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Shading:          GLSL,
		ShaderRoot:       "shaders",
		DepthFormats:     slices.Clone(caps.DefaultDepthFormats),
		BlendableFormats: slices.Clone(caps.DefaultBlendableFormats),
		SurfaceFormats:   slices.Clone(caps.DefaultSurfaceFormats),
		Compression:      true,
	}
}

// Environment variables read by ConfigFromEnv.
const (
	EnvShading     = "TRANSIT_SHADING"
	EnvCompression = "TRANSIT_COMPRESSION"
)

// ConfigFromEnv returns DefaultConfig updated with the
// values of environment variables, if set.
// TRANSIT_SHADING names a shading language and
// TRANSIT_COMPRESSION is a boolean.
func ConfigFromEnv() (*Config, error) {
	cfg := DefaultConfig()
	if s, ok := os.LookupEnv(EnvShading); ok {
		lang, err := ParseShadingLang(s)
		if err != nil {
			return nil, errors.Wrap(err, EnvShading)
		}
		cfg.Shading = lang
	}
	if s, ok := os.LookupEnv(EnvCompression); ok {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, errors.Wrap(err, EnvCompression)
		}
		cfg.Compression = b
	}
	return cfg, cfg.Validate()
}

// Validate checks that cfg can be used by Setup.
func (cfg *Config) Validate() error {
	switch cfg.Shading {
	case GLSL, HLSL, Slang:
	default:
		return errors.Errorf("transit: invalid shading language %v", cfg.Shading)
	}
	if len(cfg.DepthFormats) == 0 {
		return errors.New("transit: empty depth format list")
	}
	for _, pf := range cfg.DepthFormats {
		if !pf.IsDepth() {
			return errors.Errorf("transit: %v is not a depth format", pf)
		}
	}
	if cfg.DepthOnly && !slices.ContainsFunc(cfg.DepthFormats, driver.PixelFmt.IsDepthOnly) {
		return errors.New("transit: no depth-only format in depth format list")
	}
	if len(cfg.BlendableFormats) == 0 {
		return errors.New("transit: empty blendable format list")
	}
	for _, pf := range cfg.BlendableFormats {
		if pf.IsDepth() || pf.BitsPerPixel() < 0 {
			return errors.Errorf("transit: %v is not a color format", pf)
		}
	}
	return nil
}

// ShaderDir returns the path of the directory that
// contains shaders for the configured language.
func (cfg *Config) ShaderDir() string {
	return path.Join(cfg.ShaderRoot, cfg.Shading.String())
}

// ShaderPath returns the path of a shader file.
func (cfg *Config) ShaderPath(name string) string {
	return path.Join(cfg.ShaderDir(), name)
}
