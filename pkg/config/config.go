// Package config loads render settings from YAML or JSON files and merges
// them with command line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/softrender/pkg/imageio"
	"github.com/taigrr/softrender/pkg/math3d"
	"github.com/taigrr/softrender/pkg/render"
)

// Defaults
const (
	DefaultModel      = "obj/head.obj"
	DefaultOutput     = "output.tga"
	DefaultSize       = 800
	DefaultMode       = "lit"
	DefaultPolygon    = "first"
	DefaultSeed       = 1
	DefaultFrameDelay = 40 * time.Millisecond
)

// Config holds the settings of one render run.
type Config struct {
	Model   string `yaml:"model" json:"model"`
	Output  string `yaml:"output" json:"output"`
	Format  string `yaml:"format" json:"format"` // Empty derives it from Output
	Width   int    `yaml:"width" json:"width"`
	Height  int    `yaml:"height" json:"height"`
	Mode    string `yaml:"mode" json:"mode"`
	Polygon string `yaml:"polygon" json:"polygon"`
	Fit     bool   `yaml:"fit" json:"fit"` // Recenter and rescale the model into [-1, 1]

	// Rotation turns the model about X, Y and Z, in degrees.
	Rotation [3]float64 `yaml:"rotation" json:"rotation"`

	// Light is the light direction; nil means (0, 0, -1).
	Light *[3]float64 `yaml:"light" json:"light"`
	Seed  uint64      `yaml:"seed" json:"seed"`

	// Turntable animation
	Frames       int `yaml:"frames" json:"frames"`
	FrameDelayMS int `yaml:"frame_delay_ms" json:"frame_delay_ms"`
}

// Flags holds CLI flag values that override config file settings.
// Zero values leave the file setting untouched.
type Flags struct {
	Model   string
	Output  string
	Format  string
	Width   int
	Height  int
	Mode    string
	Polygon string
	Fit     bool
	Seed    uint64
	Frames  int
}

// Load reads a config file. Files ending in .json are parsed as JSON,
// everything else as YAML. Fields not set in the file keep their zero
// values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies flag overrides and fills empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Model != "" {
		c.Model = flags.Model
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Polygon != "" {
		c.Polygon = flags.Polygon
	}
	if flags.Fit {
		c.Fit = true
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}

	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Width <= 0 {
		c.Width = DefaultSize
	}
	if c.Height <= 0 {
		c.Height = DefaultSize
	}
	if c.Mode == "" {
		c.Mode = DefaultMode
	}
	if c.Polygon == "" {
		c.Polygon = DefaultPolygon
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
	if c.FrameDelayMS <= 0 {
		c.FrameDelayMS = int(DefaultFrameDelay / time.Millisecond)
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", c.Width, c.Height))
	}
	if _, err := render.ParseRenderMode(c.Mode); err != nil {
		errs = append(errs, err)
	}
	if _, err := render.ParsePolygonMode(c.Polygon); err != nil {
		errs = append(errs, err)
	}
	if c.Frames <= 1 {
		if _, err := c.OutputFormat(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("frames %d must not be negative", c.Frames))
	}
	if c.Light != nil && math3d.V3(c.Light[0], c.Light[1], c.Light[2]).Len() == 0 {
		errs = append(errs, errors.New("light direction must not be zero"))
	}
	return errors.Join(errs...)
}

// RenderMode returns the parsed render mode.
func (c *Config) RenderMode() (render.RenderMode, error) {
	return render.ParseRenderMode(c.Mode)
}

// PolygonMode returns the parsed polygon mode.
func (c *Config) PolygonMode() (render.PolygonMode, error) {
	return render.ParsePolygonMode(c.Polygon)
}

// OutputFormat returns Format if set, otherwise the format implied by the
// output file extension.
func (c *Config) OutputFormat() (imageio.Format, error) {
	if c.Format != "" {
		return imageio.ParseFormat(c.Format)
	}
	return imageio.FormatFromPath(c.Output)
}

// LightDir returns the normalized light direction.
func (c *Config) LightDir() math3d.Vec3 {
	if c.Light == nil {
		return render.DefaultLight
	}
	return math3d.V3(c.Light[0], c.Light[1], c.Light[2]).Normalize()
}

// FrameDelay returns the per-frame delay of the turntable animation.
func (c *Config) FrameDelay() time.Duration {
	return time.Duration(c.FrameDelayMS) * time.Millisecond
}

// Orientation returns the model rotation matrix, composed as
// RotateX * RotateY * RotateZ. Axes with a zero angle are left out.
func (c *Config) Orientation() math3d.Mat4 {
	rotations := [3]func(float64) math3d.Mat4{math3d.RotateX, math3d.RotateY, math3d.RotateZ}
	m := math3d.Identity()
	for i, deg := range c.Rotation {
		if deg != 0 {
			m = m.Mul(rotations[i](deg * math.Pi / 180))
		}
	}
	return m
}
