// Package viewconfig loads the shaderview TOML configuration.
package viewconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/learnopengl/shaders"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Window   WindowConfig   `toml:"window"`
	Shader   ShaderConfig   `toml:"shader"`
	Uniforms UniformsConfig `toml:"uniforms"`
}

type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
	VSync     bool   `toml:"vsync"`
	Resizable bool   `toml:"resizable"`
}

type ShaderConfig struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
}

// UniformsConfig holds values uploaded once after the program is built
type UniformsConfig struct {
	Bools  map[string]bool       `toml:"bools"`
	Ints   map[string]int32      `toml:"ints"`
	Floats map[string]float32    `toml:"floats"`
	Vec2s  map[string][2]float32 `toml:"vec2s"`
	Vec3s  map[string][3]float32 `toml:"vec3s"`
	Vec4s  map[string][4]float32 `toml:"vec4s"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:     "shaderview",
			Width:     1280,
			Height:    720,
			VSync:     true,
			Resizable: true,
		},
		Shader: ShaderConfig{
			Vertex:   "./res/shaders/screen_quad.vert.glsl",
			Fragment: "./res/shaders/plasma.frag.glsl",
		},
	}
}

// Load reads the config at path on top of Default. Unknown keys are an error.
// Relative shader paths are resolved against the directory of the config file.
func Load(path string) (Config, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config '%s'. Err: %w", path, err)
	}

	dir := filepath.Dir(path)
	if !filepath.IsAbs(cfg.Shader.Vertex) {
		cfg.Shader.Vertex = filepath.Join(dir, cfg.Shader.Vertex)
	}

	if !filepath.IsAbs(cfg.Shader.Fragment) {
		cfg.Shader.Fragment = filepath.Join(dir, cfg.Shader.Fragment)
	}

	return cfg, nil
}

func Parse(data []byte) (Config, error) {

	cfg := Default()

	d := toml.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()
	if err := d.Decode(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {

	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive but got %dx%d", c.Window.Width, c.Window.Height))
	}

	if c.Shader.Vertex == "" {
		errs = append(errs, errors.New("shader.vertex must be set"))
	}

	if c.Shader.Fragment == "" {
		errs = append(errs, errors.New("shader.fragment must be set"))
	}

	return errors.Join(errs...)
}

// Apply uploads every configured uniform to sp. Names the program doesn't have are ignored.
func (u *UniformsConfig) Apply(sp *shaders.ShaderProgram) {

	for name, v := range u.Bools {
		sp.SetBool(name, v)
	}

	for name, v := range u.Ints {
		sp.SetInt(name, v)
	}

	for name, v := range u.Floats {
		sp.SetFloat(name, v)
	}

	for name, v := range u.Vec2s {
		vec := gglm.Vec2{Data: v}
		sp.SetVec2(name, &vec)
	}

	for name, v := range u.Vec3s {
		vec := gglm.Vec3{Data: v}
		sp.SetVec3(name, &vec)
	}

	for name, v := range u.Vec4s {
		vec := gglm.Vec4{Data: v}
		sp.SetVec4(name, &vec)
	}
}
