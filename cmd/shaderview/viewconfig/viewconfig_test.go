package viewconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bloeys/learnopengl/cmd/shaderview/viewconfig"
	"github.com/bloeys/learnopengl/glctx/glctxtest"
	"github.com/bloeys/learnopengl/shaders"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[window]
title = "test"
width = 640
height = 480
vsync = false

[shader]
vertex = "shaders/a.vert"
fragment = "/abs/b.frag"

[uniforms.floats]
time = 1.5

[uniforms.bools]
useTint = true

[uniforms.ints]
mode = 3

[uniforms.vec2s]
resolution = [640.0, 480.0]

[uniforms.vec3s]
tint = [1.0, 0.5, 0.25]

[uniforms.vec4s]
baseColor = [1.0, 0.0, 0.0, 1.0]
`

func TestParse(t *testing.T) {

	cfg, err := viewconfig.Parse([]byte(testConfig))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Window.Title)
	assert.Equal(t, int32(640), cfg.Window.Width)
	assert.Equal(t, int32(480), cfg.Window.Height)
	assert.False(t, cfg.Window.VSync)
	// Not in the file so the default stays
	assert.True(t, cfg.Window.Resizable)

	assert.Equal(t, float32(1.5), cfg.Uniforms.Floats["time"])
	assert.Equal(t, [3]float32{1, 0.5, 0.25}, cfg.Uniforms.Vec3s["tint"])
}

func TestParseDefaults(t *testing.T) {
	cfg, err := viewconfig.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, viewconfig.Default(), cfg)
}

func TestParseRejectsBadConfigs(t *testing.T) {

	_, err := viewconfig.Parse([]byte("[window]\nwidht = 3\n"))
	var strictErr *toml.StrictMissingError
	assert.ErrorAs(t, err, &strictErr)

	_, err = viewconfig.Parse([]byte("[window]\nwidth = 0\n"))
	assert.ErrorContains(t, err, "window size must be positive")

	_, err = viewconfig.Parse([]byte("[shader]\nvertex = \"\"\nfragment = \"\"\n"))
	assert.ErrorContains(t, err, "shader.vertex must be set")
	assert.ErrorContains(t, err, "shader.fragment must be set")
}

func TestLoadResolvesRelativeShaderPaths(t *testing.T) {

	dir := t.TempDir()
	path := filepath.Join(dir, "shaderview.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	cfg, err := viewconfig.Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "shaders", "a.vert"), cfg.Shader.Vertex)
	assert.Equal(t, "/abs/b.frag", cfg.Shader.Fragment)

	_, err = viewconfig.Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestApplyUploadsUniforms(t *testing.T) {

	cfg, err := viewconfig.Parse([]byte(testConfig))
	require.NoError(t, err)
	cfg.Uniforms.Floats["notAUniform"] = 3

	ctx := glctxtest.NewFake()
	sp, err := shaders.NewShaderProgram(ctx, "../../../shaders/testdata/basic.vert.glsl", "../../../shaders/testdata/basic.frag.glsl")
	require.NoError(t, err)

	cfg.Uniforms.Apply(sp)

	expected := map[string]glctxtest.Upload{
		"time":       {Floats: []float32{1.5}},
		"useTint":    {Ints: []int32{1}},
		"mode":       {Ints: []int32{3}},
		"resolution": {Floats: []float32{640, 480}},
		"tint":       {Floats: []float32{1, 0.5, 0.25}},
		"baseColor":  {Floats: []float32{1, 0, 0, 1}},
	}

	assert.Len(t, ctx.Uploads, len(expected))
	for name, want := range expected {
		got, ok := ctx.LastUpload(sp.Id, name)
		require.True(t, ok, "no upload for uniform '%s'", name)
		assert.Equal(t, want.Ints, got.Ints, name)
		assert.Equal(t, want.Floats, got.Floats, name)
	}
}

func TestBundledConfigAndShaders(t *testing.T) {

	cfg, err := viewconfig.Load("../../../res/shaderview.toml")
	require.NoError(t, err)

	ctx := glctxtest.NewFake()
	sp, err := shaders.NewShaderProgram(ctx, cfg.Shader.Vertex, cfg.Shader.Fragment)
	require.NoError(t, err)
	assert.True(t, sp.IsLinked())

	for _, name := range []string{"time", "resolution", "mouse"} {
		assert.NotEqual(t, int32(-1), sp.GetUnifLoc(name), name)
	}
}
