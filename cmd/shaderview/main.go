// Command shaderview builds a shader program from a vertex and a fragment shader file and
// renders it on a fullscreen quad.
//
// Every frame the program gets these uniforms (if it declares them):
//
//	float time;       seconds since start
//	vec2 resolution;  drawable size in pixels
//	vec2 mouse;       mouse position in pixels, origin at the bottom left
//
// Press Escape or close the window to quit.
package main

import (
	"flag"
	"time"

	"github.com/bloeys/learnopengl/buffers"
	"github.com/bloeys/learnopengl/cmd/shaderview/viewconfig"
	"github.com/bloeys/learnopengl/engine"
	"github.com/bloeys/learnopengl/input"
	"github.com/bloeys/learnopengl/logging"
	"github.com/bloeys/learnopengl/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

func main() {

	configPath := flag.String("config", "", "path to a TOML config file. Defaults are used if not set")
	vertPath := flag.String("vert", "", "vertex shader path. Overrides the config")
	fragPath := flag.String("frag", "", "fragment shader path. Overrides the config")
	flag.Parse()

	cfg := viewconfig.Default()
	if *configPath != "" {

		var err error
		cfg, err = viewconfig.Load(*configPath)
		if err != nil {
			logging.ErrLog.Fatalf("Failed to load config. Err: %v\n", err)
		}
	}

	if *vertPath != "" {
		cfg.Shader.Vertex = *vertPath
	}

	if *fragPath != "" {
		cfg.Shader.Fragment = *fragPath
	}

	if err := engine.Init(); err != nil {
		logging.ErrLog.Fatalf("Failed to init engine. Err: %v\n", err)
	}
	defer engine.Quit()

	flags := engine.WindowFlags_SHOWN | engine.WindowFlags_ALLOW_HIGHDPI
	if cfg.Window.Resizable {
		flags |= engine.WindowFlags_RESIZABLE
	}

	win, err := engine.CreateOpenGLWindowCentered(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, flags)
	if err != nil {
		logging.ErrLog.Fatalf("Failed to create window. Err: %v\n", err)
	}
	defer win.Destroy()

	engine.SetVSync(cfg.Window.VSync)

	// A broken program is still rendered with, which shows up as a black window while the
	// diagnostics above explain why
	prog, err := shaders.NewShaderProgram(win.Ctx, cfg.Shader.Vertex, cfg.Shader.Fragment)
	if err != nil {
		logging.WarnLog.Printf("Shader program from '%s' and '%s' is not usable\n", cfg.Shader.Vertex, cfg.Shader.Fragment)
	}
	defer prog.Delete()

	cfg.Uniforms.Apply(prog)

	quad := buffers.NewQuad()
	defer quad.Delete()

	run(win, prog, &quad)
}

func run(win *engine.Window, prog *shaders.ShaderProgram, quad *buffers.VertexArray) {

	startTime := time.Now()
	for {

		win.HandleInputs()
		if input.IsQuitClicked() || input.KeyClicked(sdl.K_ESCAPE) {
			return
		}

		width, height := win.DrawableSize()
		mouseX, mouseY := input.GetMousePos()

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		prog.Use()
		prog.SetFloat("time", float32(time.Since(startTime).Seconds()))
		prog.SetVec2f("resolution", float32(width), float32(height))
		prog.SetVec2f("mouse", float32(mouseX), float32(height-mouseY))

		quad.Draw()
		prog.Del()

		win.EndFrame()
	}
}
