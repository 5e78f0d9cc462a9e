package glctxtest

import (
	"testing"

	"github.com/bloeys/learnopengl/glctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vertSrc = `#version 410
layout(location=0) in vec2 vertPos;
uniform mat4 projViewMat;
uniform float scale;
void main() { gl_Position = projViewMat * vec4(vertPos * scale, 0, 1); }
`
	fragSrc = `#version 410
out vec4 fragColor;
uniform vec4 color;
uniform float scale;
uniform sampler2D textures[4];
void main() { fragColor = color * scale; }
`
)

func TestCheckGLSL(t *testing.T) {

	ok, log := CheckGLSL(glctx.VERTEX_SHADER, vertSrc)
	assert.True(t, ok)
	assert.Empty(t, log)

	tests := []struct {
		name    string
		src     string
		logPart string
	}{
		{name: "empty", src: "  \n", logPart: "unexpected end of file"},
		{name: "no version", src: "void main() {}", logPart: "#version"},
		{name: "unbalanced close", src: "#version 410\nvoid main() { }\n}", logPart: "0:3(1): error: syntax error, unexpected '}'"},
		{name: "unclosed", src: "#version 410\nvoid main() {", logPart: "expecting '}'"},
		{name: "no main", src: "#version 410\nvoid notMain() {}", logPart: "main function not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, log := CheckGLSL(glctx.FRAGMENT_SHADER, tt.src)
			assert.False(t, ok)
			assert.Contains(t, log, tt.logPart)
		})
	}
}

func TestDeclaredUniforms(t *testing.T) {
	assert.Equal(t, []string{"projViewMat", "scale"}, DeclaredUniforms(vertSrc))
	assert.Equal(t, []string{"color", "scale", "textures"}, DeclaredUniforms(fragSrc))
	assert.Empty(t, DeclaredUniforms("#version 410\nuniform Matrices {\n mat4 view;\n};\n"))
}

func TestFakeLinkAssignsLocations(t *testing.T) {

	f := NewFake()

	vs := f.CreateShader(glctx.VERTEX_SHADER)
	f.ShaderSource(vs, vertSrc)
	f.CompileShader(vs)

	fs := f.CreateShader(glctx.FRAGMENT_SHADER)
	f.ShaderSource(fs, fragSrc)
	f.CompileShader(fs)

	prog := f.CreateProgram()
	f.AttachShader(prog, vs)
	f.AttachShader(prog, fs)
	f.LinkProgram(prog)

	require.Equal(t, int32(glctx.TRUE), f.GetProgramiv(prog, glctx.LINK_STATUS))
	assert.Equal(t, int32(0), f.GetUniformLocation(prog, "projViewMat"))
	assert.Equal(t, int32(1), f.GetUniformLocation(prog, "scale"))
	assert.Equal(t, int32(2), f.GetUniformLocation(prog, "color"))
	assert.Equal(t, int32(3), f.GetUniformLocation(prog, "textures"))
	assert.Equal(t, int32(-1), f.GetUniformLocation(prog, "missing"))

	f.ProgramUniform1f(prog, 1, 2.5)
	f.ProgramUniform1f(prog, -1, 9)
	f.ProgramUniform1f(prog, 42, 9)
	require.Len(t, f.Uploads, 1)

	u, ok := f.LastUpload(prog, "scale")
	require.True(t, ok)
	assert.Equal(t, []float32{2.5}, u.Floats)
	assert.Equal(t, "ProgramUniform1f", u.Func)
}

func TestFakeLinkFailsWithUncompiledShader(t *testing.T) {

	f := NewFake()

	vs := f.CreateShader(glctx.VERTEX_SHADER)
	f.ShaderSource(vs, "#version 410\nvoid main() {")
	f.CompileShader(vs)
	assert.Equal(t, int32(glctx.FALSE), f.GetShaderiv(vs, glctx.COMPILE_STATUS))

	infoLen := f.GetShaderiv(vs, glctx.INFO_LOG_LENGTH)
	assert.Equal(t, int32(len(f.Shaders[vs].InfoLog)+1), infoLen)
	assert.Equal(t, f.Shaders[vs].InfoLog[:4], f.GetShaderInfoLog(vs, 5))

	fs := f.CreateShader(glctx.FRAGMENT_SHADER)
	f.ShaderSource(fs, fragSrc)
	f.CompileShader(fs)

	prog := f.CreateProgram()
	f.AttachShader(prog, vs)
	f.AttachShader(prog, fs)
	f.LinkProgram(prog)

	assert.Equal(t, int32(glctx.FALSE), f.GetProgramiv(prog, glctx.LINK_STATUS))
	assert.Contains(t, f.GetProgramInfoLog(prog, 1024), "uncompiled")
	assert.Equal(t, int32(-1), f.GetUniformLocation(prog, "color"))
}

func TestFakeReleasePending(t *testing.T) {

	f := NewFake()
	prog := f.CreateProgram()
	f.UseProgram(prog)

	f.QueueProgramRelease(prog)
	assert.False(t, f.Programs[prog].Deleted)

	assert.Equal(t, 1, f.ReleasePending())
	assert.True(t, f.Programs[prog].Deleted)
	// Like GL, deleting the bound program doesn't unbind it
	assert.Equal(t, prog, f.BoundProgram)
	assert.Equal(t, []uint32{prog}, f.DeletedPrograms)
}
