// Package gl41 implements glctx.Context on top of an OpenGL 4.1 core context.
package gl41

import (
	"github.com/bloeys/learnopengl/glctx"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ glctx.Context = &Context{}

type Context struct {
	glctx.ReleaseQueue
}

// New loads the OpenGL function pointers. A context must already be current on the calling thread.
func New() (*Context, error) {

	if err := gl.Init(); err != nil {
		return nil, err
	}

	return &Context{}, nil
}

// Version returns the driver's GL_VERSION string
func (c *Context) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (c *Context) CreateShader(shaderType uint32) uint32 {
	return gl.CreateShader(shaderType)
}

func (c *Context) ShaderSource(shader uint32, src string) {
	srcCStr, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, srcCStr, nil)
}

func (c *Context) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (c *Context) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (c *Context) GetShaderInfoLog(shader uint32, maxLen int32) string {

	if maxLen <= 0 {
		return ""
	}

	var logLen int32
	buf := make([]byte, maxLen)
	gl.GetShaderInfoLog(shader, maxLen, &logLen, &buf[0])
	return string(buf[:logLen])
}

func (c *Context) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (c *Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (c *Context) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (c *Context) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (c *Context) GetProgramiv(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (c *Context) GetProgramInfoLog(program uint32, maxLen int32) string {

	if maxLen <= 0 {
		return ""
	}

	var logLen int32
	buf := make([]byte, maxLen)
	gl.GetProgramInfoLog(program, maxLen, &logLen, &buf[0])
	return string(buf[:logLen])
}

func (c *Context) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (c *Context) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) ProgramUniform1i(program uint32, loc int32, v0 int32) {
	gl.ProgramUniform1i(program, loc, v0)
}

func (c *Context) ProgramUniform1f(program uint32, loc int32, v0 float32) {
	gl.ProgramUniform1f(program, loc, v0)
}

func (c *Context) ProgramUniform2f(program uint32, loc int32, v0, v1 float32) {
	gl.ProgramUniform2f(program, loc, v0, v1)
}

func (c *Context) ProgramUniform3f(program uint32, loc int32, v0, v1, v2 float32) {
	gl.ProgramUniform3f(program, loc, v0, v1, v2)
}

func (c *Context) ProgramUniform4f(program uint32, loc int32, v0, v1, v2, v3 float32) {
	gl.ProgramUniform4f(program, loc, v0, v1, v2, v3)
}

func (c *Context) ProgramUniform2fv(program uint32, loc int32, count int32, v *float32) {
	gl.ProgramUniform2fv(program, loc, count, v)
}

func (c *Context) ProgramUniform3fv(program uint32, loc int32, count int32, v *float32) {
	gl.ProgramUniform3fv(program, loc, count, v)
}

func (c *Context) ProgramUniform4fv(program uint32, loc int32, count int32, v *float32) {
	gl.ProgramUniform4fv(program, loc, count, v)
}

func (c *Context) ProgramUniformMatrix2fv(program uint32, loc int32, count int32, transpose bool, v *float32) {
	gl.ProgramUniformMatrix2fv(program, loc, count, transpose, v)
}

func (c *Context) ProgramUniformMatrix3fv(program uint32, loc int32, count int32, transpose bool, v *float32) {
	gl.ProgramUniformMatrix3fv(program, loc, count, transpose, v)
}

func (c *Context) ProgramUniformMatrix4fv(program uint32, loc int32, count int32, transpose bool, v *float32) {
	gl.ProgramUniformMatrix4fv(program, loc, count, transpose, v)
}

func (c *Context) ReleasePending() int {
	return c.Drain(gl.DeleteProgram)
}
