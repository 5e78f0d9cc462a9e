// Package glctxtest provides a software glctx.Context for tests that have no GPU.
//
// The fake "compiles" GLSL with a shallow syntax check (see CheckGLSL) and treats every
// declared uniform as active. Locations are assigned in declaration order, vertex stage first.
package glctxtest

import (
	"fmt"
	"regexp"
	"strings"
	"unsafe"

	"github.com/bloeys/learnopengl/glctx"
)

var _ glctx.Context = &Fake{}

type FakeShader struct {
	Id       uint32
	Type     uint32
	Source   string
	Compiled bool
	InfoLog  string
	Deleted  bool
}

type FakeProgram struct {
	Id       uint32
	Attached []uint32
	Linked   bool
	InfoLog  string
	Deleted  bool
	// Uniforms maps active uniform names to their locations. Filled on link.
	Uniforms map[string]int32
}

// Upload is one recorded uniform write. Integer uploads are stored in Ints, all others in Floats.
type Upload struct {
	Program  uint32
	Location int32
	Name     string
	Func     string
	Ints     []int32
	Floats   []float32
}

// CompileFunc decides whether src compiles and returns the info log on failure
type CompileFunc func(shaderType uint32, src string) (ok bool, infoLog string)

type Fake struct {
	glctx.ReleaseQueue

	// Compile defaults to CheckGLSL when nil
	Compile CompileFunc

	// FailCreateProgram makes CreateProgram return 0
	FailCreateProgram bool

	BoundProgram uint32
	Shaders      map[uint32]*FakeShader
	Programs     map[uint32]*FakeProgram
	Uploads      []Upload

	// DeletedPrograms lists every DeleteProgram call in order, including repeats
	DeletedPrograms []uint32

	lastId uint32
}

func NewFake() *Fake {
	return &Fake{
		Shaders:  map[uint32]*FakeShader{},
		Programs: map[uint32]*FakeProgram{},
	}
}

func (f *Fake) newId() uint32 {
	f.lastId++
	return f.lastId
}

func (f *Fake) CreateShader(shaderType uint32) uint32 {

	if shaderType != glctx.VERTEX_SHADER && shaderType != glctx.FRAGMENT_SHADER {
		return 0
	}

	id := f.newId()
	f.Shaders[id] = &FakeShader{Id: id, Type: shaderType}
	return id
}

func (f *Fake) ShaderSource(shader uint32, src string) {
	if s, ok := f.Shaders[shader]; ok {
		s.Source = src
	}
}

func (f *Fake) CompileShader(shader uint32) {

	s, ok := f.Shaders[shader]
	if !ok {
		return
	}

	compile := f.Compile
	if compile == nil {
		compile = CheckGLSL
	}

	s.Compiled, s.InfoLog = compile(s.Type, s.Source)
	if s.Compiled {
		s.InfoLog = ""
	}
}

func (f *Fake) GetShaderiv(shader uint32, pname uint32) int32 {

	s, ok := f.Shaders[shader]
	if !ok {
		return 0
	}

	switch pname {
	case glctx.COMPILE_STATUS:
		return boolToGl(s.Compiled)
	case glctx.INFO_LOG_LENGTH:
		return infoLogLen(s.InfoLog)
	}

	return 0
}

func (f *Fake) GetShaderInfoLog(shader uint32, maxLen int32) string {

	s, ok := f.Shaders[shader]
	if !ok {
		return ""
	}

	return truncateLog(s.InfoLog, maxLen)
}

func (f *Fake) DeleteShader(shader uint32) {
	if s, ok := f.Shaders[shader]; ok {
		s.Deleted = true
	}
}

func (f *Fake) CreateProgram() uint32 {

	if f.FailCreateProgram {
		return 0
	}

	id := f.newId()
	f.Programs[id] = &FakeProgram{Id: id, Uniforms: map[string]int32{}}
	return id
}

func (f *Fake) AttachShader(program, shader uint32) {

	p, ok := f.Programs[program]
	if !ok {
		return
	}

	if _, ok := f.Shaders[shader]; !ok {
		return
	}

	p.Attached = append(p.Attached, shader)
}

func (f *Fake) LinkProgram(program uint32) {

	p, ok := f.Programs[program]
	if !ok {
		return
	}

	p.Linked = false
	p.InfoLog = ""
	p.Uniforms = map[string]int32{}

	var vert, frag *FakeShader
	for _, id := range p.Attached {

		s := f.Shaders[id]
		if !s.Compiled {
			p.InfoLog = "error: linking with uncompiled/unspecialized shader"
			return
		}

		if s.Type == glctx.VERTEX_SHADER {
			vert = s
		} else {
			frag = s
		}
	}

	if vert == nil || frag == nil {
		p.InfoLog = "error: program must have a vertex and a fragment shader"
		return
	}

	var nextLoc int32
	for _, s := range []*FakeShader{vert, frag} {
		for _, name := range DeclaredUniforms(s.Source) {

			if _, ok := p.Uniforms[name]; ok {
				continue
			}

			p.Uniforms[name] = nextLoc
			nextLoc++
		}
	}

	p.Linked = true
}

func (f *Fake) GetProgramiv(program uint32, pname uint32) int32 {

	p, ok := f.Programs[program]
	if !ok {
		return 0
	}

	switch pname {
	case glctx.LINK_STATUS:
		return boolToGl(p.Linked)
	case glctx.INFO_LOG_LENGTH:
		return infoLogLen(p.InfoLog)
	}

	return 0
}

func (f *Fake) GetProgramInfoLog(program uint32, maxLen int32) string {

	p, ok := f.Programs[program]
	if !ok {
		return ""
	}

	return truncateLog(p.InfoLog, maxLen)
}

func (f *Fake) DeleteProgram(program uint32) {

	f.DeletedPrograms = append(f.DeletedPrograms, program)
	if p, ok := f.Programs[program]; ok {
		p.Deleted = true
	}
}

func (f *Fake) UseProgram(program uint32) {
	f.BoundProgram = program
}

func (f *Fake) GetUniformLocation(program uint32, name string) int32 {

	p, ok := f.Programs[program]
	if !ok || !p.Linked {
		return -1
	}

	loc, ok := p.Uniforms[name]
	if !ok {
		return -1
	}

	return loc
}

func (f *Fake) ProgramUniform1i(program uint32, loc int32, v0 int32) {
	f.recordInts(program, loc, "ProgramUniform1i", v0)
}

func (f *Fake) ProgramUniform1f(program uint32, loc int32, v0 float32) {
	f.recordFloats(program, loc, "ProgramUniform1f", v0)
}

func (f *Fake) ProgramUniform2f(program uint32, loc int32, v0, v1 float32) {
	f.recordFloats(program, loc, "ProgramUniform2f", v0, v1)
}

func (f *Fake) ProgramUniform3f(program uint32, loc int32, v0, v1, v2 float32) {
	f.recordFloats(program, loc, "ProgramUniform3f", v0, v1, v2)
}

func (f *Fake) ProgramUniform4f(program uint32, loc int32, v0, v1, v2, v3 float32) {
	f.recordFloats(program, loc, "ProgramUniform4f", v0, v1, v2, v3)
}

func (f *Fake) ProgramUniform2fv(program uint32, loc int32, count int32, v *float32) {
	f.recordFloats(program, loc, "ProgramUniform2fv", readFloats(v, 2*count)...)
}

func (f *Fake) ProgramUniform3fv(program uint32, loc int32, count int32, v *float32) {
	f.recordFloats(program, loc, "ProgramUniform3fv", readFloats(v, 3*count)...)
}

func (f *Fake) ProgramUniform4fv(program uint32, loc int32, count int32, v *float32) {
	f.recordFloats(program, loc, "ProgramUniform4fv", readFloats(v, 4*count)...)
}

func (f *Fake) ProgramUniformMatrix2fv(program uint32, loc int32, count int32, transpose bool, v *float32) {
	f.recordFloats(program, loc, "ProgramUniformMatrix2fv", readFloats(v, 4*count)...)
}

func (f *Fake) ProgramUniformMatrix3fv(program uint32, loc int32, count int32, transpose bool, v *float32) {
	f.recordFloats(program, loc, "ProgramUniformMatrix3fv", readFloats(v, 9*count)...)
}

func (f *Fake) ProgramUniformMatrix4fv(program uint32, loc int32, count int32, transpose bool, v *float32) {
	f.recordFloats(program, loc, "ProgramUniformMatrix4fv", readFloats(v, 16*count)...)
}

func (f *Fake) ReleasePending() int {
	return f.Drain(f.DeleteProgram)
}

// LastUpload returns the most recent upload to the named uniform of program
func (f *Fake) LastUpload(program uint32, name string) (Upload, bool) {

	for i := len(f.Uploads) - 1; i >= 0; i-- {
		u := f.Uploads[i]
		if u.Program == program && u.Name == name {
			return u, true
		}
	}

	return Upload{}, false
}

// uploadTarget mirrors GL: location -1 is silently ignored and so are writes to unknown locations
func (f *Fake) uploadTarget(program uint32, loc int32) (string, bool) {

	if loc == -1 {
		return "", false
	}

	p, ok := f.Programs[program]
	if !ok || !p.Linked {
		return "", false
	}

	for name, l := range p.Uniforms {
		if l == loc {
			return name, true
		}
	}

	return "", false
}

func (f *Fake) recordInts(program uint32, loc int32, fn string, vals ...int32) {

	name, ok := f.uploadTarget(program, loc)
	if !ok {
		return
	}

	f.Uploads = append(f.Uploads, Upload{Program: program, Location: loc, Name: name, Func: fn, Ints: vals})
}

func (f *Fake) recordFloats(program uint32, loc int32, fn string, vals ...float32) {

	name, ok := f.uploadTarget(program, loc)
	if !ok {
		return
	}

	f.Uploads = append(f.Uploads, Upload{Program: program, Location: loc, Name: name, Func: fn, Floats: vals})
}

func readFloats(v *float32, n int32) []float32 {

	if v == nil || n <= 0 {
		return nil
	}

	out := make([]float32, n)
	copy(out, unsafe.Slice(v, n))
	return out
}

func boolToGl(b bool) int32 {
	if b {
		return glctx.TRUE
	}
	return glctx.FALSE
}

// infoLogLen includes the null terminator like GL does, and is 0 for an empty log
func infoLogLen(log string) int32 {
	if log == "" {
		return 0
	}
	return int32(len(log) + 1)
}

func truncateLog(log string, maxLen int32) string {

	if maxLen <= 0 {
		return ""
	}

	if int32(len(log)) > maxLen-1 {
		return log[:maxLen-1]
	}

	return log
}

var (
	uniformDeclRegex = regexp.MustCompile(`(?m)^\s*uniform\s+[^;{]*?(\w+)\s*(?:\[[^\]]*\])?\s*;`)
	mainFuncRegex    = regexp.MustCompile(`\bvoid\s+main\s*\(`)
	versionRegex     = regexp.MustCompile(`(?m)^\s*#version\s+\d+`)
)

// DeclaredUniforms returns the names of plain `uniform <type> <name>;` declarations in src, in order
func DeclaredUniforms(src string) []string {

	matches := uniformDeclRegex.FindAllStringSubmatch(src, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}

	return names
}

// CheckGLSL is the default CompileFunc. It rejects empty sources, sources without a
// #version directive or a main function, and unbalanced brackets.
func CheckGLSL(shaderType uint32, src string) (bool, string) {

	if strings.TrimSpace(src) == "" {
		return false, "0:1(1): error: syntax error, unexpected end of file"
	}

	if !versionRegex.MatchString(src) {
		return false, "0:1(1): error: missing #version directive"
	}

	closers := map[rune]rune{')': '(', '}': '{', ']': '['}
	stack := []rune{}
	line := 1
	for _, r := range src {

		switch r {
		case '\n':
			line++
		case '(', '{', '[':
			stack = append(stack, r)
		case ')', '}', ']':
			if len(stack) == 0 || stack[len(stack)-1] != closers[r] {
				return false, fmt.Sprintf("0:%d(1): error: syntax error, unexpected '%c'", line, r)
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) != 0 {
		return false, fmt.Sprintf("0:%d(1): error: syntax error, unexpected end of file, expecting '%c'", line, matchingCloser(stack[len(stack)-1]))
	}

	if !mainFuncRegex.MatchString(src) {
		return false, "error: main function not defined"
	}

	return true, ""
}

func matchingCloser(r rune) rune {
	switch r {
	case '(':
		return ')'
	case '{':
		return '}'
	}
	return ']'
}
