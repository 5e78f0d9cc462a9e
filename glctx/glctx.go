// Package glctx models the active OpenGL context as an explicit value.
//
// A Context must only be used from the thread that owns the underlying
// graphics context (see engine.Init, which locks the main goroutine to its OS thread).
// The single exception is QueueProgramRelease, which may be called from any goroutine
// and is what finalizers use to hand resources back to the render thread.
package glctx

import "sync"

// Enum values used by this module. They match the OpenGL registry.
const (
	FALSE = 0
	TRUE  = 1

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31

	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	INFO_LOG_LENGTH = 0x8B84
)

type Context interface {
	CreateShader(shaderType uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32) int32
	// GetShaderInfoLog returns at most maxLen-1 bytes of the info log
	GetShaderInfoLog(shader uint32, maxLen int32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32) int32
	// GetProgramInfoLog returns at most maxLen-1 bytes of the info log
	GetProgramInfoLog(program uint32, maxLen int32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	// GetUniformLocation returns -1 if name is not an active uniform of program
	GetUniformLocation(program uint32, name string) int32

	ProgramUniform1i(program uint32, loc int32, v0 int32)
	ProgramUniform1f(program uint32, loc int32, v0 float32)
	ProgramUniform2f(program uint32, loc int32, v0, v1 float32)
	ProgramUniform3f(program uint32, loc int32, v0, v1, v2 float32)
	ProgramUniform4f(program uint32, loc int32, v0, v1, v2, v3 float32)
	ProgramUniform2fv(program uint32, loc int32, count int32, v *float32)
	ProgramUniform3fv(program uint32, loc int32, count int32, v *float32)
	ProgramUniform4fv(program uint32, loc int32, count int32, v *float32)
	ProgramUniformMatrix2fv(program uint32, loc int32, count int32, transpose bool, v *float32)
	ProgramUniformMatrix3fv(program uint32, loc int32, count int32, transpose bool, v *float32)
	ProgramUniformMatrix4fv(program uint32, loc int32, count int32, transpose bool, v *float32)

	// QueueProgramRelease is safe to call from any goroutine. The program is
	// deleted on the next ReleasePending call.
	QueueProgramRelease(program uint32)

	// ReleasePending deletes every queued program and returns how many were deleted.
	// Must be called on the context thread, usually once per frame.
	ReleasePending() int
}

// ReleaseQueue holds program handles whose owners were garbage collected
// without being deleted. Embed it in Context implementations.
type ReleaseQueue struct {
	mu       sync.Mutex
	programs []uint32
}

func (q *ReleaseQueue) QueueProgramRelease(program uint32) {

	if program == 0 {
		return
	}

	q.mu.Lock()
	q.programs = append(q.programs, program)
	q.mu.Unlock()
}

// Drain empties the queue and calls deleteProgram for every handle in the order they were queued
func (q *ReleaseQueue) Drain(deleteProgram func(program uint32)) int {

	q.mu.Lock()
	programs := q.programs
	q.programs = nil
	q.mu.Unlock()

	for i := 0; i < len(programs); i++ {
		deleteProgram(programs[i])
	}

	return len(programs)
}

// Len returns the number of queued handles
func (q *ReleaseQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.programs)
}
