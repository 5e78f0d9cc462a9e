package shaders

import "fmt"

type FileReadError struct {
	Path string
	Type ShaderType
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read %s shader from '%s'. Err: %v", e.Type, e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

type CompileError struct {
	ShaderId uint32
	Type     ShaderType
	InfoLog  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compilation of %s shader with id=%d failed. Err: %s", e.Type, e.ShaderId, e.InfoLog)
}

type LinkError struct {
	ProgramId uint32
	InfoLog   string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("linking of shader program with id=%d failed. Err: %s", e.ProgramId, e.InfoLog)
}

// Diagnostic is one failure recorded while building a program
type Diagnostic struct {
	Stage Stage
	Msg   string
}

type Status struct {
	Linked      bool
	Diagnostics []Diagnostic
}
