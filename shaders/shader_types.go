package shaders

import (
	"github.com/bloeys/learnopengl/assert"
	"github.com/bloeys/learnopengl/glctx"
)

type ShaderType int32

const (
	ShaderType_Unknown ShaderType = iota
	ShaderType_Vertex
	ShaderType_Fragment
)

func (s ShaderType) ToGl() uint32 {

	switch s {
	case ShaderType_Vertex:
		return glctx.VERTEX_SHADER
	case ShaderType_Fragment:
		return glctx.FRAGMENT_SHADER

	default:
		assert.T(false, "Unknown shader type '%d'", s)
		return 0
	}
}

func (s ShaderType) Stage() Stage {

	switch s {
	case ShaderType_Vertex:
		return Stage_Vertex
	case ShaderType_Fragment:
		return Stage_Fragment

	default:
		assert.T(false, "Unknown shader type '%d'", s)
		return ""
	}
}

func (s ShaderType) String() string {

	switch s {
	case ShaderType_Vertex:
		return "vertex"
	case ShaderType_Fragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Stage is the tag used in diagnostics to name what failed
type Stage string

const (
	Stage_Vertex   Stage = "VERTEX"
	Stage_Fragment Stage = "FRAGMENT"
	Stage_Program  Stage = "PROGRAM"
	Stage_File     Stage = "FILE"
)
