package shaders

import (
	"fmt"
	"os"

	"github.com/bloeys/learnopengl/glctx"
	"github.com/bloeys/learnopengl/logging"
)

// InfoLogMaxLen is the most bytes fetched from a compile or link info log
const InfoLogMaxLen = 1024

const diagnosticFooter = "\n -- --------------------------------------------------- -- "

type Shader struct {
	Id   uint32
	Type ShaderType
}

func (s *Shader) Delete(ctx glctx.Context) {

	if s.Id == 0 {
		return
	}

	ctx.DeleteShader(s.Id)
	s.Id = 0
}

// ReadShaderFile reads the whole file. On failure it logs once and returns
// empty source along with a *FileReadError.
func ReadShaderFile(shaderPath string, shaderType ShaderType) ([]byte, error) {

	src, err := os.ReadFile(shaderPath)
	if err != nil {
		logging.ErrLog.Printf("ERROR::SHADER::FILE_NOT_SUCCESFULLY_READ (type=%s; path=%s). Err: %v\n", shaderType.Stage(), shaderPath, err)
		return []byte{}, &FileReadError{Path: shaderPath, Type: shaderType, Err: err}
	}

	return src, nil
}

// CompileShaderOfType creates a shader object and compiles shaderSource into it.
//
// A failed compile still returns the shader (with its id) so that it can be attached
// and the failure carried on to linking. Only a failure to create the shader object returns Id=0.
func CompileShaderOfType(ctx glctx.Context, shaderSource []byte, shaderType ShaderType) (Shader, error) {

	shaderId := ctx.CreateShader(shaderType.ToGl())
	if shaderId == 0 {
		logging.ErrLog.Printf("Failed to create OpenGL %s shader\n", shaderType)
		return Shader{}, fmt.Errorf("failed to create OpenGL %s shader", shaderType)
	}

	ctx.ShaderSource(shaderId, string(shaderSource))
	ctx.CompileShader(shaderId)

	shdr := Shader{Id: shaderId, Type: shaderType}
	if infoLog, failed := checkCompileErrors(ctx, shaderId, shaderType.Stage()); failed {
		return shdr, &CompileError{ShaderId: shaderId, Type: shaderType, InfoLog: infoLog}
	}

	return shdr, nil
}

// checkCompileErrors checks the link status if stage is Stage_Program and the
// compile status otherwise. On failure the info log is logged and returned.
func checkCompileErrors(ctx glctx.Context, handle uint32, stage Stage) (infoLog string, failed bool) {

	if stage != Stage_Program {

		if ctx.GetShaderiv(handle, glctx.COMPILE_STATUS) == glctx.TRUE {
			return "", false
		}

		infoLog = ctx.GetShaderInfoLog(handle, InfoLogMaxLen)

	} else {

		if ctx.GetProgramiv(handle, glctx.LINK_STATUS) == glctx.TRUE {
			return "", false
		}

		infoLog = ctx.GetProgramInfoLog(handle, InfoLogMaxLen)
	}

	logging.ErrLog.Printf("ERROR::SHADER_COMPILATION_ERROR of type: %s\n%s%s\n", stage, infoLog, diagnosticFooter)
	return infoLog, true
}
