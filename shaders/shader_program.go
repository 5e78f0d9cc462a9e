package shaders

import (
	"errors"
	"runtime"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/learnopengl/glctx"
	"github.com/bloeys/learnopengl/logging"
)

// ShaderProgram is a linked vertex+fragment program living in ctx.
//
// Every method must be called on the thread that owns ctx.
// Call Delete when done with the program. If the ShaderProgram is garbage collected first,
// its handle is queued on ctx and released by the next ctx.ReleasePending call.
type ShaderProgram struct {
	Id           uint32
	VertShaderId uint32
	FragShaderId uint32

	ctx      glctx.Context
	unifLocs map[string]int32
	status   Status
}

// NewShaderProgram reads, compiles and links the two shader files.
//
// A non-nil program is always returned, even when reading, compiling or linking fails,
// in which case every failure is logged and also returned in err (see FileReadError,
// CompileError and LinkError). Rendering with a failed program draws nothing useful.
func NewShaderProgram(ctx glctx.Context, vertexPath, fragmentPath string) (*ShaderProgram, error) {

	var readErrs []error

	vertSrc, err := ReadShaderFile(vertexPath, ShaderType_Vertex)
	if err != nil {
		readErrs = append(readErrs, err)
	}

	fragSrc, err := ReadShaderFile(fragmentPath, ShaderType_Fragment)
	if err != nil {
		readErrs = append(readErrs, err)
	}

	sp, err := NewShaderProgramSrc(ctx, vertSrc, fragSrc)
	if len(readErrs) == 0 {
		return sp, err
	}

	// Read errors happened first so they go first
	fileDiags := make([]Diagnostic, 0, len(readErrs)+len(sp.status.Diagnostics))
	for i := 0; i < len(readErrs); i++ {
		fileDiags = append(fileDiags, Diagnostic{Stage: Stage_File, Msg: readErrs[i].Error()})
	}
	sp.status.Diagnostics = append(fileDiags, sp.status.Diagnostics...)

	if err != nil {
		readErrs = append(readErrs, err)
	}

	return sp, errors.Join(readErrs...)
}

// NewShaderProgramSrc is like NewShaderProgram but takes the shader sources directly
func NewShaderProgramSrc(ctx glctx.Context, vertSrc, fragSrc []byte) (*ShaderProgram, error) {

	sp := &ShaderProgram{
		ctx:      ctx,
		unifLocs: make(map[string]int32),
	}

	var errs []error

	vert, err := CompileShaderOfType(ctx, vertSrc, ShaderType_Vertex)
	if err != nil {
		errs = append(errs, err)
		sp.addDiagnostic(Stage_Vertex, err)
	}

	frag, err := CompileShaderOfType(ctx, fragSrc, ShaderType_Fragment)
	if err != nil {
		errs = append(errs, err)
		sp.addDiagnostic(Stage_Fragment, err)
	}

	sp.Id = ctx.CreateProgram()
	if sp.Id == 0 {

		vert.Delete(ctx)
		frag.Delete(ctx)

		err = errors.New("failed to create shader program")
		logging.ErrLog.Println(err.Error())
		sp.addDiagnostic(Stage_Program, err)
		return sp, errors.Join(append(errs, err)...)
	}

	runtime.SetFinalizer(sp, (*ShaderProgram).queueRelease)

	sp.AttachShader(vert)
	sp.AttachShader(frag)

	linkErr := sp.Link()
	if linkErr != nil {
		errs = append(errs, linkErr)
		sp.addDiagnostic(Stage_Program, linkErr)
	}

	sp.status.Linked = linkErr == nil
	return sp, errors.Join(errs...)
}

// MustNewShaderProgram panics if the program can't be fully built
func MustNewShaderProgram(ctx glctx.Context, vertexPath, fragmentPath string) *ShaderProgram {

	sp, err := NewShaderProgram(ctx, vertexPath, fragmentPath)
	if err != nil {
		logging.ErrLog.Panicf("Failed to build shader program from vertex shader '%s' and fragment shader '%s'. Err: %s\n", vertexPath, fragmentPath, err.Error())
	}

	return sp
}

func (sp *ShaderProgram) addDiagnostic(stage Stage, err error) {

	msg := err.Error()

	var compileErr *CompileError
	var linkErr *LinkError
	if errors.As(err, &compileErr) {
		msg = compileErr.InfoLog
	} else if errors.As(err, &linkErr) {
		msg = linkErr.InfoLog
	}

	sp.status.Diagnostics = append(sp.status.Diagnostics, Diagnostic{Stage: stage, Msg: msg})
}

// AttachShader attaches shader and remembers its id so Link can delete it. Shaders with Id=0 are ignored.
func (sp *ShaderProgram) AttachShader(shader Shader) {

	if shader.Id == 0 {
		return
	}

	sp.ctx.AttachShader(sp.Id, shader.Id)
	switch shader.Type {
	case ShaderType_Vertex:
		sp.VertShaderId = shader.Id
	case ShaderType_Fragment:
		sp.FragShaderId = shader.Id
	default:
		logging.ErrLog.Panicf("Unknown shader type '%d' for shader id '%d'\n", shader.Type, shader.Id)
	}
}

// Link links the program then deletes the attached shaders, which are no longer needed
func (sp *ShaderProgram) Link() error {

	sp.ctx.LinkProgram(sp.Id)
	infoLog, failed := checkCompileErrors(sp.ctx, sp.Id, Stage_Program)

	if sp.VertShaderId != 0 {
		sp.ctx.DeleteShader(sp.VertShaderId)
		sp.VertShaderId = 0
	}

	if sp.FragShaderId != 0 {
		sp.ctx.DeleteShader(sp.FragShaderId)
		sp.FragShaderId = 0
	}

	if failed {
		return &LinkError{ProgramId: sp.Id, InfoLog: infoLog}
	}

	return nil
}

func (sp *ShaderProgram) Status() Status {
	return sp.status
}

func (sp *ShaderProgram) IsLinked() bool {
	return sp.status.Linked
}

// Use makes this the active program for following draw calls
func (sp *ShaderProgram) Use() {
	sp.ctx.UseProgram(sp.Id)
}

// Del binds the null program, deactivating whichever program is active (not necessarily this one).
// It does NOT free the program, use Delete for that.
func (sp *ShaderProgram) Del() {
	sp.ctx.UseProgram(0)
}

// Delete frees the GPU program. Calling it more than once is a no-op.
func (sp *ShaderProgram) Delete() {

	if sp.Id == 0 {
		return
	}

	sp.ctx.DeleteProgram(sp.Id)
	sp.Id = 0
	clear(sp.unifLocs)
	runtime.SetFinalizer(sp, nil)
}

func (sp *ShaderProgram) queueRelease() {
	if sp.Id != 0 {
		sp.ctx.QueueProgramRelease(sp.Id)
	}
}

// GetUnifLoc returns the uniform location of uniformName, or -1 if it is not an active uniform.
// Lookups are cached for the lifetime of the program.
func (sp *ShaderProgram) GetUnifLoc(uniformName string) int32 {

	if sp.Id == 0 {
		return -1
	}

	loc, ok := sp.unifLocs[uniformName]
	if ok {
		return loc
	}

	loc = sp.ctx.GetUniformLocation(sp.Id, uniformName)
	sp.unifLocs[uniformName] = loc
	return loc
}

// The setters write to this program even when it isn't the active one.
// Unknown uniform names are silently ignored, same as OpenGL does with location -1.

func (sp *ShaderProgram) SetBool(uniformName string, val bool) {

	var v int32
	if val {
		v = 1
	}

	sp.ctx.ProgramUniform1i(sp.Id, sp.GetUnifLoc(uniformName), v)
}

func (sp *ShaderProgram) SetInt(uniformName string, val int32) {
	sp.ctx.ProgramUniform1i(sp.Id, sp.GetUnifLoc(uniformName), val)
}

func (sp *ShaderProgram) SetFloat(uniformName string, val float32) {
	sp.ctx.ProgramUniform1f(sp.Id, sp.GetUnifLoc(uniformName), val)
}

func (sp *ShaderProgram) SetVec2(uniformName string, vec2 *gglm.Vec2) {
	sp.ctx.ProgramUniform2fv(sp.Id, sp.GetUnifLoc(uniformName), 1, &vec2.Data[0])
}

func (sp *ShaderProgram) SetVec2f(uniformName string, x, y float32) {
	sp.ctx.ProgramUniform2f(sp.Id, sp.GetUnifLoc(uniformName), x, y)
}

func (sp *ShaderProgram) SetVec3(uniformName string, vec3 *gglm.Vec3) {
	sp.ctx.ProgramUniform3fv(sp.Id, sp.GetUnifLoc(uniformName), 1, &vec3.Data[0])
}

func (sp *ShaderProgram) SetVec3f(uniformName string, x, y, z float32) {
	sp.ctx.ProgramUniform3f(sp.Id, sp.GetUnifLoc(uniformName), x, y, z)
}

func (sp *ShaderProgram) SetVec4(uniformName string, vec4 *gglm.Vec4) {
	sp.ctx.ProgramUniform4fv(sp.Id, sp.GetUnifLoc(uniformName), 1, &vec4.Data[0])
}

func (sp *ShaderProgram) SetVec4f(uniformName string, x, y, z, w float32) {
	sp.ctx.ProgramUniform4f(sp.Id, sp.GetUnifLoc(uniformName), x, y, z, w)
}

// Matrices are column-major (gglm's layout), so they are uploaded without transposing

func (sp *ShaderProgram) SetMat2(uniformName string, mat2 *gglm.Mat2) {
	sp.ctx.ProgramUniformMatrix2fv(sp.Id, sp.GetUnifLoc(uniformName), 1, false, &mat2.Data[0][0])
}

func (sp *ShaderProgram) SetMat3(uniformName string, mat3 *gglm.Mat3) {
	sp.ctx.ProgramUniformMatrix3fv(sp.Id, sp.GetUnifLoc(uniformName), 1, false, &mat3.Data[0][0])
}

func (sp *ShaderProgram) SetMat4(uniformName string, mat4 *gglm.Mat4) {
	sp.ctx.ProgramUniformMatrix4fv(sp.Id, sp.GetUnifLoc(uniformName), 1, false, &mat4.Data[0][0])
}
