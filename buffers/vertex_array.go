package buffers

import (
	"github.com/bloeys/learnopengl/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type VertexArray struct {
	Id  uint32
	Vbo VertexBuffer
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.Id)
}

func (va *VertexArray) UnBind() {
	gl.BindVertexArray(0)
}

// SetVertexBuffer binds vbo to this vao, with attribute i of the layout at location i
func (va *VertexArray) SetVertexBuffer(vbo VertexBuffer) {

	// NOTE: VBOs are only bound at 'VertexAttribPointer' (and related) calls
	va.Bind()
	vbo.Bind()

	for i := 0; i < len(vbo.layout); i++ {

		l := &vbo.layout[i]

		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointerWithOffset(uint32(i), l.ElementType.CompCount(), l.ElementType.GLType(), false, vbo.Stride, uintptr(l.Offset))
	}

	va.Vbo = vbo
}

// Draw draws all vertices of the vertex buffer as triangles using whatever program is active
func (va *VertexArray) Draw() {
	va.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, va.Vbo.VertexCount)
}

func (va *VertexArray) Delete() {

	va.Vbo.Delete()
	if va.Id == 0 {
		return
	}

	gl.DeleteVertexArrays(1, &va.Id)
	va.Id = 0
}

func NewVertexArray() VertexArray {

	vao := VertexArray{}

	gl.GenVertexArrays(1, &vao.Id)
	if vao.Id == 0 {
		logging.ErrLog.Println("Failed to create OpenGL vertex array object")
	}

	return vao
}
