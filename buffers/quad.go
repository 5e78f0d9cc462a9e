package buffers

// QuadVertices is a fullscreen quad made of two CCW triangles.
// Each vertex is a Vec2 position in NDC followed by a Vec2 UV.
var QuadVertices = []float32{
	-1, -1, 0, 0,
	1, -1, 1, 0,
	1, 1, 1, 1,

	-1, -1, 0, 0,
	1, 1, 1, 1,
	-1, 1, 0, 1,
}

// QuadLayout puts the position at location 0 and the UV at location 1
func QuadLayout() []Element {
	return []Element{
		{ElementType: DataTypeVec2},
		{ElementType: DataTypeVec2},
	}
}

// NewQuad uploads QuadVertices into a new vertex array
func NewQuad() VertexArray {

	vbo := NewVertexBuffer(QuadLayout()...)
	vbo.SetData(QuadVertices, BufUsage_Static_Draw)

	vao := NewVertexArray()
	vao.SetVertexBuffer(vbo)
	vao.UnBind()

	return vao
}
