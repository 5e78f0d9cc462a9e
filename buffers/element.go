package buffers

import (
	"github.com/bloeys/learnopengl/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Element is one attribute of a vertex (e.g. a Vec3 at an offset of 12 bytes)
type Element struct {
	Offset int
	ElementType
}

type ElementType uint8

const (
	DataTypeUnknown ElementType = iota
	DataTypeFloat32
	DataTypeVec2
	DataTypeVec3
	DataTypeVec4
)

func (dt ElementType) GLType() uint32 {

	switch dt {
	case DataTypeFloat32, DataTypeVec2, DataTypeVec3, DataTypeVec4:
		return gl.FLOAT

	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// CompCount returns the number of components in the element (e.g. for Vec2 its 2)
func (dt ElementType) CompCount() int32 {

	switch dt {
	case DataTypeFloat32:
		return 1
	case DataTypeVec2:
		return 2
	case DataTypeVec3:
		return 3
	case DataTypeVec4:
		return 4

	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// Size returns the total size in bytes (e.g. for vec3 its 3*4=12 bytes)
func (dt ElementType) Size() int32 {
	return dt.CompCount() * 4
}

func (dt ElementType) String() string {

	switch dt {
	case DataTypeFloat32:
		return "float32"
	case DataTypeVec2:
		return "Vec2"
	case DataTypeVec3:
		return "Vec3"
	case DataTypeVec4:
		return "Vec4"
	default:
		return "Unknown"
	}
}

// CalcLayout fills the offsets of layout in place and returns the stride of one vertex
func CalcLayout(layout []Element) (stride int32) {

	for i := 0; i < len(layout); i++ {
		layout[i].Offset = int(stride)
		stride += layout[i].Size()
	}

	return stride
}
