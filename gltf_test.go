package trimesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A single right triangle: positions (0,0,0), (1,0,0), (0,1,0) as little-endian float32
// triples followed by the uint16 indices 0, 1, 2, all in one embedded buffer.
const triangleGLTF = `{
	"asset": {"version": "2.0"},
	"buffers": [{"byteLength": 42, "uri": "data:application/octet-stream;base64,AAAAAAAAAAAAAAAAAACAPwAAAAAAAAAAAAAAAAAAgD8AAAAAAAABAAIA"}],
	"bufferViews": [
		{"buffer": 0, "byteOffset": 0, "byteLength": 36},
		{"buffer": 0, "byteOffset": 36, "byteLength": 6}
	],
	"accessors": [
		{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3", "min": [0, 0, 0], "max": [1, 1, 0]},
		{"bufferView": 1, "componentType": 5123, "count": 3, "type": "SCALAR"}
	],
	"meshes": [{"name": "tri", "primitives": [{"attributes": {"POSITION": 0}, "indices": 1}]}]
}`

func TestLoadGLTFData(t *testing.T) {

	vertices, elements, err := LoadGLTFData([]byte(triangleGLTF))
	require.NoError(t, err)

	require.Len(t, vertices, 3)
	require.Len(t, elements, 3)

	assert.True(t, vertices[0].Equals(NewVector3(0, 0, 0)))
	assert.True(t, vertices[1].Equals(NewVector3(1, 0, 0)))
	assert.True(t, vertices[2].Equals(NewVector3(0, 1, 0)))
	assert.Equal(t, []uint32{0, 1, 2}, elements)

	shape := NewTriangleMeshShape(vertices, elements)
	hit := shape.FindFirstHit(NewVector3(0.25, 0.25, 1), NewVector3(0.25, 0.25, -1))
	assert.Equal(t, 0, hit.Triangle)

}

func TestLoadGLTFDataNoTriangles(t *testing.T) {

	_, _, err := LoadGLTFData([]byte(`{"asset": {"version": "2.0"}}`))
	assert.ErrorIs(t, err, ErrNoTriangles)

}

func TestLoadGLTFDataMalformed(t *testing.T) {

	_, _, err := LoadGLTFData([]byte("not a gltf document"))
	assert.Error(t, err)

}

func TestLoadGLTFFileMissing(t *testing.T) {

	_, _, err := LoadGLTFFile("does-not-exist.glb")
	assert.Error(t, err)

}
