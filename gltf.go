package trimesh

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrNoTriangles is returned by the glTF loaders when the document contains no triangle
// primitives at all.
var ErrNoTriangles = errors.New("trimesh: glTF document contains no triangle primitives")

// LoadGLTFFile loads a .gltf or .glb file from the filepath given and returns the combined
// vertex and element buffers of every triangle primitive in the document, ready to be passed
// to NewTriangleMeshShape. See LoadGLTFData for the details of what is read and what is
// skipped.
func LoadGLTFFile(path string) ([]Vector3, []uint32, error) {

	fileData, err := os.ReadFile(path)

	if err != nil {
		return nil, nil, fmt.Errorf("trimesh: reading %s: %w", path, err)
	}

	return LoadGLTFData(fileData)

}

// LoadGLTFData loads a .gltf or .glb file from the byte data given. All triangle primitives
// of all meshes are concatenated into a single vertex buffer and a single element buffer,
// with each primitive's indices rebased onto the combined vertex buffer. Primitives with a
// mode other than triangles, or without indices, are skipped; only positions are read, since
// a collision mesh has no use for normals, texture coordinates, or materials. Node transforms
// are not applied; the buffers come back in mesh-local space.
func LoadGLTFData(data []byte) ([]Vector3, []uint32, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	err := decoder.Decode(doc)

	if err != nil {
		return nil, nil, fmt.Errorf("trimesh: decoding glTF document: %w", err)
	}

	vertices := []Vector3{}
	elements := []uint32{}

	for _, mesh := range doc.Meshes {

		for _, primitive := range mesh.Primitives {

			if primitive.Mode != gltf.PrimitiveTriangles || primitive.Indices == nil {
				continue
			}

			posAccessor, exists := primitive.Attributes[gltf.POSITION]
			if !exists {
				continue
			}

			posBuffer := [][3]float32{}
			vertPos, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], posBuffer)

			if err != nil {
				return nil, nil, fmt.Errorf("trimesh: reading positions of mesh %q: %w", mesh.Name, err)
			}

			indexBuffer := []uint32{}

			indices, err := modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], indexBuffer)

			if err != nil {
				return nil, nil, fmt.Errorf("trimesh: reading indices of mesh %q: %w", mesh.Name, err)
			}

			base := uint32(len(vertices))

			for _, v := range vertPos {
				vertices = append(vertices, NewVector3(v[0], v[1], v[2]))
			}

			for _, index := range indices {
				elements = append(elements, base+index)
			}

		}

	}

	if len(elements) == 0 {
		return nil, nil, ErrNoTriangles
	}

	return vertices, elements, nil

}
