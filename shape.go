package trimesh

import (
	"sort"

	"github.com/solarlune/trimesh/math32"
)

// Node is a single node of a TriangleMeshShape's bounding-volume hierarchy. Nodes reference
// each other by index into the shape's node slice; -1 encodes an absent child. A node is a
// leaf exactly when ElementIndex is not -1, in which case ElementIndex is the index of the
// first element of the single triangle the leaf owns (triangle id * 3) and the child indices
// are unused.
type Node struct {
	AABB         CollisionBBox
	Left         int
	Right        int
	ElementIndex int
}

// IsLeaf returns true if the Node owns a triangle (rather than two child nodes).
func (node Node) IsLeaf() bool {
	return node.ElementIndex != -1
}

// SphereShape is a sphere used as a query primitive against a TriangleMeshShape. Spheres are
// not accelerated; they only ever appear on the querying side of a test.
type SphereShape struct {
	Center Vector3
	Radius float32
}

// NewSphereShape returns a new SphereShape with the center and radius provided.
func NewSphereShape(center Vector3, radius float32) *SphereShape {
	return &SphereShape{Center: center, Radius: radius}
}

// TriangleMeshShape is a static triangle mesh with a bounding-volume hierarchy built over it,
// ready to answer ray, sphere, swept-sphere, and mesh overlap queries. The shape references
// the vertex and element buffers it was built from without copying them; the caller must keep
// those buffers alive and unmodified for as long as the shape is used.
// A built shape is immutable, so any number of goroutines may run queries against it
// concurrently without locking.
type TriangleMeshShape struct {
	Vertices []Vector3 // The vertex buffer the shape was built from; externally owned
	Elements []uint32  // The element buffer the shape was built from; externally owned
	Nodes    []Node    // The nodes of the hierarchy; children always precede their parents
	Root     int       // The index of the root node in Nodes, or -1 for an empty mesh
}

// NewTriangleMeshShape builds a TriangleMeshShape over the buffers provided. Each consecutive
// triple in elements indexes into vertices and defines one triangle. The hierarchy is built
// by recursive median splits of the triangle centroids along the longest axis of the
// triangle set's bounding box; build time is O(n log n) for well-behaved meshes. An empty
// element buffer produces a valid shape that reports no hits for every query.
func NewTriangleMeshShape(vertices []Vector3, elements []uint32) *TriangleMeshShape {

	shape := &TriangleMeshShape{
		Vertices: vertices,
		Elements: elements,
		Root:     -1,
	}

	numTriangles := len(elements) / 3
	if numTriangles <= 0 {
		return shape
	}

	triangles := make([]int, numTriangles)
	centroids := make([]Vector3, numTriangles)
	for i := 0; i < numTriangles; i++ {
		triangles[i] = i

		elementIndex := i * 3
		centroid := vertices[elements[elementIndex]].
			Add(vertices[elements[elementIndex+1]]).
			Add(vertices[elements[elementIndex+2]]).
			Scale(1.0 / 3.0)
		centroids[i] = centroid
	}

	workBuffer := make([]int, numTriangles*2)

	shape.Nodes = make([]Node, 0, numTriangles*2-1)
	shape.Root = shape.subdivide(triangles, centroids, workBuffer)

	return shape

}

// subdivide recursively builds the hierarchy for the triangle set provided, appends its nodes
// to the shape in post-order (children before parents), and returns the index of the subtree's
// root node. centroids is indexed by triangle id; workBuffer is shared scratch space of at
// least twice the current set's length, reusable across recursion because each level copies
// its partition back before descending.
func (shape *TriangleMeshShape) subdivide(triangles []int, centroids []Vector3, workBuffer []int) int {

	numTriangles := len(triangles)
	if numTriangles == 0 {
		return -1
	}

	// Find the bounding box of the triangle vertices and the mean of the centroids
	var median Vector3
	min := shape.Vertices[shape.Elements[triangles[0]*3]]
	max := min
	for _, triangle := range triangles {
		elementIndex := triangle * 3
		for j := 0; j < 3; j++ {
			vertex := shape.Vertices[shape.Elements[elementIndex+j]]

			min.X = math32.Min(min.X, vertex.X)
			min.Y = math32.Min(min.Y, vertex.Y)
			min.Z = math32.Min(min.Z, vertex.Z)

			max.X = math32.Max(max.X, vertex.X)
			max.Y = math32.Max(max.Y, vertex.Y)
			max.Z = math32.Max(max.Z, vertex.Z)
		}

		median = median.Add(centroids[triangle])
	}
	median = median.Scale(1.0 / float32(numTriangles))

	if numTriangles == 1 {
		shape.Nodes = append(shape.Nodes, Node{
			AABB:         NewCollisionBBox(min, max),
			Left:         -1,
			Right:        -1,
			ElementIndex: triangles[0] * 3,
		})
		return len(shape.Nodes) - 1
	}

	// Sort the axes by the extent of the bounding box along them
	axisLengths := [3]float32{
		max.X - min.X,
		max.Y - min.Y,
		max.Z - min.Z,
	}

	axisOrder := []int{0, 1, 2}
	sort.Slice(axisOrder, func(a, b int) bool {
		return axisLengths[axisOrder[a]] > axisLengths[axisOrder[b]]
	})

	// Try splitting at the longest axis; if one side comes up empty, the next longest, and
	// then the remaining one
	leftCount := 0
	rightCount := 0
	for _, axis := range axisOrder {

		leftCount = 0
		rightCount = 0
		for _, triangle := range triangles {
			side := centroids[triangle].Axis(axis) - median.Axis(axis)
			if side >= 0 {
				workBuffer[leftCount] = triangle
				leftCount++
			} else {
				workBuffer[numTriangles+rightCount] = triangle
				rightCount++
			}
		}

		if leftCount != 0 && rightCount != 0 {
			break
		}

	}

	if leftCount == 0 || rightCount == 0 {
		// Every axis put all centroids on one side; halve the set blindly so that the
		// recursion always terminates
		leftCount = numTriangles / 2
		rightCount = numTriangles - leftCount
	} else {
		copy(triangles[:leftCount], workBuffer[:leftCount])
		copy(triangles[leftCount:], workBuffer[numTriangles:numTriangles+rightCount])
	}

	leftIndex := shape.subdivide(triangles[:leftCount], centroids, workBuffer)
	rightIndex := shape.subdivide(triangles[leftCount:leftCount+rightCount], centroids, workBuffer)

	shape.Nodes = append(shape.Nodes, Node{
		AABB:         NewCollisionBBox(min, max),
		Left:         leftIndex,
		Right:        rightIndex,
		ElementIndex: -1,
	})
	return len(shape.Nodes) - 1

}

// trianglePoints returns the three vertices of the triangle whose first element index is
// elementIndex.
func (shape *TriangleMeshShape) trianglePoints(elementIndex int) (p0, p1, p2 Vector3) {
	p0 = shape.Vertices[shape.Elements[elementIndex]]
	p1 = shape.Vertices[shape.Elements[elementIndex+1]]
	p2 = shape.Vertices[shape.Elements[elementIndex+2]]
	return
}

func (shape *TriangleMeshShape) isLeaf(nodeIndex int) bool {
	return shape.Nodes[nodeIndex].ElementIndex != -1
}

func (shape *TriangleMeshShape) volume(nodeIndex int) float32 {
	return shape.Nodes[nodeIndex].AABB.Volume()
}

// MinDepth returns the depth of the shallowest leaf of the hierarchy, counting the root as
// depth 1. An empty shape has a MinDepth of 0.
func (shape *TriangleMeshShape) MinDepth() int {
	if shape.Root < 0 {
		return 0
	}
	var visit func(level, nodeIndex int) int
	visit = func(level, nodeIndex int) int {
		node := shape.Nodes[nodeIndex]
		if node.ElementIndex == -1 {
			return math32.Min(visit(level+1, node.Left), visit(level+1, node.Right))
		}
		return level
	}
	return visit(1, shape.Root)
}

// MaxDepth returns the depth of the deepest leaf of the hierarchy, counting the root as
// depth 1. An empty shape has a MaxDepth of 0.
func (shape *TriangleMeshShape) MaxDepth() int {
	if shape.Root < 0 {
		return 0
	}
	var visit func(level, nodeIndex int) int
	visit = func(level, nodeIndex int) int {
		node := shape.Nodes[nodeIndex]
		if node.ElementIndex == -1 {
			return math32.Max(visit(level+1, node.Left), visit(level+1, node.Right))
		}
		return level
	}
	return visit(1, shape.Root)
}

// AverageDepth returns the mean depth over all leaves of the hierarchy.
func (shape *TriangleMeshShape) AverageDepth() float32 {
	if shape.Root < 0 {
		return 0
	}
	var visit func(level, nodeIndex int) float32
	visit = func(level, nodeIndex int) float32 {
		node := shape.Nodes[nodeIndex]
		if node.ElementIndex == -1 {
			return visit(level+1, node.Left) + visit(level+1, node.Right)
		}
		return float32(level)
	}
	depthSum := visit(1, shape.Root)
	leafCount := len(shape.Elements) / 3
	return depthSum / float32(leafCount)
}

// BalancedDepth returns log2 of the triangle count: the number of levels below the root in a
// perfectly balanced hierarchy over the same triangle count. MinDepth, MaxDepth and
// AverageDepth count the root as depth 1, so a perfectly balanced hierarchy reports one more
// than this value from them.
func (shape *TriangleMeshShape) BalancedDepth() float32 {
	return math32.Log2(float32(len(shape.Elements) / 3))
}
