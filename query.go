package trimesh

import (
	"github.com/solarlune/trimesh/math32"
)

// TraceHit is the result of a first-hit ray query. A Fraction of 1 with a Triangle of -1 means
// the ray hit nothing; otherwise Fraction is the hit's position along the ray as a value in
// [0, 1), Triangle is the index of the triangle that was struck, and B and C are the
// barycentric coordinates of the hit point with respect to that triangle's second and third
// vertices.
type TraceHit struct {
	Fraction float32
	Triangle int
	B, C     float32
}

// FindFirstHit traces the ray segment from rayStart to rayEnd through the mesh and returns the
// hit nearest to rayStart. Long rays are traced in chunks of at least 100 units so that distant
// geometry is only visited when every nearer chunk came up empty; the returned Fraction is
// always relative to the full segment.
func (shape *TriangleMeshShape) FindFirstHit(rayStart, rayEnd Vector3) TraceHit {

	hit := TraceHit{Fraction: 1, Triangle: -1}

	if shape.Root < 0 {
		return hit
	}

	rayDir := rayEnd.Sub(rayStart)
	traceDist := rayDir.Magnitude()
	segmentLen := math32.Max(100, traceDist/20)

	for t := float32(0); t < traceDist; t += segmentLen {

		segStart := t / traceDist
		segEnd := math32.Min(t+segmentLen, traceDist) / traceDist

		ray := NewRayBBox(
			rayStart.Add(rayDir.Scale(segStart)),
			rayStart.Add(rayDir.Scale(segEnd)),
		)

		shape.findFirstHit(ray, shape.Root, &hit)

		if hit.Fraction < 1 {
			// Remap the chunk-relative fraction back onto the full segment
			hit.Fraction = segStart*(1-hit.Fraction) + segEnd*hit.Fraction
			break
		}

	}

	return hit

}

func (shape *TriangleMeshShape) findFirstHit(ray RayBBox, nodeIndex int, hit *TraceHit) {

	node := shape.Nodes[nodeIndex]

	if !RayAABB(ray, node.AABB) {
		return
	}

	if node.IsLeaf() {
		p0, p1, p2 := shape.trianglePoints(node.ElementIndex)
		t, baryB, baryC := intersectTriangleRay(ray, p0, p1, p2)
		if t < hit.Fraction {
			hit.Fraction = t
			hit.Triangle = node.ElementIndex / 3
			hit.B = baryB
			hit.C = baryC
		}
		return
	}

	shape.findFirstHit(ray, node.Left, hit)
	shape.findFirstHit(ray, node.Right, hit)

}

// FindAnyHit returns true if the ray segment from rayStart to rayEnd strikes any triangle of
// the mesh. Unlike FindFirstHit it stops at the first triangle struck, in traversal order
// rather than distance order.
func (shape *TriangleMeshShape) FindAnyHit(rayStart, rayEnd Vector3) bool {
	if shape.Root < 0 {
		return false
	}
	return shape.findAnyHitRay(NewRayBBox(rayStart, rayEnd), shape.Root)
}

func (shape *TriangleMeshShape) findAnyHitRay(ray RayBBox, nodeIndex int) bool {

	node := shape.Nodes[nodeIndex]

	if !RayAABB(ray, node.AABB) {
		return false
	}

	if node.IsLeaf() {
		p0, p1, p2 := shape.trianglePoints(node.ElementIndex)
		fraction, _, _ := intersectTriangleRay(ray, p0, p1, p2)
		return fraction < 1
	}

	return shape.findAnyHitRay(ray, node.Left) || shape.findAnyHitRay(ray, node.Right)

}

// FindAnyHitSphere returns true if the sphere provided overlaps any triangle of the mesh.
func (shape *TriangleMeshShape) FindAnyHitSphere(sphere *SphereShape) bool {
	if shape.Root < 0 {
		return false
	}
	return shape.findAnyHitSphere(sphere, shape.Root)
}

func (shape *TriangleMeshShape) findAnyHitSphere(sphere *SphereShape, nodeIndex int) bool {

	node := shape.Nodes[nodeIndex]

	if !SphereAABB(sphere.Center, sphere.Radius, node.AABB) {
		return false
	}

	if node.IsLeaf() {
		p0, p1, p2 := shape.trianglePoints(node.ElementIndex)
		return overlapTriangleSphere(p0, p1, p2, sphere.Center, sphere.Radius)
	}

	return shape.findAnyHitSphere(sphere, node.Left) || shape.findAnyHitSphere(sphere, node.Right)

}

// Sweep moves the sphere provided linearly from its center to target and returns the first
// fraction in [0, 1] of that motion at which it touches the mesh, or 1 if it completes the
// motion untouched. Both subtrees of every visited node are always examined, since a nearer
// node in traversal order is not necessarily the nearer hit.
func (shape *TriangleMeshShape) Sweep(sphere *SphereShape, target Vector3) float32 {
	if shape.Root < 0 {
		return 1
	}
	ray := NewRayBBox(sphere.Center, target)
	return shape.sweep(sphere, target, ray, shape.Root)
}

func (shape *TriangleMeshShape) sweep(sphere *SphereShape, target Vector3, ray RayBBox, nodeIndex int) float32 {

	node := shape.Nodes[nodeIndex]

	// The box is grown by the sphere radius so that the segment test covers the full swept
	// volume
	if !RayAABB(ray, node.AABB.Expanded(sphere.Radius)) {
		return 1
	}

	if node.IsLeaf() {
		p0, p1, p2 := shape.trianglePoints(node.ElementIndex)
		return sweepTriangleSphere(p0, p1, p2, sphere.Center, target, sphere.Radius)
	}

	return math32.Min(
		shape.sweep(sphere, target, ray, node.Left),
		shape.sweep(sphere, target, ray, node.Right),
	)

}

// FindAnyHitMesh walks the hierarchies of both meshes simultaneously, pruning pairs of
// subtrees whose bounding boxes do not overlap and descending into the larger subtree at each
// step. The triangle-level tests at the bottom of the descent are not implemented, so the
// function currently always returns false; the traversal is in place for when they are.
func (shape *TriangleMeshShape) FindAnyHitMesh(other *TriangleMeshShape) bool {
	if shape.Root < 0 || other.Root < 0 {
		return false
	}
	return findAnyHitMesh(shape, other, shape.Root, other.Root)
}

func findAnyHitMesh(shapeA, shapeB *TriangleMeshShape, a, b int) bool {

	if shapeA.isLeaf(a) {
		if shapeB.isLeaf(b) {
			return overlapTriangleTriangle(shapeA, shapeB, a, b)
		}
		return overlapBVTriangle(shapeB, shapeA, b, a)
	}

	if shapeB.isLeaf(b) {
		return overlapBVTriangle(shapeA, shapeB, a, b)
	}

	if !AABBOverlap(shapeA.Nodes[a].AABB, shapeB.Nodes[b].AABB) {
		return false
	}

	if shapeA.volume(a) > shapeB.volume(b) {
		return findAnyHitMesh(shapeA, shapeB, shapeA.Nodes[a].Left, b) ||
			findAnyHitMesh(shapeA, shapeB, shapeA.Nodes[a].Right, b)
	}

	return findAnyHitMesh(shapeA, shapeB, a, shapeB.Nodes[b].Left) ||
		findAnyHitMesh(shapeA, shapeB, a, shapeB.Nodes[b].Right)

}

// overlapTriangleTriangle tests the leaf triangles of two shapes against each other.
// TODO: implement a triangle/triangle separating-axis test; until then every pair misses.
func overlapTriangleTriangle(shapeA, shapeB *TriangleMeshShape, a, b int) bool {
	return false
}

// overlapBVTriangle tests a subtree of one shape against a leaf triangle of the other.
// TODO: descend the subtree against the triangle's bounding box; until then every pair misses.
func overlapBVTriangle(shape, leafShape *TriangleMeshShape, nodeIndex, leafIndex int) bool {
	return false
}
