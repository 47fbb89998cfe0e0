package trimesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The triangle used throughout; it lies in the y = 0 plane with its normal pointing +Y.
func testTrianglePoints() (p0, p1, p2 Vector3) {
	return NewVector3(0, 0, 0), NewVector3(1, 0, 1), NewVector3(1, 0, 0)
}

func TestIntersectTriangleRay(t *testing.T) {

	p0, p1, p2 := testTrianglePoints()

	// Straight down through the interior
	ray := NewRayBBox(NewVector3(0.6, 1, 0.2), NewVector3(0.6, -1, 0.2))
	fraction, baryB, baryC := intersectTriangleRay(ray, p0, p1, p2)
	assert.InDelta(t, 0.5, fraction, 1e-5)
	assert.InDelta(t, 0.2, baryB, 1e-5)
	assert.InDelta(t, 0.4, baryC, 1e-5)

	// The same segment from below; back faces are not culled
	fraction, _, _ = intersectTriangleRay(NewRayBBox(NewVector3(0.6, -1, 0.2), NewVector3(0.6, 1, 0.2)), p0, p1, p2)
	assert.InDelta(t, 0.5, fraction, 1e-5)

	// Down past the triangle entirely
	fraction, _, _ = intersectTriangleRay(NewRayBBox(NewVector3(2, 1, 2), NewVector3(2, -1, 2)), p0, p1, p2)
	assert.Equal(t, float32(1), fraction)

	// Stops above the triangle; the plane hit lies beyond the segment's end
	fraction, _, _ = intersectTriangleRay(NewRayBBox(NewVector3(0.6, 1, 0.2), NewVector3(0.6, 0.5, 0.2)), p0, p1, p2)
	assert.GreaterOrEqual(t, fraction, float32(1))

	// Parallel to the triangle plane
	fraction, _, _ = intersectTriangleRay(NewRayBBox(NewVector3(-1, 0, 0.2), NewVector3(2, 0, 0.2)), p0, p1, p2)
	assert.Equal(t, float32(1), fraction)

	// Degenerate triangle
	point := NewVector3(0.5, 0, 0.5)
	fraction, _, _ = intersectTriangleRay(ray, point, point, point)
	assert.Equal(t, float32(1), fraction)

}

func TestOverlapTriangleSphere(t *testing.T) {

	p0, p1, p2 := testTrianglePoints()

	// Hovering over the interior
	assert.True(t, overlapTriangleSphere(p0, p1, p2, NewVector3(0.5, 0.2, 0.3), 0.25))
	assert.False(t, overlapTriangleSphere(p0, p1, p2, NewVector3(0.5, 0.5, 0.3), 0.25))

	// Near the vertex at (1, 0, 0), outside every edge
	assert.True(t, overlapTriangleSphere(p0, p1, p2, NewVector3(1.3, 0, -0.3), 0.5))
	assert.False(t, overlapTriangleSphere(p0, p1, p2, NewVector3(1.3, 0, -0.3), 0.3))

	// Near the middle of the edge from p2 to p0
	assert.True(t, overlapTriangleSphere(p0, p1, p2, NewVector3(0.5, 0, -0.2), 0.25))
	assert.False(t, overlapTriangleSphere(p0, p1, p2, NewVector3(0.5, 0, -0.3), 0.25))

}

func TestSweepQuadraticRoot(t *testing.T) {

	// Roots 0.5 and 1.5; the one in range wins
	assert.InDelta(t, 0.5, sweepQuadraticRoot(1, -2, 0.75), 1e-5)

	// Roots 1 and 3
	assert.InDelta(t, 1, sweepQuadraticRoot(1, -4, 3), 1e-5)

	// Roots 0.25 and 0.75; the smaller wins
	assert.InDelta(t, 0.25, sweepQuadraticRoot(1, -1, 0.1875), 1e-5)

	// No real roots; whatever comes back must fail a [0, 1] range test
	root := sweepQuadraticRoot(1, 0, 1)
	assert.False(t, root >= 0 && root <= 1)

}

func TestSweepTriangleSphere(t *testing.T) {

	p0, p1, p2 := testTrianglePoints()

	// Descending onto the interior; contact when the center is one radius above the plane
	fraction := sweepTriangleSphere(p0, p1, p2, NewVector3(0.3, 1, 0.1), NewVector3(0.3, -1, 0.1), 0.25)
	assert.InDelta(t, 0.375, fraction, 1e-4)

	// Descending onto the vertex at (1, 0, 0)
	fraction = sweepTriangleSphere(p0, p1, p2, NewVector3(1.2, 1, -0.2), NewVector3(1.2, -1, -0.2), 0.3)
	assert.InDelta(t, 0.45, fraction, 1e-4)

	// The same descent with a radius too small to reach the vertex
	fraction = sweepTriangleSphere(p0, p1, p2, NewVector3(1.2, 1, -0.2), NewVector3(1.2, -1, -0.2), 0.25)
	assert.Equal(t, float32(1), fraction)

	// Nowhere near the triangle
	fraction = sweepTriangleSphere(p0, p1, p2, NewVector3(5, 1, 5), NewVector3(5, -1, 5), 0.25)
	assert.Equal(t, float32(1), fraction)

}
