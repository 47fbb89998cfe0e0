package trimesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func unitBox() CollisionBBox {
	return NewCollisionBBox(NewVector3(0, 0, 0), NewVector3(1, 1, 1))
}

func TestRayAABB(t *testing.T) {

	box := unitBox()

	// Straight through the middle
	assert.True(t, RayAABB(NewRayBBox(NewVector3(-1, 0.5, 0.5), NewVector3(2, 0.5, 0.5)), box))

	// Starting inside
	assert.True(t, RayAABB(NewRayBBox(NewVector3(0.5, 0.5, 0.5), NewVector3(5, 5, 5)), box))

	// Stops short of the box
	assert.False(t, RayAABB(NewRayBBox(NewVector3(-3, 0.5, 0.5), NewVector3(-1.5, 0.5, 0.5)), box))

	// Passes beside the box
	assert.False(t, RayAABB(NewRayBBox(NewVector3(-1, 2, 0.5), NewVector3(2, 2, 0.5)), box))

	// Diagonal segment whose own bounds overlap the box but whose line misses it; only the
	// cross-product axes separate this one
	assert.False(t, RayAABB(NewRayBBox(NewVector3(-0.9, 0.9, 0.5), NewVector3(0.9, 2.7, 0.5)), box))

}

func TestSphereAABB(t *testing.T) {

	box := unitBox()

	// Center inside
	assert.True(t, SphereAABB(NewVector3(0.5, 0.5, 0.5), 0.1, box))

	// Touching a face
	assert.True(t, SphereAABB(NewVector3(2, 0.5, 0.5), 1.0, box))
	assert.False(t, SphereAABB(NewVector3(2, 0.5, 0.5), 0.9, box))

	// Near a corner, where the per-axis distances combine
	assert.True(t, SphereAABB(NewVector3(2, 2, 2), 1.8, box))
	assert.False(t, SphereAABB(NewVector3(2, 2, 2), 1.7, box))

}

func TestAABBOverlap(t *testing.T) {

	a := unitBox()

	assert.True(t, AABBOverlap(a, NewCollisionBBox(NewVector3(0.5, 0.5, 0.5), NewVector3(2, 2, 2))))

	// Sharing a face still counts
	assert.True(t, AABBOverlap(a, NewCollisionBBox(NewVector3(1, 0, 0), NewVector3(2, 1, 1))))

	assert.False(t, AABBOverlap(a, NewCollisionBBox(NewVector3(1.1, 0, 0), NewVector3(2, 1, 1))))

}

func TestSphereSphere(t *testing.T) {

	assert.True(t, SphereSphere(NewVector3(0, 0, 0), 1, NewVector3(1.5, 0, 0), 1))
	assert.True(t, SphereSphere(NewVector3(0, 0, 0), 1, NewVector3(2, 0, 0), 1))
	assert.False(t, SphereSphere(NewVector3(0, 0, 0), 1, NewVector3(2.5, 0, 0), 1))

}

func TestPlaneAABB(t *testing.T) {

	// The plane x = 0.5 with a normal pointing +X
	plane := NewPlane(WorldRight, -0.5)

	assert.Equal(t, Intersecting, PlaneAABB(plane, unitBox()))
	assert.Equal(t, Inside, PlaneAABB(plane, NewCollisionBBox(NewVector3(2, 0, 0), NewVector3(3, 1, 1))))
	assert.Equal(t, Outside, PlaneAABB(plane, NewCollisionBBox(NewVector3(-3, 0, 0), NewVector3(-2, 1, 1))))

}

func TestPlaneOBB(t *testing.T) {

	plane := NewPlane(WorldRight, -2)

	axisAligned := OrientedBBox{
		Center:  NewVector3(0, 0, 0),
		Extents: NewVector3(1, 1, 1),
		AxisX:   WorldRight,
		AxisY:   WorldUp,
		AxisZ:   WorldBackward,
	}
	assert.Equal(t, Outside, PlaneOBB(plane, axisAligned))

	axisAligned.Center = NewVector3(4, 0, 0)
	assert.Equal(t, Inside, PlaneOBB(plane, axisAligned))

	// Rotated 45 degrees about Z, the box reaches sqrt(2) along X and straddles the plane
	// that its axis-aligned extents alone would not reach
	halfRoot2 := float32(0.70710678)
	rotated := OrientedBBox{
		Center:  NewVector3(0.7, 0, 0),
		Extents: NewVector3(1, 1, 1),
		AxisX:   NewVector3(halfRoot2, halfRoot2, 0),
		AxisY:   NewVector3(-halfRoot2, halfRoot2, 0),
		AxisZ:   WorldBackward,
	}
	assert.Equal(t, Intersecting, PlaneOBB(plane, rotated))

}

func testFrustum() FrustumPlanes {
	projection := mgl32.Perspective(mgl32.DegToRad(90), 1, 1, 100)
	view := mgl32.LookAtV(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 0, -1},
		mgl32.Vec3{0, 1, 0},
	)
	return NewFrustumPlanes(projection.Mul4(view))
}

func TestFrustumAABB(t *testing.T) {

	frustum := testFrustum()

	boxAt := func(center Vector3, halfSize float32) CollisionBBox {
		grow := NewVector3(halfSize, halfSize, halfSize)
		return NewCollisionBBox(center.Sub(grow), center.Add(grow))
	}

	assert.Equal(t, Inside, FrustumAABB(frustum, boxAt(NewVector3(0, 0, -10), 0.5)))

	// Behind the camera
	assert.Equal(t, Outside, FrustumAABB(frustum, boxAt(NewVector3(0, 0, 10), 0.5)))

	// Beyond the far plane
	assert.Equal(t, Outside, FrustumAABB(frustum, boxAt(NewVector3(0, 0, -200), 0.5)))

	// Off to the side; at z = -10 a 90 degree frustum spans x in [-10, 10]
	assert.Equal(t, Outside, FrustumAABB(frustum, boxAt(NewVector3(30, 0, -10), 0.5)))

	// Straddling the near plane
	assert.Equal(t, Intersecting, FrustumAABB(frustum, boxAt(NewVector3(0, 0, -1), 0.5)))

	// Straddling the right plane
	assert.Equal(t, Intersecting, FrustumAABB(frustum, boxAt(NewVector3(10, 0, -10), 0.5)))

}

func TestFrustumOBB(t *testing.T) {

	frustum := testFrustum()

	obbAt := func(center Vector3) OrientedBBox {
		return OrientedBBox{
			Center:  center,
			Extents: NewVector3(0.5, 0.5, 0.5),
			AxisX:   WorldRight,
			AxisY:   WorldUp,
			AxisZ:   WorldBackward,
		}
	}

	assert.Equal(t, Inside, FrustumOBB(frustum, obbAt(NewVector3(0, 0, -10))))
	assert.Equal(t, Outside, FrustumOBB(frustum, obbAt(NewVector3(0, 0, 10))))
	assert.Equal(t, Intersecting, FrustumOBB(frustum, obbAt(NewVector3(0, 0, -1))))

}

func TestIntersectResultString(t *testing.T) {
	assert.Equal(t, "inside", Inside.String())
	assert.Equal(t, "outside", Outside.String())
	assert.Equal(t, "intersecting", Intersecting.String())
}
