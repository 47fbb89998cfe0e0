package trimesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FrustumPlanes holds the six planes of a view frustum, each pointing inward, in the order
// near, far, left, right, top, bottom. Use it with FrustumAABB and FrustumOBB to cull
// boxes against a camera.
type FrustumPlanes struct {
	Planes [6]Vector4
}

// NewFrustumPlanes extracts the six frustum planes from a world-to-projection matrix
// (the product of the projection and view matrices).
func NewFrustumPlanes(worldToProjection mgl32.Mat4) FrustumPlanes {
	return FrustumPlanes{
		Planes: [6]Vector4{
			frustumPlane(worldToProjection, 2, 1),  // near
			frustumPlane(worldToProjection, 2, -1), // far
			frustumPlane(worldToProjection, 0, 1),  // left
			frustumPlane(worldToProjection, 0, -1), // right
			frustumPlane(worldToProjection, 1, -1), // top
			frustumPlane(worldToProjection, 1, 1),  // bottom
		},
	}
}

// frustumPlane combines row 3 of the matrix with +/- row `row` and normalizes by the
// length of the resulting plane normal.
func frustumPlane(matrix mgl32.Mat4, row int, sign float32) Vector4 {
	plane := NewVector4(
		matrix.At(3, 0)+sign*matrix.At(row, 0),
		matrix.At(3, 1)+sign*matrix.At(row, 1),
		matrix.At(3, 2)+sign*matrix.At(row, 2),
		matrix.At(3, 3)+sign*matrix.At(row, 3),
	)
	return plane.Scale(1.0 / plane.XYZ().Magnitude())
}
