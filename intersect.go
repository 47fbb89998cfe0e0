package trimesh

import (
	"github.com/solarlune/trimesh/math32"
)

// IntersectResult indicates which side of a plane (or set of planes) a volume lies on.
type IntersectResult int

const (
	Inside       IntersectResult = iota // The volume lies entirely on the positive side
	Outside                             // The volume lies entirely on the negative side
	Intersecting                        // The volume straddles the plane(s)
)

func (i IntersectResult) String() string {
	switch i {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	default:
		return "intersecting"
	}
}

// RayAABB returns true if the ray segment overlaps the box. The test is the separating-axis
// test between the segment and the box: the three face axes of the segment's own AABB,
// followed by the three cross-product axes of the segment direction with the box axes.
func RayAABB(ray RayBBox, box CollisionBBox) bool {

	v := ray.V
	w := ray.W.Scale(0.5) // Half the segment, in the same units as the half-extents in v
	h := box.Extents
	c := ray.C.Sub(box.Center)

	if math32.Abs(c.X) > v.X+h.X || math32.Abs(c.Y) > v.Y+h.Y || math32.Abs(c.Z) > v.Z+h.Z {
		return false
	}

	if math32.Abs(c.Y*w.Z-c.Z*w.Y) > h.Y*v.Z+h.Z*v.Y ||
		math32.Abs(c.X*w.Z-c.Z*w.X) > h.X*v.Z+h.Z*v.X ||
		math32.Abs(c.X*w.Y-c.Y*w.X) > h.X*v.Y+h.Y*v.X {
		return false
	}

	return true

}

// SphereAABB returns true if the sphere given by center and radius overlaps the closed box.
func SphereAABB(center Vector3, radius float32, box CollisionBBox) bool {

	// Sum of the per-axis clamped distances from the center to the box surface
	a := box.Min.Sub(center)
	b := center.Sub(box.Max)
	a.X = math32.Max(a.X, 0)
	a.Y = math32.Max(a.Y, 0)
	a.Z = math32.Max(a.Z, 0)
	b.X = math32.Max(b.X, 0)
	b.Y = math32.Max(b.Y, 0)
	b.Z = math32.Max(b.Z, 0)

	e := a.Add(b)
	return e.Dot(e) <= radius*radius

}

// AABBOverlap returns true if the two boxes overlap.
func AABBOverlap(a, b CollisionBBox) bool {
	if a.Min.X > b.Max.X || b.Min.X > a.Max.X ||
		a.Min.Y > b.Max.Y || b.Min.Y > a.Max.Y ||
		a.Min.Z > b.Max.Z || b.Min.Z > a.Max.Z {
		return false
	}
	return true
}

// SphereSphere returns true if the two spheres overlap.
func SphereSphere(center1 Vector3, radius1 float32, center2 Vector3, radius2 float32) bool {
	h := center1.Sub(center2)
	radiusSum := radius1 + radius2
	return h.Dot(h) <= radiusSum*radiusSum
}

// PlaneAABB classifies the box against the plane provided.
func PlaneAABB(plane Vector4, box CollisionBBox) IntersectResult {

	extents := box.Extents
	e := extents.X*math32.Abs(plane.X) + extents.Y*math32.Abs(plane.Y) + extents.Z*math32.Abs(plane.Z)
	s := plane.DotPoint(box.Center)

	if s-e > 0 {
		return Inside
	} else if s+e < 0 {
		return Outside
	}
	return Intersecting

}

// PlaneOBB classifies the oriented box against the plane provided.
func PlaneOBB(plane Vector4, obb OrientedBBox) IntersectResult {

	n := plane.XYZ()
	e := obb.Extents.X*math32.Abs(obb.AxisX.Dot(n)) + obb.Extents.Y*math32.Abs(obb.AxisY.Dot(n)) + obb.Extents.Z*math32.Abs(obb.AxisZ.Dot(n))
	s := obb.Center.Dot(n) + plane.W

	if s-e > 0 {
		return Inside
	} else if s+e < 0 {
		return Outside
	}
	return Intersecting

}

// FrustumAABB classifies the box against the six planes of the frustum provided.
func FrustumAABB(frustum FrustumPlanes, box CollisionBBox) IntersectResult {
	isIntersecting := false
	for i := 0; i < 6; i++ {
		result := PlaneAABB(frustum.Planes[i], box)
		if result == Outside {
			return Outside
		} else if result == Intersecting {
			isIntersecting = true
		}
	}
	if isIntersecting {
		return Intersecting
	}
	return Inside
}

// FrustumOBB classifies the oriented box against the six planes of the frustum provided.
func FrustumOBB(frustum FrustumPlanes, obb OrientedBBox) IntersectResult {
	isIntersecting := false
	for i := 0; i < 6; i++ {
		result := PlaneOBB(frustum.Planes[i], obb)
		if result == Outside {
			return Outside
		} else if result == Intersecting {
			isIntersecting = true
		}
	}
	if isIntersecting {
		return Intersecting
	}
	return Inside
}
