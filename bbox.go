package trimesh

// CollisionBBox is an axis-aligned bounding box that stores both its min/max corners and the
// equivalent center/extents form at the same time, so that the intersection kernels can use
// whichever form is cheapest without re-deriving it per test.
type CollisionBBox struct {
	Min     Vector3 // The minimum corner of the box
	Max     Vector3 // The maximum corner of the box
	Center  Vector3 // The center of the box; always (Min + Max) / 2
	Extents Vector3 // The half-size of the box; always (Max - Min) / 2
}

// NewCollisionBBox creates a new CollisionBBox spanning from min to max.
// min must be less than or equal to max on every axis.
func NewCollisionBBox(min, max Vector3) CollisionBBox {
	return CollisionBBox{
		Min:     min,
		Max:     max,
		Center:  min.Add(max).Scale(0.5),
		Extents: max.Sub(min).Scale(0.5),
	}
}

// Expanded returns a copy of the CollisionBBox grown by the margin provided on all sides.
func (box CollisionBBox) Expanded(margin float32) CollisionBBox {
	grow := NewVector3(margin, margin, margin)
	return CollisionBBox{
		Min:     box.Min.Sub(grow),
		Max:     box.Max.Add(grow),
		Center:  box.Center,
		Extents: box.Extents.Add(grow),
	}
}

// Volume returns the product of the box's extents. Relative size is all the traversal
// code compares, so the factor of 8 to a true volume is left out.
func (box CollisionBBox) Volume() float32 {
	return box.Extents.X * box.Extents.Y * box.Extents.Z
}

// ContainsPoint returns true if the point provided lies inside the closed box.
func (box CollisionBBox) ContainsPoint(point Vector3) bool {
	return point.X >= box.Min.X && point.X <= box.Max.X &&
		point.Y >= box.Min.Y && point.Y <= box.Max.Y &&
		point.Z >= box.Min.Z && point.Z <= box.Max.Z
}

// RayBBox is a ray segment from Start to End, rewritten into the form the ray/AABB
// separating-axis kernel consumes directly: C is the segment midpoint, W is the full
// segment direction (End - Start), and V is the componentwise absolute half-extent
// of the segment's own tight AABB. All three are precomputed once at construction
// because a single ray is tested against many boxes.
type RayBBox struct {
	Start Vector3
	End   Vector3
	C     Vector3
	V     Vector3
	W     Vector3
}

// NewRayBBox creates a new RayBBox for the segment from start to end.
func NewRayBBox(start, end Vector3) RayBBox {
	c := start.Add(end).Scale(0.5)
	w := end.Sub(start)
	v := w.Abs().Scale(0.5)
	return RayBBox{
		Start: start,
		End:   end,
		C:     c,
		V:     v,
		W:     w,
	}
}

// OrientedBBox is a bounding box with an arbitrary (orthonormal) orientation, given by its
// three axis vectors. It is only a query primitive; the hierarchy itself stores axis-aligned boxes.
type OrientedBBox struct {
	Center  Vector3
	Extents Vector3
	AxisX   Vector3
	AxisY   Vector3
	AxisZ   Vector3
}
