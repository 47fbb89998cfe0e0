package trimesh

import (
	"github.com/solarlune/trimesh/math32"
)

// intersectTriangleRay runs the Moeller-Trumbore ray-triangle intersection algorithm on the
// segment in ray and the triangle (p0, p1, p2). It returns the hit fraction along the segment
// plus the B and C barycentric coordinates of the hit point. A returned fraction of 1 or
// greater means the triangle was missed (or was struck beyond the segment's end); degenerate
// triangles always miss. Back faces are not culled.
func intersectTriangleRay(ray RayBBox, p0, p1, p2 Vector3) (fraction, baryB, baryC float32) {

	d := ray.End.Sub(ray.Start)

	// Two edges sharing p0
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)

	pv := d.Cross(e2)
	det := e1.Dot(pv)

	// If the determinant is near zero, the ray lies in the plane of the triangle
	if det > -math32.Epsilon && det < math32.Epsilon {
		return 1, 0, 0
	}

	invDet := 1.0 / det

	tv := ray.Start.Sub(p0)

	u := tv.Dot(pv) * invDet
	if u < 0 || u > 1 {
		return 1, 0, 0
	}

	qv := tv.Cross(e1)

	v := d.Dot(qv) * invDet
	if v < 0 || u+v > 1 {
		return 1, 0, 0
	}

	t := e2.Dot(qv) * invDet
	if t <= math32.Epsilon {
		return 1, 0, 0
	}

	return t, u, v

}

// overlapTriangleSphere returns true if the sphere given by center and radius overlaps the
// closed triangle (p0, p1, p2). The test is the separating-axis formulation from
// http://realtimecollisiondetection.net/blog/?p=103 - the triangle plane, the three vertex
// Voronoi regions, and the three edge Voronoi regions.
func overlapTriangleSphere(p0, p1, p2, center Vector3, radius float32) bool {

	a := p0.Sub(center)
	b := p1.Sub(center)
	c := p2.Sub(center)
	rr := radius * radius

	// Sphere outside the triangle plane
	v := b.Sub(a).Cross(c.Sub(a))
	d := a.Dot(v)
	e := v.Dot(v)
	sep1 := d*d > rr*e

	// Sphere outside a triangle vertex
	aa := a.Dot(a)
	ab := a.Dot(b)
	ac := a.Dot(c)
	bb := b.Dot(b)
	bc := b.Dot(c)
	cc := c.Dot(c)
	sep2 := (aa > rr) && (ab > aa) && (ac > aa)
	sep3 := (bb > rr) && (ab > bb) && (bc > bb)
	sep4 := (cc > rr) && (ac > cc) && (bc > cc)

	// Sphere outside a triangle edge
	ab3 := b.Sub(a)
	bc3 := c.Sub(b)
	ca3 := a.Sub(c)
	d1 := ab - aa
	d2 := bc - bb
	d3 := ac - cc
	e1 := ab3.Dot(ab3)
	e2 := bc3.Dot(bc3)
	e3 := ca3.Dot(ca3)
	q1 := a.Scale(e1).Sub(ab3.Scale(d1))
	q2 := b.Scale(e2).Sub(bc3.Scale(d2))
	q3 := c.Scale(e3).Sub(ca3.Scale(d3))
	qc := c.Scale(e1).Sub(q1)
	qa := a.Scale(e2).Sub(q2)
	qb := b.Scale(e3).Sub(q3)
	sep5 := (q1.Dot(q1) > rr*e1*e1) && (q1.Dot(qc) > 0)
	sep6 := (q2.Dot(q2) > rr*e2*e2) && (q2.Dot(qa) > 0)
	sep7 := (q3.Dot(q3) > rr*e3*e3) && (q3.Dot(qb) > 0)

	separated := sep1 || sep2 || sep3 || sep4 || sep5 || sep6 || sep7
	return !separated

}

// sweepQuadraticRoot solves aa*t^2 + bb*t + cc = 0 for the first root of the sweep in [0, 1],
// using the numerically stable form q = -(bb + sign(bb)*sqrt(bb^2 - 4*aa*cc)) / 2 and picking
// between q/aa and cc/q. If both roots land in [0, 1] the smaller wins; if only one does, that
// one; otherwise the returned value lies outside [0, 1] (a negative discriminant yields NaN,
// which also fails every range test).
func sweepQuadraticRoot(aa, bb, cc float32) float32 {

	sign := float32(1.0)
	if bb < 0 {
		sign = -1.0
	}
	q := -0.5 * (bb + sign*math32.Sqrt(bb*bb-4*aa*cc))
	t0 := q / aa
	t1 := cc / q

	if t0 < 0 || t0 > 1 {
		return t1
	} else if t1 < 0 || t1 > 1 {
		return t0
	}
	return math32.Min(t0, t1)

}

// sweepTriangleSphere returns the first fraction in [0, 1] along the motion of the sphere
// (center c, radius r, moving linearly to e) at which it touches the triangle (p0, p1, p2),
// or 1 if it never does. The moving sphere against the triangle is equivalent to a ray against
// the Minkowski sum of the sphere and the triangle, tested in three stages: the slab around
// the triangle plane, the cylinders around the three edges, and the spheres around the three
// vertices.
func sweepTriangleSphere(p0, p1, p2, c, e Vector3, r float32) float32 {

	n := p1.Sub(p0).Cross(p2.Sub(p0)).Unit()
	plane := NewPlane(n, -n.Dot(p0))

	// Step 1: Plane intersect test

	sc := plane.DotPoint(c)
	se := plane.DotPoint(e)
	sameSide := sc*se > 0

	if sameSide && math32.Abs(sc) > r && math32.Abs(se) > r {
		return 1
	}

	// Step 1a: Check if the contact point is in the polygon (using a crossing ray test in 2d)
	{
		t := (sc - r) / (sc - se)

		// The contact point relative to p0; its offset along the normal drops out of the dot
		// products below
		vt := c.Add(e.Sub(c).Scale(t)).Sub(p0)

		u0 := p1.Sub(p0)
		u1 := p2.Sub(p0)

		// The triangle's corners under the same map x -> (u0.x, u1.x) as the point
		v2D := [3]Vector2{
			NewVector2(0, 0),
			NewVector2(u0.Dot(u0), u1.Dot(u0)),
			NewVector2(u0.Dot(u1), u1.Dot(u1)),
		}

		point := NewVector2(u0.Dot(vt), u1.Dot(vt))

		inside := false
		e0 := v2D[2]
		y0 := e0.Y >= point.Y
		for i := 0; i < 3; i++ {
			e1 := v2D[i]
			y1 := e1.Y >= point.Y

			if y0 != y1 && ((e1.Y-point.Y)*(e0.X-e1.X) >= (e1.X-point.X)*(e0.Y-e1.Y)) == y1 {
				inside = !inside
			}

			y0 = y1
			e0 = e1
		}

		if inside {
			return t
		}
	}

	// Step 2: Edge intersect test

	kp := [3]Vector3{p0, p1, p2}

	ke := [3]Vector3{
		p1.Sub(p0),
		p2.Sub(p1),
		p0.Sub(p2),
	}

	kg := [3]Vector3{
		p0.Sub(c),
		p1.Sub(c),
		p2.Sub(c),
	}

	ks := e.Sub(c)
	kss := ks.Dot(ks)

	var kgg, kgs [3]float32

	// The earliest contact over all edges and vertices
	best := float32(1)

	for i := 0; i < 3; i++ {
		kee := ke[i].Dot(ke[i])
		keg := ke[i].Dot(kg[i])
		kes := ke[i].Dot(ks)
		kgg[i] = kg[i].Dot(kg[i])
		kgs[i] = kg[i].Dot(ks)

		aa := kee*kss - kes*kes
		bb := 2 * (keg*kes - kee*kgs[i])
		cc := kee*(kgg[i]-r*r) - keg*keg

		t := sweepQuadraticRoot(aa, bb, cc)
		if t >= 0 && t <= 1 {
			ct := c.Add(ks.Scale(t))
			d := ct.Sub(kp[i]).Dot(ke[i])
			if d >= 0 && d <= kee {
				best = math32.Min(best, t)
			}
		}
	}

	// Step 3: Point intersect test

	for i := 0; i < 3; i++ {
		aa := kss
		bb := -2 * kgs[i]
		cc := kgg[i] - r*r

		t := sweepQuadraticRoot(aa, bb, cc)
		if t >= 0 && t <= 1 {
			best = math32.Min(best, t)
		}
	}

	return best

}
