package slingpuck

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// minContactDistance is the center distance below which a contact normal
// cannot be derived from positions and a fallback normal is used instead.
const minContactDistance = 1e-6

// ResolveBoundary keeps a puck of radius r inside the arena. A puck past an
// edge is clamped back and its velocity component is turned away from the
// edge and scaled by damping. Returns true if any edge was hit.
func ResolveBoundary(p *Puck, r float64, a Arena, damping float64) bool {
	hit := false
	if p.Pos.X < r {
		p.Pos.X = r
		p.Vel.X = math.Abs(p.Vel.X) * damping
		hit = true
	} else if p.Pos.X > a.W-r {
		p.Pos.X = a.W - r
		p.Vel.X = -math.Abs(p.Vel.X) * damping
		hit = true
	}
	if p.Pos.Y < r {
		p.Pos.Y = r
		p.Vel.Y = math.Abs(p.Vel.Y) * damping
		hit = true
	} else if p.Pos.Y > a.H-r {
		p.Pos.Y = a.H - r
		p.Vel.Y = -math.Abs(p.Vel.Y) * damping
		hit = true
	}
	return hit
}

// ResolveSegment bounces a puck off the flat face of a wall segment.
// It applies when the puck's vertical extent overlaps the wall band and its
// center lies within [Start, End]; the puck is pushed out on the side it is
// on and its vertical velocity is turned away and damped. Segment ends are
// handled by ResolveCap.
func ResolveSegment(p *Puck, seg Segment, a Arena, r, damping float64) bool {
	if !seg.Valid() {
		return false
	}
	mid := a.MidY()
	half := a.WallThickness / 2
	if p.Pos.Y+r <= mid-half || p.Pos.Y-r >= mid+half {
		return false
	}
	if p.Pos.X < seg.Start || p.Pos.X > seg.End {
		return false
	}

	if p.Side(mid) == SideTop {
		p.Pos.Y = mid - half - r
		p.Vel.Y = -math.Abs(p.Vel.Y) * damping
	} else {
		p.Pos.Y = mid + half + r
		p.Vel.Y = math.Abs(p.Vel.Y) * damping
	}
	return true
}

// ResolveCap separates a puck from a fixed circle at c, where reach is the
// circle radius plus the puck radius. An approaching puck is reflected about
// the contact normal (v' = v - 2(v·n)n); the velocity is then damped.
func ResolveCap(p *Puck, c r2.Vec, reach, damping float64) bool {
	d := r2.Sub(p.Pos, c)
	dist := r2.Norm(d)
	if dist >= reach {
		return false
	}

	var n r2.Vec
	if dist < minContactDistance {
		n = fallbackNormal(p.Vel)
		dist = 0
	} else {
		n = r2.Scale(1/dist, d)
	}

	p.Pos = r2.Add(p.Pos, r2.Scale(reach-dist, n))
	if vn := r2.Dot(p.Vel, n); vn < 0 {
		p.Vel = r2.Sub(p.Vel, r2.Scale(2*vn, n))
	}
	p.Vel = r2.Scale(damping, p.Vel)
	return true
}

// fallbackNormal returns the direction a puck sitting exactly on a contact
// point is pushed out along: back the way it came, or straight up at rest.
func fallbackNormal(vel r2.Vec) r2.Vec {
	if speed := r2.Norm(vel); speed > minContactDistance {
		return r2.Scale(-1/speed, vel)
	}
	return r2.Vec{X: 0, Y: -1}
}

// ResolvePair separates two overlapping pucks of radius r and exchanges
// their normal velocity components (equal-mass elastic collision), then
// damps the result. A held puck is never moved or accelerated; its partner
// takes the whole separation and the held puck's normal velocity.
// Returns true if the pucks were overlapping.
func ResolvePair(a, b *Puck, aHeld, bHeld bool, r, damping float64) bool {
	if aHeld && bHeld {
		return false
	}

	minDist := 2 * r
	d := r2.Sub(b.Pos, a.Pos)
	dist := r2.Norm(d)
	if dist >= minDist {
		return false
	}

	var n r2.Vec
	if dist < minContactDistance {
		n = r2.Vec{X: 1, Y: 0}
		dist = 0
	} else {
		n = r2.Scale(1/dist, d)
	}

	overlap := minDist - dist
	switch {
	case aHeld:
		b.Pos = r2.Add(b.Pos, r2.Scale(overlap, n))
	case bHeld:
		a.Pos = r2.Sub(a.Pos, r2.Scale(overlap, n))
	default:
		a.Pos = r2.Sub(a.Pos, r2.Scale(overlap/2, n))
		b.Pos = r2.Add(b.Pos, r2.Scale(overlap/2, n))
	}

	van := r2.Dot(a.Vel, n)
	vbn := r2.Dot(b.Vel, n)
	if van-vbn <= 0 {
		// Already separating along the normal.
		return true
	}

	if !aHeld {
		tangent := r2.Sub(a.Vel, r2.Scale(van, n))
		a.Vel = r2.Scale(damping, r2.Add(tangent, r2.Scale(vbn, n)))
	}
	if !bHeld {
		tangent := r2.Sub(b.Vel, r2.Scale(vbn, n))
		b.Vel = r2.Scale(damping, r2.Add(tangent, r2.Scale(van, n)))
	}
	return true
}
