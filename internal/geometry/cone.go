package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"scenetrace/internal/mathutil"
)

// ConeShape is the solid x²+z² <= y², 0 <= y <= Height, placed in the caller's
// frame by Pose. Both the cone primitive and cone volumes use it.
type ConeShape struct {
	Pose   mathutil.Affine
	Height float64
}

// ConeEps2 bounds the squared side normal treated as the degenerate apex.
const ConeEps2 = 1e-18

// UnitCone is the cone primitive: identity pose, unit height.
var UnitCone = ConeShape{Pose: mathutil.Identity(), Height: 1}

// coneCandidate is a boundary crossing in the cone's canonical frame.
type coneCandidate struct {
	t   float64
	p   mgl64.Vec3
	cap bool
}

// crossings returns every boundary crossing of the canonical-frame ray lr
// with the clipped solid, in ascending order of t. Negative t included.
func (c ConeShape) crossings(lr Ray) []coneCandidate {
	src, dir := lr.Src, lr.Dir
	a := dir[0]*dir[0] + dir[2]*dir[2] - dir[1]*dir[1]
	b := 2 * (src[0]*dir[0] + src[2]*dir[2] - src[1]*dir[1])
	cc := src[0]*src[0] + src[2]*src[2] - src[1]*src[1]

	var out []coneCandidate
	roots, n := mathutil.SolveQuadratic(a, b, cc)
	for i := 0; i < n; i++ {
		p := lr.At(roots[i])
		if p[1] >= 0 && p[1] <= c.Height {
			out = append(out, coneCandidate{t: roots[i], p: p})
		}
	}
	if dir[1] != 0 {
		t := (c.Height - src[1]) / dir[1]
		p := lr.At(t)
		if p[0]*p[0]+p[2]*p[2] <= c.Height*c.Height {
			out = append(out, coneCandidate{t: t, p: p, cap: true})
		}
	}
	if len(out) == 2 && out[0].t > out[1].t {
		out[0], out[1] = out[1], out[0]
	} else if len(out) == 3 {
		sortCandidates(out)
	}
	return out
}

func sortCandidates(cs []coneCandidate) {
	for i := 1; i < len(cs); i++ {
		for j := i; j > 0 && cs[j].t < cs[j-1].t; j-- {
			cs[j], cs[j-1] = cs[j-1], cs[j]
		}
	}
}

// contains reports whether a canonical-frame point is inside the solid.
func (c ConeShape) contains(p mgl64.Vec3) bool {
	return p[1] >= 0 && p[1] <= c.Height && p[0]*p[0]+p[2]*p[2] <= p[1]*p[1]
}

// Collide returns the nearest forward surface hit of r, given in the frame
// the pose maps into. T is a parameter along r.
func (c ConeShape) Collide(r Ray) (Hit, bool) {
	lr := r.Transform(c.Pose.Inverse)
	for _, cand := range c.crossings(lr) {
		if cand.t <= mathutil.ConeEps {
			continue
		}
		var n mgl64.Vec3
		var u, v float64
		if cand.cap {
			n = mgl64.Vec3{0, 1, 0}
			u = (cand.p[0]/c.Height + 1) / 2
			v = (cand.p[2]/c.Height + 1) / 2
		} else {
			n = mgl64.Vec3{cand.p[0], -cand.p[1], cand.p[2]}
			if n.LenSqr() < ConeEps2 {
				// The side normal vanishes at the apex.
				n = mgl64.Vec3{0, -1, 0}
			}
			u = 0.5 + math.Atan2(cand.p[2], cand.p[0])/(2*math.Pi)
			v = cand.p[1] / c.Height
		}
		world := c.Pose.Point(cand.p)
		return Hit{
			T:      r.Param(world),
			Normal: c.Pose.Normal(n),
			U:      u,
			V:      v,
		}, true
	}
	return Hit{}, false
}

// Span returns the parameters along r where it enters and leaves the solid.
// An origin inside the solid enters at 0. Spans entirely behind the origin
// are reported as misses.
func (c ConeShape) Span(r Ray) (enter, exit float64, ok bool) {
	lr := r.Transform(c.Pose.Inverse)
	cs := c.crossings(lr)
	if len(cs) == 0 {
		return 0, 0, false
	}

	first := r.Param(c.Pose.Point(cs[0].p))
	last := r.Param(c.Pose.Point(cs[len(cs)-1].p))
	if c.contains(lr.Src) {
		first = 0
		// The exit is the first crossing ahead of the origin.
		for _, cand := range cs {
			if cand.t > 0 {
				last = r.Param(c.Pose.Point(cand.p))
				break
			}
		}
	} else if len(cs) < 2 {
		return 0, 0, false
	}

	if last <= mathutil.ConeEps {
		return 0, 0, false
	}
	return first, last, true
}
