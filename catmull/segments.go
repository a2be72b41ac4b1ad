package catmull

import (
	"fmt"
	"math"

	"github.com/npillmayer/splines"
)

// knots calculates the knot parameters t.0 … t.3 for a window:
//
//	t.0 = 0,  t.i = t.(i-1) + |z.i - z.(i-1)|^alpha
//
// Coinciding consecutive knots, knot intervals which are not finite, and
// knot parameters which do not strictly increase result in ErrDegenerateSegment.
// The latter happens for extreme values of alpha, when an interval overflows
// or vanishes against its predecessor.
func (w window) knots(alpha float64) ([4]float64, error) {
	var t [4]float64
	for i := 1; i < 4; i++ {
		if w[i-1].Coincides(w[i]) {
			return t, fmt.Errorf("%w: knots %s and %s coincide", ErrDegenerateSegment,
				ptstring(w[i-1]), ptstring(w[i]))
		}
		dt := math.Pow(w[i-1].Distance(w[i]), alpha)
		t[i] = t[i-1] + dt
		if !(dt > 0) || math.IsInf(t[i], 0) || !(t[i] > t[i-1]) {
			return t, fmt.Errorf("%w: knot interval %g between %s and %s", ErrDegenerateSegment,
				dt, ptstring(w[i-1]), ptstring(w[i]))
		}
	}
	return t, nil
}

// lerp blends u and v, given their parameters tu and tv, at parameter t:
//
//	(tv-t)/(tv-tu)·u + (t-tu)/(tv-tu)·v
func lerp(u, v splines.Pair, tu, tv, t float64) splines.Pair {
	d := tv - tu
	return splines.Blend(u, (tv-t)/d, v, (t-tu)/d)
}

// evaluate calculates the points of the segment between w[1] and w[2] and
// stores them into dst, which must have room for resolution+1 points.
// The first point stored is w[1], w[2] is not included. Points which are
// not finite result in ErrDegenerateSegment.
func (w window) evaluate(alpha float64, resolution int, dst []splines.Pair) error {
	t, err := w.knots(alpha)
	if err != nil {
		return err
	}
	tracer().Debugf("t.0 = %.4g, t.1 = %.4g, t.2 = %.4g, t.3 = %.4g", t[0], t[1], t[2], t[3])
	for i, s := range sample(t[1], t[2], resolution) {
		a1 := lerp(w[0], w[1], t[0], t[1], s)
		a2 := lerp(w[1], w[2], t[1], t[2], s)
		a3 := lerp(w[2], w[3], t[2], t[3], s)
		b1 := lerp(a1, a2, t[0], t[2], s)
		b2 := lerp(a2, a3, t[1], t[3], s)
		c := lerp(b1, b2, t[1], t[2], s)
		if !c.IsFinite() {
			return fmt.Errorf("%w: blending overflows at t = %g", ErrDegenerateSegment, s)
		}
		dst[i] = c
	}
	return nil
}

// EvaluateSegment calculates resolution+1 points of the Catmull-Rom segment
// between z1 and z2, with z0 and z3 as neighbouring knots. The first point
// is z1, z2 is excluded.
func EvaluateSegment(z0, z1, z2, z3 splines.Pair, alpha float64, resolution int) ([]splines.Pair, error) {
	if err := (Parameters{Alpha: alpha, Resolution: resolution}).validate(); err != nil {
		return nil, err
	}
	pts := make([]splines.Pair, resolution+1)
	if err := (window{z0, z1, z2, z3}).evaluate(alpha, resolution, pts); err != nil {
		return nil, err
	}
	return pts, nil
}
