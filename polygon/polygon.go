/*
Package polygon deals with polygons, i.e., paths of straight lines. Polygons
may be smoothed by Catmull-Rom interpolation and combined with each other
by boolean operations.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splines"
	"github.com/npillmayer/splines/catmull"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// ErrNotClosed indicates an operation which needs a closed polygon of at
// least 3 knots.
var ErrNotClosed = errors.New("polygon must be a cycle of at least 3 knots")

// Polygon is a sequence of knots, connected by straight lines. Cyclic polygons
// connect the last knot to the first one.
type Polygon struct {
	points []splines.Pair
	cycle  bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot adds a knot to a polygon. Part of builder functionality.
func (pg *Polygon) Knot(p splines.Pair) *Polygon {
	pg.points = append(pg.points, p)
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End leaves a polygon open. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	pg.cycle = false
	return pg
}

// Box creates a rectangular polygon, given two opposite corners.
func Box(a, b splines.Pair) *Polygon {
	return NullPolygon().Knot(a).Knot(splines.P(b.X(), a.Y())).Knot(b).
		Knot(splines.P(a.X(), b.Y())).Cycle()
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// Pt returns knot i.
func (pg *Polygon) Pt(i int) splines.Pair {
	return pg.points[i]
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// AsString returns a polygon as a (debugging) string, e.g.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i, p := range pg.points {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		sb.WriteString(p.String())
	}
	if pg.cycle {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}

// Path returns the knots of a polygon as a path for spline interpolation.
func (pg *Polygon) Path() *catmull.Path {
	path := catmull.PathOf(pg.points)
	if pg.cycle {
		return path.Cycle()
	}
	return path.End()
}

// Smooth replaces the straight lines of a polygon by a Catmull-Rom spline
// and returns the interpolated points as a new polygon. Closed polygons stay
// closed. Open polygons lose their first and last knot, which act as tangent
// context only.
func Smooth(pg *Polygon, params catmull.Parameters) (*Polygon, error) {
	if pg == nil {
		return nil, fmt.Errorf("%w: polygon must not be nil", catmull.ErrInvalidInput)
	}
	pts, err := catmull.InterpolateWith(pg.Path(), params)
	if err != nil {
		return nil, err
	}
	L().Debugf("smoothed polygon of %d knots to %d knots", pg.N(), len(pts))
	return &Polygon{points: pts, cycle: pg.cycle}, nil
}

// --- Polygon clipping ------------------------------------------------------

// Op is a boolean operation on polygons.
type Op int

// Boolean operations for Clip.
const (
	Union Op = iota
	Intersection
	Difference
	Xor
)

func (op Op) clipOp() (polyclip.Op, error) {
	switch op {
	case Union:
		return polyclip.UNION, nil
	case Intersection:
		return polyclip.INTERSECTION, nil
	case Difference:
		return polyclip.DIFFERENCE, nil
	case Xor:
		return polyclip.XOR, nil
	}
	return 0, fmt.Errorf("unknown polygon operation %d", op)
}

// Contour returns the knots of a polygon as a polyclip contour.
func (pg *Polygon) Contour() polyclip.Contour {
	c := make(polyclip.Contour, len(pg.points))
	for i, p := range pg.points {
		x, y := p.F()
		c[i] = polyclip.Point{X: x, Y: y}
	}
	return c
}

// FromContour creates a closed polygon from a polyclip contour.
func FromContour(c polyclip.Contour) *Polygon {
	pg := NullPolygon()
	for _, p := range c {
		pg.Knot(splines.P(p.X, p.Y))
	}
	return pg.Cycle()
}

// BoundingBox returns the lower left and upper right corner of the smallest
// rectangle containing all knots.
func (pg *Polygon) BoundingBox() (splines.Pair, splines.Pair) {
	r := pg.Contour().BoundingBox()
	return splines.P(r.Min.X, r.Min.Y), splines.P(r.Max.X, r.Max.Y)
}

// Contains is a predicate: does a closed polygon contain p?
func (pg *Polygon) Contains(p splines.Pair) bool {
	if !pg.cycle {
		return false
	}
	return pg.Contour().Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

func (pg *Polygon) checkClosed() error {
	if pg == nil || !pg.cycle || pg.N() < 3 {
		return ErrNotClosed
	}
	return nil
}

// Clip combines two closed polygons by a boolean operation. The result may
// consist of zero or more closed polygons.
func Clip(subject, clipping *Polygon, op Op) ([]*Polygon, error) {
	if err := subject.checkClosed(); err != nil {
		return nil, fmt.Errorf("subject: %w", err)
	}
	if err := clipping.checkClosed(); err != nil {
		return nil, fmt.Errorf("clipping: %w", err)
	}
	pcop, err := op.clipOp()
	if err != nil {
		return nil, err
	}
	s := polyclip.Polygon{subject.Contour()}
	c := polyclip.Polygon{clipping.Contour()}
	result := s.Construct(pcop, c)
	pgs := make([]*Polygon, 0, len(result))
	for _, contour := range result {
		pgs = append(pgs, FromContour(contour))
	}
	L().Debugf("clipping resulted in %d contours", len(pgs))
	return pgs, nil
}
