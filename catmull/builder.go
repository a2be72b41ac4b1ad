package catmull

import (
	"github.com/npillmayer/splines"
)

func newSkeletonPath(points []splines.Pair) *Path {
	path := &Path{}
	path.points = make([]splines.Pair, len(points), len(points)*2)
	copy(path.points, points)
	return path
}

// Nullpath creates an empty path, to be extended by subsequent builder
// calls. The following example builds a closed path of four knots:
//
//	path = Nullpath().Knot(P(0,0)).Knot(P(3,2)).Knot(P(5,2.5)).Knot(P(2,-1)).Cycle()
//
// Calling Cycle() or End() returns a path, ready to be interpolated.
func Nullpath() *Path {
	return newSkeletonPath(nil)
}

// PathOf creates an open path from a slice of knots. Knots are copied.
func PathOf(points []splines.Pair) *Path {
	return newSkeletonPath(points)
}

// End an open path. Part of builder functionality.
func (path *Path) End() *Path {
	path.cycle = false
	return path
}

// Cycle closes a cyclic path. Part of builder functionality.
// The first knot must not be repeated as the last knot.
func (path *Path) Cycle() *Path {
	path.cycle = true
	return path
}

// Knot adds a knot to a path. Part of builder functionality.
func (path *Path) Knot(pr splines.Pair) *Path {
	path.points = append(path.points, pr)
	return path
}

// Knots adds a sequence of knots to a path. Part of builder functionality.
func (path *Path) Knots(prs ...splines.Pair) *Path {
	path.points = append(path.points, prs...)
	return path
}

// IsCycle is a predicate: is this path cyclic?
func (path *Path) IsCycle() bool {
	return path.cycle
}

// N returns the length of this path (knot count).
func (path *Path) N() int {
	return len(path.points)
}

// Z returns the knot at position (i mod N). Negative positions count from
// the end of the path.
func (path *Path) Z(i int) splines.Pair {
	n := path.N()
	if i < 0 || i >= n {
		i = ((i % n) + n) % n
	}
	return path.points[i]
}

// Points returns a copy of the knots of this path.
func (path *Path) Points() []splines.Pair {
	pts := make([]splines.Pair, len(path.points))
	copy(pts, path.points)
	return pts
}

// working returns the knot sequence the windows slide over. For cyclic
// paths this is padded by the last knot in front and by the first
// two knots at the end.
func (path *Path) working() []splines.Pair {
	if !path.IsCycle() {
		return path.Points()
	}
	n := path.N()
	w := make([]splines.Pair, 0, n+3)
	w = append(w, path.Z(-1))
	w = append(w, path.points...)
	w = append(w, path.Z(0), path.Z(1))
	return w
}

// windowAt returns the window starting at knot i of a working sequence.
func windowAt(working []splines.Pair, i int) window {
	return window{working[i], working[i+1], working[i+2], working[i+3]}
}
