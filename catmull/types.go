package catmull

import (
	"errors"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splines"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

var (
	// ErrInvalidInput indicates a path or parameter set which cannot be interpolated,
	// e.g., too few knots for the path mode or a negative resolution.
	ErrInvalidInput = errors.New("invalid input for interpolation")
	// ErrDegenerateSegment indicates two consecutive knots collapse to one point,
	// which would result in a division by zero for the blending weights.
	ErrDegenerateSegment = errors.New("path has degenerate segment")
	// ErrOutputLength indicates an internal inconsistency of the interpolation
	// result size.
	ErrOutputLength = errors.New("interpolation produced unexpected number of points")
)

// Minimum knot counts for open and cyclic paths.
const (
	MinOpenKnots  = 4
	MinCycleKnots = 3
)

// MaxOutputLength limits the number of points a single interpolation may produce.
const MaxOutputLength = math.MaxInt32

// Path is the concrete type for building and interpolating Catmull-Rom splines.
// To construct a path, start with Nullpath(), which creates an empty
// path, and then extend it.
type Path struct {
	points []splines.Pair // knot i
	cycle  bool           // is this path cyclic ?
}

// Parameters control the interpolation of a path.
type Parameters struct {
	Alpha      float64 // 0 = uniform, 0.5 = centripetal, 1 = chordal
	Resolution int     // number of points inserted between two consecutive knots
	Workers    int     // number of segments evaluated concurrently; < 2 means sequential
}

// DefaultParameters returns parameters for a uniform spline with 10 points
// inserted between consecutive knots, evaluated sequentially.
func DefaultParameters() Parameters {
	return Parameters{
		Alpha:      0,
		Resolution: 10,
		Workers:    1,
	}
}

// A window of four consecutive knots. The segment between z1 and z2 is the
// one interpolated; z0 and z3 shape the tangents.
type window [4]splines.Pair
