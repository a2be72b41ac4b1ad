package catmull

import (
	"fmt"

	"github.com/npillmayer/splines"
	"golang.org/x/sync/errgroup"
)

// Validate checks if a path is interpolatable with a given set of parameters.
func (path *Path) Validate(params Parameters) error {
	if path == nil {
		return fmt.Errorf("%w: path must not be nil", ErrInvalidInput)
	}
	if err := params.validate(); err != nil {
		return err
	}
	n := path.N()
	if path.IsCycle() {
		if n < MinCycleKnots {
			return fmt.Errorf("%w: cycle needs at least %d knots, got %d", ErrInvalidInput, MinCycleKnots, n)
		}
	} else if n < MinOpenKnots {
		return fmt.Errorf("%w: open path needs at least %d knots, got %d", ErrInvalidInput, MinOpenKnots, n)
	}
	windows := n
	if !path.IsCycle() {
		windows = n - 3
	}
	if windows > (MaxOutputLength-1)/(params.Resolution+1) {
		return fmt.Errorf("%w: %d knots with resolution %d exceed %d points", ErrInvalidInput,
			n, params.Resolution, MaxOutputLength)
	}
	for i, z := range path.points {
		if !z.IsFinite() {
			return fmt.Errorf("%w: invalid coordinate at knot %d", ErrInvalidInput, i)
		}
	}
	limit := n - 1
	if path.IsCycle() {
		limit = n
	}
	for i := 0; i < limit; i++ {
		j := (i + 1) % n
		if path.Z(i).Coincides(path.Z(j)) {
			return fmt.Errorf("%w between knots %d and %d", ErrDegenerateSegment, i, j)
		}
	}
	return nil
}

func (params Parameters) validate() error {
	if params.Resolution < 0 {
		return fmt.Errorf("%w: negative resolution %d", ErrInvalidInput, params.Resolution)
	}
	if params.Resolution >= MaxOutputLength {
		return fmt.Errorf("%w: resolution %d too large", ErrInvalidInput, params.Resolution)
	}
	if !splines.IsFinite(params.Alpha) {
		return fmt.Errorf("%w: alpha must be finite, is %g", ErrInvalidInput, params.Alpha)
	}
	if params.Alpha < 0 || params.Alpha > 1 {
		tracer().Debugf("alpha = %g outside of [0,1], spline will be extrapolated", params.Alpha)
	}
	return nil
}

// Interpolate calculates a Catmull-Rom spline through a sequence of knots.
// alpha selects the knot parameterization (0 = uniform, 0.5 = centripetal,
// 1 = chordal) and is not clamped. resolution is the number of points to insert
// between consecutive knots. If closed is true, the knots are treated as a
// polygon and the spline is closed.
//
// Knots are copied; the result is a fresh slice.
func Interpolate(points []splines.Pair, alpha float64, resolution int, closed bool) ([]splines.Pair, error) {
	path := PathOf(points)
	if closed {
		path.Cycle()
	}
	return InterpolateWith(path, Parameters{Alpha: alpha, Resolution: resolution})
}

// InterpolateWith calculates a Catmull-Rom spline through the knots of a path.
// This is the central API function of this package.
//
// For cyclic paths the result starts with the first knot and traverses the
// spline once, without repeating the first knot at the end. The result has
// N·(resolution+1) points.
//
// For open paths the result starts with the second knot and ends with the
// next-to-last knot, having (N-3)·(resolution+1) + 1 points.
//
// Either the complete spline is returned or an error, never a partial result.
//
// BUG(norbert@pillmayer.com): The result of an open path ends at the
// next-to-last knot, not at the last one.
func InterpolateWith(path *Path, params Parameters) ([]splines.Pair, error) {
	if err := path.Validate(params); err != nil {
		return nil, err
	}
	tracer().Infof("interpolate %s", AsString(path))
	working := path.working()
	stride := params.Resolution + 1
	windows := len(working) - 3
	size := windows * stride
	if !path.IsCycle() {
		size++
	}
	if expected := OutputLength(path.N(), params.Resolution, path.IsCycle()); size != expected {
		tracer().Errorf("output size %d for %d knots does not match %d", size, path.N(), expected)
		return nil, fmt.Errorf("%w: %d instead of %d", ErrOutputLength, size, expected)
	}
	interpolated := make([]splines.Pair, size)
	if err := evaluateWindows(working, params, interpolated); err != nil {
		return nil, err
	}
	if !path.IsCycle() {
		interpolated[size-1] = path.Z(path.N() - 2)
	}
	tracer().Debugf("interpolated %d windows to %d points", windows, size)
	return interpolated, nil
}

// MustInterpolate is a compatibility helper which panics on validation errors.
func MustInterpolate(path *Path, params Parameters) []splines.Pair {
	pts, err := InterpolateWith(path, params)
	if err != nil {
		panic(err)
	}
	return pts
}

// evaluateWindows evaluates every window of the working sequence into its slot
// of dst. Windows are independent of each other, and slots do not overlap,
// so segments may be evaluated concurrently without changing the order of
// the result.
func evaluateWindows(working []splines.Pair, params Parameters, dst []splines.Pair) error {
	stride := params.Resolution + 1
	windows := len(working) - 3
	if params.Workers < 2 || windows < 2 {
		for i := 0; i < windows; i++ {
			tracer().Debugf("window %d", i)
			w := windowAt(working, i)
			if err := w.evaluate(params.Alpha, params.Resolution, dst[i*stride:(i+1)*stride]); err != nil {
				return fmt.Errorf("window %d: %w", i, err)
			}
		}
		return nil
	}
	var g errgroup.Group
	g.SetLimit(params.Workers)
	for i := 0; i < windows; i++ {
		i := i
		w := windowAt(working, i)
		slot := dst[i*stride : (i+1)*stride]
		g.Go(func() error {
			if err := w.evaluate(params.Alpha, params.Resolution, slot); err != nil {
				return fmt.Errorf("window %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}
