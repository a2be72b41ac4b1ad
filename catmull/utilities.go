package catmull

import (
	"fmt"
	"math/cmplx"
	"strings"

	"github.com/npillmayer/splines"
)

// sample returns count+1 parameter values, evenly spaced from start
// towards end. start is included, end is not: it is the first value of
// the following segment.
func sample(start, end float64, count int) []float64 {
	t := make([]float64, count+1)
	step := (end - start) / float64(count+1)
	for k := range t {
		t[k] = start + float64(k)*step
	}
	return t
}

// OutputLength returns the number of points an interpolation of n knots
// will produce.
//
// For open paths this is (n-3)·(resolution+1) + 1, as the next-to-last knot
// terminates the result. For cyclic paths it is n·(resolution+1).
func OutputLength(n, resolution int, cycle bool) int {
	if cycle {
		return n * (resolution + 1)
	}
	return (n-3)*(resolution+1) + 1
}

// AsString returns a path as a (debugging) string, e.g.
//
//	(0,0) .. (1,1) .. (2,2) .. (0,3) .. cycle
func AsString(path *Path) string {
	var sb strings.Builder
	for i := 0; i < path.N(); i++ {
		if i > 0 {
			sb.WriteString(" .. ")
		}
		sb.WriteString(ptround(path.Z(i)))
	}
	if path.IsCycle() {
		sb.WriteString(" .. cycle")
	}
	return sb.String()
}

func ptround(p splines.Pair) string {
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func ptstring(p splines.Pair) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
