/*
Package splines implements 2D pairs and the numeric predicates shared by
the spline packages. Sub-package catmull interpolates point sequences with
Catmull-Rom splines, sub-package polygon applies this to closed contours.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package splines

import (
	"fmt"
	"math"
	"math/cmplx"
)

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0. This is an absolute
// tolerance, see Equal.
var Epsilon float64 = 0.0000001

// RelEpsilon is the tolerance for coincidence of pairs, relative to their
// magnitude. See Coincides.
var RelEpsilon float64 = 1e-12

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// IsFinite is a predicate: is n neither NaN nor ±Inf ?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// === Pair Data Type ========================================================

// Pair is a 2D-point, stored as a complex number (x + iy).
type Pair complex128

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// IsFinite is a predicate: are both coordinates finite?
func (p Pair) IsFinite() bool {
	return IsFinite(p.X()) && IsFinite(p.Y())
}

// Equal compares two pairs, up to the absolute tolerance Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Distance returns the Euclidean distance between p and p2.
func (p Pair) Distance(p2 Pair) float64 {
	return cmplx.Abs((p2 - p).C())
}

// Magnitude returns the distance of p from the origin.
func (p Pair) Magnitude() float64 {
	return cmplx.Abs(p.C())
}

// Coincides is a predicate: is the distance between p and p2 negligible
// relative to their magnitude? Identical pairs always coincide, whereas
// distinct pairs close to the origin do not, however small their distance.
func (p Pair) Coincides(p2 Pair) bool {
	scale := math.Max(p.Magnitude(), p2.Magnitude())
	return p.Distance(p2) <= RelEpsilon*scale
}

// Scaled returns a new pair scaled by factor a. No rounding is applied.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Blend returns the weighted sum wp·p + wq·q.
func Blend(p Pair, wp float64, q Pair, wq float64) Pair {
	return p.Scaled(wp) + q.Scaled(wq)
}
