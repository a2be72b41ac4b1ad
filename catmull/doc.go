// Package catmull deals with Catmull-Rom splines through 2D knots. It provides
// an implementation of the non-uniform Catmull-Rom interpolation, parameterized
// by an exponent alpha.
/*

Catmull-Rom splines pass through every knot of a path. The shape of the curve
between two knots z.1 and z.2 is influenced by the neighbouring knots z.0 and
z.3. The knot parameters t.i are spaced by the distances between knots, raised
to the power of alpha:

   alpha = 0     uniform spline
   alpha = 0.5   centripetal spline (no cusps or self-intersections within a segment)
   alpha = 1     chordal spline

A good discussion of the parameterization may be found in:

   (1) On the Parameterization of Catmull-Rom Curves
       Cem Yuksel, Scott Schaefer, John Keyser
       2009 SIAM/ACM Joint Conference on Geometric and Physical Modeling

The evaluation of a segment follows the pyramidal construction by
Barry and Goldman, which blends linear interpolations of the four knots:

   (2) A recursive evaluation algorithm for a class of Catmull-Rom splines
       Phillip J. Barry, Ronald N. Goldman
       SIGGRAPH '88

Usage

Clients of the package usually build a path of knots and interpolate it.
Paths are built in the style of a builder pattern (package qualifiers
omitted for clarity and brevity):

   path := Nullpath().Knot(P(0,0)).Knot(P(1,1)).Knot(P(2,2)).Knot(P(0,3)).Cycle()
   points, err := InterpolateWith(path, Parameters{Alpha: 0.5, Resolution: 3})

For simple cases there is a shortcut operating on a slice of pairs:

   points, err := Interpolate(knots, 0.5, 3, true)

Every segment between two consecutive knots contributes resolution+1 points:
the knot it starts at and resolution points in between. Cyclic paths are
padded by their last knot in front and their first two knots at the end, so
that every knot, including the wrap-around, is covered by a window of four
knots. The result of a cyclic path does not repeat its first point at the end.

Caveats

(1) Open paths are interpolated between their second and their next-to-last
knot only. The first and the last knot serve as tangent context. The result
ends with the next-to-last knot.

(2) Consecutive knots must not coincide. Paths with coinciding consecutive
knots are rejected with ErrDegenerateSegment rather than producing NaNs.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package catmull
