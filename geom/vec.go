// Package geom holds the 2D geometry used for stage collision: convex
// polygons, separating-axis intersection, convex hulls and segment tests.
//
// Coordinates are screen-style: +X is right, +Y is down.
package geom

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is the vector type shared with the ECS components.
type Vec2 = dmath.Vec2

// Epsilon is the tolerance below which lengths and cross products are
// treated as zero.
const Epsilon = 1e-9

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func Add(a, b Vec2) Vec2 { return Vec2{X: a.X + b.X, Y: a.Y + b.Y} }

func Sub(a, b Vec2) Vec2 { return Vec2{X: a.X - b.X, Y: a.Y - b.Y} }

func Scale(a Vec2, s float64) Vec2 { return Vec2{X: a.X * s, Y: a.Y * s} }

func Dot(a, b Vec2) float64 { return a.X*b.X + a.Y*b.Y }

// Cross returns the z component of the 3D cross product.
func Cross(a, b Vec2) float64 { return a.X*b.Y - a.Y*b.X }

func Length(a Vec2) float64 { return math.Hypot(a.X, a.Y) }

// Normalize returns a unit vector in the direction of a. A vector shorter
// than Epsilon normalizes to the zero vector.
func Normalize(a Vec2) Vec2 {
	l := Length(a)
	if l < Epsilon || math.IsInf(l, 0) || math.IsNaN(l) {
		return Vec2{}
	}
	return Vec2{X: a.X / l, Y: a.Y / l}
}

// Perp rotates a by 90 degrees.
func Perp(a Vec2) Vec2 { return Vec2{X: -a.Y, Y: a.X} }

// Finite reports whether both components are finite numbers.
func Finite(a Vec2) bool {
	return !math.IsNaN(a.X) && !math.IsNaN(a.Y) && !math.IsInf(a.X, 0) && !math.IsInf(a.Y, 0)
}

// Nearly reports whether a and b differ by less than tol on both axes.
func Nearly(a, b Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol
}
