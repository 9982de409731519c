// Package gamemath holds the scalar movement math shared by the state
// machine hooks and the physics systems. It has no ECS or geometry
// dependencies.
package gamemath

import "math"

// ZeroThreshold is the magnitude below which a float is treated as zero
// when classifying collision normals.
const ZeroThreshold = 1e-6

// ApplyDecay scales speed toward zero by the decay fraction (0..1) and snaps
// it to exactly zero once its magnitude falls below threshold.
func ApplyDecay(speed, decay, threshold float64) float64 {
	speed -= speed * decay
	if math.Abs(speed) < threshold {
		return 0
	}
	return speed
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	max = math.Abs(max)
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// AddClampedImpulse adds delta to speed only while |speed| is below |clamp|.
// An impulse arriving at or beyond the clamp is rejected and speed is
// returned unchanged; an accepted impulse is hard-clamped to ±clamp.
func AddClampedImpulse(speed, clamp, delta float64) float64 {
	limit := math.Abs(clamp)
	if math.Abs(speed) >= limit {
		return speed
	}
	return ClampSpeed(speed+delta, limit)
}

// ApplyGravity accelerates a vertical speed downward (+Y) and clamps it to
// the terminal fall speed. Upward speed is never clamped.
func ApplyGravity(speedY, gravity, terminal float64) float64 {
	speedY += gravity
	if speedY > terminal {
		return terminal
	}
	return speedY
}

// ApproxZero reports whether x is within ZeroThreshold of zero.
func ApproxZero(x float64) bool {
	return math.Abs(x) < ZeroThreshold
}

// Sign returns -1, 0 or 1.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
