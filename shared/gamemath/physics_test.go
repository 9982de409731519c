package gamemath

import (
	"math"
	"testing"
)

func TestAddClampedImpulse(t *testing.T) {
	cases := []struct {
		name                string
		speed, clamp, delta float64
		want                float64
	}{
		{"accepted", 1, 5, 2, 3},
		{"accepted_then_clamped", 4, 5, 3, 5},
		{"negative_clamp_magnitude", -4, -5, -3, -5},
		{"at_clamp_rejected", 5, 5, 1, 5},
		{"beyond_clamp_rejected", 8, 5, -1, 8},
		{"opposing_accepted", 2, 5, -4, -2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := AddClampedImpulse(c.speed, c.clamp, c.delta); got != c.want {
				t.Fatalf("AddClampedImpulse(%v, %v, %v) = %v, want %v", c.speed, c.clamp, c.delta, got, c.want)
			}
		})
	}
}

func TestApplyDecaySnapsToZero(t *testing.T) {
	speed := 4.0
	for i := 0; i < 200 && speed != 0; i++ {
		speed = ApplyDecay(speed, 0.2, 0.05)
	}
	if speed != 0 {
		t.Fatalf("speed = %v, want exact zero", speed)
	}

	if got := ApplyDecay(10, 0.5, 0.05); got != 5 {
		t.Fatalf("ApplyDecay(10, 0.5) = %v, want 5", got)
	}
}

func TestApplyGravityClampsTerminal(t *testing.T) {
	if got := ApplyGravity(9.5, 1, 10); got != 10 {
		t.Fatalf("ApplyGravity = %v, want 10", got)
	}
	if got := ApplyGravity(-12, 1, 10); got != -11 {
		t.Fatalf("ApplyGravity upward = %v, want -11", got)
	}
}

func TestSignAndClamp(t *testing.T) {
	if Sign(-3) != -1 || Sign(0) != 0 || Sign(2) != 1 {
		t.Fatalf("Sign mismatch")
	}
	if ClampSpeed(-7, 6) != -6 || ClampSpeed(math.Inf(1), 6) != 6 {
		t.Fatalf("ClampSpeed mismatch")
	}
}
