package math

import (
	"math"
	"testing"
)

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 2, 2}
	m := LookAt(eye, Vec3{}, Vec3{Y: 1})

	got := m.TransformPoint(eye)
	if got.Length() > 0.0001 {
		t.Errorf("LookAt should map the eye to the origin, got %v", got)
	}

	// The target sits straight down -Z in view space.
	target := m.TransformPoint(Vec3{})
	if math.Abs(float64(target.X)) > 0.0001 || math.Abs(float64(target.Y)) > 0.0001 || target.Z >= 0 {
		t.Errorf("LookAt should place the target on -Z, got %v", target)
	}
}
