package physics

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if sum := a.Add(b); sum != (Vec3{5, 7, 9}) {
		t.Errorf("Add failed: got %v", sum)
	}
	if diff := b.Sub(a); diff != (Vec3{3, 3, 3}) {
		t.Errorf("Sub failed: got %v", diff)
	}
	if scaled := a.Scale(2); scaled != (Vec3{2, 4, 6}) {
		t.Errorf("Scale failed: got %v", scaled)
	}
	if dot := a.Dot(b); dot != 32 {
		t.Errorf("Dot failed: got %v", dot)
	}
	if a != (Vec3{1, 2, 3}) {
		t.Errorf("operand mutated: %v", a)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b     Vec3
		expected float64
	}{
		{Vec3{0, 0, 0}, Vec3{3, 4, 0}, 5},
		{Vec3{1, 1, 1}, Vec3{1, 1, 1}, 0},
		{Vec3{-1, 0, 0}, Vec3{1, 0, 0}, 2},
		{Vec3{0, 0, 0}, Vec3{1, 2, 2}, 3},
	}

	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
		if got := DistanceSquared(tt.a, tt.b); math.Abs(got-tt.expected*tt.expected) > 1e-12 {
			t.Errorf("DistanceSquared(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected*tt.expected)
		}
	}
}

func TestDirection(t *testing.T) {
	dir := Direction(Vec3{0, 0, 0}, Vec3{10, 0, 0})
	if math.Abs(dir.Length()-1) > 1e-6 {
		t.Errorf("expected unit length, got %v", dir.Length())
	}
	if dir.X <= 0 || dir.Y != 0 || dir.Z != 0 {
		t.Errorf("expected +x direction, got %v", dir)
	}

	back := Direction(Vec3{10, 0, 0}, Vec3{0, 0, 0})
	if back != dir.Scale(-1) {
		t.Errorf("expected opposite directions, got %v and %v", dir, back)
	}
}

func TestDirection_Coincident(t *testing.T) {
	p := Vec3{1.5, -2, 3}
	dir := Direction(p, p)
	if !dir.IsFinite() {
		t.Fatalf("expected finite direction, got %v", dir)
	}
	if dir != (Vec3{}) {
		t.Errorf("expected zero vector, got %v", dir)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec3
		valid bool
	}{
		{"zero", Vec3{}, true},
		{"normal", Vec3{1, -2, 3}, true},
		{"NaN", Vec3{math.NaN(), 0, 0}, false},
		{"+Inf", Vec3{0, math.Inf(1), 0}, false},
		{"-Inf", Vec3{0, 0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.valid {
				t.Errorf("IsFinite() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestGuardedDirection(t *testing.T) {
	dir := GuardedDirection(Vec3{0, 0, 0}, Vec3{2, 0, 0}, 0.5)
	if math.Abs(dir.X-0.8) > 1e-15 {
		t.Errorf("expected 2/(2+0.5), got %v", dir.X)
	}
	if Direction(Vec3{}, Vec3{2, 0, 0}) != GuardedDirection(Vec3{}, Vec3{2, 0, 0}, DirectionEpsilon) {
		t.Error("expected Direction to use DirectionEpsilon")
	}
	if p := (Vec3{1, 1, 1}); GuardedDirection(p, p, 1e-4) != (Vec3{}) {
		t.Error("expected zero vector for coincident points")
	}
}
