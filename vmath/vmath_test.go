package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCircleIntersects verifies the inclusive radius-sum overlap rule
func TestCircleIntersects(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     bool
	}{
		{"Overlapping", 31, true},
		{"Touching", 32, true},
		{"Apart", 33, false},
		{"Concentric", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Circle{Center: V(0, 0), Radius: 16}
			b := Circle{Center: V(tt.distance, 0), Radius: 16}
			assert.Equal(t, tt.want, a.Intersects(b))
			assert.Equal(t, tt.want, b.Intersects(a), "intersection must be symmetric")
		})
	}
}

// TestCircleIntersectsDiagonal verifies overlap uses Euclidean distance, not per-axis
func TestCircleIntersectsDiagonal(t *testing.T) {
	a := Circle{Center: V(0, 0), Radius: 16}
	// 3-4-5 triangle scaled to 30/40/50
	assert.False(t, a.Intersects(Circle{Center: V(30, 40), Radius: 16}))
	assert.True(t, a.Intersects(Circle{Center: V(30, 40), Radius: 34}))
}

// TestNormalize verifies unit length and zero-vector guard
func TestNormalize(t *testing.T) {
	n, ok := V(300, 400).Normalize()
	require.True(t, ok)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
	assert.InDelta(t, 1.0, n.Len(), 1e-12)

	z, ok := Vec2{}.Normalize()
	assert.False(t, ok)
	assert.Equal(t, Vec2{}, z)
}

// TestOrbitOffset verifies sin drives x and cos drives y
func TestOrbitOffset(t *testing.T) {
	assert.True(t, ApproxEqual(V(0, 200), OrbitOffset(200, 0), 1e-9))
	assert.True(t, ApproxEqual(V(200, 0), OrbitOffset(200, math.Pi/2), 1e-9))
	assert.True(t, ApproxEqual(V(10, 300), OrbitPosition(V(10, 100), 200, 0), 1e-9))
}

// TestEvenAngles verifies spacing and phase
func TestEvenAngles(t *testing.T) {
	angles := EvenAngles(4, 0.5)
	require.Len(t, angles, 4)
	for i, a := range angles {
		assert.InDelta(t, 0.5+float64(i)*math.Pi/2, a, 1e-12)
	}
	assert.Nil(t, EvenAngles(0, 0))
}

// TestDistanceAndLerp covers the small helpers used by traversal
func TestDistanceAndLerp(t *testing.T) {
	assert.InDelta(t, 500, Distance(V(0, 0), V(300, 400)), 1e-12)
	assert.Equal(t, V(150, 200), Lerp(V(0, 0), V(300, 400), 0.5))
	assert.Equal(t, V(3, 4), V(1, 1).Add(V(2, 3)))
	assert.Equal(t, V(2, 4), V(1, 2).Scale(2))
	assert.InDelta(t, 11.0, V(1, 2).Dot(V(3, 4)), 1e-12)
}
