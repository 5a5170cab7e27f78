package vmath

import "math"

// OrbitOffset returns the offset from an orbit center for the given angle
// x follows sin and y follows cos, so angle 0 sits directly below the center
func OrbitOffset(radius, angle float64) Vec2 {
	return Vec2{X: radius * math.Sin(angle), Y: radius * math.Cos(angle)}
}

// OrbitPosition returns center + OrbitOffset(radius, angle)
func OrbitPosition(center Vec2, radius, angle float64) Vec2 {
	return center.Add(OrbitOffset(radius, angle))
}

// EvenAngles returns count angles evenly spaced around a full turn, starting at phase
func EvenAngles(count int, phase float64) []float64 {
	if count <= 0 {
		return nil
	}
	angles := make([]float64, count)
	step := 2 * math.Pi / float64(count)
	for i := range angles {
		angles[i] = phase + step*float64(i)
	}
	return angles
}
