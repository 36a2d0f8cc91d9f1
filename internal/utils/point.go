package utils

import "math"

// Point represents a 2D pixel coordinate.
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between points a and b.
func Dist(a, b Point) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }
