package detector

// Config holds tuning parameters for card quadrilateral detection.
type Config struct {
	CannyLow        float64 // lower hysteresis threshold for edge tracking
	CannyHigh       float64 // upper hysteresis threshold for strong edges
	MinContourArea  float64 // noise floor: contours enclosing less area are discarded
	ApproxTolerance float64 // polygon approximation tolerance as a fraction of perimeter
}

// DefaultConfig returns the detection defaults tuned for ID cards filling a
// large share of the frame.
func DefaultConfig() Config {
	return Config{
		CannyLow:        75,
		CannyHigh:       200,
		MinContourArea:  1000,
		ApproxTolerance: 0.02,
	}
}
