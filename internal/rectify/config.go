package rectify

import "github.com/meza-digital/dniscan/internal/detector"

// Config holds configuration for card rectification and OCR normalization.
type Config struct {
	Detector        detector.Config
	MinOCRDimension int     // upscale the warp until max(w,h) reaches this many pixels
	ThresholdBlock  int     // adaptive threshold neighborhood size (odd)
	ThresholdOffset float64 // constant subtracted from the local mean
	EncodeQuality   int     // JPEG quality for the rectified output
	FallbackQuality int     // JPEG quality when degrading to the raw frame
}

// DefaultConfig returns rectification defaults tuned for ID-card OCR.
func DefaultConfig() Config {
	return Config{
		Detector:        detector.DefaultConfig(),
		MinOCRDimension: 1200,
		ThresholdBlock:  15,
		ThresholdOffset: 10,
		EncodeQuality:   95,
		FallbackQuality: 90,
	}
}
