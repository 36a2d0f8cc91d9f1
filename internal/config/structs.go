package config

import (
	"fmt"
	"time"

	"github.com/meza-digital/dniscan/internal/pipeline"
	"github.com/meza-digital/dniscan/internal/recognizer"
	"github.com/meza-digital/dniscan/internal/rectify"
)

// Config represents the complete configuration for the dniscan application.
// It supports loading from configuration files, environment variables, and
// command-line flags.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Scan pipeline settings
	Scan ScanConfig `mapstructure:"scan" yaml:"scan" json:"scan"`

	// Export settings
	Export ExportConfig `mapstructure:"export" yaml:"export" json:"export"`
}

// ScanConfig contains card detection, rectification, and OCR settings.
type ScanConfig struct {
	Languages          []string `mapstructure:"languages" yaml:"languages" json:"languages"`
	AutoScanIntervalMS int      `mapstructure:"auto_scan_interval_ms" yaml:"auto_scan_interval_ms" json:"auto_scan_interval_ms"`
	CannyLow           float64  `mapstructure:"canny_low" yaml:"canny_low" json:"canny_low"`
	CannyHigh          float64  `mapstructure:"canny_high" yaml:"canny_high" json:"canny_high"`
	MinContourArea     float64  `mapstructure:"min_contour_area" yaml:"min_contour_area" json:"min_contour_area"`
	MinOCRDimension    int      `mapstructure:"min_ocr_dimension" yaml:"min_ocr_dimension" json:"min_ocr_dimension"`
	ThresholdBlock     int      `mapstructure:"threshold_block" yaml:"threshold_block" json:"threshold_block"`
	ThresholdOffset    float64  `mapstructure:"threshold_offset" yaml:"threshold_offset" json:"threshold_offset"`
	EncodeQuality      int      `mapstructure:"encode_quality" yaml:"encode_quality" json:"encode_quality"`
	FallbackQuality    int      `mapstructure:"fallback_quality" yaml:"fallback_quality" json:"fallback_quality"`
}

// ExportConfig contains spreadsheet export settings.
type ExportConfig struct {
	Path string `mapstructure:"path" yaml:"path" json:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	p := pipeline.DefaultConfig()
	return Config{
		LogLevel: "info",
		Scan: ScanConfig{
			Languages:          p.Recognizer.Languages,
			AutoScanIntervalMS: int(p.AutoScanInterval / time.Millisecond),
			CannyLow:           p.Rectification.Detector.CannyLow,
			CannyHigh:          p.Rectification.Detector.CannyHigh,
			MinContourArea:     p.Rectification.Detector.MinContourArea,
			MinOCRDimension:    p.Rectification.MinOCRDimension,
			ThresholdBlock:     p.Rectification.ThresholdBlock,
			ThresholdOffset:    p.Rectification.ThresholdOffset,
			EncodeQuality:      p.Rectification.EncodeQuality,
			FallbackQuality:    p.Rectification.FallbackQuality,
		},
		Export: ExportConfig{
			Path: "dniscan-registros.xlsx",
		},
	}
}

// Validate checks the configuration for values the pipeline cannot work with.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (want debug, info, warn, or error)", c.LogLevel)
	}
	if len(c.Scan.Languages) == 0 {
		return fmt.Errorf("scan.languages must not be empty")
	}
	if c.Scan.AutoScanIntervalMS <= 0 {
		return fmt.Errorf("scan.auto_scan_interval_ms must be positive, got %d", c.Scan.AutoScanIntervalMS)
	}
	if c.Scan.CannyLow <= 0 || c.Scan.CannyHigh <= c.Scan.CannyLow {
		return fmt.Errorf("canny thresholds must satisfy 0 < low < high, got %v/%v",
			c.Scan.CannyLow, c.Scan.CannyHigh)
	}
	if c.Scan.MinContourArea <= 0 {
		return fmt.Errorf("scan.min_contour_area must be positive, got %v", c.Scan.MinContourArea)
	}
	if c.Scan.MinOCRDimension < 1 {
		return fmt.Errorf("scan.min_ocr_dimension must be at least 1, got %d", c.Scan.MinOCRDimension)
	}
	if c.Scan.ThresholdBlock < 3 || c.Scan.ThresholdBlock%2 == 0 {
		return fmt.Errorf("scan.threshold_block must be odd and at least 3, got %d", c.Scan.ThresholdBlock)
	}
	if err := validQuality("scan.encode_quality", c.Scan.EncodeQuality); err != nil {
		return err
	}
	if err := validQuality("scan.fallback_quality", c.Scan.FallbackQuality); err != nil {
		return err
	}
	return nil
}

func validQuality(name string, q int) error {
	if q < 1 || q > 100 {
		return fmt.Errorf("%s must be between 1 and 100, got %d", name, q)
	}
	return nil
}

// PipelineConfig converts the file-level settings to the pipeline config.
func (c *Config) PipelineConfig() pipeline.Config {
	p := pipeline.DefaultConfig()
	p.Recognizer = recognizer.Config{
		Languages: c.Scan.Languages,
		Whitelist: recognizer.Whitelist,
	}
	p.AutoScanInterval = time.Duration(c.Scan.AutoScanIntervalMS) * time.Millisecond
	p.Rectification = rectify.Config{
		Detector:        p.Rectification.Detector,
		MinOCRDimension: c.Scan.MinOCRDimension,
		ThresholdBlock:  c.Scan.ThresholdBlock,
		ThresholdOffset: c.Scan.ThresholdOffset,
		EncodeQuality:   c.Scan.EncodeQuality,
		FallbackQuality: c.Scan.FallbackQuality,
	}
	p.Rectification.Detector.CannyLow = c.Scan.CannyLow
	p.Rectification.Detector.CannyHigh = c.Scan.CannyHigh
	p.Rectification.Detector.MinContourArea = c.Scan.MinContourArea
	return p
}
