// Package pipeline wires frame acquisition, rectification, recognition, and
// field extraction into scan passes, and schedules those passes manually or
// on an auto-scan timer.
package pipeline

import (
	"errors"
	"time"

	"github.com/meza-digital/dniscan/internal/capture"
	"github.com/meza-digital/dniscan/internal/recognizer"
	"github.com/meza-digital/dniscan/internal/rectify"
)

// Config holds configuration for the scan pipeline and its components.
type Config struct {
	Rectification    rectify.Config
	Recognizer       recognizer.Config
	AutoScanInterval time.Duration // delay between a pass finishing and the next auto pass
}

// DefaultConfig returns a default pipeline config with component defaults.
func DefaultConfig() Config {
	return Config{
		Rectification:    rectify.DefaultConfig(),
		Recognizer:       recognizer.DefaultConfig(),
		AutoScanInterval: 3500 * time.Millisecond,
	}
}

// Builder constructs an Orchestrator with fluent configuration.
type Builder struct {
	cfg    Config
	source capture.FrameSource
	rec    recognizer.TextRecognizer
	form   Form
}

// NewBuilder creates a new pipeline builder with defaults.
func NewBuilder() *Builder { return &Builder{cfg: DefaultConfig()} }

// WithConfig replaces the entire configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.cfg = cfg
	if b.cfg.AutoScanInterval <= 0 {
		b.cfg.AutoScanInterval = DefaultConfig().AutoScanInterval
	}
	return b
}

// WithSource sets the frame source. Required.
func (b *Builder) WithSource(src capture.FrameSource) *Builder {
	b.source = src
	return b
}

// WithRecognizer overrides the OCR engine adapter. Defaults to Tesseract.
func (b *Builder) WithRecognizer(rec recognizer.TextRecognizer) *Builder {
	b.rec = rec
	return b
}

// WithForm sets the result sink. Defaults to NopForm.
func (b *Builder) WithForm(f Form) *Builder {
	b.form = f
	return b
}

// WithAutoScanInterval overrides the auto-scan re-arm delay.
func (b *Builder) WithAutoScanInterval(d time.Duration) *Builder {
	if d > 0 {
		b.cfg.AutoScanInterval = d
	}
	return b
}

// WithLanguages sets the OCR language hints.
func (b *Builder) WithLanguages(langs []string) *Builder {
	if len(langs) > 0 {
		b.cfg.Recognizer.Languages = langs
	}
	return b
}

// Build validates the configuration and constructs the orchestrator.
func (b *Builder) Build() (*Orchestrator, error) {
	if b.source == nil {
		return nil, errors.New("pipeline: frame source is required")
	}
	rec := b.rec
	if rec == nil {
		rec = recognizer.NewTesseract(b.cfg.Recognizer)
	}
	form := b.form
	if form == nil {
		form = NopForm{}
	}
	return newOrchestrator(b.cfg, b.source, rec, form), nil
}
