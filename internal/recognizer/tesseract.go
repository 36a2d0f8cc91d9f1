package recognizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract adapts the gosseract Tesseract binding to the TextRecognizer
// interface. A fresh client is created per call; the engine is not safe for
// concurrent reuse and passes are serialized by the orchestrator anyway.
type Tesseract struct {
	cfg Config
}

// NewTesseract creates a Tesseract-backed recognizer.
func NewTesseract(cfg Config) *Tesseract {
	if len(cfg.Languages) == 0 {
		cfg.Languages = DefaultConfig().Languages
	}
	if cfg.Whitelist == "" {
		cfg.Whitelist = Whitelist
	}
	return &Tesseract{cfg: cfg}
}

// Recognize runs OCR on the encoded image. The context is checked before the
// engine call; a call already in flight runs to completion.
func (t *Tesseract) Recognize(ctx context.Context, encoded []byte) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	if err := client.SetLanguage(t.cfg.Languages...); err != nil {
		return nil, fmt.Errorf("set languages %s: %w", strings.Join(t.cfg.Languages, "+"), err)
	}
	if err := client.SetWhitelist(t.cfg.Whitelist); err != nil {
		return nil, fmt.Errorf("set whitelist: %w", err)
	}
	if err := client.SetVariable("preserve_interword_spaces", "1"); err != nil {
		return nil, fmt.Errorf("preserve spaces: %w", err)
	}
	if err := client.SetImageFromBytes(encoded); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("recognize: %w", err)
	}
	return SplitLines(text), nil
}
