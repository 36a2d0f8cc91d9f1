// Package recognizer defines the text-recognition boundary of the pipeline.
// OCR itself is an external engine; this package only shapes its input and
// output.
package recognizer

import (
	"context"
	"strings"
)

// Whitelist restricts recognition to the characters expected on an ID card:
// letters (including Spanish diacritics and enye), digits, dash, slash, dot,
// and space. Everything else is OCR noise on this document class.
const Whitelist = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" +
	"ÁÉÍÓÚáéíóúÑñ0123456789-/. "

// TextRecognizer recognizes text in an encoded image and returns it as an
// ordered sequence of trimmed, non-empty lines.
type TextRecognizer interface {
	Recognize(ctx context.Context, encoded []byte) ([]string, error)
}

// Config holds settings for the OCR engine adapter.
type Config struct {
	Languages []string // language hint set passed to the engine
	Whitelist string   // recognized character set
}

// DefaultConfig returns the recognition defaults for Spanish-language cards.
func DefaultConfig() Config {
	return Config{
		Languages: []string{"spa", "eng"},
		Whitelist: Whitelist,
	}
}

// SplitLines turns raw engine output into the trimmed, non-empty line
// sequence the field parser expects.
func SplitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
