package pipeline

import (
	"time"

	"github.com/meza-digital/dniscan/internal/fields"
)

// ScanResult is the outcome of one scan pass. A pass that found no card or
// read no text still produces a result; its fields are simply empty.
type ScanResult struct {
	Fields   fields.ParsedFields // extracted candidate fields
	AgeRange string              // decade bucket derived from Fields.DOB, "" when unknown
	Lines    []string            // raw OCR lines the fields were parsed from
	Preview  []byte              // JPEG shown to the operator (rectified card or raw frame)

	RectifyDuration   time.Duration
	RecognizeDuration time.Duration
}
