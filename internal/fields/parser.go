// Package fields turns raw OCR text into structured card fields using the
// layout heuristics that work on Spanish-language identity cards. Every field
// may come back empty; absence is an expected outcome, not an error.
package fields

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sex is the sex field read off the card.
type Sex int

const (
	SexUnknown Sex = iota
	SexMale
	SexFemale
)

// String returns the Spanish display label used on the form and in exports.
func (s Sex) String() string {
	switch s {
	case SexMale:
		return "Hombre"
	case SexFemale:
		return "Mujer"
	default:
		return ""
	}
}

// ParsedFields holds the candidate fields extracted from one scan. DOB is in
// ISO YYYY-MM-DD form, or empty when no date was found.
type ParsedFields struct {
	FullName string
	DNI      string
	Sex      Sex
	DOB      string
}

const lineJoiner = " | "

var (
	dniRe  = regexp.MustCompile(`\b\d{6,12}\b`)
	dateRe = regexp.MustCompile(`\b\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}\b|\b\d{4}[/\-]\d{1,2}[/\-]\d{1,2}\b`)

	// The standalone-letter alternatives fire on any lone F or M token
	// (initials, OCR noise), a known-weak rule kept deliberately and
	// characterized in the tests. Female is checked first, so text
	// containing both reads as female.
	femaleRe = regexp.MustCompile(`(?i)mujer|femenino|\bf\b`)
	maleRe   = regexp.MustCompile(`(?i)hombre|masculino|\bm\b`)

	letterRe    = regexp.MustCompile(`[A-Za-zÁÉÍÓÚÑáéíóúñ]`)
	digitRe     = regexp.MustCompile(`\d`)
	uppercaseRe = regexp.MustCompile(`[A-ZÁÉÍÓÚÑ]`)
)

// Parse extracts structured fields from ordered, trimmed OCR lines. It is a
// pure function; empty input yields empty fields.
func Parse(lines []string) ParsedFields {
	normalized := make([]string, len(lines))
	for i, l := range lines {
		normalized[i] = norm.NFC.String(l)
	}
	joined := strings.Join(normalized, lineJoiner)

	return ParsedFields{
		FullName: parseFullName(normalized),
		DNI:      parseDNI(joined),
		Sex:      parseSex(joined),
		DOB:      parseDOB(joined),
	}
}

// parseDNI keeps the last 6-12 digit run in the text. ID numbers tend to
// appear after the name and any leading digits in scanned layouts. This is a
// layout heuristic, not a validated parse; there is no check digit.
func parseDNI(joined string) string {
	matches := dniRe.FindAllString(joined, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1]
}

// parseDOB normalizes the first date-shaped token to YYYY-MM-DD. A 4-digit
// leading token is treated as year-first; otherwise day-first, with 2-digit
// years promoted to the 1900s. No calendar validity check is applied; the
// operator corrects implausible values downstream.
func parseDOB(joined string) string {
	raw := dateRe.FindString(joined)
	if raw == "" {
		return ""
	}
	sep := "-"
	if strings.Contains(raw, "/") {
		sep = "/"
	}
	parts := strings.Split(raw, sep)
	if len(parts) != 3 {
		return ""
	}

	if len(parts[0]) == 4 {
		return parts[0] + "-" + pad2(parts[1]) + "-" + pad2(parts[2])
	}
	y := parts[2]
	if len(y) == 2 {
		y = "19" + y
	}
	return y + "-" + pad2(parts[1]) + "-" + pad2(parts[0])
}

func parseSex(joined string) Sex {
	switch {
	case femaleRe.MatchString(joined):
		return SexFemale
	case maleRe.MatchString(joined):
		return SexMale
	default:
		return SexUnknown
	}
}

// parseFullName picks the first line that looks like a printed name: more
// letters than digits, more than six letters, and at least one uppercase
// letter. Falls back to the first line when nothing qualifies.
func parseFullName(lines []string) string {
	var candidate string
	for _, l := range lines {
		letters := len(letterRe.FindAllString(l, -1))
		digits := len(digitRe.FindAllString(l, -1))
		if letters > digits && letters > 6 && uppercaseRe.MatchString(l) {
			candidate = l
			break
		}
	}
	if candidate == "" && len(lines) > 0 {
		candidate = lines[0]
	}
	return strings.TrimSpace(strings.ReplaceAll(candidate, "|", " "))
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
