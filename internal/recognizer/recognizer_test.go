package recognizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	got := SplitLines("  MARIA LOPEZ  \n\n 123456789\r\n\n12-08-1985\n")
	assert.Equal(t, []string{"MARIA LOPEZ", "123456789", "12-08-1985"}, got)
}

func TestSplitLinesEmpty(t *testing.T) {
	assert.Empty(t, SplitLines(""))
	assert.Empty(t, SplitLines(" \n \n "))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []string{"spa", "eng"}, cfg.Languages)
	assert.Equal(t, Whitelist, cfg.Whitelist)
}

func TestWhitelistCoversCardCharacters(t *testing.T) {
	for _, r := range "JOSÉ ÑANDÚ 0123456789 -/." {
		assert.Contains(t, Whitelist, string(r))
	}
}
