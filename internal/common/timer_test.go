package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNamedTimer(t *testing.T) {
	timer := NewNamedTimer("rectify")
	time.Sleep(5 * time.Millisecond)
	d := timer.Stop()

	assert.Equal(t, "rectify", timer.Name())
	assert.Equal(t, d, timer.Duration())
	assert.GreaterOrEqual(t, d, 5*time.Millisecond)
	assert.Contains(t, timer.String(), "rectify")
}
