package mempool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFloat64Size(t *testing.T) {
	buf := GetFloat64(1000)
	assert.Len(t, buf, 1000)
	PutFloat64(buf)
}

func TestGetBoolZeroed(t *testing.T) {
	buf := GetBool(512)
	for i := range buf {
		buf[i] = true
	}
	PutBool(buf)

	again := GetBool(512)
	for _, v := range again {
		assert.False(t, v, "recycled buffer must come back zeroed")
	}
	PutBool(again)
}

func TestPutNilIsHarmless(t *testing.T) {
	PutFloat64(nil)
	PutBool(nil)
}
