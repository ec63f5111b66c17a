package xor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_Valid(t *testing.T) {
	assert.False(t, Key(0).Valid())
	assert.True(t, MinKey.Valid())
	assert.True(t, MaxKey.Valid())
	assert.Equal(t, 255, KeySpace)
}

func TestApply(t *testing.T) {
	data := []byte{0x00, 0x0f, 0xf0, 0xff}
	out := Apply(data, 0xff)
	assert.Equal(t, []byte{0xff, 0xf0, 0x0f, 0x00}, out)
	assert.Equal(t, []byte{0x00, 0x0f, 0xf0, 0xff}, data, "input must not be modified")
	assert.Equal(t, data, Apply(out, 0xff))

	assert.Empty(t, Apply(nil, 0x10))
	assert.NotNil(t, Apply(nil, 0x10))
}

func TestApply_RoundTrip(t *testing.T) {
	data := []byte("\x31\xc0\x50\x68\x2f\x2f\x73\x68\x68\x2f\x62\x69\x6e\x89\xe3\x50")
	for k := MinKey; ; k++ {
		assert.Equal(t, data, Apply(Apply(data, k), k), "key %d", k)
		if k == MaxKey {
			break
		}
	}
}
