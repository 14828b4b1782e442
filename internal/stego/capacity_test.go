package stego

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCapacity(t *testing.T) {
	tests := []struct {
		name      string
		carrier   int
		bitstream int
		want      bool
	}{
		{"fits with room", 100, 50, true},
		{"exact fit", 816, 816, true},
		{"one bit over", 815, 816, false},
		{"empty carrier", 0, 16, false},
		{"empty bitstream", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckCapacity(tt.carrier, tt.bitstream))
		})
	}
}

func TestBitstreamLength(t *testing.T) {
	assert.Equal(t, 16, BitstreamLength(0))
	assert.Equal(t, 816, BitstreamLength(100))
}

func TestMaxTokenLength(t *testing.T) {
	assert.Equal(t, 0, MaxTokenLength(0))
	assert.Equal(t, 0, MaxTokenLength(15))
	assert.Equal(t, 0, MaxTokenLength(23))
	assert.Equal(t, 1, MaxTokenLength(24))
	assert.Equal(t, 106, MaxTokenLength(17*17*3))

	for _, n := range []int{24, 100, 867, 10000} {
		assert.True(t, CheckCapacity(n, BitstreamLength(MaxTokenLength(n))))
		assert.False(t, CheckCapacity(n, BitstreamLength(MaxTokenLength(n)+1)))
	}
}
