package pac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// inverse derives the bit list that undoes a swap: applying bits then
// inverse(bits) is the identity
func inverse(bits []int) []int {
	n := len(bits)
	inv := make([]int, n)
	for i, b := range bits {
		inv[n-1-b] = n - 1 - i
	}
	return inv
}

func TestBitswapByte(t *testing.T) {
	assert.Equal(t, byte(0x01), bitswapByte(0x80, 0, 1, 2, 3, 4, 5, 6, 7))
	assert.Equal(t, byte(0xa5), bitswapByte(0xa5, 7, 6, 5, 4, 3, 2, 1, 0))
	assert.Equal(t, byte(0x4d), bitswapByte(0x5a, 0, 4, 5, 7, 6, 3, 2, 1))
}

func TestBitswapByteBijective(t *testing.T) {
	inv := inverse(dataSwap)
	for v := 0; v < 256; v++ {
		assert.Equal(t, byte(v), bitswapByte(bitswapByte(byte(v), dataSwap...), inv...))
	}
}

func TestBitswapIntBijective(t *testing.T) {
	for _, bits := range [][]int{
		{8, 7, 5, 9, 10, 6, 3, 4, 2, 1, 0},
		{3, 7, 9, 10, 8, 6, 5, 4, 2, 1, 0},
		{11, 3, 7, 9, 10, 8, 6, 5, 4, 2, 1, 0},
	} {
		inv := inverse(bits)
		for v := 0; v < 1<<len(bits); v++ {
			assert.Equal(t, v, bitswapInt(bitswapInt(v, bits...), inv...))
		}
	}
}
