package pac

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseColor(t *testing.T) {
	assert.Equal(t, uint16(0x0000), baseColor(0x00))
	// all red bits sum to a full 0xff channel
	assert.Equal(t, uint16(0xf800), baseColor(0x07))
	assert.Equal(t, uint16(0x07e0), baseColor(0x38))
	assert.Equal(t, uint16(0x001f), baseColor(0xc0))
	assert.Equal(t, uint16(0xffff), baseColor(0xff))
}

func TestResolvePalette(t *testing.T) {
	table := ResolvePalette([]byte{0xff}, []byte{0x00, 0x00, 0x00, 0x00})

	assert.Equal(t, [paletteSlots]uint16{0x0000, 0xffff, 0xffff, 0xffff}, table[0])

	// nothing else is addressed by the four byte PROM
	for p := 1; p < numPalettes; p++ {
		assert.Equal(t, [paletteSlots]uint16{}, table[p])
	}
}

func TestResolvePaletteTransparentSlot(t *testing.T) {
	// slot 0 stays transparent whatever the PROM holds at its address
	table := ResolvePalette(bytes.Repeat([]byte{0xff}, 0x20), bytes.Repeat([]byte{0x1f}, 0x100))

	for p := 0; p < numPalettes; p++ {
		assert.Equal(t, uint16(0), table[p][0])
		for slot := 1; slot < paletteSlots; slot++ {
			assert.Equal(t, uint16(0xffff), table[p][slot])
		}
	}
}

func TestResolvePaletteIndexMask(t *testing.T) {
	colors := make([]byte, 0x20)
	colors[0x15] = 0x07

	// 0xb5 masks down to base color 0x15
	table := ResolvePalette(colors, []byte{0x00, 0xb5, 0x00, 0x00})

	assert.Equal(t, uint16(0xf800), table[0][1])
}
