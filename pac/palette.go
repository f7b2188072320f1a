package pac

const (
	baseColors   = 32
	numPalettes  = 64
	paletteSlots = 4
)

// PaletteTable maps a palette index and slot to an RGB565 color. Slot 0
// of every palette is the transparent background and is always zero.
type PaletteTable [numPalettes][paletteSlots]uint16

// baseColor decodes one color PROM byte into RGB565. The byte drives a
// resistor ladder: bits 0-2 weight red, 3-5 green and 6-7 blue, with
// the weights summing to 0xff per channel.
func baseColor(b byte) uint16 {
	r := int(b>>0&1)*0x21 + int(b>>1&1)*0x47 + int(b>>2&1)*0x97
	g := int(b>>3&1)*0x21 + int(b>>4&1)*0x47 + int(b>>5&1)*0x97
	bl := int(b>>6&1)*0x51 + int(b>>7&1)*0xae

	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(bl>>3)
}

// ResolvePalette builds the two level color lookup: 32 base colors from
// the color PROM, then 64 palettes of four slots indexed into them
// through the palette PROM. Short PROMs decode as black rather than
// failing.
func ResolvePalette(colorPROM, palettePROM []byte) (table PaletteTable) {
	var colors [baseColors]uint16
	for i := range colors {
		if i < len(colorPROM) {
			colors[i] = baseColor(colorPROM[i])
		}
	}

	for p := 0; p < numPalettes; p++ {
		// slot 0 stays transparent whatever the PROM holds
		for slot := 1; slot < paletteSlots; slot++ {
			addr := p*paletteSlots + slot
			if addr >= len(palettePROM) {
				continue
			}
			if ref := palettePROM[addr] & 0x1f; int(ref) < baseColors {
				table[p][slot] = colors[ref]
			}
		}
	}

	return
}
