package pac

const (
	spriteWidth  = 16
	spriteHeight = spriteWidth
	spriteBytes  = 64
)

// FlipMode selects which axes a sprite is mirrored across when its rows
// are packed. The values form a bitmask: bit 0 flips vertically, bit 1
// horizontally.
type FlipMode int

// These are the four flip variants in the order the sprite table
// expects them
const (
	FlipNone FlipMode = iota
	FlipVertical
	FlipHorizontal
	FlipBoth
	flipModes
)

// Sprite is a 16 by 16 matrix of 2-bit pixel values.
type Sprite [spriteHeight][spriteWidth]uint8

// decodeSprite unpacks one sprite from 64 bytes of ROM data. The plane
// masks are the same scheme as tiles; the byte index folds in which
// quadrant the pixel sits in. An index beyond the data decodes as pixel
// 0 rather than failing. The hardware stores the bottom four rows
// first, so the matrix is rotated by four rows at the end.
func decodeSprite(data []byte) (s Sprite) {
	var m [spriteHeight][spriteWidth]uint8
	for y := 0; y < spriteHeight; y++ {
		for x := 0; x < spriteWidth; x++ {
			idx := ((y&8)<<1) + (((x&8)^8)<<2) + (7 - (x&7)) + 2*(y&4)
			if idx >= len(data) {
				continue
			}
			var p uint8
			if data[idx]&(0x08>>(y&3)) > 0 {
				p = 1
			}
			if data[idx]&(0x80>>(y&3)) > 0 {
				p += 2
			}
			m[y][x] = p
		}
	}

	for y := 0; y < spriteHeight; y++ {
		s[y] = m[(y+4)%spriteHeight]
	}

	return
}

// Rows packs each row into a 32-bit word, two bits per pixel. The fold
// direction reverses with the horizontal flip and the row order with
// the vertical flip, so every variant is derived from the one decoded
// matrix.
func (s Sprite) Rows(mode FlipMode) (rows [spriteHeight]uint32) {
	for i := 0; i < spriteHeight; i++ {
		y := i
		if mode&FlipVertical != 0 {
			y = spriteHeight - 1 - i
		}
		var w uint32
		for x := 0; x < spriteWidth; x++ {
			if mode&FlipHorizontal != 0 {
				w = w<<2 | uint32(s[y][x])
			} else {
				w = w>>2 | uint32(s[y][x])<<30
			}
		}
		rows[i] = w
	}
	return
}

// DecodeSprites decodes every 64 byte sprite in the ROM image. A full
// 4 KiB sprite ROM yields 64 sprites.
func DecodeSprites(rom []byte) []Sprite {
	sprites := make([]Sprite, len(rom)/spriteBytes)
	for i := range sprites {
		sprites[i] = decodeSprite(rom[i*spriteBytes : (i+1)*spriteBytes])
	}
	return sprites
}

// SpriteBank lays out the packed rows for the whole sprite table: every
// sprite in its original order for flip mode 0, then again for modes 1
// to 3. The renderer indexes the table as [mode][sprite][row] so this
// ordering is part of the contract.
func SpriteBank(sprites []Sprite) [][spriteHeight]uint32 {
	bank := make([][spriteHeight]uint32, 0, len(sprites)*int(flipModes))
	for mode := FlipNone; mode < flipModes; mode++ {
		for _, s := range sprites {
			bank = append(bank, s.Rows(mode))
		}
	}
	return bank
}
