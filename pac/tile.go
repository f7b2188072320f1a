package pac

const (
	tileWidth  = 8
	tileHeight = tileWidth
	tileBytes  = 16
)

// Tile is an 8 by 8 matrix of 2-bit pixel values decoded from the
// planar ROM layout.
type Tile [tileHeight][tileWidth]uint8

// decodeTile unpacks one tile from 16 bytes of ROM data. Each byte
// holds four low plane bits in its bottom nibble and the matching high
// plane bits in its top nibble; which byte a pixel lives in depends on
// its column and which half of the tile its row is in. The index and
// mask arithmetic is the hardware layout and must not be rearranged.
func decodeTile(data []byte) (t Tile) {
	for y := 0; y < tileHeight; y++ {
		for x := 0; x < tileWidth; x++ {
			b := data[15-x-2*(y&4)]
			var p uint8
			if b&(0x08>>(y&3)) > 0 {
				p = 1
			}
			if b&(0x80>>(y&3)) > 0 {
				p += 2
			}
			t[y][x] = p
		}
	}
	return
}

// Rows packs each row into a 16-bit word, two bits per pixel, folding
// from the left so the leftmost pixel ends up in the least significant
// pair. The renderer consumes rows in exactly this layout.
func (t Tile) Rows() (rows [tileHeight]uint16) {
	for y := 0; y < tileHeight; y++ {
		var w uint16
		for x := 0; x < tileWidth; x++ {
			w = w>>2 | uint16(t[y][x])<<14
		}
		rows[y] = w
	}
	return
}

// DecodeTiles decodes every 16 byte tile in the ROM image. A full 4 KiB
// tile ROM yields 256 tiles.
func DecodeTiles(rom []byte) []Tile {
	tiles := make([]Tile, len(rom)/tileBytes)
	for i := range tiles {
		tiles[i] = decodeTile(rom[i*tileBytes : (i+1)*tileBytes])
	}
	return tiles
}
