package pac

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func flipBoth(s Sprite) (f Sprite) {
	for y := 0; y < spriteHeight; y++ {
		for x := 0; x < spriteWidth; x++ {
			f[y][x] = s[spriteHeight-1-y][spriteWidth-1-x]
		}
	}
	return
}

func randomSprite(seed int64) (s Sprite) {
	r := rand.New(rand.NewSource(seed))
	for y := 0; y < spriteHeight; y++ {
		for x := 0; x < spriteWidth; x++ {
			s[y][x] = uint8(r.Intn(4))
		}
	}
	return
}

// Flipping both axes twice is the identity, both on the matrix and on
// the packed rows.
func TestSpriteFlipBoth(t *testing.T) {
	s := randomSprite(1)

	assert.Equal(t, s, flipBoth(flipBoth(s)))
	assert.Equal(t, s.Rows(FlipNone), flipBoth(s).Rows(FlipBoth))
}

// A marker set at the hand-computed planar offset for pixel (0, 4)
// must surface at (0, 0) once the four row rotation is applied.
func TestDecodeSpriteRotation(t *testing.T) {
	data := make([]byte, spriteBytes)
	data[47] = 0x88

	s := decodeSprite(data)

	assert.Equal(t, uint8(3), s[0][0])

	s[0][0] = 0
	assert.Equal(t, Sprite{}, s)
}

func TestDecodeSpriteShortData(t *testing.T) {
	// indexes beyond the data decode as pixel 0 rather than panicking
	assert.Equal(t, Sprite{}, decodeSprite(nil))
	assert.Equal(t, Sprite{}, decodeSprite(make([]byte, 16)))
}

func TestSpriteRows(t *testing.T) {
	var s Sprite
	s[0][0] = 3
	s[0][15] = 1

	rows := s.Rows(FlipNone)
	assert.Equal(t, uint32(0x40000003), rows[0])

	// horizontal flip reverses the fold
	rows = s.Rows(FlipHorizontal)
	assert.Equal(t, uint32(0xc0000001), rows[0])

	// vertical flip reverses the row order
	rows = s.Rows(FlipVertical)
	assert.Equal(t, uint32(0x40000003), rows[15])
	assert.Equal(t, uint32(0), rows[0])
}

func TestDecodeSprites(t *testing.T) {
	assert.Len(t, DecodeSprites(make([]byte, 0x1000)), 64)
}

func TestSpriteBank(t *testing.T) {
	sprites := []Sprite{randomSprite(2), randomSprite(3)}

	bank := SpriteBank(sprites)

	assert.Len(t, bank, 8)

	// every sprite in order for each flip mode in turn
	assert.Equal(t, sprites[0].Rows(FlipNone), bank[0])
	assert.Equal(t, sprites[1].Rows(FlipNone), bank[1])
	assert.Equal(t, sprites[0].Rows(FlipVertical), bank[2])
	assert.Equal(t, sprites[1].Rows(FlipHorizontal), bank[5])
	assert.Equal(t, sprites[1].Rows(FlipBoth), bank[7])
}
