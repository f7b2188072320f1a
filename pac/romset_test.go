package pac

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeROMSet(t *testing.T, v Variant, extra map[string]int) string {
	t.Helper()

	dir := t.TempDir()

	for _, images := range v.romSet() {
		for _, rom := range images {
			size, ok := extra[rom.filenames[0]]
			if !ok {
				size = rom.size
			}
			if size < 0 {
				continue
			}
			require.NoError(t, os.WriteFile(filepath.Join(dir, rom.filenames[0]), make([]byte, size), 0o666))
		}
	}

	return dir
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "program-bank-2", RoleString(Program, 2))
	assert.Equal(t, "sound-bank-1", RoleString(SoundPROM, 1))
	assert.Equal(t, "tile-graphics", RoleString(TileGfx, 0))
	assert.Equal(t, "color-weights", RoleString(ColorPROM, 0))
}

func TestDetectVariant(t *testing.T) {
	tables := []struct {
		variant Variant
	}{
		{PacMan},
		{MsPacMan},
		{MsPacManEncrypted},
	}

	for _, table := range tables {
		t.Run(table.variant.String(), func(t *testing.T) {
			dir := writeROMSet(t, table.variant, nil)

			v, err := DetectVariant(dir)
			require.NoError(t, err)
			assert.Equal(t, table.variant, v)
		})
	}
}

func TestNewFile(t *testing.T) {
	dir := writeROMSet(t, PacMan, nil)

	f, err := NewFile(dir)
	require.NoError(t, err)

	assert.Equal(t, PacMan, f.Variant)
	assert.Len(t, f.Program, 0x4000)
	assert.Len(t, f.Tiles, 256)
	assert.Len(t, f.Sprites, 64)
}

func TestNewFileShortImage(t *testing.T) {
	// a truncated dump is zero padded, not fatal
	dir := writeROMSet(t, PacMan, map[string]int{"pacman.5e": 0x100})

	f, err := NewFile(dir)
	require.NoError(t, err)

	assert.Len(t, f.Tiles, 256)
}

func TestNewFileMissingImage(t *testing.T) {
	dir := writeROMSet(t, PacMan, map[string]int{"pacman.5f": -1})

	f, err := NewFile(dir)

	assert.ErrorIs(t, err, ErrMissingROM)
	assert.Contains(t, err.Error(), "sprite-graphics")

	// the other pipelines still convert
	assert.Len(t, f.Program, 0x4000)
	assert.Len(t, f.Tiles, 256)
	assert.Nil(t, f.Sprites)
}

func TestNewFileMissingProgramBank(t *testing.T) {
	dir := writeROMSet(t, PacMan, map[string]int{"pacman.6j": -1})

	f, err := NewFile(dir)

	// the error names the absent bank, not the first one
	assert.ErrorIs(t, err, ErrMissingROM)
	assert.Contains(t, err.Error(), "program-bank-3")
	assert.NotContains(t, err.Error(), "program-bank-0")

	assert.Nil(t, f.Program)
	assert.Len(t, f.Tiles, 256)
}

func TestNewFileAlternateNames(t *testing.T) {
	dir := writeROMSet(t, MsPacMan, map[string]int{"5e": -1, "5f": -1})

	// fall back to the Pac-Man graphics ROM names
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pacman.5e"), make([]byte, 0x1000), 0o666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "5f.cpu"), make([]byte, 0x1000), 0o666))

	f, err := NewFile(dir)
	require.NoError(t, err)

	assert.Equal(t, MsPacMan, f.Variant)
	assert.Len(t, f.Tiles, 256)
	assert.Len(t, f.Sprites, 64)
}

func TestNewFileZip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pacman.zip")

	h, err := os.Create(path)
	require.NoError(t, err)

	z := zip.NewWriter(h)
	for _, images := range PacMan.romSet() {
		for _, rom := range images {
			w, err := z.Create(rom.filenames[0])
			require.NoError(t, err)
			_, err = w.Write(make([]byte, rom.size))
			require.NoError(t, err)
		}
	}
	require.NoError(t, z.Close())
	require.NoError(t, h.Close())

	f, err := NewFile(path)
	require.NoError(t, err)

	assert.Equal(t, PacMan, f.Variant)
	assert.Len(t, f.Program, 0x4000)
}

func TestNewFileUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pacman.tar")

	require.NoError(t, os.WriteFile(path, []byte("not an archive"), 0o666))

	_, err := NewFile(path)
	assert.ErrorIs(t, err, errUnsupportedFormat)
}
