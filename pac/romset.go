package pac

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bodgit/plumbing"
	"github.com/gabriel-vasile/mimetype"
)

// These constants map to the ROM roles
const (
	Program int = iota
	TileGfx
	SpriteGfx
	ColorPROM
	PalettePROM
	SoundPROM
	Areas
)

var (
	errUnsupportedFormat = errors.New("unsupported format")

	// ErrMissingROM is returned, wrapped with the role that was being
	// looked for, when a required ROM image is absent from the set
	ErrMissingROM = errors.New("pac: missing ROM image")
)

func areaString(area int) string {
	switch area {
	case Program:
		return "program"
	case TileGfx:
		return "tile-graphics"
	case SpriteGfx:
		return "sprite-graphics"
	case ColorPROM:
		return "color-weights"
	case PalettePROM:
		return "palette-index"
	case SoundPROM:
		return "sound"
	default:
		return strconv.Itoa(area)
	}
}

// RoleString names a single image within an area; only the program and
// sound areas hold more than one
func RoleString(area, index int) string {
	switch area {
	case Program:
		return fmt.Sprintf("program-bank-%d", index)
	case SoundPROM:
		return fmt.Sprintf("sound-bank-%d", index)
	default:
		return areaString(area)
	}
}

// romImage is one image within a set: the names it is distributed
// under, its expected size, and for program images the offset the
// hardware maps it to
type romImage struct {
	filenames []string
	size      int
	offset    int
}

type romSet [Areas][]romImage

var pacmanSet = romSet{
	Program: {
		{filenames: []string{"pacman.6e"}, size: 0x1000, offset: 0x0000},
		{filenames: []string{"pacman.6f"}, size: 0x1000, offset: 0x1000},
		{filenames: []string{"pacman.6h"}, size: 0x1000, offset: 0x2000},
		{filenames: []string{"pacman.6j"}, size: 0x1000, offset: 0x3000},
	},
	TileGfx:     {{filenames: []string{"pacman.5e"}, size: 0x1000}},
	SpriteGfx:   {{filenames: []string{"pacman.5f"}, size: 0x1000}},
	ColorPROM:   {{filenames: []string{"82s123.7f"}, size: 0x20}},
	PalettePROM: {{filenames: []string{"82s126.4a"}, size: 0x100}},
	SoundPROM: {
		{filenames: []string{"82s126.1m"}, size: 0x100},
		{filenames: []string{"82s126.3m"}, size: 0x100},
	},
}

var msPacManBootSet = romSet{
	Program: {
		{filenames: []string{"boot1"}, size: 0x1000, offset: 0x0000},
		{filenames: []string{"boot2"}, size: 0x1000, offset: 0x1000},
		{filenames: []string{"boot3"}, size: 0x1000, offset: 0x2000},
		{filenames: []string{"boot4"}, size: 0x1000, offset: 0x3000},
		{filenames: []string{"boot5"}, size: 0x1000, offset: 0x4000},
		{filenames: []string{"boot6"}, size: 0x1000, offset: 0x5000},
	},
	TileGfx:     {{filenames: []string{"5e", "5e.cpu", "pacman.5e"}, size: 0x1000}},
	SpriteGfx:   {{filenames: []string{"5f", "5f.cpu", "pacman.5f"}, size: 0x1000}},
	ColorPROM:   {{filenames: []string{"82s123.7f"}, size: 0x20}},
	PalettePROM: {{filenames: []string{"82s126.4a"}, size: 0x100}},
	SoundPROM: {
		{filenames: []string{"82s126.1m"}, size: 0x100},
		{filenames: []string{"82s126.3m"}, size: 0x100},
	},
}

var msPacManSet = romSet{
	Program: {
		{filenames: []string{"pacman.6e"}, size: 0x1000, offset: 0x0000},
		{filenames: []string{"pacman.6f"}, size: 0x1000, offset: 0x1000},
		{filenames: []string{"pacman.6h"}, size: 0x1000, offset: 0x2000},
		{filenames: []string{"pacman.6j"}, size: 0x1000, offset: 0x3000},
		{filenames: []string{"u5"}, size: 0x0800, offset: 0x8000},
		{filenames: []string{"u6"}, size: 0x1000, offset: 0x9000},
		{filenames: []string{"u7"}, size: 0x1000, offset: 0xb000},
	},
	TileGfx:     {{filenames: []string{"5e", "5e.cpu", "pacman.5e"}, size: 0x1000}},
	SpriteGfx:   {{filenames: []string{"5f", "5f.cpu", "pacman.5f"}, size: 0x1000}},
	ColorPROM:   {{filenames: []string{"82s123.7f"}, size: 0x20}},
	PalettePROM: {{filenames: []string{"82s126.4a"}, size: 0x100}},
	SoundPROM: {
		{filenames: []string{"82s126.1m"}, size: 0x100},
		{filenames: []string{"82s126.3m"}, size: 0x100},
	},
}

func (v Variant) romSet() romSet {
	switch v {
	case MsPacMan:
		return msPacManBootSet
	case MsPacManEncrypted:
		return msPacManSet
	default:
		return pacmanSet
	}
}

type romOpener interface {
	open(romSet, int) ([][]byte, error)
	has(string) bool
}

// readImage reads exactly size bytes, zero padding a short image rather
// than failing; dumps are a fixed size by convention and a truncated
// one should degrade, not abort
func readImage(r io.Reader, size int) ([]byte, error) {
	return io.ReadAll(plumbing.PaddedReader(io.LimitReader(r, int64(size)), int64(size), 0))
}

type zipReader struct {
	path string
}

func (zr zipReader) open(set romSet, area int) ([][]byte, error) {
	z, err := zip.OpenReader(zr.path)
	if err != nil {
		return nil, err
	}
	defer z.Close()

	// a missing image leaves a nil hole at its index so the caller can
	// still tell exactly which role was absent
	images := make([][]byte, len(set[area]))
	var errs []error
	for i, rom := range set[area] {
		var b []byte
	names:
		for _, name := range rom.filenames {
			for _, f := range z.File {
				if f.Name == name {
					r, err := f.Open()
					if err != nil {
						return nil, err
					}
					b, err = readImage(r, rom.size)
					r.Close()
					if err != nil {
						return nil, err
					}
					break names
				}
			}
		}

		if b == nil {
			errs = append(errs, fmt.Errorf("%w: %s (%s)", ErrMissingROM, RoleString(area, i), rom.filenames[0]))
			continue
		}

		images[i] = b
	}

	return images, errors.Join(errs...)
}

func (zr zipReader) has(name string) bool {
	z, err := zip.OpenReader(zr.path)
	if err != nil {
		return false
	}
	defer z.Close()

	for _, f := range z.File {
		if f.Name == name {
			return true
		}
	}

	return false
}

type directoryReader struct {
	path string
}

func (dr directoryReader) open(set romSet, area int) ([][]byte, error) {
	images := make([][]byte, len(set[area]))
	var errs []error
	for i, rom := range set[area] {
		var b []byte
	names:
		for _, name := range rom.filenames {
			f, err := os.Open(filepath.Join(dr.path, name))
			if err != nil {
				if os.IsNotExist(err) {
					continue names
				}
				return nil, err
			}

			b, err = readImage(f, rom.size)
			f.Close()
			if err != nil {
				return nil, err
			}

			break names
		}

		if b == nil {
			errs = append(errs, fmt.Errorf("%w: %s (%s)", ErrMissingROM, RoleString(area, i), rom.filenames[0]))
			continue
		}

		images[i] = b
	}

	return images, errors.Join(errs...)
}

func (dr directoryReader) has(name string) bool {
	_, err := os.Stat(filepath.Join(dr.path, name))
	return err == nil
}

func newROMOpener(path string) (romOpener, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return directoryReader{path}, nil
	}

	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, err
	}

	if mime.Extension() != ".zip" {
		return nil, errUnsupportedFormat
	}

	return zipReader{path}, nil
}

// DetectVariant works out which game a ROM set holds from the files
// present, preferring the Ms. Pac-Man sets when their extra ROMs exist.
func DetectVariant(path string) (Variant, error) {
	o, err := newROMOpener(path)
	if err != nil {
		return PacMan, err
	}

	switch {
	case o.has("boot1"):
		return MsPacMan, nil
	case o.has("u5") && o.has("u6"):
		return MsPacManEncrypted, nil
	}

	return PacMan, nil
}
