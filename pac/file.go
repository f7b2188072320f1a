/*
Package pac converts original Pac-Man and Ms. Pac-Man arcade ROM sets
into the asset tables a playback target consumes: the decrypted program
image, decoded tile and sprite bitmaps, the color palettes and the
sound wavetable.

The program ROMs of the original Ms. Pac-Man daughter board are
encrypted with per-bank address and data line scrambling and overlaid
with forty eight-byte patches; both are reproduced here bit for bit.
The graphics ROMs use a planar layout which is unpacked into
direct-indexable pixel matrices.
*/
package pac

import (
	"errors"
	"fmt"
)

// File holds the converted artifacts for one ROM set along with the
// raw images they were converted from, indexed by area
type File struct {
	Variant   Variant
	ROM       [Areas][][]byte
	Program   []byte
	Tiles     []Tile
	Sprites   []Sprite
	Palettes  PaletteTable
	Wavetable Wavetable
}

// NewFile returns a File based on the passed zip file or directory
// containing a Pac-Man or Ms. Pac-Man ROM set, detecting which game it
// holds from the files present
func NewFile(path string) (*File, error) {
	v, err := DetectVariant(path)
	if err != nil {
		return nil, err
	}

	return NewFileVariant(path, v)
}

// NewFileVariant is NewFile with the variant forced rather than
// detected
func NewFileVariant(path string, v Variant) (*File, error) {
	o, err := newROMOpener(path)
	if err != nil {
		return nil, err
	}

	set := v.romSet()

	var roms [Areas][][]byte
	var errs []error
	for area := range set {
		b, err := o.open(set, area)
		if err != nil && !errors.Is(err, ErrMissingROM) {
			errs = append(errs, err)
			continue
		}
		// missing images leave nil holes; Convert reports the exact
		// roles itself
		roms[area] = b
	}

	f, err := Convert(roms, v)
	if err != nil {
		errs = append(errs, err)
	}

	return f, errors.Join(errs...)
}

// Convert runs the five conversion pipelines over a set of raw ROM
// images keyed by area. The pipelines are independent: a missing sound
// PROM does not stop the program converting, and every failure is
// reported, not just the first. The returned File carries whichever
// artifacts did convert.
func Convert(roms [Areas][][]byte, v Variant) (*File, error) {
	f := &File{Variant: v, ROM: roms}

	var errs []error
	for _, convert := range []func([Areas][][]byte, Variant) error{
		f.convertProgram,
		f.convertTiles,
		f.convertSprites,
		f.convertPalettes,
		f.convertWavetable,
	} {
		if err := convert(roms, v); err != nil {
			errs = append(errs, err)
		}
	}

	return f, errors.Join(errs...)
}

// missing returns nil if image index of area is present, otherwise an
// error naming the role
func missing(roms [Areas][][]byte, area, index int) error {
	if index < len(roms[area]) && roms[area][index] != nil {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingROM, RoleString(area, index))
}

func (f *File) convertProgram(roms [Areas][][]byte, v Variant) error {
	banks := v.romSet()[Program]

	regions := make([]region, len(banks))
	var errs []error
	for i, b := range banks {
		// report every absent bank, not just the first
		if err := missing(roms, Program, i); err != nil {
			errs = append(errs, err)
			continue
		}
		regions[i] = region{b.offset, roms[Program][i]}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	f.Program = decrypt(assemble(regions), v.layout())

	return nil
}

func (f *File) convertTiles(roms [Areas][][]byte, _ Variant) error {
	if err := missing(roms, TileGfx, 0); err != nil {
		return err
	}

	f.Tiles = DecodeTiles(roms[TileGfx][0])

	return nil
}

func (f *File) convertSprites(roms [Areas][][]byte, _ Variant) error {
	if err := missing(roms, SpriteGfx, 0); err != nil {
		return err
	}

	f.Sprites = DecodeSprites(roms[SpriteGfx][0])

	return nil
}

func (f *File) convertPalettes(roms [Areas][][]byte, _ Variant) error {
	if err := errors.Join(missing(roms, ColorPROM, 0), missing(roms, PalettePROM, 0)); err != nil {
		return err
	}

	f.Palettes = ResolvePalette(roms[ColorPROM][0], roms[PalettePROM][0])

	return nil
}

func (f *File) convertWavetable(roms [Areas][][]byte, _ Variant) error {
	if err := errors.Join(missing(roms, SoundPROM, 0), missing(roms, SoundPROM, 1)); err != nil {
		return err
	}

	f.Wavetable = ResolveWavetable(roms[SoundPROM][0], roms[SoundPROM][1])

	return nil
}
