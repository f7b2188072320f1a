/*
Package cheader emits converted ROM asset tables as C header files
suitable for compiling into firmware. Each header declares a single
static const array guarded by the usual include guard; the array shapes
match what the playback code indexes: a flat byte array for the program
image, a flat array of packed 16-bit tile rows, a [4][sprites][16]
array of packed 32-bit sprite rows, a [64][4] RGB565 colormap and a
[16][32] signed wavetable.
*/
package cheader

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/bodgit/pacman/pac"
)

// emit wraps a body in the common boilerplate. Everything is staged in
// a bytes.Buffer, whose writes never error, so only the final write
// needs checking.
func emit(w io.Writer, name, guard, comment string, body func(*bytes.Buffer)) error {
	b := new(bytes.Buffer)

	fmt.Fprintf(b, "/* %s.h - %s */\n", name, comment)
	b.WriteString("/* AUTO-GENERATED - DO NOT EDIT */\n")
	b.WriteString("\n")
	fmt.Fprintf(b, "#ifndef %s\n", guard)
	fmt.Fprintf(b, "#define %s\n", guard)
	b.WriteString("\n#include <stdint.h>\n\n")

	body(b)

	fmt.Fprintf(b, "\n#endif // %s\n", guard)

	_, err := w.Write(b.Bytes())

	return err
}

// Program writes the decrypted program image as a uint8_t array named
// <prefix>_rom along with a _SIZE define.
func Program(w io.Writer, prefix string, rom []byte) error {
	name := prefix + "_rom"
	guard := strings.ToUpper(name) + "_H"

	return emit(w, name, guard, "Program ROM", func(b *bytes.Buffer) {
		fmt.Fprintf(b, "static const uint8_t %s[] = {\n", name)
		for i := 0; i < len(rom); i += 16 {
			end := i + 16
			if end > len(rom) {
				end = len(rom)
			}
			values := make([]string, 0, 16)
			for _, v := range rom[i:end] {
				values = append(values, fmt.Sprintf("0x%02X", v))
			}
			fmt.Fprintf(b, "    %s,\n", strings.Join(values, ", "))
		}
		b.WriteString("};\n")
		fmt.Fprintf(b, "#define %s_SIZE %d\n", strings.ToUpper(name), len(rom))
	})
}

// Tiles writes the packed tile rows as a flat uint16_t array named
// <prefix>_5e, eight words per tile.
func Tiles(w io.Writer, prefix string, tiles []pac.Tile) error {
	name := prefix + "_5e"
	guard := strings.ToUpper(prefix) + "_TILEMAP_H"

	return emit(w, prefix+"_tilemap", guard, "Tile Graphics", func(b *bytes.Buffer) {
		fmt.Fprintf(b, "// %d 16-bit words = %d tiles x 8 rows\n", len(tiles)*8, len(tiles))
		fmt.Fprintf(b, "static const uint16_t %s[] = {\n", name)
		for _, t := range tiles {
			rows := t.Rows()
			values := make([]string, 0, len(rows))
			for _, r := range rows {
				values = append(values, fmt.Sprintf("0x%04X", r))
			}
			fmt.Fprintf(b, "    %s,\n", strings.Join(values, ", "))
		}
		b.WriteString("};\n")
	})
}

// Sprites writes the packed sprite rows for all four flip modes as a
// uint32_t[4][sprites][16] array named <prefix>_sprites. The renderer
// indexes it by flip mode then sprite, so the mode-major layout is part
// of the contract.
func Sprites(w io.Writer, prefix string, sprites []pac.Sprite) error {
	name := prefix + "_sprites"
	guard := strings.ToUpper(prefix) + "_SPRITEMAP_H"

	return emit(w, prefix+"_spritemap", guard, "Sprite Graphics", func(b *bytes.Buffer) {
		bank := pac.SpriteBank(sprites)

		fmt.Fprintf(b, "// 4 flip modes x %d sprites x 16 rows = %d 32-bit words\n", len(sprites), len(bank)*16)
		fmt.Fprintf(b, "static const uint32_t %s[4][%d][16] = {\n", name, len(sprites))
		for mode := 0; mode < 4; mode++ {
			fmt.Fprintf(b, "  { // Flip mode %d\n", mode)
			for _, rows := range bank[mode*len(sprites) : (mode+1)*len(sprites)] {
				values := make([]string, 0, len(rows))
				for _, r := range rows {
					values = append(values, fmt.Sprintf("0x%08X", r))
				}
				fmt.Fprintf(b, "    { %s },\n", strings.Join(values, ", "))
			}
			b.WriteString("  },\n")
		}
		b.WriteString("};\n")
	})
}

// Colormap writes the palettes as a uint16_t[64][4] array of RGB565
// values named <prefix>_colormap.
func Colormap(w io.Writer, prefix string, table pac.PaletteTable) error {
	name := prefix + "_colormap"
	guard := strings.ToUpper(prefix) + "_CMAP_H"

	return emit(w, prefix+"_cmap", guard, "Color Palette (RGB565)", func(b *bytes.Buffer) {
		b.WriteString("// 64 palettes x 4 colors = 256 RGB565 values\n")
		fmt.Fprintf(b, "static const uint16_t %s[64][4] = {\n", name)
		for i, p := range table {
			values := make([]string, 0, len(p))
			for _, c := range p {
				values = append(values, fmt.Sprintf("0x%04X", c))
			}
			fmt.Fprintf(b, "  { %s },  // Palette %d\n", strings.Join(values, ", "), i)
		}
		b.WriteString("};\n")
	})
}

// Wavetable writes the waveforms as an int8_t[16][32] array named
// <prefix>_wavetable.
func Wavetable(w io.Writer, prefix string, table pac.Wavetable) error {
	name := prefix + "_wavetable"
	guard := strings.ToUpper(name) + "_H"

	return emit(w, name, guard, "Audio Wavetable", func(b *bytes.Buffer) {
		b.WriteString("// 16 waveforms x 32 samples = 512 signed bytes\n")
		fmt.Fprintf(b, "static const int8_t %s[16][32] = {\n", name)
		for i, wave := range table {
			values := make([]string, 0, len(wave))
			for _, s := range wave {
				values = append(values, fmt.Sprintf("%3d", s))
			}
			fmt.Fprintf(b, "  { %s },  // Wave %d\n", strings.Join(values, ", "), i)
		}
		b.WriteString("};\n")
	})
}
