package pac

// The program address space is 64 KiB; ROM images are scattered into it
// at the offsets the hardware maps them to
const addressSpaceSize = 0x10000

type region struct {
	offset int
	data   []byte
}

// assemble scatters the raw program images into a flat zeroed address
// space. Regions never overlap on real hardware so no overlap checking
// is done; a later region would simply win.
func assemble(regions []region) []byte {
	space := make([]byte, addressSpaceSize)
	for _, r := range regions {
		copy(space[r.offset:], r.data)
	}
	return space
}

// dataSwap is the data line descrambling common to every encrypted bank
var dataSwap = []int{0, 4, 5, 7, 6, 3, 2, 1}

// bankRange maps one destination range of the decrypted image to a bank
// in the assembled address space. The address swap is applied to the
// range-relative index before adding the bank offset; nil means the
// bytes are copied through verbatim.
type bankRange struct {
	dest    int
	length  int
	bank    int
	address []int
	data    []int
}

type layout struct {
	size    int
	ranges  []bankRange
	patches []patch
}

// pacmanLayout is four 4 KiB program ROMs copied straight through
var pacmanLayout = layout{
	size: 0x4000,
	ranges: []bankRange{
		{dest: 0x0000, length: 0x1000, bank: 0x0000},
		{dest: 0x1000, length: 0x1000, bank: 0x1000},
		{dest: 0x2000, length: 0x1000, bank: 0x2000},
		{dest: 0x3000, length: 0x1000, bank: 0x3000},
	},
}

// msPacManBootLayout is the already-decrypted six ROM bootleg set
var msPacManBootLayout = layout{
	size: 0x6000,
	ranges: []bankRange{
		{dest: 0x0000, length: 0x1000, bank: 0x0000},
		{dest: 0x1000, length: 0x1000, bank: 0x1000},
		{dest: 0x2000, length: 0x1000, bank: 0x2000},
		{dest: 0x3000, length: 0x1000, bank: 0x3000},
		{dest: 0x4000, length: 0x1000, bank: 0x4000},
		{dest: 0x5000, length: 0x1000, bank: 0x5000},
	},
}

// msPacManLayout decrypts the u5/u6/u7 overlay ROMs sitting on top of
// the four Pac-Man program ROMs. The first three banks pass through
// untouched, u7 replaces the fourth, u5 and the two halves of u6 land
// in the upper 8 KiB, and the final 2 KiB mirrors the top half of the
// second ROM, reproducing the address line aliasing of the daughter
// board. The patch table is then applied on top.
var msPacManLayout = layout{
	size: 0x6000,
	ranges: []bankRange{
		{dest: 0x0000, length: 0x1000, bank: 0x0000},
		{dest: 0x1000, length: 0x1000, bank: 0x1000},
		{dest: 0x2000, length: 0x1000, bank: 0x2000},
		{dest: 0x3000, length: 0x1000, bank: 0xb000, address: []int{11, 3, 7, 9, 10, 8, 6, 5, 4, 2, 1, 0}, data: dataSwap},
		{dest: 0x4000, length: 0x0800, bank: 0x8000, address: []int{8, 7, 5, 9, 10, 6, 3, 4, 2, 1, 0}, data: dataSwap},
		{dest: 0x4800, length: 0x0800, bank: 0x9800, address: []int{3, 7, 9, 10, 8, 6, 5, 4, 2, 1, 0}, data: dataSwap},
		{dest: 0x5000, length: 0x0800, bank: 0x9000, address: []int{3, 7, 9, 10, 8, 6, 5, 4, 2, 1, 0}, data: dataSwap},
		{dest: 0x5800, length: 0x0800, bank: 0x1800},
	},
	patches: msPacManPatches,
}

// decrypt derives the program image from the assembled address space.
// Each range is processed on its own; they share nothing beyond the
// source buffer.
func decrypt(space []byte, l layout) []byte {
	image := make([]byte, l.size)

	for _, r := range l.ranges {
		for i := 0; i < r.length; i++ {
			src := i
			if r.address != nil {
				src = bitswapInt(i, r.address...)
			}
			b := space[r.bank+src]
			if r.data != nil {
				b = bitswapByte(b, r.data...)
			}
			image[r.dest+i] = b
		}
	}

	applyPatches(image, l.patches)

	return image
}
