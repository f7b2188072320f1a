package pac

// Every patch copies eight bytes
const patchLength = 8

type patch struct {
	dest int
	src  int
}

// msPacManPatches are the forty fixups the daughter board pages over
// the original Pac-Man code once the overlay ROMs are decrypted. The
// source addresses sit in the decrypted u5 bank at 0x4000. They are
// hardware-documented data, not derived, and must be applied in this
// order.
var msPacManPatches = []patch{
	{0x0410, 0x4008},
	{0x08e0, 0x41d8},
	{0x0a30, 0x4118},
	{0x0bd0, 0x40d8},
	{0x0c20, 0x4120},
	{0x0e58, 0x4168},
	{0x0ea8, 0x4198},
	{0x1000, 0x4020},
	{0x1008, 0x4010},
	{0x1288, 0x4098},
	{0x1348, 0x4048},
	{0x1688, 0x4088},
	{0x16b0, 0x4188},
	{0x16d8, 0x40c8},
	{0x16f8, 0x41c8},
	{0x19a8, 0x40a8},
	{0x19b8, 0x41a8},
	{0x2060, 0x4148},
	{0x2108, 0x4018},
	{0x21a0, 0x41a0},
	{0x2298, 0x41e8},
	{0x23e0, 0x4038},
	{0x2418, 0x4000},
	{0x2448, 0x4058},
	{0x2470, 0x4140},
	{0x2488, 0x4080},
	{0x24b0, 0x4180},
	{0x24d8, 0x40c0},
	{0x24f8, 0x41c0},
	{0x2748, 0x4050},
	{0x2780, 0x4090},
	{0x27b8, 0x4190},
	{0x2800, 0x4028},
	{0x2b20, 0x4100},
	{0x2b30, 0x4110},
	{0x2bf0, 0x41d0},
	{0x2cc0, 0x40d0},
	{0x2cd8, 0x40e0},
	{0x2cf0, 0x41e0},
	{0x2d60, 0x4160},
}

// applyPatches mutates the image in place. Later entries are allowed to
// read bytes written by earlier ones so the order of the table is part
// of the behaviour.
func applyPatches(image []byte, patches []patch) {
	for _, p := range patches {
		copy(image[p.dest:p.dest+patchLength], image[p.src:p.src+patchLength])
	}
}
