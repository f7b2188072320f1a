package pac

// Variant selects which board the ROM set belongs to, which decides
// both the files that make up the set and how the program ROMs are
// decoded. It is always passed explicitly; nothing in the package keeps
// variant state.
type Variant int

// These are the supported boards
const (
	// PacMan is the original four ROM board; the program is used as-is
	PacMan Variant = iota
	// MsPacMan is the six ROM bootleg set with the code already decrypted
	MsPacMan
	// MsPacManEncrypted is the original daughter board set: the four
	// Pac-Man program ROMs with the encrypted u5, u6 and u7 overlays
	MsPacManEncrypted
)

func (v Variant) String() string {
	strings := map[Variant]string{
		PacMan:            "Pac-Man",
		MsPacMan:          "Ms. Pac-Man",
		MsPacManEncrypted: "Ms. Pac-Man (encrypted)",
	}

	return strings[v]
}

func (v Variant) layout() layout {
	switch v {
	case MsPacMan:
		return msPacManBootLayout
	case MsPacManEncrypted:
		return msPacManLayout
	default:
		return pacmanLayout
	}
}
