package pac

const (
	numWaveforms    = 16
	waveformSamples = 32
	promWaveforms   = 8
)

// Wavetable holds the 16 sound waveforms of 32 signed samples each.
type Wavetable [numWaveforms][waveformSamples]int8

// ResolveWavetable converts the two sound PROMs, each carrying eight
// waveforms of 32 four-bit samples. Subtracting seven biases the
// unsigned nibble onto [-7, 8]. Short PROMs are treated as zero filled.
func ResolveWavetable(prom1, prom2 []byte) (table Wavetable) {
	for w := 0; w < numWaveforms; w++ {
		prom, offset := prom1, w*waveformSamples
		if w >= promWaveforms {
			prom, offset = prom2, (w-promWaveforms)*waveformSamples
		}
		for s := 0; s < waveformSamples; s++ {
			var b byte
			if offset+s < len(prom) {
				b = prom[offset+s]
			}
			table[w][s] = int8(b&0x0f) - 7
		}
	}
	return
}
