package core

// SplitMix64 style integer hashing. The results are stable across runs and
// platforms, which is what the noise fields and scatter lattice rely on.

const (
	golden = 0x9E3779B97F4A7C15
	mixA   = 0xBF58476D1CE4E5B9
	mixB   = 0x94D049BB133111EB
)

func mix(v uint64) uint64 {
	v += golden
	v = (v ^ (v >> 30)) * mixA
	v = (v ^ (v >> 27)) * mixB
	return v ^ (v >> 31)
}

// Hash2 hashes a 2D lattice coordinate with a seed.
func Hash2(x, y, seed int64) uint64 {
	v := uint64(x)*golden + uint64(y)*0x517CC1B727220A95 + uint64(seed)
	return mix(v)
}

// Hash3 hashes a 3D lattice coordinate with a seed.
func Hash3(x, y, z, seed int64) uint64 {
	v := uint64(x)*golden + uint64(y)*0x517CC1B727220A95 + uint64(z)*0x6C62272E07BB0142 + uint64(seed)
	return mix(v)
}

// Unit maps a hash to [0, 1].
func Unit(h uint64) float64 {
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

// Signed maps a hash to [-1, 1].
func Signed(h uint64) float64 {
	return Unit(h)*2 - 1
}

// Split derives an independent sub-seed, e.g. one per scatter or noise layer.
func Split(seed int64, salt int64) int64 {
	return int64(mix(uint64(seed) ^ mix(uint64(salt))))
}
