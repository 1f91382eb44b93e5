package lzw

import "math"

// Estimate returns a normalized compressibility estimate of b.
// It averages the share of byte pairs that repeat an earlier pair,
// which are the first strings the dictionary learns, with the
// order-0 redundancy of b.
// Values close to zero are likely to expand.
// Values above 0.5 are likely to compress well.
// Very small lengths will return 0.
func Estimate(b []byte) float64 {
	if len(b) < 16 {
		return 0
	}
	var seen [1 << 16 / 64]uint64
	var hist [256]int
	repeats := 0
	hist[b[0]]++
	for i := 1; i < len(b); i++ {
		p := uint16(b[i-1])<<8 | uint16(b[i])
		if seen[p>>6]&(1<<(p&63)) != 0 {
			repeats++
		} else {
			seen[p>>6] |= 1 << (p & 63)
		}
		hist[b[i]]++
	}
	pairs := float64(repeats) / float64(len(b)-1)
	redundancy := 1 - entropy(hist[:], len(b))/8
	return (pairs + redundancy) / 2
}

// entropy returns the order-0 entropy in bits per byte.
func entropy(hist []int, n int) float64 {
	inv := 1 / float64(n)
	e := 0.0
	for _, v := range hist {
		if v > 0 {
			p := float64(v) * inv
			e -= p * math.Log2(p)
		}
	}
	return e
}
