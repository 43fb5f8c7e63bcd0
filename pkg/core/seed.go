package core

import (
	"strings"
	"unicode/utf16"
)

// Lanes is the number of 32-bit lanes in a seed hash.
const Lanes = 8

// Seed is the hashed form of a seed string. The lanes are computed once and
// every segment value for the seed is derived from them, so a Seed should be
// built once per render and passed around by value.
type Seed struct {
	text  string
	lanes [Lanes]uint32
}

// NormalizeSeed maps empty and whitespace-only seeds to a single space.
func NormalizeSeed(s string) string {
	if strings.TrimSpace(s) == "" {
		return " "
	}
	return s
}

// NewSeed normalizes s and hashes its UTF-16 code units.
func NewSeed(s string) Seed {
	s = NormalizeSeed(s)
	return Seed{text: s, lanes: HashUnits(utf16.Encode([]rune(s)))}
}

// NewSeedUTF16 hashes raw UTF-16 code units as given. Unpaired surrogates are
// kept, which a Go string cannot represent.
func NewSeedUTF16(units []uint16) Seed {
	text := string(utf16.Decode(units))
	if strings.TrimSpace(text) == "" {
		return NewSeed("")
	}
	return Seed{text: text, lanes: HashUnits(units)}
}

// Text returns the normalized seed string.
func (s Seed) Text() string { return s.text }

// Lanes returns the finalized lane values.
func (s Seed) Lanes() [Lanes]uint32 { return s.lanes }

// HashUnits computes the eight finalized lanes for a UTF-16 code unit sequence.
func HashUnits(units []uint16) [Lanes]uint32 {
	var h [Lanes]uint32
	for lane := range h {
		h[lane] = 5381 + uint32(lane)
	}
	for i, u := range units {
		lo := uint32(u & 0xff)
		hi := uint32(u >> 8)
		for lane := range h {
			k := uint32(i)*31 + uint32(lane)*17
			v := h[lane]
			v = ((v << 5) + v) ^ (lo ^ (k & 0xff))
			v = ((v << 5) + v) ^ (hi ^ ((k >> 8) & 0xff))
			h[lane] = v
		}
	}
	for lane := range h {
		h[lane] = fmix32(h[lane])
	}
	return h
}

// Hash returns the uniform value in [0,1) for the named segment.
func (s Seed) Hash(segment string) float64 {
	m := SegmentMixer53(segment)
	var masked [Lanes]uint32
	for j := range masked {
		field := uint32((m >> (6 * uint(j))) & 0x3f)
		masked[j] = s.lanes[j] ^ (field * 0x01010101)
	}
	low := masked[0] ^ masked[2] ^ masked[4] ^ masked[6]
	high := masked[1] ^ masked[3] ^ masked[5] ^ masked[7]
	top := uint64(high)<<21 | uint64(low)>>11
	top = (top * 0x9E3779B97F4A7C15) >> 11
	return float64(top) / (1 << 53)
}

// Pick returns a category in [0, n). It returns 0 when n <= 0.
func (s Seed) Pick(segment string, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(s.Hash(segment)*float64(n)) % n
	if v < 0 {
		return 0
	}
	return v
}

// Roll reports whether the segment lands below p.
func (s Seed) Roll(segment string, p float64) bool {
	return s.Hash(segment) < p
}
