package core

// fmix32 is the murmur3 finalizer.
func fmix32(k uint32) uint32 {
	k ^= k >> 16
	k *= 0x85ebca6b
	k ^= k >> 13
	k *= 0xc2b2ae35
	k ^= k >> 16
	return k
}

// SegmentMixer53 folds a segment id into a 53-bit mixing value. Even bytes of
// the UTF-8 encoding feed the low accumulator and odd bytes the high one.
func SegmentMixer53(segment string) uint64 {
	lo, hi := uint32(5381), uint32(5381)
	for i := 0; i < len(segment); i++ {
		b := uint32(segment[i])
		if i%2 == 0 {
			lo = ((lo << 5) + lo) ^ b
		} else {
			hi = ((hi << 5) + hi) ^ b
		}
	}
	return uint64(fmix32(hi))<<21 | uint64(fmix32(lo))>>11
}
