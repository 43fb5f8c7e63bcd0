package app

import (
	"strconv"
	"strings"
)

// StepSeed adds delta to the decimal number at the end of seed, keeping any
// zero padding. Seeds without a trailing number get one appended, starting
// from delta. Results never go below zero.
func StepSeed(seed string, delta int) string {
	end := len(seed)
	start := end
	for start > 0 && seed[start-1] >= '0' && seed[start-1] <= '9' {
		start--
	}
	if start == end {
		if delta < 0 {
			delta = 0
		}
		return seed + strconv.Itoa(delta)
	}
	digits := seed[start:end]
	n, err := strconv.Atoi(digits)
	if err != nil {
		return seed + strconv.Itoa(delta)
	}
	n += delta
	if n < 0 {
		n = 0
	}
	next := strconv.Itoa(n)
	if pad := len(digits) - len(next); pad > 0 {
		next = strings.Repeat("0", pad) + next
	}
	return seed[:start] + next
}
