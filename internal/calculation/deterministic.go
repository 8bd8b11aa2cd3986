package calculation

import "time"

// SeedSource supplies a master seed when a configuration leaves it at zero.
type SeedSource func() int64

// TimeSeed draws a seed from the wall clock.
func TimeSeed() int64 { return time.Now().UnixNano() }

// resolveSeed returns seed, or a fresh one from src when seed is zero. A nil
// src falls back to TimeSeed.
func resolveSeed(seed int64, src SeedSource) int64 {
	if seed != 0 {
		return seed
	}
	if src == nil {
		src = TimeSeed
	}
	return src()
}

// streamSeed derives an independent seed for stream i of an ensemble so each
// run draws the same numbers regardless of goroutine scheduling.
func streamSeed(master int64, i int) int64 {
	// splitmix64 finaliser
	z := uint64(master) + uint64(i+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
