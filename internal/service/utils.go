package service

import "math/rand/v2"

// uniformFloat возвращает равномерное число из [lo, hi).
func uniformFloat(rnd *rand.Rand, lo, hi float64) float64 {
	return lo + rnd.Float64()*(hi-lo)
}

// uniformInt возвращает равномерное целое из [lo, hi] включительно.
func uniformInt(rnd *rand.Rand, lo, hi int) int {
	return lo + rnd.IntN(hi-lo+1)
}
