package flashcards

import "math/rand/v2"

// Shuffle permutes s in place with Fisher-Yates: walking from the last index
// down to 1, each element is swapped with a uniformly chosen one at or below it.
func Shuffle[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// pick returns up to n items of from in random order without modifying it.
func pick[T any](rng *rand.Rand, from []T, n int) []T {
	cp := append([]T(nil), from...)
	Shuffle(rng, cp)
	if n < len(cp) {
		cp = cp[:n]
	}
	return cp
}
