package ec

import (
	"fmt"
	"math/rand"
)

// sampleDistinct draws k mutually distinct indices from [0, n),
// excluding the given index, via a partial Fisher-Yates shuffle. Unlike
// redraw-until-distinct sampling this terminates in exactly k swaps,
// provided n > k (excluding one index leaves at least k choices).
func sampleDistinct(rng *rand.Rand, n, k, exclude int) ([]int, error) {
	if n-1 < k {
		return nil, fmt.Errorf("cannot sample %d distinct indices from %d slots excluding one", k, n)
	}
	pool := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != exclude {
			pool = append(pool, i)
		}
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k], nil
}
