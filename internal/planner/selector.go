package planner

import "math/rand/v2"

// Pick selects n menus from pool, spreading the early picks across protein
// categories. Menus are shuffled within their category, then drained one per
// category per round into a base sequence which is cycled when n exceeds the
// pool size. An empty pool yields n empty placeholders.
func Pick(rng *rand.Rand, pool []string, n int) []string {
	if n <= 0 {
		return []string{}
	}
	picks := make([]string, n)
	if len(pool) == 0 {
		return picks
	}

	base := balancedSequence(rng, pool)
	for i := range picks {
		picks[i] = base[i%len(base)]
	}
	return picks
}

func balancedSequence(rng *rand.Rand, pool []string) []string {
	buckets := make([][]string, numCategories)
	for _, menu := range pool {
		c := CategoryOf(menu)
		buckets[c] = append(buckets[c], menu)
	}
	for _, bucket := range buckets {
		rng.Shuffle(len(bucket), func(i, j int) {
			bucket[i], bucket[j] = bucket[j], bucket[i]
		})
	}

	// The category visiting order is drawn once so day one is not always the
	// same protein.
	order := rng.Perm(numCategories)

	base := make([]string, 0, len(pool))
	for round := 0; len(base) < len(pool); round++ {
		for _, c := range order {
			if round < len(buckets[c]) {
				base = append(base, buckets[c][round])
			}
		}
	}
	return base
}
