// SPDX-License-Identifier: MIT

package hopscotch

// legalSizes are the capacities a Set may take: primes, each roughly √2 times
// the previous one. All of them exceed 2*maxHop, so a single wrap-around
// correction in index() is enough, and none is a multiple of rehashStep.
var legalSizes = [...]int{
	257, 367, 521, 739, 1049, 1487, 2111, 2999, 4241, 6007,
	8501, 12037, 17021, 24071, 34039, 48157, 68099, 96293, 136163, 192539,
	272257, 384973, 544367, 769739, 1088413, 1539029, 2176193, 3077143, 4351091, 6152449,
	8699567, 12301229, 17393953, 24595057, 34777423, 49175279, 69533861, 98320889, 139025749, 196582453,
	277967617, 393046219, 555767363, 785855069, 1111199081, 1571235511,
}

// capacityFor returns the smallest legal size that holds n entries at or
// below the load factor, or the largest legal size when n is too big.
func capacityFor(n int) int {
	if n < 0 {
		n = 0
	}
	want := int(float64(n) / loadFactor)
	for _, size := range legalSizes {
		if size >= want {
			return size
		}
	}
	return legalSizes[len(legalSizes)-1]
}

// legalSizeAbove returns the first legal size strictly greater than c.
func legalSizeAbove(c int) (int, bool) {
	for _, size := range legalSizes {
		if size > c {
			return size, true
		}
	}
	return 0, false
}
