package ordering

import "sort"

// StableSort sorts elems by the key extracted with keyOf, compared with cmp,
// and returns the result as a new slice. The input slice is not mutated.
//
// Stability is guaranteed regardless of the underlying sort primitive: each
// element is decorated with its original index and its precomputed key, ties
// on the key comparison are broken by index ascending, and the elements are
// projected back out. The composite order is total, so equal-key elements
// always emerge in their original relative order.
//
// keyOf is evaluated exactly once per element, before sorting starts, so a
// key function touching mutable elements never runs re-entrantly with the
// comparison.
func StableSort[E, K any](elems []E, keyOf func(E) K, cmp func(K, K) int) []E {
	type decorated struct {
		elem  E
		index int
		key   K
	}

	dec := make([]decorated, len(elems))
	for i, e := range elems {
		dec[i] = decorated{elem: e, index: i, key: keyOf(e)}
	}

	sort.Slice(dec, func(i, j int) bool {
		if c := cmp(dec[i].key, dec[j].key); c != 0 {
			return c < 0
		}

		return dec[i].index < dec[j].index
	})

	out := make([]E, len(dec))
	for i, d := range dec {
		out[i] = d.elem
	}

	return out
}
