package simd

// MemchrInTable returns the index of the first byte in haystack for which
// table[b] is true, or -1 if none match.
//
// This backs pattern.ByteSet's scan: the set is precomputed once into a
// 256-entry membership table, then every candidate position is an O(1)
// array read instead of a predicate call.
func MemchrInTable(haystack []byte, table *[256]bool) int {
	for i, b := range haystack {
		if table[b] {
			return i
		}
	}
	return -1
}

// MemchrNotInTable returns the index of the first byte in haystack for
// which table[b] is false, or -1 if every byte matches. Used to find the
// end of a greedy run once its start has been located.
func MemchrNotInTable(haystack []byte, table *[256]bool) int {
	for i, b := range haystack {
		if !table[b] {
			return i
		}
	}
	return -1
}

// LastIndexInTable returns the index of the last byte in haystack for which
// table[b] is true, or -1 if none match. Used by the reverse scan of
// pattern.ByteSet.
func LastIndexInTable(haystack []byte, table *[256]bool) int {
	for i := len(haystack) - 1; i >= 0; i-- {
		if table[haystack[i]] {
			return i
		}
	}
	return -1
}

// LastIndexNotInTable returns the index of the last byte in haystack for
// which table[b] is false, or -1 if every byte matches. Used to find the
// start of a trailing run once its end has been located (TrimEnd).
func LastIndexNotInTable(haystack []byte, table *[256]bool) int {
	for i := len(haystack) - 1; i >= 0; i-- {
		if !table[haystack[i]] {
			return i
		}
	}
	return -1
}
