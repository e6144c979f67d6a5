package twoway

// Elem is the element constraint the Two-Way engine needs: a total order,
// so the critical factorization can be computed, plus strict comparability
// so Go permits == on the type parameter directly.
type Elem interface {
	comparable
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// maximalSuffix computes a candidate critical factorization (left, period)
// of arr under the given ordering: greater selects the ">" comparison,
// otherwise "<". Both orderings must be tried by the caller and the one
// with the larger left wins (see New); this is Duval's algorithm as given
// in Crochemore & Rytter, "Text Algorithms", applied once per ordering.
//
// For long-period needles the returned period is a lower bound on the
// needle's period, not exact; New distinguishes the two cases by checking u against v[:period].
func maximalSuffix[T Elem](arr []T, greater bool) (left, period int) {
	right, offset := 1, 0
	period = 1
	for right+offset < len(arr) {
		a := arr[right+offset]
		b := arr[left+offset]
		switch {
		case a == b:
			if offset+1 == period {
				right += offset + 1
				offset = 0
			} else {
				offset++
			}
		case (greater && a > b) || (!greater && a < b):
			right += offset + 1
			offset = 0
			period = right - left
		default:
			left = right
			right++
			offset = 0
			period = 1
		}
	}
	return left, period
}

// reverseMaximalSuffix is maximalSuffix applied to the reverse of arr,
// stopping as soon as the running period reaches knownPeriod (the exact
// period already established for the forward factorization). Only the
// starting index of the reversed suffix is needed by callers.
func reverseMaximalSuffix[T Elem](arr []T, knownPeriod int, greater bool) int {
	left, right, offset := 0, 1, 0
	period := 1
	n := len(arr)
	for right+offset < n {
		a := arr[n-(1+right+offset)]
		b := arr[n-(1+left+offset)]
		switch {
		case a == b:
			if offset+1 == period {
				right += offset + 1
				offset = 0
			} else {
				offset++
			}
		case (greater && a > b) || (!greater && a < b):
			right += offset + 1
			offset = 0
			period = right - left
		default:
			left = right
			right++
			offset = 0
			period = 1
		}
		if period == knownPeriod {
			break
		}
	}
	return left
}
