// Package hay defines the abstract sequence the rest of the pattern-matching
// core searches over.
//
// A Hay is deliberately thin: it knows its own bounds, how to step from one
// codeword boundary to the next or previous one, and nothing else. Two
// concrete shapes are provided — SliceHay, for a contiguous slice of
// comparable elements, and Text, for UTF-8 text addressed by byte offset.
//
// Every method on Hay and its implementations is unchecked: callers
// (package span, package searcher, package pattern) must only pass indices
// that already lie on codeword boundaries. Violating that isn't reported as
// an error — there is no runtime check — it is a contract violation, caught
// (if at all) by misaligned results rather than a panic or an error value.
package hay

// Range is a half-open index range [Start, End) into a Hay, always
// expressed in the hay's own coordinate system (byte offsets for Text,
// element offsets for SliceHay).
type Range struct {
	Start int
	End   int
}

// Len reports the number of indices spanned by r. It is not the number of
// codewords unless every index in the range is itself a boundary.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty reports whether r contains no indices.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// Hay is the abstract sequence a Searcher operates over.
//
// Its index type is fixed to int across every implementation in this
// module: both SliceHay (element offsets) and Text (byte offsets) are
// naturally dense, zero-based, totally ordered integer spaces, so nothing
// is gained by making the index type itself generic — unlike the element
// type, which does vary and is a type parameter of SliceHay.
type Hay interface {
	// StartIndex returns the lowest valid index into the hay.
	StartIndex() int
	// EndIndex returns one past the highest valid index into the hay.
	EndIndex() int
	// NextIndex returns the index of the codeword boundary following i.
	// i must itself be a codeword boundary strictly less than EndIndex().
	NextIndex(i int) int
	// PrevIndex returns the index of the codeword boundary preceding i.
	// i must itself be a codeword boundary strictly greater than
	// StartIndex().
	PrevIndex(i int) int
}
