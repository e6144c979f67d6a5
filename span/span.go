// Package span implements the (hay, restricted-range) pair that searchers
// receive instead of a re-sliced hay, so repeated searches over the same
// hay never pay for re-slicing and every reported match stays expressed in
// the hay's own coordinate system.
package span

import "github.com/coregx/patterncore/hay"

// Span pairs a Hay with a range restricting which part of it is currently
// searchable. H is the concrete hay type (hay.SliceHay[T] or hay.Text) so
// that searchers built against a specific H can recover typed data from it
// without a type assertion.
type Span[H hay.Hay] struct {
	h hay.Hay
	r hay.Range
}

// From builds a Span covering the whole of h.
func From[H hay.Hay](h H) Span[H] {
	return Span[H]{h: h, r: hay.Range{Start: h.StartIndex(), End: h.EndIndex()}}
}

// FromParts builds a Span over h restricted to r. r's endpoints must
// already lie within [h.StartIndex(), h.EndIndex()] and on codeword
// boundaries; this is not checked.
func FromParts[H hay.Hay](h H, r hay.Range) Span[H] {
	return Span[H]{h: h, r: r}
}

// IntoParts decomposes the span back into its hay and range.
func (s Span[H]) IntoParts() (H, hay.Range) {
	return s.h.(H), s.r
}

// Range returns the span's current restricted range without unpacking the
// hay, useful for capability checks that don't need typed element access.
func (s Span[H]) Range() hay.Range {
	return s.r
}

// SliceUnchecked narrows the span to r. r must be a subrange of the span's
// current range with endpoints on codeword boundaries; not checked.
func (s Span[H]) SliceUnchecked(r hay.Range) Span[H] {
	return Span[H]{h: s.h, r: r}
}
