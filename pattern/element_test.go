package pattern

import (
	"testing"

	"github.com/coregx/patterncore/hay"
	"github.com/coregx/patterncore/searcher"
	"github.com/coregx/patterncore/span"
)

func TestElementSearchAndRSearch(t *testing.T) {
	h := hay.NewSlice([]byte{6, 6, 75, 6, 77, 6, 6, 6})
	s := span.From[hay.SliceHay[byte]](h)
	e := NewElement[byte](6)

	r, ok := e.IntoSearcher().Search(s)
	if !ok || r.Start != 0 || r.End != 1 {
		t.Fatalf("Search = (%+v, %v), want ({0 1}, true)", r, ok)
	}

	rev := e.IntoSearcher().(searcher.Reverse[hay.SliceHay[byte]])
	rs, ok := rev.RSearch(s)
	if !ok || rs.Start != 7 || rs.End != 8 {
		t.Fatalf("RSearch = (%+v, %v), want ({7 8}, true)", rs, ok)
	}
}

func TestElementWiseSliceTrim(t *testing.T) {
	// trim(&[6,6,75,6,77,6,6,6], |c| c==6) = &[75,6,77]
	h := hay.NewSlice([]byte{6, 6, 75, 6, 77, 6, 6, 6})
	e := NewElement[byte](6)
	rev := e.IntoConsumer().(searcher.Reverse[hay.SliceHay[byte]])
	start := rev.TrimStart(h)
	end := rev.TrimEnd(h)
	got := h.Data()[start:end]
	want := []byte{75, 6, 77}
	if len(got) != len(want) {
		t.Fatalf("trim = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("trim = %v, want %v", got, want)
		}
	}
}

func TestElementConsumeAtFront(t *testing.T) {
	h := hay.NewSlice([]byte("xabc"))
	s := span.From[hay.SliceHay[byte]](h)
	e := NewElement[byte]('x')
	pos, ok := e.IntoConsumer().Consume(s)
	if !ok || pos != 1 {
		t.Fatalf("Consume = (%d, %v), want (1, true)", pos, ok)
	}

	e2 := NewElement[byte]('a')
	if _, ok := e2.IntoConsumer().Consume(s); ok {
		t.Fatal("Consume = true, want false")
	}
}
