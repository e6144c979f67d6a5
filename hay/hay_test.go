package hay

import "testing"

func TestSliceHayBounds(t *testing.T) {
	h := NewSlice([]int{10, 20, 30, 40})
	if h.StartIndex() != 0 || h.EndIndex() != 4 {
		t.Fatalf("bounds = [%d, %d), want [0, 4)", h.StartIndex(), h.EndIndex())
	}
	if got := h.NextIndex(1); got != 2 {
		t.Errorf("NextIndex(1) = %d, want 2", got)
	}
	if got := h.PrevIndex(2); got != 1 {
		t.Errorf("PrevIndex(2) = %d, want 1", got)
	}
	sub := h.Slice(Range{1, 3})
	if got := sub.Data(); len(got) != 2 || got[0] != 20 || got[1] != 30 {
		t.Errorf("Slice(1,3).Data() = %v, want [20 30]", got)
	}
}

func TestTextBoundaryNavigationASCII(t *testing.T) {
	h := NewText("abc")
	if h.EndIndex() != 3 {
		t.Fatalf("EndIndex() = %d, want 3", h.EndIndex())
	}
	i := h.StartIndex()
	var walked []int
	for i < h.EndIndex() {
		walked = append(walked, i)
		i = h.NextIndex(i)
	}
	walked = append(walked, i)
	want := []int{0, 1, 2, 3}
	if len(walked) != len(want) {
		t.Fatalf("walked = %v, want %v", walked, want)
	}
	for k := range want {
		if walked[k] != want[k] {
			t.Fatalf("walked = %v, want %v", walked, want)
		}
	}
}

func TestTextBoundaryNavigationMultibyte(t *testing.T) {
	// "風" is U+98A8, a 3-byte rune; "a" is 1 byte.
	h := NewText("a風b")
	i := h.StartIndex()
	var walked []int
	for i < h.EndIndex() {
		walked = append(walked, i)
		i = h.NextIndex(i)
	}
	walked = append(walked, i)
	want := []int{0, 1, 4, 5}
	if len(walked) != len(want) {
		t.Fatalf("walked = %v, want %v", walked, want)
	}
	for k := range want {
		if walked[k] != want[k] {
			t.Fatalf("walked = %v, want %v", walked, want)
		}
	}

	// Walking backward from the end must retrace the same boundaries.
	j := h.EndIndex()
	var back []int
	for j > h.StartIndex() {
		back = append(back, j)
		j = h.PrevIndex(j)
	}
	back = append(back, j)
	wantBack := []int{5, 4, 1, 0}
	for k := range wantBack {
		if back[k] != wantBack[k] {
			t.Fatalf("back = %v, want %v", back, wantBack)
		}
	}
}

func TestTextBoundaryNavigationASCIIAfterMultibyte(t *testing.T) {
	// The ASCII fast path only covers the prefix before the first
	// non-ASCII byte; ASCII bytes after it must still navigate correctly
	// through the decode path.
	h := NewText("風ab")
	i := h.StartIndex()
	var walked []int
	for i < h.EndIndex() {
		walked = append(walked, i)
		i = h.NextIndex(i)
	}
	walked = append(walked, i)
	want := []int{0, 3, 4, 5}
	if len(walked) != len(want) {
		t.Fatalf("walked = %v, want %v", walked, want)
	}
	for k := range want {
		if walked[k] != want[k] {
			t.Fatalf("walked = %v, want %v", walked, want)
		}
	}
	if got := h.PrevIndex(5); got != 4 {
		t.Errorf("PrevIndex(5) = %d, want 4", got)
	}
	if got := h.PrevIndex(3); got != 0 {
		t.Errorf("PrevIndex(3) = %d, want 0", got)
	}
}

func TestTextSliceKeepsBoundaryNavigation(t *testing.T) {
	h := NewText("ab風cd")
	sub := h.Slice(Range{1, 6}) // "b風c"
	if sub.String() != "b風c" {
		t.Fatalf("Slice = %q, want %q", sub.String(), "b風c")
	}
	if got := sub.NextIndex(0); got != 1 {
		t.Errorf("NextIndex(0) = %d, want 1", got)
	}
	if got := sub.NextIndex(1); got != 4 {
		t.Errorf("NextIndex(1) = %d, want 4", got)
	}
	if got := sub.PrevIndex(4); got != 1 {
		t.Errorf("PrevIndex(4) = %d, want 1", got)
	}
}

func TestTextAt(t *testing.T) {
	h := NewText("a風b")
	if r, size := h.At(0); r != 'a' || size != 1 {
		t.Errorf("At(0) = (%q, %d), want ('a', 1)", r, size)
	}
	if r, size := h.At(1); r != '風' || size != 3 {
		t.Errorf("At(1) = (%q, %d), want ('風', 3)", r, size)
	}
}

func TestRange(t *testing.T) {
	r := Range{2, 5}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
	if r.Empty() {
		t.Error("Empty() = true, want false")
	}
	if !(Range{3, 3}).Empty() {
		t.Error("Empty() = false, want true")
	}
}
