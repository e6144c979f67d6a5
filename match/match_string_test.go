package match

import (
	"testing"

	"github.com/coregx/patterncore/pattern"
)

func TestFindAllStringOverlapOrder(t *testing.T) {
	matches := FindAllString("xxxxx", pattern.NewText("xx"))
	want := []Match{{0, 2}, {2, 4}}
	if len(matches) != len(want) {
		t.Fatalf("matches = %v, want %v", matches, want)
	}
	for i := range want {
		if matches[i] != want[i] {
			t.Fatalf("matches = %v, want %v", matches, want)
		}
	}
}

func TestSplitString(t *testing.T) {
	got := SplitString("a, b, c", pattern.NewText(", "))
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got = %v, want %v", got, want)
		}
	}
}

func TestReplaceString(t *testing.T) {
	got := ReplaceString("cat dog cat", pattern.NewText("cat"), "fish", -1)
	if got != "fish dog fish" {
		t.Fatalf("ReplaceString = %q, want %q", got, "fish dog fish")
	}
}

func TestTrimStringBothEnds(t *testing.T) {
	got := TrimString("風風風颫颫風", pattern.NewText("風"))
	if got != "颫颫" {
		t.Fatalf("TrimString = %q, want %q", got, "颫颫")
	}
}

func TestTrimStringAbsentPattern(t *testing.T) {
	got := TrimString("風風風颫颫風", pattern.NewText("颫"))
	if got != "風風風颫颫風" {
		t.Fatalf("TrimString = %q, want %q", got, "風風風颫颫風")
	}
}

func TestStartsWithEndsWithString(t *testing.T) {
	if !StartsWithString("hello world", pattern.NewText("hello")) {
		t.Error("StartsWithString = false, want true")
	}
	if !EndsWithString("hello world", pattern.NewText("world")) {
		t.Error("EndsWithString = false, want true")
	}
	if EndsWithString("hello world", pattern.NewText("hello")) {
		t.Error("EndsWithString = true, want false")
	}
}

func TestFindAllStringEmptyPatternBoundaryCount(t *testing.T) {
	matches := FindAllString("abc", pattern.NewText(""))
	if len(matches) != 4 {
		t.Fatalf("len(matches) = %d, want 4", len(matches))
	}
}

func TestFindAllStringEmptyPatternNonASCIITerminates(t *testing.T) {
	// "héllo" is 5 codewords (h, é, l, l, o) across 6 bytes (é is 2 bytes),
	// so this must terminate with 6 empty matches at the 6 rune-boundary
	// byte offsets (0, 1, 3, 4, 5, 6) instead of looping forever once pos
	// reaches EndIndex().
	s := "héllo"
	matches := FindAllString(s, pattern.NewText(""))
	wantOffsets := []int{0, 1, 3, 4, 5, 6}
	if len(matches) != len(wantOffsets) {
		t.Fatalf("len(matches) = %d, want %d: %v", len(matches), len(wantOffsets), matches)
	}
	for i, off := range wantOffsets {
		if matches[i].Start != off || matches[i].End != off {
			t.Fatalf("matches[%d] = %+v, want zero-width at %d", i, matches[i], off)
		}
	}
}

func TestAllStringEmptyPatternNonASCIITerminates(t *testing.T) {
	s := "héllo"
	var got []Match
	for m := range AllString(s, pattern.NewText("")) {
		got = append(got, m)
	}
	want := FindAllString(s, pattern.NewText(""))
	if len(got) != len(want) {
		t.Fatalf("AllString = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AllString = %v, want %v", got, want)
		}
	}
}

func TestAllStringSameAsFindAllString(t *testing.T) {
	s := "xxxxx"
	p := pattern.NewText("xx")
	var got []Match
	for m := range AllString(s, p) {
		got = append(got, m)
	}
	want := FindAllString(s, p)
	if len(got) != len(want) {
		t.Fatalf("AllString = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AllString = %v, want %v", got, want)
		}
	}
}
