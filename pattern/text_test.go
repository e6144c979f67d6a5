package pattern

import (
	"testing"

	"github.com/coregx/patterncore/hay"
	"github.com/coregx/patterncore/searcher"
	"github.com/coregx/patterncore/span"
)

func TestTextSingleCharacterTrim(t *testing.T) {
	// trim("風風風颫颫風", '風') = "颫颫"
	h := hay.NewText("風風風颫颫風")
	p := NewText("風")
	rev := p.IntoConsumer().(searcher.Reverse[hay.Text])
	start := rev.TrimStart(h)
	end := rev.TrimEnd(h)
	if got := h.String()[start:end]; got != "颫颫" {
		t.Fatalf("trim = %q, want %q", got, "颫颫")
	}
}

func TestTextSingleCharacterTrimWhenAbsent(t *testing.T) {
	// trim("風風風颫颫風", '颫') = "風風風颫颫風"
	h := hay.NewText("風風風颫颫風")
	p := NewText("颫")
	rev := p.IntoConsumer().(searcher.Reverse[hay.Text])
	start := rev.TrimStart(h)
	end := rev.TrimEnd(h)
	if got := h.String()[start:end]; got != "風風風颫颫風" {
		t.Fatalf("trim = %q, want %q", got, "風風風颫颫風")
	}
}

func TestTextSearchFindsSubstring(t *testing.T) {
	h := hay.NewText("hello wörld")
	s := span.From[hay.Text](h)
	p := NewText("wörld")
	r, ok := p.IntoSearcher().Search(s)
	if !ok {
		t.Fatal("Search = not found, want found")
	}
	if got := h.String()[r.Start:r.End]; got != "wörld" {
		t.Fatalf("matched %q, want %q", got, "wörld")
	}
}

func TestTextEmptyPatternMatchesEverywhere(t *testing.T) {
	h := hay.NewText("abc")
	s := span.From[hay.Text](h)
	p := NewText("")
	r, ok := p.IntoSearcher().Search(s)
	if !ok || r.Start != 0 || r.End != 0 {
		t.Fatalf("Search = (%+v, %v), want ({0 0}, true)", r, ok)
	}
}
