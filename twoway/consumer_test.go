package twoway

import "testing"

func TestConsumerIsPrefixOf(t *testing.T) {
	c := NewConsumer([]byte("abc"))
	if !c.IsPrefixOf([]byte("abcdef")) {
		t.Error("IsPrefixOf(abcdef) = false, want true")
	}
	if c.IsPrefixOf([]byte("ab")) {
		t.Error("IsPrefixOf(ab) = true, want false (too short)")
	}
	if c.IsPrefixOf([]byte("xbc")) {
		t.Error("IsPrefixOf(xbc) = true, want false")
	}
}

func TestConsumerIsSuffixOf(t *testing.T) {
	c := NewConsumer([]byte("def"))
	if !c.IsSuffixOf([]byte("abcdef")) {
		t.Error("IsSuffixOf(abcdef) = false, want true")
	}
	if c.IsSuffixOf([]byte("ef")) {
		t.Error("IsSuffixOf(ef) = true, want false (too short)")
	}
}

func TestConsumerTrimStart(t *testing.T) {
	c := NewConsumer([]byte("ab"))
	if got := c.TrimStart([]byte("ababab cd")); got != 6 {
		t.Errorf("TrimStart = %d, want 6", got)
	}
	if got := c.TrimStart([]byte("cdabab")); got != 0 {
		t.Errorf("TrimStart = %d, want 0", got)
	}
}

func TestConsumerTrimEnd(t *testing.T) {
	c := NewConsumer([]byte("ab"))
	if got := c.TrimEnd([]byte("cd ababab")); got != 3 {
		t.Errorf("TrimEnd = %d, want 3", got)
	}
}

func TestConsumerEmptyNeedle(t *testing.T) {
	c := NewConsumer([]byte(nil))
	if !c.IsPrefixOf([]byte("anything")) {
		t.Error("empty needle IsPrefixOf = false, want true")
	}
	if !c.IsSuffixOf([]byte("anything")) {
		t.Error("empty needle IsSuffixOf = false, want true")
	}
	if got := c.TrimStart([]byte("abc")); got != 0 {
		t.Errorf("empty needle TrimStart = %d, want 0", got)
	}
	if got := c.TrimEnd([]byte("abc")); got != 3 {
		t.Errorf("empty needle TrimEnd = %d, want 3", got)
	}
}
