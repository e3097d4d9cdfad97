package deck

import "testing"

func TestSelectLayout_PrefersBlankOrTitle(t *testing.T) {
	names := []string{"Comparison", "Blank Layout", "Title Slide"}
	if idx := SelectLayout(names, DefaultLayoutIndex); idx != 1 {
		t.Errorf("Expected first blank/title match at 1, got %d", idx)
	}

	names = []string{"Comparison", "TITLE AND CONTENT", "Blank"}
	if idx := SelectLayout(names, DefaultLayoutIndex); idx != 1 {
		t.Errorf("Match must be case-insensitive and first-wins, got %d", idx)
	}
}

func TestSelectLayout_FallbackIndex(t *testing.T) {
	names := []string{"One", "Two", "Comparison", "Picture", "Content", "Section", "Quote"}
	if idx := SelectLayout(names, 5); idx != 5 {
		t.Errorf("Expected fallback 5, got %d", idx)
	}
}

func TestSelectLayout_FallbackClamped(t *testing.T) {
	names := []string{"One", "Two"}
	if idx := SelectLayout(names, 5); idx != 1 {
		t.Errorf("Out-of-range fallback should clamp to last layout, got %d", idx)
	}
	if idx := SelectLayout(names, -3); idx != 0 {
		t.Errorf("Negative fallback should clamp to 0, got %d", idx)
	}
}

func TestSelectLayout_Empty(t *testing.T) {
	if idx := SelectLayout(nil, 5); idx != 0 {
		t.Errorf("Empty layout list should yield 0, got %d", idx)
	}
}
