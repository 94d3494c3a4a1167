package ui

import "testing"

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q, want short", got)
	}
	if got := truncate("a long plant name", 10); got != "a long ..." {
		t.Fatalf("truncate = %q, want %q", got, "a long ...")
	}
	if got := truncate("abcd", 2); got != "ab" {
		t.Fatalf("truncate limit<=3 = %q, want ab", got)
	}
	if got := truncate("anything", 0); got != "" {
		t.Fatalf("truncate zero = %q, want empty", got)
	}
}

func TestFormatPrice(t *testing.T) {
	if got := formatPrice(19.9); got != "$19.90" {
		t.Fatalf("formatPrice = %q, want $19.90", got)
	}
	if got := formatPrice(0); got != "$0.00" {
		t.Fatalf("formatPrice zero = %q, want $0.00", got)
	}
}

func TestFormatStock(t *testing.T) {
	cases := []struct {
		quantity int
		want     string
	}{
		{0, "Out of stock"},
		{-1, "Out of stock"},
		{1, "1 left"},
		{7, "7 in stock"},
	}
	for _, tc := range cases {
		if got := formatStock(tc.quantity); got != tc.want {
			t.Fatalf("formatStock(%d) = %q, want %q", tc.quantity, got, tc.want)
		}
	}
}

func TestSplitCategories(t *testing.T) {
	got := splitCategories(" indoor , , tropical,")
	if len(got) != 2 || got[0] != "indoor" || got[1] != "tropical" {
		t.Fatalf("splitCategories = %#v, want [indoor tropical]", got)
	}
	if got := splitCategories("  "); got != nil {
		t.Fatalf("splitCategories blank = %#v, want nil", got)
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 3); got != 3 {
		t.Fatalf("clamp above = %d, want 3", got)
	}
	if got := clamp(-1, 0, 3); got != 0 {
		t.Fatalf("clamp below = %d, want 0", got)
	}
	if got := clamp(2, 0, 3); got != 2 {
		t.Fatalf("clamp inside = %d, want 2", got)
	}
}
