package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.PurchaseQty != defaultPurchaseQty {
		t.Fatalf("PurchaseQty = %d, want %d", p.PurchaseQty, defaultPurchaseQty)
	}
}

func TestLoad_InvalidTOMLReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`theme = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want default on parse failure", p.Theme)
	}
}

func TestLoad_SanitizesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`
theme = "  "
purchase_qty = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want default for blank value", p.Theme)
	}
	if p.PurchaseQty != defaultPurchaseQty {
		t.Fatalf("PurchaseQty = %d, want %d for non-positive value", p.PurchaseQty, defaultPurchaseQty)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	want := Prefs{Theme: "Kanagawa", PurchaseQty: 3}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got := Load(path)
	if got != want {
		t.Fatalf("round trip = %#v, want %#v", got, want)
	}
}
