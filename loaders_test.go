package numfmt

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMarkers(t *testing.T) {
	data := []byte(`
markers:
  - code: gbp
    symbol: "£"
    tokens: ["£", " GBP "]
  - code: PLN
    tokens: ["zł", "pln"]
`)

	markers, err := LoadMarkers(data)
	if err != nil {
		t.Fatalf("LoadMarkers: %v", err)
	}
	if len(markers) != 2 {
		t.Fatalf("got %d markers; want 2", len(markers))
	}
	if markers[0].Code != "GBP" {
		t.Errorf("code = %q; want GBP", markers[0].Code)
	}
	if markers[0].Tokens[1] != "gbp" {
		t.Errorf("token = %q; want lowercased trimmed %q", markers[0].Tokens[1], "gbp")
	}
	if markers[1].Symbol != "" {
		t.Errorf("symbol = %q; want empty", markers[1].Symbol)
	}
}

func TestLoadMarkers_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty set", "markers: []"},
		{"unknown code", "markers:\n  - code: NOPE\n    tokens: [\"n\"]"},
		{"missing tokens", "markers:\n  - code: EUR"},
		{"blank token", "markers:\n  - code: EUR\n    tokens: [\"  \"]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadMarkers([]byte(tt.data))
			if !errors.Is(err, ErrInvalidMarkers) {
				t.Errorf("LoadMarkers error = %v; want ErrInvalidMarkers", err)
			}
		})
	}
}

func TestLoadMarkersFile(t *testing.T) {
	dir := t.TempDir()

	writeFile := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return path
	}

	t.Run("yaml", func(t *testing.T) {
		path := writeFile("markers.yaml", "markers:\n  - code: CHF\n    tokens: [\"chf\"]\n")
		markers, err := LoadMarkersFile(path)
		if err != nil {
			t.Fatalf("LoadMarkersFile: %v", err)
		}
		if len(markers) != 1 || markers[0].Code != "CHF" {
			t.Errorf("got %+v; want one CHF marker", markers)
		}
	})

	t.Run("json", func(t *testing.T) {
		path := writeFile("markers.json", `{"markers":[{"code":"JPY","symbol":"¥","tokens":["¥","jpy"]}]}`)
		markers, err := LoadMarkersFile(path)
		if err != nil {
			t.Fatalf("LoadMarkersFile: %v", err)
		}
		if len(markers) != 1 || markers[0].Symbol != "¥" {
			t.Errorf("got %+v; want one JPY marker", markers)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile("markers.txt", "markers: []")
		if _, err := LoadMarkersFile(path); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("error = %v; want ErrUnsupportedFormat", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadMarkersFile(filepath.Join(dir, "absent.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestLoadedMarkers_WireIntoFormatter(t *testing.T) {
	markers, err := LoadMarkers([]byte("markers:\n  - code: GBP\n    symbol: \"£\"\n    tokens: [\"£\", \"gbp\"]\n"))
	if err != nil {
		t.Fatalf("LoadMarkers: %v", err)
	}

	f := New(WithMarkers(markers...))
	if got := f.FormatCurrency("9.99 gbp"); got != "£9.99" {
		t.Errorf("FormatCurrency = %q; want %q", got, "£9.99")
	}
}
