package numfmt

import "testing"

func TestDetectCurrency(t *testing.T) {
	markers := defaultMarkers()

	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"euro symbol", "€1.234,56", "EUR", true},
		{"euro word uppercase", "1234.56 EUR", "EUR", true},
		{"hryvnia symbol", "₴500", "UAH", true},
		{"hryvnia cyrillic uppercase", "500 ГРН", "UAH", true},
		{"dollar symbol", "$12", "USD", true},
		{"usd word", "12 usd", "USD", true},
		{"priority order", "10 usd eur", "EUR", true},
		{"no marker", "1234.56", "", false},
		{"empty text", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marker, found := detectCurrency(markers, tt.text)
			if found != tt.found {
				t.Fatalf("detectCurrency(%q) found = %v; want %v", tt.text, found, tt.found)
			}
			if found && marker.Code != tt.want {
				t.Errorf("detectCurrency(%q) = %q; want %q", tt.text, marker.Code, tt.want)
			}
		})
	}
}

func TestMarkerSymbol(t *testing.T) {
	markers := defaultMarkers()

	if symbol, ok := markerSymbol(markers, "UAH"); !ok || symbol != "₴" {
		t.Errorf("markerSymbol(UAH) = %q, %v; want ₴", symbol, ok)
	}
	if _, ok := markerSymbol(markers, "GBP"); ok {
		t.Error("markerSymbol(GBP) found a symbol in the default set")
	}
}

func TestDefaultMarkers_Isolated(t *testing.T) {
	first := defaultMarkers()
	first[0].Code = "XTS"
	first[0].Tokens[0] = "mutated"

	second := defaultMarkers()
	if second[0].Code != "EUR" || second[0].Tokens[0] != "€" {
		t.Errorf("defaultMarkers shares state across calls: %+v", second[0])
	}
}
