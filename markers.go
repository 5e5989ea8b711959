package numfmt

import "strings"

// Marker ties a currency code to the symbols and words that identify it
// inside raw textual input. Tokens are matched case insensitively, in the
// order the markers are registered.
type Marker struct {
	Code   string   `yaml:"code" json:"code"`
	Symbol string   `yaml:"symbol" json:"symbol"`
	Tokens []string `yaml:"tokens" json:"tokens"`
}

func (m Marker) clone() Marker {
	out := m
	if len(m.Tokens) > 0 {
		out.Tokens = append([]string(nil), m.Tokens...)
	}
	return out
}

func cloneMarkers(markers []Marker) []Marker {
	if len(markers) == 0 {
		return nil
	}
	out := make([]Marker, len(markers))
	for i, marker := range markers {
		out[i] = marker.clone()
	}
	return out
}

// detectCurrency scans text for the first marker whose token appears in it.
// Only original textual input is ever scanned; plain numeric values skip
// detection entirely.
func detectCurrency(markers []Marker, text string) (Marker, bool) {
	if text == "" {
		return Marker{}, false
	}

	lowered := strings.ToLower(text)
	for _, marker := range markers {
		for _, token := range marker.Tokens {
			if token == "" {
				continue
			}
			if strings.Contains(lowered, strings.ToLower(token)) {
				return marker, true
			}
		}
	}
	return Marker{}, false
}

func markerSymbol(markers []Marker, code string) (string, bool) {
	for _, marker := range markers {
		if marker.Code == code && marker.Symbol != "" {
			return marker.Symbol, true
		}
	}
	return "", false
}
