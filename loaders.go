package numfmt

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

//go:embed markers.yaml
var defaultMarkersYAML []byte

var builtinMarkers = mustLoadMarkers(defaultMarkersYAML)

func mustLoadMarkers(data []byte) []Marker {
	markers, err := LoadMarkers(data)
	if err != nil {
		panic(fmt.Sprintf("numfmt: embedded marker set is broken: %v", err))
	}
	return markers
}

func defaultMarkers() []Marker {
	return cloneMarkers(builtinMarkers)
}

type markerFile struct {
	Markers []Marker `yaml:"markers" json:"markers"`
}

// LoadMarkers decodes a YAML marker set and validates it.
func LoadMarkers(data []byte) ([]Marker, error) {
	var file markerFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("numfmt: yaml parse error: %w", err)
	}
	return normalizeMarkers(file.Markers)
}

// LoadMarkersFile reads a marker set from a YAML or JSON file, dispatching
// on the file extension.
func LoadMarkersFile(path string) ([]Marker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("numfmt: read %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return LoadMarkers(data)
	case ".json":
		var file markerFile
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("numfmt: decode %s: %w", path, err)
		}
		return normalizeMarkers(file.Markers)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// normalizeMarkers validates codes against the ISO 4217 table, uppercases
// them, and lowercases every token so detection can match case insensitively.
func normalizeMarkers(markers []Marker) ([]Marker, error) {
	if len(markers) == 0 {
		return nil, fmt.Errorf("%w: no markers defined", ErrInvalidMarkers)
	}

	out := make([]Marker, 0, len(markers))
	for i, marker := range markers {
		code := strings.ToUpper(strings.TrimSpace(marker.Code))
		unit, err := currency.ParseISO(code)
		if err != nil {
			return nil, fmt.Errorf("%w: marker %d has unknown currency code %q", ErrInvalidMarkers, i, marker.Code)
		}

		if len(marker.Tokens) == 0 {
			return nil, fmt.Errorf("%w: marker %s has no tokens", ErrInvalidMarkers, code)
		}

		tokens := make([]string, 0, len(marker.Tokens))
		for _, token := range marker.Tokens {
			token = strings.ToLower(strings.TrimSpace(token))
			if token == "" {
				return nil, fmt.Errorf("%w: marker %s has an empty token", ErrInvalidMarkers, code)
			}
			tokens = append(tokens, token)
		}

		out = append(out, Marker{
			Code:   unit.String(),
			Symbol: strings.TrimSpace(marker.Symbol),
			Tokens: tokens,
		})
	}
	return out, nil
}
