package pins

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/trailpins/trailpins/internal/geo"

	"github.com/tdewolff/minify/v2"
	jsonmin "github.com/tdewolff/minify/v2/json"
	"gopkg.in/yaml.v3"
)

// Format selects the document layout written for the pin collection.
type Format string

// Supported output formats.
const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatGeoJSON Format = "geojson"
)

// ErrUnknownFormat is returned for a format outside the supported set.
var ErrUnknownFormat = errors.New("unknown output format")

// Label is the human-readable name of the format.
func (f Format) Label() string {
	switch f {
	case FormatYAML:
		return "YAML"
	case FormatGeoJSON:
		return "GeoJSON"
	default:
		return "JSON"
	}
}

// Encode serializes pins in the given format. JSON documents are indented
// with two spaces unless compact is set; compact has no effect on YAML.
// An empty format means JSON.
func Encode(pins []Pin, format Format, compact bool) ([]byte, error) {
	if pins == nil {
		pins = []Pin{}
	}

	var (
		data []byte
		err  error
	)

	switch format {
	case "", FormatJSON:
		data, err = json.MarshalIndent(pins, "", "  ")
	case FormatGeoJSON:
		data, err = json.MarshalIndent(toFeatureCollection(pins), "", "  ")
	case FormatYAML:
		return yaml.Marshal(pins)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil || !compact {
		return data, err
	}

	return minifyJSON(data)
}

func toFeatureCollection(pins []Pin) geo.FeatureCollection {
	fc := geo.NewFeatureCollection(len(pins))
	for _, p := range pins {
		fc.Features = append(fc.Features, geo.NewPoint(p.Lat, p.Lon, map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"source":      p.Source,
		}))
	}
	return fc
}

func minifyJSON(data []byte) ([]byte, error) {
	m := minify.New()
	m.AddFunc("application/json", jsonmin.Minify)

	return m.Bytes("application/json", data)
}
