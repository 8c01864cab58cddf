// Package geo holds the GeoJSON structures used for map layer output.
package geo

// FeatureCollection is the root GeoJSON object written for a pin layer.
type FeatureCollection struct {
	Type     string    `json:"type" yaml:"type"`
	Features []Feature `json:"features" yaml:"features"`
}

// Feature is a single point of interest with its display properties.
type Feature struct {
	Type       string         `json:"type" yaml:"type"`
	Geometry   Geometry       `json:"geometry" yaml:"geometry"`
	Properties map[string]any `json:"properties" yaml:"properties"`
}

// Geometry of a feature. Only points are produced here.
type Geometry struct {
	Type        string    `json:"type" yaml:"type"`
	Coordinates []float64 `json:"coordinates" yaml:"coordinates"` // [Lon, Lat]
}

// NewFeatureCollection returns an empty collection with room for n features.
func NewFeatureCollection(n int) FeatureCollection {
	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, 0, n),
	}
}

// NewPoint builds a Point feature. GeoJSON orders coordinates as lon, lat.
func NewPoint(lat, lon float64, props map[string]any) Feature {
	if props == nil {
		props = map[string]any{}
	}

	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: []float64{lon, lat},
		},
		Properties: props,
	}
}
