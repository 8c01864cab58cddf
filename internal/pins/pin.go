// Package pins turns a CSV of geographic points into a list of map pins.
//
// Rows are matched by header name. A row becomes a Pin only when both
// latitude and longitude parse as finite, non-zero numbers; every other row
// is dropped without being reported as an error.
package pins

import (
	"math"
	"strconv"
	"strings"
)

// Recognized column names.
const (
	ColumnName        = "name"
	ColumnDescription = "description"
	ColumnLatitude    = "latitude"
	ColumnLongitude   = "longitude"
	ColumnSource      = "source"
)

// Pin is a single point of interest ready for a map marker layer.
type Pin struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Lat         float64 `json:"lat" yaml:"lat"`
	Lon         float64 `json:"lon" yaml:"lon"`
	Source      string  `json:"source" yaml:"source"`
}

// FromRow validates a header-keyed row and builds a Pin from it.
// The boolean is false when the row has to be skipped.
func FromRow(row map[string]string) (Pin, bool) {
	lat, ok := parseCoord(lookup(row, ColumnLatitude, "0"))
	if !ok {
		return Pin{}, false
	}
	lon, ok := parseCoord(lookup(row, ColumnLongitude, "0"))
	if !ok {
		return Pin{}, false
	}

	return Pin{
		Name:        strings.TrimSpace(row[ColumnName]),
		Description: strings.TrimSpace(row[ColumnDescription]),
		Lat:         lat,
		Lon:         lon,
		Source:      strings.TrimSpace(row[ColumnSource]),
	}, true
}

func lookup(row map[string]string, key, fallback string) string {
	if v, ok := row[key]; ok {
		return v
	}
	return fallback
}

// parseCoord accepts finite numbers other than zero.
// Zero is the sentinel used by upstream exports for a missing position.
func parseCoord(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return 0, false
	}
	return v, true
}
