package pins

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRow(t *testing.T) {
	tests := []struct {
		name string
		row  map[string]string
		want Pin
		ok   bool
	}{
		{
			name: "valid row is trimmed",
			row: map[string]string{
				"name":        "  Trailhead A  ",
				"description": "\tparking lot ",
				"latitude":    "45.1",
				"longitude":   "-122.3",
				"source":      " RIDB",
			},
			want: Pin{Name: "Trailhead A", Description: "parking lot", Lat: 45.1, Lon: -122.3, Source: "RIDB"},
			ok:   true,
		},
		{
			name: "missing text columns default to empty",
			row:  map[string]string{"latitude": "10", "longitude": "20"},
			want: Pin{Lat: 10, Lon: 20},
			ok:   true,
		},
		{
			name: "whitespace around numbers",
			row:  map[string]string{"latitude": " 1.5 ", "longitude": "-2.5\t"},
			want: Pin{Lat: 1.5, Lon: -2.5},
			ok:   true,
		},
		{name: "non numeric latitude", row: map[string]string{"latitude": "abc", "longitude": "-122"}},
		{name: "non numeric longitude", row: map[string]string{"latitude": "45", "longitude": "west"}},
		{name: "empty latitude", row: map[string]string{"latitude": "", "longitude": "-122"}},
		{name: "zero latitude", row: map[string]string{"latitude": "0", "longitude": "-122"}},
		{name: "zero longitude", row: map[string]string{"latitude": "45", "longitude": "0.0"}},
		{name: "negative zero", row: map[string]string{"latitude": "-0", "longitude": "12"}},
		{name: "absent latitude", row: map[string]string{"longitude": "-122"}},
		{name: "absent longitude", row: map[string]string{"latitude": "45"}},
		{name: "nan", row: map[string]string{"latitude": "NaN", "longitude": "1"}},
		{name: "infinity", row: map[string]string{"latitude": "1", "longitude": "-Inf"}},
		{name: "empty row", row: map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromRow(tt.row)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
