package pins

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

const byteOrderMark = "\ufeff"

// ReadPins parses comma-separated rows with a header line and returns the
// valid pins in input order along with the number of rows that were skipped.
// A reader without any header yields an empty, non-nil slice.
func ReadPins(r io.Reader) ([]Pin, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	out := make([]Pin, 0)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return out, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	header[0] = strings.TrimPrefix(header[0], byteOrderMark)

	skipped := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		pin, ok := FromRow(rowMap(header, record))
		if !ok {
			skipped++
			continue
		}
		out = append(out, pin)
	}

	return out, skipped, nil
}

// rowMap keys a record by header. Short records leave trailing columns
// absent, extra fields are dropped, and a repeated header name keeps the
// value of its last column.
func rowMap(header, record []string) map[string]string {
	row := make(map[string]string, len(header))
	for i, name := range header {
		if i >= len(record) {
			break
		}
		row[name] = record[i]
	}
	return row
}
