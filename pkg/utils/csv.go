package utils

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVRecord is one exportable place row.
type CSVRecord struct {
	Name      string
	Category  string
	Latitude  float64
	Longitude float64
}

var csvHeader = []string{"Name", "Category", "Latitude", "Longitude"}

// PlacesToCSV renders the candidate table in the download format the UI
// offers (trip_recommendations.csv).
func PlacesToCSV(records []CSVRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			r.Name,
			r.Category,
			strconv.FormatFloat(r.Latitude, 'f', -1, 64),
			strconv.FormatFloat(r.Longitude, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
