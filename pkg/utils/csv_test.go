package utils

import (
	"strings"
	"testing"
)

func TestPlacesToCSV(t *testing.T) {
	records := []CSVRecord{
		{Name: "Bangalore Palace", Category: "Attraction", Latitude: 12.9987, Longitude: 77.5921},
		{Name: "Corner House, MG Road", Category: "Fast Food", Latitude: 12.9756, Longitude: 77.6068},
	}

	data, err := PlacesToCSV(records)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want header + 2 rows", len(lines))
	}
	if lines[0] != "Name,Category,Latitude,Longitude" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Bangalore Palace,Attraction,12.9987,77.5921" {
		t.Errorf("row = %q", lines[1])
	}
	// Names containing commas are quoted.
	if !strings.HasPrefix(lines[2], `"Corner House, MG Road"`) {
		t.Errorf("row = %q, want quoted name", lines[2])
	}
}

func TestPlacesToCSVEmpty(t *testing.T) {
	data, err := PlacesToCSV(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(string(data)); got != "Name,Category,Latitude,Longitude" {
		t.Errorf("empty export = %q, want header only", got)
	}
}
