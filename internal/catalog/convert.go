package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/litescript/ls-starfield/internal/astro"
)

// Conversion filters. Objects dimmer than naked-eye visibility or farther
// than 2000 parsecs are dropped; anything closer than sunDistPc is the Sun.
const (
	MaxMag    = 6.0
	MaxDistPc = 2000.0
	sunDistPc = 0.001
)

// csvColumns maps the expected header names to their meaning. The layout
// follows the HYG database export: proper name, RA in hours, Dec in
// degrees, distance in parsecs, apparent magnitude, spectral type.
var csvColumns = []string{"proper", "ra", "dec", "dist", "mag", "spect"}

// ConvertCSV reads raw survey rows and produces catalog records with scene
// positions. Malformed rows are skipped, never fatal; the skip count is
// reported alongside the result.
func ConvertCSV(r io.Reader) (Catalog, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return Catalog{}, 0, fmt.Errorf("read CSV header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return Catalog{}, 0, err
	}

	var cat Catalog
	skipped := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		rec, ok := convertRow(row, idx)
		if !ok {
			skipped++
			continue
		}
		if rec.Mag > MaxMag {
			continue
		}
		cat.Records = append(cat.Records, rec)
	}

	return cat, skipped, nil
}

// columnIndex locates each required column in the header.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(csvColumns))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range csvColumns {
		if name == "proper" || name == "spect" {
			continue // optional columns
		}
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("CSV missing required column %q", name)
		}
	}
	return idx, nil
}

// convertRow turns one CSV row into a record. Returns false for rows that
// cannot be parsed or fall outside the distance filter.
func convertRow(row []string, idx map[string]int) (Record, bool) {
	field := func(name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	ra, err := strconv.ParseFloat(field("ra"), 64)
	if err != nil {
		return Record{}, false
	}
	dec, err := strconv.ParseFloat(field("dec"), 64)
	if err != nil {
		return Record{}, false
	}
	dist, err := strconv.ParseFloat(field("dist"), 64)
	if err != nil {
		return Record{}, false
	}
	mag, err := strconv.ParseFloat(field("mag"), 64)
	if err != nil {
		return Record{}, false
	}

	if dist > MaxDistPc {
		return Record{}, false
	}

	name := field("proper")
	if dist < sunDistPc {
		name = "Sun"
	}

	return Record{
		Name:     name,
		Mag:      mag,
		Spectral: field("spect"),
		Pos:      astro.SphericalToCartesian(ra, dec, dist),
	}, true
}
