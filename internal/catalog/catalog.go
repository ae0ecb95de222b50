// Package catalog holds star catalog records and their producers: a CSV
// converter for raw survey data, a JSON loader for prepared catalogs, and a
// built-in bright star fallback.
package catalog

import (
	"sort"

	"github.com/litescript/ls-starfield/internal/astro"
)

// Record is one cataloged object. Positions are in scene units, already
// converted from equatorial coordinates (see astro.SphericalToCartesian).
type Record struct {
	Name     string     `json:"name,omitempty"`
	Mag      float64    `json:"mag"`
	Spectral string     `json:"spect,omitempty"`
	Pos      astro.Vec3 `json:"pos"`
}

// Catalog is an ordered collection of records.
type Catalog struct {
	Records []Record
}

// NearestN returns the n records closest to the origin, ascending by
// distance with ties broken by input order. The catalog itself is not
// modified. n larger than the catalog returns a copy of everything.
func (c Catalog) NearestN(n int) []Record {
	sorted := make([]Record, len(c.Records))
	copy(sorted, c.Records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Pos.Norm() < sorted[j].Pos.Norm()
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
