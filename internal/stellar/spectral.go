// Package stellar turns catalog records into classified, positioned,
// visually-parameterized star entities.
package stellar

import "strings"

// SpectralClass is a coarse stellar category.
type SpectralClass int

const (
	ClassO SpectralClass = iota
	ClassB
	ClassA
	ClassF
	ClassG
	ClassK
	ClassM
)

// String returns the single-letter class designation.
func (c SpectralClass) String() string {
	if c < ClassO || c > ClassM {
		return "?"
	}
	return classDefs[c].Letter
}

// ClassDef holds the display parameters for a spectral class. Temperature
// and radius ranges are inclusive; each star samples both once at
// projection time.
type ClassDef struct {
	Letter  string
	Label   string
	TempMin float64 // Kelvin
	TempMax float64
	RadMin  float64 // Sun radii
	RadMax  float64
	Tint    string // display color, hex
}

// Def returns the definition for a class. Out-of-range values fall back to
// class M, the dimmest bucket.
func (c SpectralClass) Def() ClassDef {
	if c < ClassO || c > ClassM {
		return classDefs[ClassM]
	}
	return classDefs[c]
}

// classDefs uses conventional main-sequence temperature and size ranges
// and the usual blue-through-red tint progression.
var classDefs = [...]ClassDef{
	ClassO: {"O", "Blue Giant", 30000, 50000, 6.6, 15.0, "#9BB0FF"},
	ClassB: {"B", "Blue-White Star", 10000, 30000, 1.8, 6.6, "#AABFFF"},
	ClassA: {"A", "White Star", 7500, 10000, 1.4, 1.8, "#CAD7FF"},
	ClassF: {"F", "Yellow-White Star", 6000, 7500, 1.15, 1.4, "#F8F7FF"},
	ClassG: {"G", "Yellow Dwarf", 5200, 6000, 0.96, 1.15, "#FFF4EA"},
	ClassK: {"K", "Orange Dwarf", 3700, 5200, 0.7, 0.96, "#FFD2A1"},
	ClassM: {"M", "Red Dwarf", 2400, 3700, 0.2, 0.7, "#FFCC6F"},
}

// magLadder is the fallback classification for records without a usable
// spectral string: inclusive upper-bound thresholds evaluated in increasing
// order, first match wins. Anything dimmer than the last threshold is M.
var magLadder = []struct {
	maxMag float64
	class  SpectralClass
}{
	{0.0, ClassB},
	{1.5, ClassA},
	{3.0, ClassF},
	{4.5, ClassG},
	{6.0, ClassK},
}

// Classify infers the spectral class for a record. A non-empty spectral
// string whose uppercased first letter is one of OBAFGKM decides the class
// outright, regardless of magnitude; otherwise the magnitude ladder applies.
func Classify(spectral string, mag float64) SpectralClass {
	if spectral != "" {
		letter := strings.ToUpper(spectral[:1])
		for c := ClassO; c <= ClassM; c++ {
			if classDefs[c].Letter == letter {
				return c
			}
		}
	}

	for _, rung := range magLadder {
		if mag <= rung.maxMag {
			return rung.class
		}
	}
	return ClassM
}
