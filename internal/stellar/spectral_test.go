package stellar

import "testing"

func TestClassify_SpectralLetterWins(t *testing.T) {
	// A recognized first letter decides the class regardless of magnitude.
	tests := []struct {
		spectral string
		mag      float64
		want     SpectralClass
	}{
		{"O9.5Ib", 12.0, ClassO},
		{"B8Ia", 12.0, ClassB},
		{"A1V", -1.46, ClassA},
		{"F5IV", 9.9, ClassF},
		{"G8III", -5.0, ClassG},
		{"K1.5III", 0.0, ClassK},
		{"M1Ia", -2.0, ClassM},
		{"m3", 0.0, ClassM}, // case-insensitive
		{"a0p", 5.0, ClassA},
	}

	for _, tt := range tests {
		got := Classify(tt.spectral, tt.mag)
		if got != tt.want {
			t.Errorf("Classify(%q, %v) = %v, want %v", tt.spectral, tt.mag, got, tt.want)
		}
	}
}

func TestClassify_MagnitudeLadder(t *testing.T) {
	// Empty or unrecognized spectral strings fall back to the ladder of
	// inclusive upper bounds, first match wins.
	tests := []struct {
		spectral string
		mag      float64
		want     SpectralClass
	}{
		{"", -1.5, ClassB},
		{"", 0.0, ClassB}, // boundary is inclusive
		{"", 0.00001, ClassA},
		{"", 1.5, ClassA},
		{"", 1.50001, ClassF},
		{"", 3.0, ClassF},
		{"", 4.5, ClassG},
		{"", 6.0, ClassK},
		{"", 6.00001, ClassM},
		{"", 25.0, ClassM},
		{"X999", 1.0, ClassA},  // unrecognized letter uses the ladder
		{"sdB", 2.0, ClassF},   // lowercase s is not a class letter
		{"?", 7.0, ClassM},
	}

	for _, tt := range tests {
		got := Classify(tt.spectral, tt.mag)
		if got != tt.want {
			t.Errorf("Classify(%q, %v) = %v, want %v", tt.spectral, tt.mag, got, tt.want)
		}
	}
}

func TestClassDefs_Sane(t *testing.T) {
	for c := ClassO; c <= ClassM; c++ {
		def := c.Def()
		if def.TempMin >= def.TempMax {
			t.Errorf("class %v has inverted temperature range [%v, %v]", c, def.TempMin, def.TempMax)
		}
		if def.RadMin >= def.RadMax {
			t.Errorf("class %v has inverted radius range [%v, %v]", c, def.RadMin, def.RadMax)
		}
		if def.Tint == "" || def.Tint[0] != '#' {
			t.Errorf("class %v has invalid tint %q", c, def.Tint)
		}
		if c.String() != def.Letter {
			t.Errorf("class %v String() = %q, want %q", c, c.String(), def.Letter)
		}
	}
}
