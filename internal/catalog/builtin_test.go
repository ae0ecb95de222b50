package catalog

import "testing"

func TestBuiltin(t *testing.T) {
	cat := Builtin()
	if len(cat.Records) == 0 {
		t.Fatal("built-in catalog empty")
	}

	seen := make(map[string]bool, len(cat.Records))
	for i, rec := range cat.Records {
		if rec.Name == "" {
			t.Errorf("built-in record %d has no name", i)
		}
		if seen[rec.Name] {
			t.Errorf("duplicate built-in star %q", rec.Name)
		}
		seen[rec.Name] = true

		if rec.Mag > MaxMag {
			t.Errorf("%s: mag %v exceeds visibility cutoff", rec.Name, rec.Mag)
		}
		if rec.Spectral == "" {
			t.Errorf("%s: missing spectral type", rec.Name)
		}
		if rec.Pos.Norm() == 0 {
			t.Errorf("%s: zero position", rec.Name)
		}
	}

	if !seen["Sirius"] || !seen["Vega"] || !seen["Polaris"] {
		t.Error("expected well-known stars missing from built-in catalog")
	}

	// Ordered brightest first.
	if cat.Records[0].Name != "Sirius" {
		t.Errorf("first built-in star %q, want Sirius", cat.Records[0].Name)
	}
	for i := 1; i < len(cat.Records); i++ {
		if cat.Records[i].Mag < cat.Records[i-1].Mag {
			t.Errorf("built-in catalog not sorted by magnitude at %q", cat.Records[i].Name)
		}
	}
}
