package catalog

import "github.com/litescript/ls-starfield/internal/astro"

// builtinStar is a raw entry before conversion to scene coordinates.
type builtinStar struct {
	name    string
	raHours float64
	decDeg  float64
	distPc  float64
	mag     float64
	spect   string
}

// Builtin returns the built-in bright star catalog, used when no catalog
// file is configured or the configured one fails to load. Coordinates are
// J2000; distances from Hipparcos. Ordered by magnitude, brightest first.
func Builtin() Catalog {
	records := make([]Record, len(builtinStars))
	for i, s := range builtinStars {
		records[i] = Record{
			Name:     s.name,
			Mag:      s.mag,
			Spectral: s.spect,
			Pos:      astro.SphericalToCartesian(s.raHours, s.decDeg, s.distPc),
		}
	}
	return Catalog{Records: records}
}

var builtinStars = []builtinStar{
	// Magnitude < 0 (exceptionally bright)
	{"Sirius", 6.752, -16.716, 2.64, -1.46, "A1V"},
	{"Canopus", 6.399, -52.696, 95.0, -0.74, "F0II"},
	{"Arcturus", 14.261, 19.182, 11.26, -0.05, "K1.5III"},

	// Magnitude 0.0-1.0
	{"Vega", 18.616, 38.784, 7.68, 0.03, "A0V"},
	{"Capella", 5.278, 45.998, 13.2, 0.08, "G8III"},
	{"Rigel", 5.242, -8.202, 260.0, 0.13, "B8Ia"},
	{"Procyon", 7.655, 5.225, 3.51, 0.34, "F5IV"},
	{"Achernar", 1.629, -57.237, 42.8, 0.46, "B6V"},
	{"Betelgeuse", 5.920, 7.407, 168.0, 0.50, "M1Ia"},
	{"Hadar", 14.064, -60.373, 120.0, 0.61, "B1III"},
	{"Altair", 19.846, 8.868, 5.13, 0.76, "A7V"},
	{"Acrux", 12.443, -63.099, 98.0, 0.76, "B0.5IV"},
	{"Aldebaran", 4.599, 16.509, 20.4, 0.85, "K5III"},
	{"Antares", 16.490, -26.432, 170.0, 0.96, "M1.5Ib"},
	{"Spica", 13.420, -11.161, 77.0, 0.97, "B1III"},

	// Magnitude 1.0-1.5
	{"Pollux", 7.755, 28.026, 10.36, 1.14, "K0III"},
	{"Fomalhaut", 22.961, -29.622, 7.7, 1.16, "A3V"},
	{"Deneb", 20.690, 45.280, 430.0, 1.25, "A2Ia"},
	{"Mimosa", 12.795, -59.689, 85.0, 1.25, "B0.5III"},
	{"Regulus", 10.140, 11.967, 24.3, 1.35, "B7V"},
	{"Adhara", 6.977, -28.972, 124.0, 1.50, "B2II"},

	// Magnitude 1.5-2.0
	{"Castor", 7.577, 31.889, 15.6, 1.58, "A1V"},
	{"Gacrux", 12.519, -57.113, 27.0, 1.63, "M3.5III"},
	{"Shaula", 17.560, -37.104, 170.0, 1.63, "B2IV"},
	{"Bellatrix", 5.419, 6.350, 77.0, 1.64, "B2III"},
	{"Elnath", 5.438, 28.608, 41.0, 1.65, "B7III"},
	{"Miaplacidus", 9.220, -69.717, 34.7, 1.68, "A1III"},
	{"Alnilam", 5.604, -1.202, 600.0, 1.69, "B0Ia"},
	{"Alnitak", 5.679, -1.943, 226.0, 1.77, "O9.5Ib"},
	{"Alioth", 12.900, 55.960, 25.3, 1.77, "A0p"},
	{"Dubhe", 11.062, 61.751, 37.7, 1.79, "K0III"},
	{"Mirfak", 3.405, 49.861, 155.0, 1.79, "F5Ib"},
	{"Wezen", 7.140, -26.393, 490.0, 1.84, "F8Ia"},
	{"Alkaid", 13.792, 49.313, 31.9, 1.86, "B3V"},
	{"Menkalinan", 5.992, 44.948, 25.0, 1.90, "A1IV"},
	{"Alhena", 6.629, 16.399, 33.5, 1.93, "A1IV"},

	// Magnitude 2.0-2.5
	{"Alphard", 9.460, -8.659, 55.0, 2.00, "K3II"},
	{"Hamal", 2.120, 23.463, 20.2, 2.00, "K1III"},
	{"Diphda", 0.726, -17.987, 29.5, 2.02, "K0III"},
	{"Polaris", 2.530, 89.264, 132.0, 2.02, "F7Ib"},
	{"Mizar", 13.399, 54.925, 25.1, 2.04, "A2V"},
	{"Alpheratz", 0.140, 29.091, 29.7, 2.06, "B8IV"},
	{"Rasalhague", 17.582, 12.560, 14.9, 2.08, "A5III"},
	{"Kochab", 14.845, 74.156, 40.0, 2.08, "K4III"},
	{"Algol", 3.136, 40.957, 27.6, 2.12, "B8V"},
	{"Denebola", 11.818, 14.572, 11.0, 2.13, "A3V"},
}
