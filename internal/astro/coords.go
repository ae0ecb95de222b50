package astro

import "math"

// DistanceScale compresses catalog distances (parsecs) into scene units
// before the visible-shell remap. The value is part of the catalog format:
// regenerated catalogs must use the same factor.
const DistanceScale = 0.05

// SphericalToCartesian converts equatorial coordinates to a right-handed
// Cartesian scene position. Right ascension is in hours (15° per hour),
// declination in degrees, distance in parsecs.
//
//	x = r·cos(dec)·cos(ra)
//	y = r·sin(dec)
//	z = -r·cos(dec)·sin(ra)
//
// with r = dist · DistanceScale. Y is "up" (toward the north celestial
// pole); negating Z keeps increasing RA sweeping counterclockwise when
// viewed from +Y.
func SphericalToCartesian(raHours, decDeg, distPc float64) Vec3 {
	ra := degToRad(raHours * 15)
	dec := degToRad(decDeg)
	r := distPc * DistanceScale

	return Vec3{
		X: r * math.Cos(dec) * math.Cos(ra),
		Y: r * math.Sin(dec),
		Z: -r * math.Cos(dec) * math.Sin(ra),
	}
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
