package stellar

import "github.com/litescript/ls-starfield/internal/astro"

// Default visible shell bounds, in scene units.
const (
	DefaultShellMin = 20.0
	DefaultShellMax = 85.0
)

// normEpsilon guards the division by the original norm.
const normEpsilon = 1e-9

// Remapper rescales catalog positions onto a bounded visible shell. The
// remap keeps each star's direction from the origin but replaces its true
// distance with a radius drawn uniformly from [Min, Max]: the whole catalog
// stays visually reachable at the cost of real depth. Two stars sharing a
// direction can land in overlapping regions; that is the intended tradeoff.
type Remapper struct {
	Min, Max float64
	rng      Rand
}

// NewRemapper creates a remapper for the given shell bounds.
func NewRemapper(min, max float64, rng Rand) *Remapper {
	if rng == nil {
		rng = defaultRand()
	}
	return &Remapper{Min: min, Max: max, rng: rng}
}

// Remap maps a raw position onto the visible shell. A zero-length input has
// no direction; it maps to (0,0,1) scaled to the drawn radius.
func (r *Remapper) Remap(p astro.Vec3) astro.Vec3 {
	target := r.Min + r.rng.Float64()*(r.Max-r.Min)

	n := p.Norm()
	if n < normEpsilon {
		return astro.Vec3{Z: 1}.Scale(target)
	}
	return p.Scale(target / n)
}

// RemapAll remaps every star's position in place order, returning a new
// slice; the input is not modified.
func (r *Remapper) RemapAll(stars []ProjectedStar) []ProjectedStar {
	out := make([]ProjectedStar, len(stars))
	copy(out, stars)
	for i := range out {
		out[i].Pos = r.Remap(out[i].Pos)
	}
	return out
}
