package stellar

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/catalog"
)

// RenderScale converts a star's radius in Sun radii to its uniform render
// scale in scene units.
const RenderScale = 0.8

// StatusUnclaimed is the status label carried by every catalog star.
const StatusUnclaimed = "unclaimed"

// Rand is the random source used for one-time attribute sampling.
// *rand.Rand satisfies it; tests inject a deterministic source.
type Rand interface {
	Float64() float64
}

// ProjectedStar is a catalog record after classification and one-time
// attribute sampling. Immutable once created: re-rendering a star must
// reproduce identical attributes for the life of the session.
type ProjectedStar struct {
	Index     int
	Name      string
	Class     SpectralClass
	TempK     float64    // sampled once from the class range
	RadiusSun float64    // sampled once from the class range
	Pos       astro.Vec3 // render position (post-remap for the galaxy scene)
	Scale     float64    // RadiusSun * RenderScale
	Tint      string     // class display color
	Status    string
}

// Projector creates projected stars from catalog records.
type Projector struct {
	rng Rand
}

// NewProjector creates a projector using the given random source, or a
// time-seeded one when rng is nil.
func NewProjector(rng Rand) *Projector {
	if rng == nil {
		rng = defaultRand()
	}
	return &Projector{rng: rng}
}

func defaultRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// DefaultRand returns a time-seeded random source for callers outside the
// package that need the same sampling behavior.
func DefaultRand() Rand {
	return defaultRand()
}

// Project produces one star per record, preserving input order. Records
// with a blank name are labeled "Unnamed #<index>". Temperature and radius
// are drawn here, exactly once per star.
func (p *Projector) Project(records []catalog.Record) []ProjectedStar {
	stars := make([]ProjectedStar, len(records))
	for i, rec := range records {
		stars[i] = p.projectOne(i, rec)
	}
	return stars
}

func (p *Projector) projectOne(index int, rec catalog.Record) ProjectedStar {
	class := Classify(rec.Spectral, rec.Mag)
	def := class.Def()

	name := rec.Name
	if name == "" {
		name = fmt.Sprintf("Unnamed #%d", index)
	}

	radius := p.uniform(def.RadMin, def.RadMax)

	return ProjectedStar{
		Index:     index,
		Name:      name,
		Class:     class,
		TempK:     p.uniform(def.TempMin, def.TempMax),
		RadiusSun: radius,
		Pos:       rec.Pos,
		Scale:     radius * RenderScale,
		Tint:      def.Tint,
		Status:    StatusUnclaimed,
	}
}

func (p *Projector) uniform(min, max float64) float64 {
	return min + p.rng.Float64()*(max-min)
}
