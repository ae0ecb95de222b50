// Package render computes per-frame display colors and positional wobble
// for stars. Nothing here mutates stored star attributes: every function is
// a pure rendering computation over (time, index, base data, current mix).
package render

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-starfield/internal/astro"
)

const (
	// MixRate is the fraction of remaining distance the selection mix
	// covers each frame.
	MixRate = 0.12

	// tintStrength controls how far the colorful base leans from white
	// toward the star's class tint.
	tintStrength = 0.55

	// wobbleAmp is the positional wobble amplitude in scene units.
	wobbleAmp = 0.35
)

// neutralGrey is the desaturated base every non-selected star fades toward.
var neutralGrey = colorful.Color{R: 0.42, G: 0.42, B: 0.46}

// TintEngine eases each star's selection mix toward its target. Mix 1 is
// fully colorful (selected, or nothing selected), mix 0 fully desaturated.
type TintEngine struct {
	mixes []float64
}

// NewTintEngine creates an engine for n stars. Mixes start at 1: with no
// selection the whole field renders in color.
func NewTintEngine(n int) *TintEngine {
	mixes := make([]float64, n)
	for i := range mixes {
		mixes[i] = 1
	}
	return &TintEngine{mixes: mixes}
}

// Advance steps every mix one frame toward its target. selected is the
// index of the selected star, or -1 for none. Targets: 1 when nothing is
// selected or this star is the selected one, 0 otherwise.
func (e *TintEngine) Advance(selected int) {
	for i := range e.mixes {
		target := 0.0
		if selected < 0 || selected == i {
			target = 1
		}
		e.mixes[i] = astro.Clamp(astro.Approach(e.mixes[i], target, MixRate), 0, 1)
	}
}

// Mix returns the current mix for star i, 1 for out-of-range indices.
func (e *TintEngine) Mix(i int) float64 {
	if i < 0 || i >= len(e.mixes) {
		return 1
	}
	return e.mixes[i]
}

// Len returns the number of tracked stars.
func (e *TintEngine) Len() int {
	return len(e.mixes)
}

// StarColor computes the display color for one star at elapsed time t
// (seconds). The grey and colorful bases are each modulated by their own
// flicker signal, then blended by the current mix. Flicker is a sum of
// sine/cosine terms keyed by the star's index, so stars shimmer out of
// phase deterministically; there is no per-frame randomness.
func StarColor(t float64, index int, tintHex string, mix float64) string {
	fi := float64(index)

	greyFlicker := 0.82 + 0.10*math.Sin(t*2.3+fi*1.7) + 0.06*math.Cos(t*3.1+fi*0.9)
	colorFlicker := 0.86 + 0.09*math.Sin(t*1.9+fi*2.3) + 0.05*math.Cos(t*2.7+fi*1.3)

	tint, err := colorful.Hex(tintHex)
	if err != nil {
		tint = colorful.Color{R: 1, G: 1, B: 1}
	}

	white := colorful.Color{R: 1, G: 1, B: 1}
	colorBase := white.BlendRgb(tint, tintStrength)

	grey := modulate(neutralGrey, greyFlicker)
	bright := modulate(colorBase, colorFlicker)

	return grey.BlendRgb(bright, astro.Clamp(mix, 0, 1)).Hex()
}

// Wobble returns the per-frame positional offset for one star: low
// frequency sine/cosine drift around the fixed base position, keyed by
// index so neighbors move independently.
func Wobble(t float64, index int) astro.Vec3 {
	fi := float64(index)
	return astro.Vec3{
		X: wobbleAmp * math.Sin(t*0.6+fi*1.3),
		Y: wobbleAmp * math.Cos(t*0.5+fi*2.1),
		Z: wobbleAmp * math.Sin(t*0.7+fi*0.7),
	}
}

func modulate(c colorful.Color, f float64) colorful.Color {
	f = astro.Clamp(f, 0, 1)
	return colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}
}
