// Package scene holds the frame-driven state for the two interactive
// scenes. Each scene exposes an explicit Advance method the host render
// loop calls once per frame; per-frame updates read current state, compute
// the next, and write it back in order, with no hidden captured references.
package scene

import (
	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/catalog"
	"github.com/litescript/ls-starfield/internal/focus"
	"github.com/litescript/ls-starfield/internal/logging"
	"github.com/litescript/ls-starfield/internal/render"
	"github.com/litescript/ls-starfield/internal/stellar"
)

// GalaxyConfig bundles the projection parameters for the galaxy scene.
type GalaxyConfig struct {
	Cap      int // nearest-N record cap
	ShellMin float64
	ShellMax float64
	Rand     stellar.Rand // nil for time-seeded
}

// Galaxy is the free-flight star field scene.
type Galaxy struct {
	Stars     []stellar.ProjectedStar
	Selection focus.Selection
	Camera    *focus.Camera
	Tint      *render.TintEngine
	Elapsed   float64 // seconds since scene start

	log *logging.Logger
}

// NewGalaxy projects the catalog into a scene. The catalog may be empty
// (load failure upstream); the scene then renders an empty field.
func NewGalaxy(cat catalog.Catalog, cfg GalaxyConfig, log *logging.Logger) *Galaxy {
	if log == nil {
		log = logging.Discard()
	}
	if cfg.Cap <= 0 {
		cfg.Cap = 250
	}
	if cfg.ShellMax <= cfg.ShellMin || cfg.ShellMin <= 0 {
		cfg.ShellMin = stellar.DefaultShellMin
		cfg.ShellMax = stellar.DefaultShellMax
	}

	records := cat.NearestN(cfg.Cap)
	projector := stellar.NewProjector(cfg.Rand)
	remapper := stellar.NewRemapper(cfg.ShellMin, cfg.ShellMax, cfg.Rand)
	stars := remapper.RemapAll(projector.Project(records))

	log.Info("galaxy scene: %d of %d records projected", len(stars), len(cat.Records))

	return &Galaxy{
		Stars:  stars,
		Camera: focus.NewCamera(),
		Tint:   render.NewTintEngine(len(stars)),
		log:    log,
	}
}

// Advance steps the scene one frame: elapsed time, selection mixes, then
// camera easing. dt is the frame interval in seconds.
func (g *Galaxy) Advance(dt float64) {
	g.Elapsed += dt
	g.Tint.Advance(g.Selection.Index())
	g.Camera.Advance()
}

// SelectStar handles activating a star: selection state plus camera focus.
// Out-of-range indices are ignored.
func (g *Galaxy) SelectStar(i int) {
	if i < 0 || i >= len(g.Stars) {
		return
	}
	star := g.Stars[i]
	g.Selection.Select(i, star.Name, star.Pos)
	g.Camera.Focus(star.Pos)
}

// ClearSelection handles a miss on every interactive object: selection
// empties and the camera eases home.
func (g *Galaxy) ClearSelection() {
	g.Selection.Clear()
	g.Camera.Blur()
}

// Search selects the star whose name matches query, case-insensitively and
// exactly. A miss logs a warning and leaves all state unchanged.
func (g *Galaxy) Search(query string) bool {
	star, ok := focus.SearchByName(g.Stars, query)
	if !ok {
		g.log.Warn("search miss: %q", query)
		return false
	}
	g.SelectStar(star.Index)
	return true
}

// SelectedInfo returns the info-panel record for the current selection.
func (g *Galaxy) SelectedInfo() (stellar.StarInfo, bool) {
	i := g.Selection.Index()
	if i < 0 || i >= len(g.Stars) {
		return stellar.StarInfo{}, false
	}
	return g.Stars[i].Info(), true
}

// StarRenderPos returns star i's position for this frame: the fixed base
// plus the index-keyed wobble. Stored positions are never mutated.
func (g *Galaxy) StarRenderPos(i int) astro.Vec3 {
	return g.Stars[i].Pos.Add(render.Wobble(g.Elapsed, i))
}

// StarColor returns star i's display color for this frame.
func (g *Galaxy) StarColor(i int) string {
	return render.StarColor(g.Elapsed, i, g.Stars[i].Tint, g.Tint.Mix(i))
}
