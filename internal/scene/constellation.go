package scene

import (
	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/constellation"
	"github.com/litescript/ls-starfield/internal/focus"
	"github.com/litescript/ls-starfield/internal/render"
	"github.com/litescript/ls-starfield/internal/stellar"
)

// cursorRange bounds the placement cursor on the grid plane.
const cursorRange = 14.0

// Constellation is the owned-star placement scene: a fixed home structure
// at the origin, a placement grid on the y=0 plane, and the inventory of
// placeable tokens.
type Constellation struct {
	System  *constellation.System
	Camera  *focus.Camera
	Tint    *render.TintEngine
	Cursor  astro.Vec3 // grid-plane placement cursor
	Elapsed float64
}

// HomePos is the fixed position of the home structure.
var HomePos = astro.Vec3{}

// NewConstellation creates the scene with a fresh inventory.
func NewConstellation(gridStep float64, rng stellar.Rand) *Constellation {
	system := constellation.NewSystem(gridStep, rng)

	cam := focus.NewCamera()
	// This scene pins the orbit while a star is focused; only zoom remains.
	cam.SetFocusedOrbit(false)

	return &Constellation{
		System: system,
		Camera: cam,
		Tint:   render.NewTintEngine(len(system.Stars())),
	}
}

// Advance steps the scene one frame.
func (c *Constellation) Advance(dt float64) {
	c.Elapsed += dt
	c.Tint.Advance(c.System.Selected())
	c.Camera.Advance()
}

// MoveCursor shifts the placement cursor on the grid plane, clamped to the
// working area around the home structure.
func (c *Constellation) MoveCursor(dx, dz float64) {
	c.Cursor.X = astro.Clamp(c.Cursor.X+dx, -cursorRange, cursorRange)
	c.Cursor.Z = astro.Clamp(c.Cursor.Z+dz, -cursorRange, cursorRange)
}

// PlaceAtCursor places the armed entry at the cursor and focuses the
// camera on the snapped position. A no-op when nothing is armed.
func (c *Constellation) PlaceAtCursor() {
	armed := c.System.Armed()
	c.System.PlaceAt(c.Cursor)
	if star, ok := c.System.Star(armed); ok && star.Placed {
		c.Camera.Focus(star.Pos)
	}
}

// SelectPlaced handles clicking a placed star: display selection (and
// arming, in edit mode) plus camera focus.
func (c *Constellation) SelectPlaced(id int) {
	c.System.SelectPlaced(id)
	if star, ok := c.System.Star(id); ok && star.Placed {
		c.Camera.Focus(star.Pos)
	}
}

// Background handles a click on empty space: selection and armed entry
// clear, the camera eases home, placements stay.
func (c *Constellation) Background() {
	c.System.BackgroundClick()
	c.Camera.Blur()
}

// ReturnToInventory un-places an entry; if it was the camera's focus the
// camera eases home.
func (c *Constellation) ReturnToInventory(id int) {
	wasSelected := c.System.Selected() == id
	c.System.ReturnToInventory(id)
	if wasSelected {
		c.Camera.Blur()
	}
}

// StarRenderPos returns the frame position for a placed star, wobbling
// around its snapped base position.
func (c *Constellation) StarRenderPos(s constellation.InventoryStar) astro.Vec3 {
	return s.Pos.Add(render.Wobble(c.Elapsed, s.ID).Scale(0.4))
}

// StarColor returns the frame color for a placed star.
func (c *Constellation) StarColor(s constellation.InventoryStar) string {
	return render.StarColor(c.Elapsed, s.ID, s.Tint, c.Tint.Mix(s.ID))
}
