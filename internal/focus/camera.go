package focus

import (
	"math"

	"github.com/litescript/ls-starfield/internal/astro"
)

// State is the focus controller state.
type State int

const (
	StateIdle    State = iota // nothing selected, camera eases to home
	StateFocused              // camera eases to an offset from the selection
)

// easeRate is the per-frame exponential approach fraction for camera
// position and look-at target.
const easeRate = 0.08

// Bounds constrains orbit and zoom for one focus state.
type Bounds struct {
	MinDist float64
	MaxDist float64
	Orbit   bool // false disables orbit rotation entirely
}

// Camera eases its position and look-at target toward per-state desired
// values, recomputed every frame. It never jumps except at initial mount.
type Camera struct {
	Pos    astro.Vec3
	Target astro.Vec3

	state    State
	focusPos astro.Vec3 // selection position while focused

	yawDeg   float64
	pitchDeg float64
	dist     float64

	idleDist      float64
	idleBounds    Bounds
	focusedBounds Bounds
}

// NewCamera creates a camera snapped to its idle pose. This is the only
// instantaneous placement; all later movement is eased.
func NewCamera() *Camera {
	c := &Camera{
		yawDeg:        0,
		pitchDeg:      14,
		dist:          120,
		idleDist:      120,
		idleBounds:    Bounds{MinDist: 30, MaxDist: 160, Orbit: true},
		focusedBounds: Bounds{MinDist: 6, MaxDist: 40, Orbit: true},
	}
	c.Pos = c.desiredPos()
	c.Target = c.desiredTarget()
	return c
}

// SetFocusedOrbit enables or disables orbit rotation while focused. The
// constellation scene turns it off; the galaxy scene keeps it on.
func (c *Camera) SetFocusedOrbit(enabled bool) {
	c.focusedBounds.Orbit = enabled
}

// State returns the current focus state.
func (c *Camera) State() State { return c.state }

// focusedDist is the default viewing distance when a star gains focus.
const focusedDist = 16

// Focus moves the controller to the focused state with the given point as
// the desired look-at target. Zoom distance clamps into the tighter
// focused bounds.
func (c *Camera) Focus(p astro.Vec3) {
	c.state = StateFocused
	c.focusPos = p
	c.dist = astro.Clamp(c.dist, c.focusedBounds.MinDist, c.focusedBounds.MaxDist)
	if c.dist > focusedDist {
		c.dist = focusedDist
	}
}

// Blur returns to the idle state; the camera eases back to its home pose.
func (c *Camera) Blur() {
	c.state = StateIdle
	c.dist = c.idleDist
}

// Orbit rotates the camera around the target by deltaDeg. A no-op when the
// active bounds disable orbiting.
func (c *Camera) Orbit(deltaDeg float64) {
	if !c.bounds().Orbit {
		return
	}
	c.yawDeg += deltaDeg
}

// Zoom changes the orbit distance, clamped to the active bounds.
func (c *Camera) Zoom(delta float64) {
	b := c.bounds()
	c.dist = astro.Clamp(c.dist+delta, b.MinDist, b.MaxDist)
}

// Advance eases position and target one frame toward the desired pose.
func (c *Camera) Advance() {
	c.Pos = astro.ApproachVec3(c.Pos, c.desiredPos(), easeRate)
	c.Target = astro.ApproachVec3(c.Target, c.desiredTarget(), easeRate)
}

func (c *Camera) bounds() Bounds {
	if c.state == StateFocused {
		return c.focusedBounds
	}
	return c.idleBounds
}

func (c *Camera) desiredTarget() astro.Vec3 {
	if c.state == StateFocused {
		return c.focusPos
	}
	return astro.Vec3{}
}

// desiredPos places the camera on a spherical offset from the desired
// target, parameterized by yaw, pitch and distance.
func (c *Camera) desiredPos() astro.Vec3 {
	yaw := c.yawDeg * math.Pi / 180
	pitch := c.pitchDeg * math.Pi / 180

	offset := astro.Vec3{
		X: c.dist * math.Cos(pitch) * math.Sin(yaw),
		Y: c.dist * math.Sin(pitch),
		Z: c.dist * math.Cos(pitch) * math.Cos(yaw),
	}
	return c.desiredTarget().Add(offset)
}

// nearPlane rejects points at or behind the camera.
const nearPlane = 0.1

// fovScale is cot(fov/2) for a ~60 degree vertical field of view.
var fovScale = 1 / math.Tan(30*math.Pi/180)

// Project maps a scene point to terminal cell coordinates. The Y scale is
// halved to correct for character cells being roughly twice as tall as
// wide. Returns ok=false for points outside the view frustum.
func (c *Camera) Project(p astro.Vec3, width, height int) (x, y int, depth float64, ok bool) {
	forward := c.Target.Sub(c.Pos).Normalize()
	right := forward.Cross(astro.Vec3{Y: 1}).Normalize()
	up := right.Cross(forward)

	rel := p.Sub(c.Pos)
	depth = rel.Dot(forward)
	if depth < nearPlane {
		return 0, 0, 0, false
	}

	sx := rel.Dot(right) / depth * fovScale
	sy := rel.Dot(up) / depth * fovScale

	x = width/2 + int(sx*float64(height))
	y = height/2 - int(sy*float64(height)*0.5)

	if x < 0 || x >= width || y < 0 || y >= height {
		return 0, 0, depth, false
	}
	return x, y, depth, true
}
