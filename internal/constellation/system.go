package constellation

import (
	"math"

	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/stellar"
)

// DefaultGridStep is the placement snap size in scene units.
const DefaultGridStep = 1.0

// none marks an empty armed/selected slot.
const none = -1

// System owns the inventory and the placement state machine. All methods
// run on the scene's single execution context; invalid operations are
// silent no-ops per the placement contract.
type System struct {
	stars    []InventoryStar
	gridStep float64

	editMode bool
	armed    int // entry armed for the next placement, or none
	selected int // entry shown in the info panel, or none
}

// NewSystem creates a system with a freshly built inventory. A nil rng
// falls back to a time-seeded source; gridStep <= 0 uses the default.
func NewSystem(gridStep float64, rng stellar.Rand) *System {
	if gridStep <= 0 {
		gridStep = DefaultGridStep
	}
	if rng == nil {
		rng = stellar.DefaultRand()
	}
	return &System{
		stars:    newInventory(rng),
		gridStep: gridStep,
		armed:    none,
		selected: none,
	}
}

// EnterEditMode enables placement editing.
func (s *System) EnterEditMode() {
	s.editMode = true
}

// ExitEditMode leaves edit mode and disarms any pending placement.
// Already-placed stars are untouched.
func (s *System) ExitEditMode() {
	s.editMode = false
	s.armed = none
}

// EditMode reports whether edit mode is active.
func (s *System) EditMode() bool { return s.editMode }

// ArmForPlacement toggles the armed entry. Valid only in edit mode and
// only for an entry still in inventory: arming the armed id again disarms
// it, arming a different id re-arms. Everything else is a no-op.
func (s *System) ArmForPlacement(id int) {
	if !s.editMode {
		return
	}
	star, ok := s.star(id)
	if !ok || star.Placed {
		return
	}
	if s.armed == id {
		s.armed = none
		return
	}
	s.armed = id
}

// PlaceAt snaps rawPos to the grid and places (or moves) the armed entry
// there. The placed entry becomes the displayed selection and stays armed,
// so a follow-up PlaceAt moves it again; disarm happens on background
// click or when leaving edit mode. No armed entry, or not in edit mode,
// is a no-op.
func (s *System) PlaceAt(rawPos astro.Vec3) {
	if !s.editMode || s.armed == none {
		return
	}
	i := s.index(s.armed)
	if i < 0 {
		return
	}
	s.stars[i].Placed = true
	s.stars[i].Pos = s.Snap(rawPos)
	s.selected = s.armed
}

// ReturnToInventory clears an entry's placement, valid in any mode. An
// entry that was armed or displayed-selected loses those roles too.
func (s *System) ReturnToInventory(id int) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.stars[i].Placed = false
	s.stars[i].Pos = astro.Vec3{}
	if s.armed == id {
		s.armed = none
	}
	if s.selected == id {
		s.selected = none
	}
}

// SelectPlaced handles a click on a placed star: it becomes the displayed
// selection, and in edit mode it is also armed so the next PlaceAt moves
// it. Clicks on unplaced ids are no-ops.
func (s *System) SelectPlaced(id int) {
	star, ok := s.star(id)
	if !ok || !star.Placed {
		return
	}
	s.selected = id
	if s.editMode {
		s.armed = id
	}
}

// BackgroundClick clears the displayed selection and the armed entry.
// Placed stars are never un-placed by a background click.
func (s *System) BackgroundClick() {
	s.selected = none
	s.armed = none
}

// Snap rounds each axis to the nearest multiple of the grid step.
func (s *System) Snap(p astro.Vec3) astro.Vec3 {
	step := s.gridStep
	round := func(v float64) float64 {
		return math.Round(v/step) * step
	}
	return astro.Vec3{X: round(p.X), Y: round(p.Y), Z: round(p.Z)}
}

// Armed returns the id armed for placement, or -1.
func (s *System) Armed() int { return s.armed }

// Selected returns the displayed-selected id, or -1.
func (s *System) Selected() int { return s.selected }

// SelectedInfo returns the info record for the displayed selection.
func (s *System) SelectedInfo() (stellar.StarInfo, bool) {
	star, ok := s.star(s.selected)
	if !ok {
		return stellar.StarInfo{}, false
	}
	return star.Info(), true
}

// Stars returns a copy of the inventory.
func (s *System) Stars() []InventoryStar {
	out := make([]InventoryStar, len(s.stars))
	copy(out, s.stars)
	return out
}

// Star returns the entry with the given id.
func (s *System) Star(id int) (InventoryStar, bool) {
	return s.star(id)
}

func (s *System) star(id int) (InventoryStar, bool) {
	i := s.index(id)
	if i < 0 {
		return InventoryStar{}, false
	}
	return s.stars[i], true
}

func (s *System) index(id int) int {
	for i := range s.stars {
		if s.stars[i].ID == id {
			return i
		}
	}
	return -1
}
