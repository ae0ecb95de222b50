// Package focus tracks the selected star and drives the camera toward it.
package focus

import (
	"strings"

	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/stellar"
)

// Selection identifies the currently selected star by name and render
// position. At most one star is selected at a time; the zero value is
// empty.
type Selection struct {
	active bool
	name   string
	pos    astro.Vec3
	index  int
}

// Select records a selection.
func (s *Selection) Select(index int, name string, pos astro.Vec3) {
	s.active = true
	s.index = index
	s.name = name
	s.pos = pos
}

// Clear empties the selection.
func (s *Selection) Clear() {
	*s = Selection{}
}

// Active reports whether a star is selected.
func (s Selection) Active() bool { return s.active }

// Name returns the selected star's name, or "" when empty.
func (s Selection) Name() string { return s.name }

// Pos returns the selected star's render position.
func (s Selection) Pos() astro.Vec3 { return s.pos }

// Index returns the selected star's index, or -1 when empty.
func (s Selection) Index() int {
	if !s.active {
		return -1
	}
	return s.index
}

// SearchByName finds a star by exact case-insensitive name match. A miss
// returns ok=false; callers log it and leave state unchanged.
func SearchByName(stars []stellar.ProjectedStar, query string) (stellar.ProjectedStar, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return stellar.ProjectedStar{}, false
	}
	for _, star := range stars {
		if strings.ToLower(star.Name) == q {
			return star, true
		}
	}
	return stellar.ProjectedStar{}, false
}
