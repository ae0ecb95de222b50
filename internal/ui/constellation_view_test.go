package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-starfield/internal/astro"
)

func TestConstellationView_EditToggle(t *testing.T) {
	m := NewConstellationViewModel(testConfig())

	m, _ = m.Update(keyRune('e'))
	if !m.sc.System.EditMode() {
		t.Fatal("e did not enter edit mode")
	}
	m, _ = m.Update(keyRune('e'))
	if m.sc.System.EditMode() {
		t.Fatal("e did not exit edit mode")
	}
}

func TestConstellationView_ArmPlaceReturn(t *testing.T) {
	m := NewConstellationViewModel(testConfig())

	// Digits do nothing outside edit mode.
	m, _ = m.Update(keyRune('1'))
	if m.sc.System.Armed() != -1 {
		t.Fatalf("armed outside edit mode: %d", m.sc.System.Armed())
	}

	m, _ = m.Update(keyRune('e'))
	m, _ = m.Update(keyRune('3'))
	if m.sc.System.Armed() != 2 {
		t.Fatalf("digit 3 armed %d, want entry 2", m.sc.System.Armed())
	}

	// Move the cursor and place.
	m, _ = m.Update(keyType(tea.KeyRight))
	m, _ = m.Update(keyType(tea.KeyRight))
	m, _ = m.Update(keyType(tea.KeyUp))
	m, _ = m.Update(keyType(tea.KeyEnter))

	star, _ := m.sc.System.Star(2)
	if !star.Placed {
		t.Fatal("enter did not place the armed entry")
	}
	if star.Pos != (astro.Vec3{X: 2, Z: -1}) {
		t.Errorf("placed at %v, want (2, 0, -1)", star.Pos)
	}
	if m.sc.System.Selected() != 2 {
		t.Errorf("placement did not select: %d", m.sc.System.Selected())
	}

	// r sends the selected entry back to inventory.
	m, _ = m.Update(keyRune('r'))
	star, _ = m.sc.System.Star(2)
	if star.Placed {
		t.Error("r did not return the star")
	}
}

func TestConstellationView_DigitSelectsPlaced(t *testing.T) {
	m := NewConstellationViewModel(testConfig())
	m, _ = m.Update(keyRune('e'))
	m, _ = m.Update(keyRune('1'))
	m, _ = m.Update(keyType(tea.KeyEnter))
	m, _ = m.Update(keyType(tea.KeyEscape))

	// The digit of a placed entry selects it instead of arming anew.
	m, _ = m.Update(keyRune('1'))
	if m.sc.System.Selected() != 0 {
		t.Errorf("digit did not select the placed star: %d", m.sc.System.Selected())
	}
	if m.sc.System.Armed() != 0 {
		t.Errorf("edit-mode select did not arm for moving: %d", m.sc.System.Armed())
	}
	if star, _ := m.sc.System.Star(0); !star.Placed {
		t.Error("selecting un-placed the star")
	}
}

func TestConstellationView_EscClearsRolesOnly(t *testing.T) {
	m := NewConstellationViewModel(testConfig())
	m, _ = m.Update(keyRune('e'))
	m, _ = m.Update(keyRune('2'))
	m, _ = m.Update(keyType(tea.KeyEnter))

	m, _ = m.Update(keyType(tea.KeyEscape))
	if m.sc.System.Selected() != -1 || m.sc.System.Armed() != -1 {
		t.Errorf("esc left selected=%d armed=%d", m.sc.System.Selected(), m.sc.System.Armed())
	}
	if star, _ := m.sc.System.Star(1); !star.Placed {
		t.Error("esc un-placed a star")
	}
}
