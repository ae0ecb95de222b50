package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/catalog"
	"github.com/litescript/ls-starfield/internal/config"
)

func testConfig() config.Config {
	return config.Config{GalaxyCap: 250, ShellMin: 20, ShellMax: 85, GridStep: 1}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func newTestGalaxyView() GalaxyViewModel {
	m := NewGalaxyViewModel(testConfig(), nil)
	return m.SetCatalog(catalog.Catalog{Records: []catalog.Record{
		{Name: "Sirius", Mag: -1.46, Spectral: "A1V", Pos: astro.Vec3{X: 1}},
		{Name: "Vega", Mag: 0.03, Spectral: "A0V", Pos: astro.Vec3{Y: 2}},
		{Name: "Arcturus", Mag: -0.05, Spectral: "K1.5III", Pos: astro.Vec3{Z: 3}},
	}})
}

func TestGalaxyView_TargetCycling(t *testing.T) {
	m := newTestGalaxyView()

	m, _ = m.Update(keyRune('j'))
	if m.targetIdx != 1 {
		t.Errorf("after j: target %d, want 1", m.targetIdx)
	}
	m, _ = m.Update(keyRune('j'))
	m, _ = m.Update(keyRune('j'))
	if m.targetIdx != 0 {
		t.Errorf("cycling did not wrap forward: %d", m.targetIdx)
	}
	m, _ = m.Update(keyRune('k'))
	if m.targetIdx != 2 {
		t.Errorf("cycling did not wrap backward: %d", m.targetIdx)
	}
}

func TestGalaxyView_SelectAndClear(t *testing.T) {
	m := newTestGalaxyView()

	m, _ = m.Update(keyRune('j'))
	m, _ = m.Update(keyType(tea.KeyEnter))
	if m.sc.Selection.Name() != "Vega" {
		t.Fatalf("enter selected %q, want Vega", m.sc.Selection.Name())
	}

	m, _ = m.Update(keyType(tea.KeyEscape))
	if m.sc.Selection.Active() {
		t.Error("esc did not clear the selection")
	}
}

func TestGalaxyView_SearchPrompt(t *testing.T) {
	m := newTestGalaxyView()

	m, _ = m.Update(keyRune('/'))
	if !m.Searching() {
		t.Fatal("slash did not open the search prompt")
	}

	// While the prompt is open, plain keys append to the query instead of
	// triggering their normal bindings.
	for _, r := range "vega" {
		m, _ = m.Update(keyRune(r))
	}
	if m.query != "vega" {
		t.Fatalf("query = %q", m.query)
	}
	if m.targetIdx != 0 {
		t.Errorf("typing in the prompt moved the target to %d", m.targetIdx)
	}

	m, _ = m.Update(keyType(tea.KeyBackspace))
	if m.query != "veg" {
		t.Errorf("backspace left query %q", m.query)
	}

	var cmd tea.Cmd
	m, cmd = m.Update(keyType(tea.KeyEnter))
	if m.Searching() {
		t.Error("enter did not close the prompt")
	}
	if cmd == nil {
		t.Fatal("enter did not produce a search command")
	}

	msg, ok := cmd().(searchResultMsg)
	if !ok {
		t.Fatalf("search command returned %T", cmd())
	}
	if !msg.found || msg.index != 1 {
		t.Errorf("search result = %+v, want Vega at index 1", msg)
	}

	m = m.ApplySearch(msg)
	if m.sc.Selection.Name() != "Vega" || m.targetIdx != 1 {
		t.Errorf("applied search: selection %q, target %d", m.sc.Selection.Name(), m.targetIdx)
	}
}

func TestGalaxyView_SearchEscCancels(t *testing.T) {
	m := newTestGalaxyView()
	m, _ = m.Update(keyRune('/'))
	m, _ = m.Update(keyRune('v'))
	m, _ = m.Update(keyType(tea.KeyEscape))
	if m.Searching() || m.query != "" {
		t.Errorf("esc left searching=%v query=%q", m.Searching(), m.query)
	}
	if m.sc.Selection.Active() {
		t.Error("cancelled search changed the selection")
	}
}

func TestGalaxyView_SearchMissLeavesState(t *testing.T) {
	m := newTestGalaxyView()
	m.sc.SelectStar(2)

	cmd := SearchCmd(m.sc, "no such star")
	msg := cmd().(searchResultMsg)
	if msg.found {
		t.Fatal("lookup hit a nonexistent star")
	}

	m = m.ApplySearch(msg)
	if m.sc.Selection.Index() != 2 {
		t.Errorf("miss changed selection to %d", m.sc.Selection.Index())
	}
	if m.searchStatus == "" {
		t.Error("miss not surfaced in the panel")
	}
}

func TestGalaxyView_EmptySearchIsNoop(t *testing.T) {
	m := newTestGalaxyView()
	m, _ = m.Update(keyRune('/'))
	m, cmd := m.Update(keyType(tea.KeyEnter))
	if cmd != nil {
		t.Error("empty query produced a search command")
	}
	if m.Searching() {
		t.Error("prompt still open")
	}
}
