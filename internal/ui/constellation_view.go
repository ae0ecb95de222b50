package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/config"
	"github.com/litescript/ls-starfield/internal/scene"
)

const cursorStep = 1.0

// ConstellationViewModel renders the owned-star placement scene.
type ConstellationViewModel struct {
	width  int
	height int

	sc *scene.Constellation
}

// NewConstellationViewModel creates the view with a fresh inventory.
func NewConstellationViewModel(cfg config.Config) ConstellationViewModel {
	return ConstellationViewModel{
		sc: scene.NewConstellation(cfg.GridStep, nil),
	}
}

// SetSize updates the viewport size.
func (m ConstellationViewModel) SetSize(width, height int) ConstellationViewModel {
	m.width = width
	m.height = height
	return m
}

// Advance steps the scene one frame.
func (m ConstellationViewModel) Advance(dt float64) ConstellationViewModel {
	m.sc.Advance(dt)
	return m
}

// Update handles messages.
func (m ConstellationViewModel) Update(msg tea.Msg) (ConstellationViewModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "e":
		if m.sc.System.EditMode() {
			m.sc.System.ExitEditMode()
		} else {
			m.sc.System.EnterEditMode()
		}

	case "1", "2", "3", "4", "5", "6", "7":
		id := int(keyMsg.String()[0] - '1')
		if star, ok := m.sc.System.Star(id); ok && star.Placed {
			m.sc.SelectPlaced(id)
		} else {
			m.sc.System.ArmForPlacement(id)
		}

	case "up":
		m.sc.MoveCursor(0, -cursorStep)
	case "down":
		m.sc.MoveCursor(0, cursorStep)
	case "left":
		m.sc.MoveCursor(-cursorStep, 0)
	case "right":
		m.sc.MoveCursor(cursorStep, 0)

	case "enter":
		m.sc.PlaceAtCursor()

	case "r":
		if id := m.sc.System.Selected(); id >= 0 {
			m.sc.ReturnToInventory(id)
		}

	case "esc", "x":
		m.sc.Background()

	case "+", "=":
		m.sc.Camera.Zoom(-zoomStep)
	case "-":
		m.sc.Camera.Zoom(zoomStep)
	}

	return m, nil
}

// View renders the constellation canvas plus inventory and info panels.
func (m ConstellationViewModel) View() string {
	if m.width < 20 || m.height < 10 {
		return "Constellation view requires a larger terminal"
	}

	canvasH := m.height - panelHeight
	canvas := newCanvas(m.width, canvasH)

	m.drawGrid(canvas, canvasH)

	// Home structure at the origin, always visible.
	if x, y, depth, ok := m.sc.Camera.Project(scene.HomePos, m.width, canvasH); ok {
		canvas.set(x, y, depth, '⌂', "220")
	}

	selected := m.sc.System.Selected()
	for _, star := range m.sc.System.Stars() {
		if !star.Placed {
			continue
		}
		pos := m.sc.StarRenderPos(star)
		x, y, depth, ok := m.sc.Camera.Project(pos, m.width, canvasH)
		if !ok {
			continue
		}
		glyph := '✦'
		if star.ID == selected {
			glyph = '◆'
		}
		canvas.set(x, y, depth, glyph, m.sc.StarColor(star))
	}

	// Placement cursor, drawn over everything while editing.
	if m.sc.System.EditMode() {
		snapped := m.sc.System.Snap(m.sc.Cursor)
		if x, y, _, ok := m.sc.Camera.Project(snapped, m.width, canvasH); ok {
			canvas.setOverlay(x, y, '+', "229")
		}
	}

	return canvas.render() + "\n" + m.renderPanel()
}

// drawGrid dots the placement plane so snapped positions are readable.
func (m ConstellationViewModel) drawGrid(c *canvas, canvasH int) {
	for gx := -14.0; gx <= 14.0; gx += 2 {
		for gz := -14.0; gz <= 14.0; gz += 2 {
			p := astro.Vec3{X: gx, Z: gz}
			if x, y, depth, ok := m.sc.Camera.Project(p, m.width, canvasH); ok {
				c.set(x, y, depth+0.5, '·', "238")
			}
		}
	}
}

func (m ConstellationViewModel) renderPanel() string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	editStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)

	var b strings.Builder

	// Inventory strip: ● placed, ○ in inventory, ▸ armed.
	armed := m.sc.System.Armed()
	b.WriteString("  ")
	for _, star := range m.sc.System.Stars() {
		marker := "○"
		if star.Placed {
			marker = "●"
		}
		slot := fmt.Sprintf("[%d]%s", star.ID+1, marker)
		switch {
		case star.ID == armed:
			b.WriteString(accent.Render("▸" + slot))
		case star.Rarity.String() == "uncommon":
			b.WriteString(editStyle.Render(" " + slot))
		default:
			b.WriteString(dim.Render(" " + slot))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")

	if m.sc.System.EditMode() {
		b.WriteString(editStyle.Render("  EDIT MODE"))
		snapped := m.sc.System.Snap(m.sc.Cursor)
		b.WriteString(dim.Render(fmt.Sprintf("  cursor (%g, %g, %g)", snapped.X, snapped.Y, snapped.Z)))
	} else {
		b.WriteString(dim.Render("  view mode · e to edit"))
	}
	b.WriteString("\n")

	if info, ok := m.sc.System.SelectedInfo(); ok {
		b.WriteString(accent.Render(fmt.Sprintf("  ◆ %s", info.Name)))
		b.WriteString(dim.Render(fmt.Sprintf("  [%s]", info.Status)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("    %s · %d K · %s", info.Type, info.TempK, info.Size))
	} else {
		b.WriteString(dim.Render("  no star selected"))
		b.WriteString("\n")
	}

	return b.String()
}
