package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starfield/internal/catalog"
	"github.com/litescript/ls-starfield/internal/config"
	"github.com/litescript/ls-starfield/internal/logging"
	"github.com/litescript/ls-starfield/internal/scene"
)

const (
	orbitStepDeg = 4.0
	zoomStep     = 4.0

	// Info panel height below the canvas.
	panelHeight = 5
)

// GalaxyViewModel renders the free-flight star field.
type GalaxyViewModel struct {
	width  int
	height int

	sc  *scene.Galaxy
	cfg config.Config
	log *logging.Logger

	// Keyboard targeting stands in for mouse picking: j/k walk the star
	// list, enter activates the target, esc is a miss on everything.
	targetIdx int

	searching    bool
	query        string
	searchStatus string
}

// NewGalaxyViewModel creates the view with an empty scene; the real
// catalog arrives via SetCatalog.
func NewGalaxyViewModel(cfg config.Config, log *logging.Logger) GalaxyViewModel {
	if log == nil {
		log = logging.Discard()
	}
	return GalaxyViewModel{
		sc:  scene.NewGalaxy(catalog.Catalog{}, sceneConfig(cfg), log),
		cfg: cfg,
		log: log,
	}
}

func sceneConfig(cfg config.Config) scene.GalaxyConfig {
	return scene.GalaxyConfig{
		Cap:      cfg.GalaxyCap,
		ShellMin: cfg.ShellMin,
		ShellMax: cfg.ShellMax,
	}
}

// SetCatalog rebuilds the scene from a loaded catalog.
func (m GalaxyViewModel) SetCatalog(cat catalog.Catalog) GalaxyViewModel {
	m.sc = scene.NewGalaxy(cat, sceneConfig(m.cfg), m.log)
	m.targetIdx = 0
	return m
}

// SetSize updates the viewport size.
func (m GalaxyViewModel) SetSize(width, height int) GalaxyViewModel {
	m.width = width
	m.height = height
	return m
}

// Advance steps the scene one frame.
func (m GalaxyViewModel) Advance(dt float64) GalaxyViewModel {
	m.sc.Advance(dt)
	return m
}

// Searching reports whether the search prompt owns the keyboard.
func (m GalaxyViewModel) Searching() bool { return m.searching }

// Scene exposes the underlying scene for commands.
func (m GalaxyViewModel) Scene() *scene.Galaxy { return m.sc }

// Update handles messages.
func (m GalaxyViewModel) Update(msg tea.Msg) (GalaxyViewModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		return m.updateSearch(keyMsg)
	}

	switch keyMsg.String() {
	case "j", "down":
		m.targetIdx = m.cycleTarget(1)
	case "k", "up":
		m.targetIdx = m.cycleTarget(-1)
	case "enter":
		m.sc.SelectStar(m.targetIdx)
	case "esc", "x":
		m.sc.ClearSelection()
		m.searchStatus = ""
	case "/":
		m.searching = true
		m.query = ""
	case "left":
		m.sc.Camera.Orbit(-orbitStepDeg)
	case "right":
		m.sc.Camera.Orbit(orbitStepDeg)
	case "+", "=":
		m.sc.Camera.Zoom(-zoomStep)
	case "-":
		m.sc.Camera.Zoom(zoomStep)
	}

	return m, nil
}

func (m GalaxyViewModel) updateSearch(msg tea.KeyMsg) (GalaxyViewModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.query = ""
		return m, nil
	case "enter":
		m.searching = false
		query := m.query
		m.query = ""
		if strings.TrimSpace(query) == "" {
			return m, nil
		}
		return m, SearchCmd(m.sc, query)
	case "backspace":
		if len(m.query) > 0 {
			m.query = m.query[:len(m.query)-1]
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		m.query += string(msg.Runes)
	} else if msg.Type == tea.KeySpace {
		m.query += " "
	}
	return m, nil
}

// ApplySearch applies an async lookup result. Misses leave the selection
// untouched and surface a warning; the scene never crashes on them.
func (m GalaxyViewModel) ApplySearch(msg searchResultMsg) GalaxyViewModel {
	if !msg.found {
		m.searchStatus = fmt.Sprintf("no star named %q", msg.query)
		m.log.Warn("search miss: %q", msg.query)
		return m
	}
	m.sc.SelectStar(msg.index)
	m.targetIdx = msg.index
	m.searchStatus = ""
	return m
}

func (m GalaxyViewModel) cycleTarget(delta int) int {
	n := len(m.sc.Stars)
	if n == 0 {
		return 0
	}
	idx := (m.targetIdx + delta) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

// View renders the star field canvas plus the info panel.
func (m GalaxyViewModel) View() string {
	if m.width < 20 || m.height < 10 {
		return "Galaxy view requires a larger terminal"
	}

	canvasH := m.height - panelHeight
	canvas := newCanvas(m.width, canvasH)

	for i := range m.sc.Stars {
		pos := m.sc.StarRenderPos(i)
		x, y, depth, ok := m.sc.Camera.Project(pos, m.width, canvasH)
		if !ok {
			continue
		}

		glyph := starGlyph(m.sc.Stars[i].Scale, depth)
		switch i {
		case m.sc.Selection.Index():
			glyph = '◆'
		case m.targetIdx:
			glyph = '◎'
		}

		canvas.set(x, y, depth, glyph, m.sc.StarColor(i))
	}

	return canvas.render() + "\n" + m.renderPanel()
}

// starGlyph picks a glyph from the star's apparent size: render scale over
// camera depth.
func starGlyph(scale, depth float64) rune {
	app := scale / depth
	switch {
	case app >= 0.15:
		return '✶'
	case app >= 0.05:
		return '✦'
	case app >= 0.02:
		return '•'
	default:
		return '·'
	}
}

func (m GalaxyViewModel) renderPanel() string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	warn := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))

	if m.searching {
		return accent.Render("  search: ") + m.query + accent.Render("▌") +
			"\n" + dim.Render("  enter: go | esc: cancel") + strings.Repeat("\n", panelHeight-3)
	}

	var b strings.Builder

	if info, ok := m.sc.SelectedInfo(); ok {
		b.WriteString(accent.Render(fmt.Sprintf("  ◆ %s", info.Name)))
		b.WriteString(dim.Render(fmt.Sprintf("  [%s]", info.Status)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("    %s · %d K · %s", info.Type, info.TempK, info.Size))
		b.WriteString("\n")
		b.WriteString(dim.Render(fmt.Sprintf("    pos (%.1f, %.1f, %.1f)", info.Pos.X, info.Pos.Y, info.Pos.Z)))
	} else if len(m.sc.Stars) > 0 {
		target := m.sc.Stars[m.targetIdx]
		b.WriteString(dim.Render(fmt.Sprintf("  ◎ target: %s", target.Name)))
		b.WriteString("\n")
		b.WriteString(dim.Render(fmt.Sprintf("    %d stars in field", len(m.sc.Stars))))
		b.WriteString("\n")
	} else {
		b.WriteString(dim.Render("  empty star field"))
		b.WriteString("\n\n")
	}

	b.WriteString("\n")
	if m.searchStatus != "" {
		b.WriteString(warn.Render("  " + m.searchStatus))
	}

	return b.String()
}
