// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starfield/internal/catalog"
	"github.com/litescript/ls-starfield/internal/config"
	"github.com/litescript/ls-starfield/internal/focus"
	"github.com/litescript/ls-starfield/internal/logging"
	"github.com/litescript/ls-starfield/internal/scene"
	"github.com/litescript/ls-starfield/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewGalaxy ViewMode = iota
	ViewConstellation
)

// frameInterval drives the per-frame updates: camera easing, selection
// mixes, flicker and wobble all step once per frame.
const frameInterval = 33 * time.Millisecond

// Msg types for Bubble Tea.
type (
	// FrameMsg triggers one frame of scene updates.
	FrameMsg time.Time

	// CatalogLoadedMsg carries the result of the one-time async catalog
	// load. Err means the scene starts empty; it is never fatal.
	CatalogLoadedMsg struct {
		Catalog catalog.Catalog
		Err     error
	}

	// searchResultMsg carries the result of an async name lookup. If two
	// lookups overlap, both resolve and the later delivery wins.
	searchResultMsg struct {
		query string
		index int
		found bool
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	cfg config.Config
	log *logging.Logger

	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	statusMsg string

	galaxy        GalaxyViewModel
	constellation ConstellationViewModel
}

// New creates the root UI model. The star catalog arrives later via
// CatalogLoadedMsg; until then the galaxy view renders an empty field.
func New(cfg config.Config, log *logging.Logger) Model {
	if log == nil {
		log = logging.Discard()
	}
	return Model{
		cfg:           cfg,
		log:           log,
		viewMode:      ViewGalaxy,
		galaxy:        NewGalaxyViewModel(cfg, log),
		constellation: NewConstellationViewModel(cfg),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return frameCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While the search prompt is open it owns the keyboard.
		if m.viewMode == ViewGalaxy && m.galaxy.Searching() {
			var cmd tea.Cmd
			m.galaxy, cmd = m.galaxy.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "tab":
			m.viewMode = (m.viewMode + 1) % 2

		default:
			// Digit view switching only applies in the galaxy view; the
			// constellation view claims 1-7 for its inventory slots.
			if m.viewMode == ViewGalaxy && msg.String() == "2" {
				m.viewMode = ViewConstellation
				break
			}
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header takes 4 lines, footer 2
		contentHeight := msg.Height - 6
		m.galaxy = m.galaxy.SetSize(msg.Width, contentHeight)
		m.constellation = m.constellation.SetSize(msg.Width, contentHeight)

	case FrameMsg:
		cmds = append(cmds, frameCmd())
		dt := frameInterval.Seconds()
		m.galaxy = m.galaxy.Advance(dt)
		m.constellation = m.constellation.Advance(dt)

	case CatalogLoadedMsg:
		if msg.Err != nil {
			m.statusMsg = fmt.Sprintf("catalog load failed: %v (empty field)", msg.Err)
			m.log.Error("catalog load failed: %v", msg.Err)
		} else {
			m.statusMsg = fmt.Sprintf("%d catalog records loaded", len(msg.Catalog.Records))
		}
		m.galaxy = m.galaxy.SetCatalog(msg.Catalog)

	case searchResultMsg:
		m.galaxy = m.galaxy.ApplySearch(msg)

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewGalaxy:
		m.galaxy, cmd = m.galaxy.Update(msg)
	case ViewConstellation:
		m.constellation, cmd = m.constellation.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewGalaxy:
		content = m.galaxy.View()
	case ViewConstellation:
		content = m.constellation.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	title := titleStyle.Render("ls-starfield")
	tagline := muted.Render(fmt.Sprintf("Star Field Explorer · v%s", version.Version))

	return "  " + title + "  " + tagline + "\n" + m.renderTabs() + "\n"
}

func (m Model) renderTabs() string {
	tabs := []string{"Galaxy", "Constellation"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var help string
	switch m.viewMode {
	case ViewGalaxy:
		help = dimStyle.Render("j/k: target | enter: select | esc: deselect | /: search | ←/→: orbit | +/-: zoom | tab: views")
	case ViewConstellation:
		help = dimStyle.Render("e: edit | 1-7: star | arrows: cursor | enter: place | r: return | esc: deselect | tab: views")
	}

	footer := "  " + help
	if m.statusMsg != "" {
		footer += "\n  " + dimStyle.Render(m.statusMsg)
	}
	return footer
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// SearchCmd starts an async name lookup over the given scene. The lookup
// itself is read-only; the selection is applied when the result message
// arrives, so overlapping searches settle last-write-wins.
func SearchCmd(g *scene.Galaxy, query string) tea.Cmd {
	stars := g.Stars
	return func() tea.Msg {
		star, ok := focus.SearchByName(stars, query)
		if !ok {
			return searchResultMsg{query: query, index: -1, found: false}
		}
		return searchResultMsg{query: query, index: star.Index, found: true}
	}
}
