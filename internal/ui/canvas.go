package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// canvas is a character grid with per-cell color and a depth buffer, the
// rendering backend the scenes draw their point primitives into. Nearer
// points win contested cells.
type canvas struct {
	width  int
	height int
	glyphs [][]rune
	colors [][]string
	depths [][]float64
}

func newCanvas(width, height int) *canvas {
	glyphs := make([][]rune, height)
	colors := make([][]string, height)
	depths := make([][]float64, height)
	for y := 0; y < height; y++ {
		glyphs[y] = make([]rune, width)
		colors[y] = make([]string, width)
		depths[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			glyphs[y][x] = ' '
		}
	}
	return &canvas{
		width:  width,
		height: height,
		glyphs: glyphs,
		colors: colors,
		depths: depths,
	}
}

// set draws a glyph at (x, y) if the cell is empty or the new point is
// nearer than the current occupant.
func (c *canvas) set(x, y int, depth float64, glyph rune, color string) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	if c.glyphs[y][x] != ' ' && c.depths[y][x] <= depth {
		return
	}
	c.glyphs[y][x] = glyph
	c.colors[y][x] = color
	c.depths[y][x] = depth
}

// setOverlay draws unconditionally, ignoring the depth buffer. Used for
// chrome like the placement cursor.
func (c *canvas) setOverlay(x, y int, glyph rune, color string) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.glyphs[y][x] = glyph
	c.colors[y][x] = color
	c.depths[y][x] = 0
}

// render flattens the canvas to a styled string.
func (c *canvas) render() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			g := c.glyphs[y][x]
			if g == ' ' {
				b.WriteRune(' ')
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.colors[y][x]))
			b.WriteString(style.Render(string(g)))
		}
		if y < c.height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
