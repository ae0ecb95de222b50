package stellar

import (
	"fmt"

	"github.com/litescript/ls-starfield/internal/astro"
)

// StarInfo is the record surfaced to the info panel when a star is
// selected, catalog or placed alike.
type StarInfo struct {
	Pos    astro.Vec3
	Name   string
	Status string
	Type   string
	TempK  int
	Size   string
}

// Info builds the selection record for a projected star.
func (s ProjectedStar) Info() StarInfo {
	return StarInfo{
		Pos:    s.Pos,
		Name:   s.Name,
		Status: s.Status,
		Type:   s.Class.Def().Label,
		TempK:  int(s.TempK),
		Size:   FormatSize(s.RadiusSun),
	}
}

// FormatSize renders a stellar radius as a human-readable size string.
func FormatSize(radiusSun float64) string {
	return fmt.Sprintf("%.2f R☉", radiusSun)
}
