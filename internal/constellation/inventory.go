// Package constellation manages the owned-star inventory and its placement
// into the scene anchored at the home structure.
package constellation

import (
	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/stellar"
)

// Rarity classes for inventory stars.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
)

// String returns the rarity name.
func (r Rarity) String() string {
	if r == RarityUncommon {
		return "uncommon"
	}
	return "common"
}

// rarityDef holds fixed display attributes per rarity. Temperature is
// sampled once per star from the range; the rest are shared labels.
type rarityDef struct {
	typeLabel string
	sizeLabel string
	tint      string
	tempMin   float64
	tempMax   float64
}

var rarityDefs = map[Rarity]rarityDef{
	RarityCommon:   {"Main Sequence Star", "1.02 R☉", "#FFE9C4", 3000, 6000},
	RarityUncommon: {"Blue Subgiant", "2.40 R☉", "#A8C6FF", 8000, 20000},
}

// Counts for the reference inventory configuration.
const (
	commonCount   = 5
	uncommonCount = 2
)

// InventoryStar is one placeable star token. Placement toggles between "in
// inventory" (Placed false) and "placed" (Placed true with a grid-snapped
// position); the entry itself is never destroyed or recreated.
type InventoryStar struct {
	ID     int
	Rarity Rarity
	Name   string  // "???" until the owner names it; naming is out of scope
	TempK  float64 // sampled once at inventory creation
	Tint   string

	Placed bool
	Pos    astro.Vec3 // grid-snapped, valid only while Placed
}

// newInventory builds the full inventory set. Called exactly once per
// system; there is no module-level inventory state.
func newInventory(rng stellar.Rand) []InventoryStar {
	stars := make([]InventoryStar, 0, commonCount+uncommonCount)
	add := func(r Rarity, n int) {
		def := rarityDefs[r]
		for i := 0; i < n; i++ {
			stars = append(stars, InventoryStar{
				ID:     len(stars),
				Rarity: r,
				Name:   "???",
				TempK:  def.tempMin + rng.Float64()*(def.tempMax-def.tempMin),
				Tint:   def.tint,
			})
		}
	}
	add(RarityCommon, commonCount)
	add(RarityUncommon, uncommonCount)
	return stars
}

// Info builds the info-panel record for an inventory star.
func (s InventoryStar) Info() stellar.StarInfo {
	def := rarityDefs[s.Rarity]
	return stellar.StarInfo{
		Pos:    s.Pos,
		Name:   s.Name,
		Status: "owned (" + s.Rarity.String() + ")",
		Type:   def.typeLabel,
		TempK:  int(s.TempK),
		Size:   def.sizeLabel,
	}
}
