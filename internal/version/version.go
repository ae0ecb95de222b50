// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Constellation scene: inventory, grid placement, home anchor
// 0.2.0 - Selection/focus camera, name search, flicker/tint engine
// 0.1.0 - Initial release: catalog projection, visible-shell remap, galaxy view
