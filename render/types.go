package render

import "github.com/drillerjoe/space/terminal"

// Cell, Attr and RGB are the terminal types, shared so flushing never converts
type (
	Cell = terminal.Cell
	Attr = terminal.Attr
	RGB  = terminal.RGB
)

// DefaultBgRGB fills cleared cells
var DefaultBgRGB = RgbBackground

// RenderPriority orders renderers within a frame, lowest draws first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota // Starfield
	PriorityWorld                            // Star map grid, corridor walls
	PriorityEntities                         // Ships, enemies, projectiles
	PriorityParticle
	PriorityUI      // Menus and result screens
	PriorityOverlay // HUD
	PriorityDebug
)

// SystemRenderer draws one concern of the active mode into the frame buffer
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle lets a renderer hide itself without being unregistered
type VisibilityToggle interface {
	IsVisible() bool
}
