package tui

import "github.com/petrotech/petrotech/internal/catalog"

var iconGlyphs = map[catalog.Icon]string{
	catalog.IconDatabase: "▤",
	catalog.IconDrill:    "⇣",
	catalog.IconPipeline: "═",
	catalog.IconMountain: "▲",
	catalog.IconFlask:    "⚗",
	catalog.IconChart:    "▦",
	catalog.IconShield:   "◈",
	catalog.IconBrain:    "✺",
}

// glyph maps a symbolic icon to a terminal glyph, with a bullet for unknown icons.
func glyph(icon catalog.Icon) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return "•"
}
