package charts

import "image/color"

// ============================================================================
// PALETTE — Default series colors
// ============================================================================

// paletteHex is the default color cycle, kept as hex for the pie renderer.
var paletteHex = []string{
	"4F46E5", "10B981", "F59E0B", "EF4444", "8B5CF6",
	"06B6D4", "EC4899", "84CC16", "F97316", "6366F1",
}

// paletteRGBA mirrors paletteHex for the raster renderers.
var paletteRGBA = []color.RGBA{
	{R: 0x4F, G: 0x46, B: 0xE5, A: 0xFF},
	{R: 0x10, G: 0xB9, B: 0x81, A: 0xFF},
	{R: 0xF5, G: 0x9E, B: 0x0B, A: 0xFF},
	{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF},
	{R: 0x8B, G: 0x5C, B: 0xF6, A: 0xFF},
	{R: 0x06, G: 0xB6, B: 0xD4, A: 0xFF},
	{R: 0xEC, G: 0x48, B: 0x99, A: 0xFF},
	{R: 0x84, G: 0xCC, B: 0x16, A: 0xFF},
	{R: 0xF9, G: 0x73, B: 0x16, A: 0xFF},
	{R: 0x63, G: 0x66, B: 0xF1, A: 0xFF},
}

// colorAt returns the i-th palette color, cycling past the end.
func colorAt(i int) color.RGBA {
	return paletteRGBA[i%len(paletteRGBA)]
}

// hexAt returns the i-th palette color as hex, cycling past the end.
func hexAt(i int) string {
	return paletteHex[i%len(paletteHex)]
}

// Performance band colors: green/amber/red.
var bandColors = map[string]color.RGBA{
	"High":   {R: 0x2E, G: 0xCC, B: 0x71, A: 0xFF},
	"Medium": {R: 0xF3, G: 0x9C, B: 0x12, A: 0xFF},
	"Low":    {R: 0xE7, G: 0x4C, B: 0x3C, A: 0xFF},
}
