package model

import (
	"encoding/json"
	"math/rand"
)

// Color is a workspace accent color. Serialized as its lowercase name.
type Color string

const (
	ColorBlush      Color = "blush"
	ColorApricot    Color = "apricot"
	ColorButter     Color = "butter"
	ColorLeaf       Color = "leaf"
	ColorMint       Color = "mint"
	ColorSky        Color = "sky"
	ColorPeriwinkle Color = "periwinkle"
	ColorLavender   Color = "lavender"
)

// DefaultColor is used when a stored color is unrecognized.
const DefaultColor = ColorSky

// Colors lists all workspace colors in display order.
func Colors() []Color {
	return []Color{
		ColorBlush, ColorApricot, ColorButter, ColorLeaf,
		ColorMint, ColorSky, ColorPeriwinkle, ColorLavender,
	}
}

// IsValid reports whether c is one of the known colors.
func (c Color) IsValid() bool {
	for _, known := range Colors() {
		if c == known {
			return true
		}
	}
	return false
}

// UnmarshalJSON reads a color string, falling back to DefaultColor for
// unknown values instead of failing the parse.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed := Color(s)
	if !parsed.IsValid() {
		parsed = DefaultColor
	}
	*c = parsed
	return nil
}

// RandomColor picks one of the workspace colors.
func RandomColor() Color {
	colors := Colors()
	return colors[rand.Intn(len(colors))]
}
