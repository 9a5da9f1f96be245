package scheme

import "fmt"

// ColorEntry is a single palette slot value: an RGB color plus the hints a
// terminal display needs when drawing it. It is a plain value type and is
// copied freely.
type ColorEntry struct {
	R, G, B uint8

	// Transparent requests that the display paint this slot using the
	// terminal's transparent background rather than the color itself.
	Transparent bool

	// Bold hints that text drawn in this color should use a bold font.
	Bold bool
}

// NewColorEntry returns an opaque, non-bold entry for the given channels.
func NewColorEntry(r, g, b uint8) ColorEntry {
	return ColorEntry{R: r, G: g, B: b}
}

// Hex renders the color as "#rrggbb" for UI consumers.
func (e ColorEntry) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", e.R, e.G, e.B)
}

// value returns the HSV value channel (0..255) of the color. Equivalent to
// Qt's QColor::value(): the maximum of the three RGB channels.
func (e ColorEntry) value() uint8 {
	v := e.R
	if e.G > v {
		v = e.G
	}
	if e.B > v {
		v = e.B
	}
	return v
}
