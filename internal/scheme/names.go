package scheme

import "fmt"

// TableColors is the number of slots in a palette: background, foreground and
// the eight ANSI colors, each in a normal and an intense variant.
const TableColors = 20

// IntenseOffset is added to a base slot index to reach its intense variant.
const IntenseOffset = TableColors / 2

// colorNames are the canonical slot identifiers, used as section names in the
// .colorscheme file format. Order defines the slot indexing.
var colorNames = [TableColors]string{
	"Background",
	"Foreground",
	"Color0",
	"Color1",
	"Color2",
	"Color3",
	"Color4",
	"Color5",
	"Color6",
	"Color7",
	"BackgroundIntense",
	"ForegroundIntense",
	"Color0Intense",
	"Color1Intense",
	"Color2Intense",
	"Color3Intense",
	"Color4Intense",
	"Color5Intense",
	"Color6Intense",
	"Color7Intense",
}

// translatedColorNames are the human-readable slot labels shown in UIs.
var translatedColorNames = [TableColors]string{
	"Background",
	"Foreground",
	"Black",
	"Red",
	"Green",
	"Yellow",
	"Blue",
	"Magenta",
	"Cyan",
	"White",
	"Intense Background",
	"Intense Foreground",
	"Intense Black",
	"Intense Red",
	"Intense Green",
	"Intense Yellow",
	"Intense Blue",
	"Intense Magenta",
	"Intense Cyan",
	"Intense White",
}

func checkIndex(index int) {
	if index < 0 || index >= TableColors {
		panic(fmt.Sprintf("scheme: color index %d out of range [0,%d)", index, TableColors))
	}
}

// ColorNameForIndex returns the canonical identifier for a palette slot.
// Panics if index is outside [0, TableColors).
func ColorNameForIndex(index int) string {
	checkIndex(index)
	return colorNames[index]
}

// TranslatedColorNameForIndex returns the human-readable label for a palette
// slot. Panics if index is outside [0, TableColors).
func TranslatedColorNameForIndex(index int) string {
	checkIndex(index)
	return translatedColorNames[index]
}
