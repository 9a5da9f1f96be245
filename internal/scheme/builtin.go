package scheme

// Built-in schemes available without any scheme files on disk. They are
// installed by the registry at construction time and are not deletable.

type builtinDef struct {
	name        string
	description string
	table       [TableColors]ColorEntry
}

var builtinDefs = []builtinDef{
	{
		name:        "BlackOnWhite",
		description: "Black on White",
		table: [TableColors]ColorEntry{
			{R: 0xFF, G: 0xFF, B: 0xFF}, // Background
			{R: 0x00, G: 0x00, B: 0x00}, // Foreground
			{R: 0x00, G: 0x00, B: 0x00},
			{R: 0xB2, G: 0x18, B: 0x18},
			{R: 0x18, G: 0xB2, B: 0x18},
			{R: 0xB2, G: 0x68, B: 0x18},
			{R: 0x18, G: 0x18, B: 0xB2},
			{R: 0xB2, G: 0x18, B: 0xB2},
			{R: 0x18, G: 0xB2, B: 0xB2},
			{R: 0xB2, G: 0xB2, B: 0xB2},
			{R: 0xFF, G: 0xFF, B: 0xFF},
			{R: 0x00, G: 0x00, B: 0x00, Bold: true},
			{R: 0x68, G: 0x68, B: 0x68},
			{R: 0xFF, G: 0x54, B: 0x54},
			{R: 0x54, G: 0xFF, B: 0x54},
			{R: 0xFF, G: 0xFF, B: 0x54},
			{R: 0x54, G: 0x54, B: 0xFF},
			{R: 0xFF, G: 0x54, B: 0xFF},
			{R: 0x54, G: 0xFF, B: 0xFF},
			{R: 0xFF, G: 0xFF, B: 0xFF},
		},
	},
	{
		name:        "GreenOnBlack",
		description: "Green on Black",
		table: [TableColors]ColorEntry{
			{R: 0x00, G: 0x00, B: 0x00},
			{R: 0x18, G: 0xF0, B: 0x18},
			{R: 0x00, G: 0x00, B: 0x00},
			{R: 0xB2, G: 0x18, B: 0x18},
			{R: 0x18, G: 0xB2, B: 0x18},
			{R: 0xB2, G: 0x68, B: 0x18},
			{R: 0x18, G: 0x18, B: 0xB2},
			{R: 0xB2, G: 0x18, B: 0xB2},
			{R: 0x18, G: 0xB2, B: 0xB2},
			{R: 0xB2, G: 0xB2, B: 0xB2},
			{R: 0x00, G: 0x00, B: 0x00},
			{R: 0x54, G: 0xFF, B: 0x54, Bold: true},
			{R: 0x68, G: 0x68, B: 0x68},
			{R: 0xFF, G: 0x54, B: 0x54},
			{R: 0x54, G: 0xFF, B: 0x54},
			{R: 0xFF, G: 0xFF, B: 0x54},
			{R: 0x54, G: 0x54, B: 0xFF},
			{R: 0xFF, G: 0x54, B: 0xFF},
			{R: 0x54, G: 0xFF, B: 0xFF},
			{R: 0xFF, G: 0xFF, B: 0xFF},
		},
	},
	{
		name:        "DarkPastels",
		description: "Dark Pastels",
		table: [TableColors]ColorEntry{
			{R: 0x2C, G: 0x2C, B: 0x2C},
			{R: 0xDC, G: 0xDC, B: 0xCC},
			{R: 0x3F, G: 0x3F, B: 0x3F},
			{R: 0x70, G: 0x50, B: 0x50},
			{R: 0x60, G: 0xB4, B: 0x8A},
			{R: 0xDF, G: 0xAF, B: 0x8F},
			{R: 0x50, G: 0x60, B: 0x70},
			{R: 0xDC, G: 0x8C, B: 0xC3},
			{R: 0x8C, G: 0xD0, B: 0xD3},
			{R: 0xDC, G: 0xDC, B: 0xCC},
			{R: 0x2C, G: 0x2C, B: 0x2C},
			{R: 0xFF, G: 0xFF, B: 0xFF, Bold: true},
			{R: 0x70, G: 0x90, B: 0x80},
			{R: 0xDC, G: 0xA3, B: 0xA3},
			{R: 0x72, G: 0xD5, B: 0xA3},
			{R: 0xF0, G: 0xDF, B: 0xAF},
			{R: 0x94, G: 0xBF, B: 0xF3},
			{R: 0xEC, G: 0x93, B: 0xD3},
			{R: 0x93, G: 0xE0, B: 0xE3},
			{R: 0xFF, G: 0xFF, B: 0xFF},
		},
	},
}

// Builtins returns freshly built copies of the built-in schemes.
func Builtins() []*ColorScheme {
	schemes := make([]*ColorScheme, 0, len(builtinDefs))
	for _, def := range builtinDefs {
		s := NewColorScheme()
		s.name = def.name
		s.description = def.description
		s.table = append([]ColorEntry(nil), def.table[:]...)
		schemes = append(schemes, s)
	}
	return schemes
}

// IsBuiltin reports whether name refers to a built-in scheme.
func IsBuiltin(name string) bool {
	for _, def := range builtinDefs {
		if def.name == name {
			return true
		}
	}
	return false
}
