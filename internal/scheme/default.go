package scheme

// defaultTable is the shared palette used by every scheme that has not set a
// custom table. Schemes read from it but never write to it; SetColorTableEntry
// clones it on first write.
var defaultTable = [TableColors]ColorEntry{
	// normal
	{R: 0x00, G: 0x00, B: 0x00}, // Background
	{R: 0xB2, G: 0xB2, B: 0xB2}, // Foreground
	{R: 0x00, G: 0x00, B: 0x00}, // Black
	{R: 0xB2, G: 0x18, B: 0x18}, // Red
	{R: 0x18, G: 0xB2, B: 0x18}, // Green
	{R: 0xB2, G: 0x68, B: 0x18}, // Yellow
	{R: 0x18, G: 0x18, B: 0xB2}, // Blue
	{R: 0xB2, G: 0x18, B: 0xB2}, // Magenta
	{R: 0x18, G: 0xB2, B: 0xB2}, // Cyan
	{R: 0xB2, G: 0xB2, B: 0xB2}, // White
	// intense
	{R: 0x00, G: 0x00, B: 0x00},
	{R: 0xFF, G: 0xFF, B: 0xFF, Bold: true},
	{R: 0x68, G: 0x68, B: 0x68},
	{R: 0xFF, G: 0x54, B: 0x54},
	{R: 0x54, G: 0xFF, B: 0x54},
	{R: 0xFF, G: 0xFF, B: 0x54},
	{R: 0x54, G: 0x54, B: 0xFF},
	{R: 0xFF, G: 0x54, B: 0xFF},
	{R: 0x54, G: 0xFF, B: 0xFF},
	{R: 0xFF, G: 0xFF, B: 0xFF},
}

// DefaultTable returns a copy of the shared default palette.
func DefaultTable() []ColorEntry {
	table := make([]ColorEntry, TableColors)
	copy(table, defaultTable[:])
	return table
}
