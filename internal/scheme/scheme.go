// Package scheme implements terminal color schemes: a named palette of
// TableColors entries with a background opacity and optional per-slot
// randomization used to tell concurrent terminal sessions apart.
package scheme

// ColorScheme is one named palette. The zero-cost way to obtain one is
// NewColorScheme, which starts from the shared default palette; parsers and
// the registry fill in the rest.
//
// A scheme without a custom table reads through to the shared default and
// allocates its own copy only when a slot is first written, so cheap schemes
// stay cheap and the default table is never aliased mutably.
type ColorScheme struct {
	name        string
	description string
	opacity     float64

	// table is nil while the scheme uses the shared default palette.
	table []ColorEntry

	// random is nil until a slot is given a non-null randomization range.
	random []RandomizationRange

	randomBackground bool

	// dirty is set by every mutator and consumed by the registry when it
	// decides which schemes need writing back at teardown.
	dirty bool
}

// NewColorScheme returns a scheme initialised to the default color set.
func NewColorScheme() *ColorScheme {
	return &ColorScheme{opacity: 1}
}

// Clone returns an independent deep copy.
func (s *ColorScheme) Clone() *ColorScheme {
	c := *s
	if s.table != nil {
		c.table = append([]ColorEntry(nil), s.table...)
	}
	if s.random != nil {
		c.random = append([]RandomizationRange(nil), s.random...)
	}
	return &c
}

// Name returns the scheme's registry key, which doubles as the on-disk base
// filename.
func (s *ColorScheme) Name() string { return s.name }

// SetName sets the scheme's registry key.
func (s *ColorScheme) SetName(name string) { s.name = name }

// Description returns the human-readable label.
func (s *ColorScheme) Description() string { return s.description }

// SetDescription sets the human-readable label.
func (s *ColorScheme) SetDescription(description string) {
	s.description = description
	s.dirty = true
}

// Opacity returns the background opacity, 0 (transparent) to 1 (opaque).
func (s *ColorScheme) Opacity() float64 { return s.opacity }

// SetOpacity sets the background opacity. Values outside [0,1] are clamped.
func (s *ColorScheme) SetOpacity(opacity float64) {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	s.opacity = opacity
	s.dirty = true
}

// RandomizedBackgroundColor reports whether the background slot participates
// in randomization.
func (s *ColorScheme) RandomizedBackgroundColor() bool { return s.randomBackground }

// SetRandomizedBackgroundColor enables or disables randomization of the
// background slot. Enabling gives the slot the full hue range, which is how
// the flag survives a write/read round trip.
func (s *ColorScheme) SetRandomizedBackgroundColor(randomize bool) {
	s.randomBackground = randomize
	if randomize {
		s.SetRandomizationRange(0, MaxHue, 255, 0)
	} else {
		s.SetRandomizationRange(0, 0, 0, 0)
	}
	s.dirty = true
}

// activeTable returns the table entries in use: the custom table if one has
// been set, otherwise the shared default.
func (s *ColorScheme) activeTable() []ColorEntry {
	if s.table != nil {
		return s.table
	}
	return defaultTable[:]
}

// SetColorTableEntry writes one palette slot. The first write clones the
// default table so the shared copy is never touched. Panics if index is
// outside [0, TableColors).
func (s *ColorScheme) SetColorTableEntry(index int, entry ColorEntry) {
	checkIndex(index)
	if s.table == nil {
		s.table = DefaultTable()
	}
	s.table[index] = entry
	s.dirty = true
}

// SetRandomizationRange bounds the randomization of one palette slot. The
// randomization table is allocated on the first non-null range; writing a
// null range clears the slot. Panics if index is out of range or hue exceeds
// MaxHue.
func (s *ColorScheme) SetRandomizationRange(index int, hue uint16, saturation, value uint8) {
	checkIndex(index)
	if hue > MaxHue {
		panic("scheme: hue randomization range exceeds MaxHue")
	}
	rng := RandomizationRange{Hue: hue, Saturation: saturation, Value: value}
	if s.random == nil {
		if rng.IsNull() {
			return
		}
		s.random = make([]RandomizationRange, TableColors)
	}
	s.random[index] = rng
	s.dirty = true
}

// randomizationRange returns the range for a slot, or the zero range when the
// scheme has no randomization table.
func (s *ColorScheme) randomizationRange(index int) RandomizationRange {
	if s.random == nil {
		return RandomizationRange{}
	}
	return s.random[index]
}

// HasRandomization reports whether any slot has a non-null randomization
// range.
func (s *ColorScheme) HasRandomization() bool {
	for _, rng := range s.random {
		if !rng.IsNull() {
			return true
		}
	}
	return false
}

// ColorEntry returns one effective palette slot for the given seed. The
// result is identical to GetColorTable's entry at the same index.
func (s *ColorScheme) ColorEntry(index int, seed uint64) ColorEntry {
	checkIndex(index)
	return s.effectiveEntry(index, seed)
}

func (s *ColorScheme) effectiveEntry(index int, seed uint64) ColorEntry {
	entry := s.activeTable()[index]
	rng := s.randomizationRange(index)
	if rng.IsNull() {
		return entry
	}
	if index == 0 && !s.randomBackground {
		return entry
	}
	return randomize(entry, rng, seed, index)
}

// GetColorTable fills table, which must hold TableColors entries, with the
// effective palette for the given seed: the active table with each slot's
// randomization applied. It is a pure function of the scheme state and the
// seed, so concurrent callers need no locking.
func (s *ColorScheme) GetColorTable(table []ColorEntry, seed uint64) {
	if len(table) < TableColors {
		panic("scheme: color table buffer too small")
	}
	for i := 0; i < TableColors; i++ {
		table[i] = s.effectiveEntry(i, seed)
	}
}

// ForegroundColor returns the unrandomized foreground slot.
func (s *ColorScheme) ForegroundColor() ColorEntry {
	return s.activeTable()[1]
}

// BackgroundColor returns the unrandomized background slot.
func (s *ColorScheme) BackgroundColor() ColorEntry {
	return s.activeTable()[0]
}

// HasDarkBackground reports whether the background color has an HSV value
// channel below 127.
func (s *ColorScheme) HasDarkBackground() bool {
	return s.BackgroundColor().value() < 127
}

// Dirty reports whether the scheme has been mutated since it was constructed
// or last read from disk.
func (s *ColorScheme) Dirty() bool { return s.dirty }

// MarkClean clears the dirty flag, typically after a successful write.
func (s *ColorScheme) MarkClean() { s.dirty = false }
