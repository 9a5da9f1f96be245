package scheme

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	ini "gopkg.in/ini.v1"
)

// ModernExt is the file extension of the structured key/value scheme format.
const ModernExt = ".colorscheme"

// Read populates the scheme from a modern-format file. The scheme name is
// derived from the file's base name. Malformed fields fall back to their
// defaults instead of failing the read; unknown sections and keys are
// ignored. Only an unreadable file is an error.
func (s *ColorScheme) Read(filename string) error {
	f, err := ini.Load(filename)
	if err != nil {
		return fmt.Errorf("read color scheme %s: %w", filename, err)
	}

	name := strings.TrimSuffix(filepath.Base(filename), ModernExt)
	s.name = name

	general := f.Section("General")
	s.description = general.Key("Description").MustString(name)
	s.opacity = general.Key("Opacity").MustFloat64(1)
	if s.opacity < 0 || s.opacity > 1 {
		s.opacity = 1
	}

	for i := 0; i < TableColors; i++ {
		sec, err := f.GetSection(colorNames[i])
		if err != nil {
			continue // missing section keeps the default slot
		}
		s.readColorEntry(sec, i)
	}

	s.randomBackground = !s.randomizationRange(0).IsNull()
	s.dirty = false
	return nil
}

// readColorEntry applies one slot section. Fields that fail to parse keep the
// default table's values for that slot.
func (s *ColorScheme) readColorEntry(sec *ini.Section, index int) {
	entry := defaultTable[index]
	if r, g, b, ok := parseRGB(sec.Key("Color").String()); ok {
		entry.R, entry.G, entry.B = r, g, b
	}
	entry.Transparent = sec.Key("Transparency").MustBool(entry.Transparent)
	entry.Bold = sec.Key("Bold").MustBool(entry.Bold)
	s.SetColorTableEntry(index, entry)

	hue := sec.Key("HueRange").MustUint(0)
	saturation := sec.Key("SaturationRange").MustUint(0)
	value := sec.Key("ValueRange").MustUint(0)
	if hue > MaxHue {
		hue = MaxHue
	}
	if saturation > 255 {
		saturation = 255
	}
	if value > 255 {
		value = 255
	}
	if hue != 0 || saturation != 0 || value != 0 {
		s.SetRandomizationRange(index, uint16(hue), uint8(saturation), uint8(value))
	}
}

// parseRGB parses the "r,g,b" notation used by the Color key.
func parseRGB(raw string) (r, g, b uint8, ok bool) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var channels [3]uint8
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 255 {
			return 0, 0, 0, false
		}
		channels[i] = uint8(n)
	}
	return channels[0], channels[1], channels[2], true
}

// Write saves the scheme in modern format under filename. Every slot is
// written explicitly; randomization keys only appear for slots that have a
// non-null range.
func (s *ColorScheme) Write(filename string) error {
	f := ini.Empty()

	general, err := f.NewSection("General")
	if err != nil {
		return fmt.Errorf("write color scheme %s: %w", filename, err)
	}
	general.NewKey("Description", s.description)
	general.NewKey("Opacity", strconv.FormatFloat(s.opacity, 'g', -1, 64))

	table := s.activeTable()
	for i := 0; i < TableColors; i++ {
		sec, err := f.NewSection(colorNames[i])
		if err != nil {
			return fmt.Errorf("write color scheme %s: %w", filename, err)
		}
		entry := table[i]
		sec.NewKey("Color", fmt.Sprintf("%d,%d,%d", entry.R, entry.G, entry.B))
		sec.NewKey("Transparency", strconv.FormatBool(entry.Transparent))
		sec.NewKey("Bold", strconv.FormatBool(entry.Bold))

		rng := s.randomizationRange(i)
		if !rng.IsNull() {
			sec.NewKey("HueRange", strconv.Itoa(int(rng.Hue)))
			sec.NewKey("SaturationRange", strconv.Itoa(int(rng.Saturation)))
			sec.NewKey("ValueRange", strconv.Itoa(int(rng.Value)))
		}
	}

	if err := f.SaveTo(filename); err != nil {
		return fmt.Errorf("write color scheme %s: %w", filename, err)
	}
	return nil
}
