package scheme

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// LegacyExt is the file extension of the older line-oriented scheme format.
const LegacyExt = ".schema"

// LegacyReader parses the line-oriented scheme format that predates the
// .colorscheme files. Only the title and the color palette entries are
// supported; background-image and blend-color directives are ignored.
type LegacyReader struct {
	r      io.Reader
	logger *slog.Logger
}

// NewLegacyReader returns a reader over r. A nil logger falls back to
// slog.Default.
func NewLegacyReader(r io.Reader, logger *slog.Logger) *LegacyReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &LegacyReader{r: r, logger: logger}
}

// Read parses the stream and returns the scheme defined in it. Individual
// malformed lines are skipped and logged; only a stream-level read failure
// returns an error, in which case the scheme is nil.
func (lr *LegacyReader) Read() (*ColorScheme, error) {
	s := NewColorScheme()

	scanner := bufio.NewScanner(lr.r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "color"):
			if err := lr.readColorLine(line, s); err != nil {
				lr.logger.Warn("skipping malformed scheme line",
					"line", lineno, "err", err)
			}
		case strings.HasPrefix(line, "title"):
			lr.readTitleLine(line, s)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read legacy color scheme: %w", err)
	}

	s.dirty = false
	return s, nil
}

// readColorLine parses "color <index> <red> <green> <blue> <transparent> <bold>".
func (lr *LegacyReader) readColorLine(line string, s *ColorScheme) error {
	fields := strings.Fields(line)
	if len(fields) != 7 {
		return fmt.Errorf("expected 7 fields, got %d", len(fields))
	}

	index, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("bad index %q", fields[1])
	}
	if index < 0 || index >= TableColors {
		return fmt.Errorf("index %d out of range [0,%d)", index, TableColors)
	}

	var rgb [3]uint8
	for i, field := range fields[2:5] {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 || n > 255 {
			return fmt.Errorf("bad channel %q", field)
		}
		rgb[i] = uint8(n)
	}

	transparent, err := parseFlag(fields[5])
	if err != nil {
		return fmt.Errorf("bad transparency flag %q", fields[5])
	}
	bold, err := parseFlag(fields[6])
	if err != nil {
		return fmt.Errorf("bad bold flag %q", fields[6])
	}

	s.SetColorTableEntry(index, ColorEntry{
		R:           rgb[0],
		G:           rgb[1],
		B:           rgb[2],
		Transparent: transparent,
		Bold:        bold,
	})
	return nil
}

// readTitleLine parses "title <description>".
func (lr *LegacyReader) readTitleLine(line string, s *ColorScheme) {
	title := strings.TrimSpace(strings.TrimPrefix(line, "title"))
	if title != "" {
		s.SetDescription(title)
	}
}

func parseFlag(field string) (bool, error) {
	switch field {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("not 0 or 1: %q", field)
}
