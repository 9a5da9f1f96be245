package scheme

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLegacyReaderParsesTitleAndColors(t *testing.T) {
	input := strings.Join([]string{
		"# comment line",
		"title Linux Colors",
		"color 2 255 0 0 0 1",
		"color 0 10 20 30 1 0",
		"image tile background.png", // background directives are out of scope
	}, "\n")

	s, err := NewLegacyReader(strings.NewReader(input), discardLogger()).Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got := s.Description(); got != "Linux Colors" {
		t.Errorf("Description() = %q, want %q", got, "Linux Colors")
	}
	if got, want := s.ColorEntry(2, 0), (ColorEntry{R: 255, Bold: true}); got != want {
		t.Errorf("slot 2 = %+v, want %+v", got, want)
	}
	if got, want := s.ColorEntry(0, 0), (ColorEntry{R: 10, G: 20, B: 30, Transparent: true}); got != want {
		t.Errorf("slot 0 = %+v, want %+v", got, want)
	}
	if s.Dirty() {
		t.Error("scheme fresh from the reader should not be dirty")
	}
}

func TestLegacyReaderSkipsBadLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"index out of range", "color 99 1 2 3 0 0"},
		{"negative index", "color -1 1 2 3 0 0"},
		{"channel overflow", "color 2 900 0 0 0 0"},
		{"non-numeric channel", "color 2 red 0 0 0 0"},
		{"bad flag", "color 2 1 2 3 maybe 0"},
		{"missing fields", "color 2 1 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.line + "\ncolor 3 4 5 6 0 0\n"
			s, err := NewLegacyReader(strings.NewReader(input), discardLogger()).Read()
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			// the bad line is skipped, the good line still applies
			if got, want := s.ColorEntry(3, 0), (ColorEntry{R: 4, G: 5, B: 6}); got != want {
				t.Errorf("slot 3 = %+v, want %+v", got, want)
			}
			if got := s.ColorEntry(2, 0); got != defaultTable[2] {
				t.Errorf("slot 2 = %+v, want untouched default", got)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device error")
}

func TestLegacyReaderStreamFailure(t *testing.T) {
	s, err := NewLegacyReader(failingReader{}, discardLogger()).Read()
	if err == nil {
		t.Fatal("expected an error for an unreadable stream")
	}
	if s != nil {
		t.Errorf("scheme should be nil on stream failure, got %+v", s)
	}
}
