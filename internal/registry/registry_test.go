package registry

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/wilbur182/swatch/internal/scheme"
)

func newTestRegistry(t *testing.T) (*Registry, string, string) {
	t.Helper()
	systemDir := t.TempDir()
	userDir := t.TempDir()
	reg := New(Options{
		SystemDirs: []string{systemDir},
		UserDir:    userDir,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return reg, systemDir, userDir
}

func writeModern(t *testing.T, dir, name, description string) string {
	t.Helper()
	path := filepath.Join(dir, name+scheme.ModernExt)
	content := "[General]\nDescription=" + description + "\nOpacity=0.9\n\n" +
		"[Background]\nColor=40,40,40\n\n[Foreground]\nColor=220,220,220\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeLegacy(t *testing.T, dir, name, title string) string {
	t.Helper()
	path := filepath.Join(dir, name+scheme.LegacyExt)
	content := "title " + title + "\ncolor 2 255 0 0 0 1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindEmptyNameReturnsDefault(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	def := reg.FindColorScheme("")
	if def == nil {
		t.Fatal("default scheme is nil")
	}
	if def != reg.DefaultColorScheme() {
		t.Error("FindColorScheme(\"\") did not return the default instance")
	}
}

func TestFindUnknownReturnsNil(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	if s := reg.FindColorScheme("does-not-exist"); s != nil {
		t.Errorf("expected nil, got %q", s.Name())
	}
}

func TestFindLoadsModernSchemeOnce(t *testing.T) {
	reg, systemDir, _ := newTestRegistry(t)
	writeModern(t, systemDir, "nord", "Nord")

	first := reg.FindColorScheme("nord")
	if first == nil {
		t.Fatal("scheme not found")
	}
	if got := first.Description(); got != "Nord" {
		t.Errorf("Description() = %q", got)
	}
	if got := first.Opacity(); got != 0.9 {
		t.Errorf("Opacity() = %v", got)
	}

	if second := reg.FindColorScheme("nord"); second != first {
		t.Error("second lookup produced a different instance")
	}
}

func TestFindLoadsLegacyScheme(t *testing.T) {
	reg, systemDir, _ := newTestRegistry(t)
	writeLegacy(t, systemDir, "linux", "Linux Console")

	s := reg.FindColorScheme("linux")
	if s == nil {
		t.Fatal("legacy scheme not found")
	}
	if got := s.Name(); got != "linux" {
		t.Errorf("Name() = %q", got)
	}
	if got := s.Description(); got != "Linux Console" {
		t.Errorf("Description() = %q", got)
	}
	if got, want := s.ColorEntry(2, 0), (scheme.ColorEntry{R: 255, Bold: true}); got != want {
		t.Errorf("slot 2 = %+v, want %+v", got, want)
	}
}

func TestUserSchemeShadowsSystem(t *testing.T) {
	reg, systemDir, userDir := newTestRegistry(t)
	writeModern(t, systemDir, "shared", "System Copy")
	writeModern(t, userDir, "shared", "User Copy")

	s := reg.FindColorScheme("shared")
	if s == nil {
		t.Fatal("scheme not found")
	}
	if got := s.Description(); got != "User Copy" {
		t.Errorf("Description() = %q, want the user dir to win", got)
	}
}

func TestAllColorSchemesStable(t *testing.T) {
	reg, systemDir, userDir := newTestRegistry(t)
	writeModern(t, systemDir, "alpha", "Alpha")
	writeLegacy(t, userDir, "beta", "Beta")

	names := func() []string {
		var out []string
		for _, s := range reg.AllColorSchemes() {
			out = append(out, s.Name())
		}
		return out
	}

	first := names()
	second := names()
	if len(first) != len(second) {
		t.Fatalf("scheme set changed between calls: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("scheme set changed between calls: %v vs %v", first, second)
		}
	}
	for i := 1; i < len(first); i++ {
		if first[i] < first[i-1] {
			t.Errorf("result not sorted at %d: %v", i, first)
		}
	}

	want := map[string]bool{"alpha": true, "beta": true}
	for _, name := range first {
		delete(want, name)
	}
	if len(want) != 0 {
		t.Errorf("missing schemes %v in %v", want, first)
	}
}

func TestAllColorSchemesIncludesBuiltins(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	all := reg.AllColorSchemes()
	found := false
	for _, s := range all {
		if scheme.IsBuiltin(s.Name()) {
			found = true
			break
		}
	}
	if !found {
		t.Error("built-in schemes missing from AllColorSchemes")
	}
}

func TestLoadCustomColorScheme(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	outside := t.TempDir()

	modern := writeModern(t, outside, "custom", "Custom Scheme")
	if err := reg.LoadCustomColorScheme(modern); err != nil {
		t.Fatalf("LoadCustomColorScheme(%s) error: %v", modern, err)
	}
	if s := reg.FindColorScheme("custom"); s == nil || s.Description() != "Custom Scheme" {
		t.Fatalf("custom scheme not installed: %+v", s)
	}

	legacy := writeLegacy(t, outside, "oldie", "Oldie")
	if err := reg.LoadCustomColorScheme(legacy); err != nil {
		t.Fatalf("LoadCustomColorScheme(%s) error: %v", legacy, err)
	}
	if s := reg.FindColorScheme("oldie"); s == nil || s.Description() != "Oldie" {
		t.Fatalf("legacy custom scheme not installed: %+v", s)
	}
}

func TestLoadCustomColorSchemeOverwrites(t *testing.T) {
	reg, systemDir, _ := newTestRegistry(t)
	writeModern(t, systemDir, "dup", "Original")
	if reg.FindColorScheme("dup") == nil {
		t.Fatal("setup failed")
	}

	outside := t.TempDir()
	replacement := writeModern(t, outside, "dup", "Replacement")
	if err := reg.LoadCustomColorScheme(replacement); err != nil {
		t.Fatal(err)
	}
	if got := reg.FindColorScheme("dup").Description(); got != "Replacement" {
		t.Errorf("Description() = %q, want the replacement", got)
	}
}

func TestLoadCustomColorSchemeBadInput(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	dir := t.TempDir()

	unknown := filepath.Join(dir, "scheme.toml")
	if err := os.WriteFile(unknown, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := reg.LoadCustomColorScheme(unknown); err == nil {
		t.Error("expected an error for an unrecognized extension")
	}
	if err := reg.LoadCustomColorScheme(filepath.Join(dir, "missing"+scheme.ModernExt)); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestDeleteColorScheme(t *testing.T) {
	reg, systemDir, userDir := newTestRegistry(t)
	writeModern(t, systemDir, "system-owned", "System")
	userPath := writeModern(t, userDir, "user-owned", "User")

	if reg.DeleteColorScheme("") {
		t.Error("deleting the default scheme must fail")
	}
	if reg.DeleteColorScheme("BlackOnWhite") {
		t.Error("deleting a built-in scheme must fail")
	}
	if reg.FindColorScheme("BlackOnWhite") == nil {
		t.Error("failed delete must leave the cache unchanged")
	}
	if reg.DeleteColorScheme("system-owned") {
		t.Error("deleting a system scheme must fail")
	}
	if reg.DeleteColorScheme("no-such") {
		t.Error("deleting an unknown scheme must fail")
	}

	if reg.FindColorScheme("user-owned") == nil {
		t.Fatal("setup failed")
	}
	if !reg.DeleteColorScheme("user-owned") {
		t.Fatal("deleting a user scheme should succeed")
	}
	if _, err := os.Stat(userPath); !os.IsNotExist(err) {
		t.Error("backing file still exists after delete")
	}
	if s := reg.FindColorScheme("user-owned"); s != nil {
		t.Errorf("deleted scheme still resolvable: %q", s.Name())
	}
}

func TestCloseWritesModifiedSchemes(t *testing.T) {
	reg, systemDir, userDir := newTestRegistry(t)
	writeLegacy(t, systemDir, "mutated", "Mutated")

	s := reg.FindColorScheme("mutated")
	if s == nil {
		t.Fatal("setup failed")
	}
	s.SetOpacity(0.5)
	s.SetColorTableEntry(4, scheme.NewColorEntry(9, 9, 9))

	if err := reg.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	// a modified scheme is persisted to the user dir in modern format,
	// regardless of the format it was loaded from
	saved := filepath.Join(userDir, "mutated"+scheme.ModernExt)
	if _, err := os.Stat(saved); err != nil {
		t.Fatalf("modified scheme not written: %v", err)
	}

	fresh := New(Options{
		SystemDirs: []string{systemDir},
		UserDir:    userDir,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	got := fresh.FindColorScheme("mutated")
	if got == nil {
		t.Fatal("persisted scheme not found")
	}
	if got.Opacity() != 0.5 {
		t.Errorf("Opacity() = %v, want 0.5", got.Opacity())
	}
	if entry := got.ColorEntry(4, 0); entry != scheme.NewColorEntry(9, 9, 9) {
		t.Errorf("slot 4 = %+v", entry)
	}
}

func TestCloseSkipsUnmodifiedSchemes(t *testing.T) {
	reg, systemDir, userDir := newTestRegistry(t)
	writeModern(t, systemDir, "pristine", "Pristine")

	if reg.FindColorScheme("pristine") == nil {
		t.Fatal("setup failed")
	}
	if err := reg.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(userDir, "pristine"+scheme.ModernExt)); err == nil {
		t.Error("unmodified scheme was written back")
	}
}

func TestRefreshReloadsFromDisk(t *testing.T) {
	reg, systemDir, _ := newTestRegistry(t)
	writeModern(t, systemDir, "live", "Before")

	if got := reg.FindColorScheme("live").Description(); got != "Before" {
		t.Fatalf("setup: Description() = %q", got)
	}

	writeModern(t, systemDir, "live", "After")
	reg.Refresh()

	if got := reg.FindColorScheme("live").Description(); got != "After" {
		t.Errorf("Description() = %q, want reloaded %q", got, "After")
	}
}

func TestRefreshKeepsDirtySchemes(t *testing.T) {
	reg, systemDir, _ := newTestRegistry(t)
	writeModern(t, systemDir, "edited", "On Disk")

	s := reg.FindColorScheme("edited")
	s.SetDescription("In Memory")

	reg.Refresh()
	if got := reg.FindColorScheme("edited"); got != s {
		t.Error("Refresh evicted a scheme with unsaved modifications")
	}
}
