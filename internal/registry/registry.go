// Package registry maintains the catalog of named color schemes. Schemes are
// discovered across two search-root sets and two file formats, loaded on
// first use, cached by name, and written back at teardown when modified.
package registry

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/wilbur182/swatch/internal/scheme"
)

// Options configures a Registry. Zero-value fields fall back to the standard
// search roots and the default logger.
type Options struct {
	// SystemDirs are read-only roots holding distribution-provided schemes.
	SystemDirs []string
	// UserDir is the writable root. Deletions and modified-scheme writeback
	// only ever touch this directory.
	UserDir string
	Logger  *slog.Logger
}

// Registry is the catalog. Construct one with New and share it by reference;
// it is safe for concurrent use. Call Close before discarding it so modified
// schemes reach disk.
type Registry struct {
	mu        sync.Mutex
	schemes   map[string]*scheme.ColorScheme
	loadedAll bool

	systemDirs []string
	userDir    string
	logger     *slog.Logger

	def *scheme.ColorScheme
}

// New builds a registry over the given search roots. The scheme list is not
// read until the first query that needs it.
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.UserDir == "" {
		opts.UserDir = defaultUserDir()
	}
	if opts.SystemDirs == nil {
		opts.SystemDirs = defaultSystemDirs()
	}

	def := scheme.NewColorScheme()
	def.SetDescription("Default")
	def.MarkClean()

	r := &Registry{
		schemes:    make(map[string]*scheme.ColorScheme),
		systemDirs: opts.SystemDirs,
		userDir:    opts.UserDir,
		logger:     opts.Logger,
		def:        def,
	}
	for _, s := range scheme.Builtins() {
		r.schemes[s.Name()] = s
	}
	return r
}

// DefaultColorScheme returns the built-in default scheme. Never nil.
func (r *Registry) DefaultColorScheme() *scheme.ColorScheme {
	return r.def
}

// FindColorScheme returns the scheme with the given name, loading it from
// disk the first time it is requested. The empty name resolves to the default
// scheme. Returns nil when no scheme with that name exists.
func (r *Registry) FindColorScheme(name string) *scheme.ColorScheme {
	if name == "" {
		return r.def
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.schemes[name]; ok {
		return s
	}
	if path := r.findPath(name, scheme.ModernExt); path != "" {
		if s := r.loadModern(path); s != nil {
			r.schemes[name] = s
			return s
		}
	}
	if path := r.findPath(name, scheme.LegacyExt); path != "" {
		if s := r.loadLegacy(path); s != nil {
			r.schemes[name] = s
			return s
		}
	}
	return nil
}

// AllColorSchemes loads every scheme found under the search roots, in both
// formats, and returns them sorted by name. The discovery pass runs once; the
// cached result is returned thereafter.
func (r *Registry) AllColorSchemes() []*scheme.ColorScheme {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loadedAll {
		for _, path := range r.listFiles(scheme.ModernExt) {
			name := schemeName(path)
			if _, ok := r.schemes[name]; ok {
				continue
			}
			if s := r.loadModern(path); s != nil {
				r.schemes[name] = s
			}
		}
		for _, path := range r.listFiles(scheme.LegacyExt) {
			name := schemeName(path)
			if _, ok := r.schemes[name]; ok {
				continue
			}
			if s := r.loadLegacy(path); s != nil {
				r.schemes[name] = s
			}
		}
		r.loadedAll = true
	}

	all := make([]*scheme.ColorScheme, 0, len(r.schemes))
	for _, s := range r.schemes {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })
	return all
}

// LoadCustomColorScheme loads a scheme file from an arbitrary path, in either
// format, and installs it under the file's base name, replacing any cached
// scheme of that name.
func (r *Registry) LoadCustomColorScheme(path string) error {
	var s *scheme.ColorScheme
	switch filepath.Ext(path) {
	case scheme.ModernExt:
		s = scheme.NewColorScheme()
		if err := s.Read(path); err != nil {
			return err
		}
	case scheme.LegacyExt:
		s = r.loadLegacy(path)
		if s == nil {
			return fmt.Errorf("load color scheme %s: unreadable", path)
		}
	default:
		return fmt.Errorf("load color scheme %s: unrecognized extension", path)
	}

	r.mu.Lock()
	r.schemes[s.Name()] = s
	r.mu.Unlock()
	return nil
}

// DeleteColorScheme removes a scheme from the cache and deletes its backing
// file. Only schemes backed by a file under the user directory can be
// deleted; the default scheme, built-ins and system schemes report false.
func (r *Registry) DeleteColorScheme(name string) bool {
	if name == "" || scheme.IsBuiltin(name) {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	path := ""
	for _, ext := range []string{scheme.ModernExt, scheme.LegacyExt} {
		candidate := filepath.Join(r.userDir, name+ext)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
			break
		}
	}
	if path == "" {
		return false
	}
	if err := os.Remove(path); err != nil {
		r.logger.Warn("failed to delete color scheme file", "path", path, "err", err)
		return false
	}
	delete(r.schemes, name)
	return true
}

// Refresh drops cached schemes that came from disk so the next query reloads
// them. Built-ins and schemes with unsaved modifications survive.
func (r *Registry) Refresh() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, s := range r.schemes {
		if scheme.IsBuiltin(name) || s.Dirty() {
			continue
		}
		delete(r.schemes, name)
	}
	r.loadedAll = false
}

// Close writes every modified scheme to the user directory in modern format.
// Individual write failures are logged and do not stop the remaining schemes
// from being saved.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for name, s := range r.schemes {
		if !s.Dirty() {
			continue
		}
		if err := os.MkdirAll(r.userDir, 0o755); err != nil {
			r.logger.Warn("cannot create scheme directory", "dir", r.userDir, "err", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		path := filepath.Join(r.userDir, name+scheme.ModernExt)
		if err := s.Write(path); err != nil {
			r.logger.Warn("failed to save modified color scheme", "name", name, "err", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s.MarkClean()
	}
	return firstErr
}

// dirs returns the search roots, user directory first so user schemes shadow
// system ones.
func (r *Registry) dirs() []string {
	return append([]string{r.userDir}, r.systemDirs...)
}

// findPath locates the file for a scheme name with the given extension.
func (r *Registry) findPath(name, ext string) string {
	for _, dir := range r.dirs() {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// listFiles enumerates every scheme file with the given extension across the
// search roots. When a name appears in several roots the first hit wins.
func (r *Registry) listFiles(ext string) []string {
	seen := make(map[string]bool)
	var paths []string
	for _, dir := range r.dirs() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue // missing roots are not an error
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
				continue
			}
			name := schemeName(entry.Name())
			if seen[name] {
				continue
			}
			seen[name] = true
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths
}

func (r *Registry) loadModern(path string) *scheme.ColorScheme {
	s := scheme.NewColorScheme()
	if err := s.Read(path); err != nil {
		r.logger.Warn("failed to load color scheme", "path", path, "err", err)
		return nil
	}
	return s
}

func (r *Registry) loadLegacy(path string) *scheme.ColorScheme {
	f, err := os.Open(path)
	if err != nil {
		r.logger.Warn("failed to open color scheme", "path", path, "err", err)
		return nil
	}
	defer f.Close()

	s, err := scheme.NewLegacyReader(f, r.logger).Read()
	if err != nil {
		r.logger.Warn("failed to load color scheme", "path", path, "err", err)
		return nil
	}
	s.SetName(schemeName(path))
	if s.Description() == "" {
		s.SetDescription(s.Name())
	}
	s.MarkClean()
	return s
}

// schemeName derives the registry name from a scheme file path.
func schemeName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
