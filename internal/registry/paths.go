package registry

import (
	"os"
	"path/filepath"
)

// defaultUserDir returns the writable scheme directory,
// ~/.local/share/swatch/colorschemes.
func defaultUserDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "swatch", "colorschemes")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "colorschemes")
	}
	return filepath.Join(home, ".local", "share", "swatch", "colorschemes")
}

// defaultSystemDirs returns the read-only roots searched for
// distribution-provided schemes.
func defaultSystemDirs() []string {
	return []string{
		filepath.Join("/usr", "share", "swatch", "colorschemes"),
		filepath.Join("/usr", "local", "share", "swatch", "colorschemes"),
	}
}
