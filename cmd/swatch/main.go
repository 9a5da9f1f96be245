package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/wilbur182/swatch/internal/registry"
	"github.com/wilbur182/swatch/internal/scheme"
)

// Version is set at build time via ldflags
var Version = ""

var (
	debugFlag   = flag.Bool("debug", false, "enable debug logging")
	userDirFlag = flag.String("user-dir", "", "override the writable scheme directory")
	versionFlag = flag.Bool("version", false, "print version and exit")
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: swatch [flags] <command> [args]

Commands:
  list                list available color schemes
  show <name>         print a scheme's full palette (-seed previews randomization)
  install <path>      install a .colorscheme or .schema file
  delete <name>       delete a user-owned scheme
  browse              interactively browse schemes

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		version := Version
		if version == "" {
			version = "dev"
		}
		fmt.Printf("swatch version %s\n", version)
		return
	}

	logLevel := slog.LevelWarn
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	reg := registry.New(registry.Options{
		UserDir: *userDirFlag,
		Logger:  logger,
	})
	defer func() {
		if err := reg.Close(); err != nil {
			logger.Warn("saving modified schemes failed", "err", err)
		}
	}()

	var err error
	switch cmd := flag.Arg(0); cmd {
	case "list":
		err = runList(reg)
	case "show":
		err = runShow(reg, flag.Args()[1:])
	case "install":
		err = runInstall(reg, flag.Arg(1))
	case "delete":
		err = runDelete(reg, flag.Arg(1))
	case "browse":
		err = runBrowse(reg)
	case "":
		usage()
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "swatch: unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "swatch: %v\n", err)
		os.Exit(1)
	}
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// swatchStrip renders a compact strip of colored blocks for the normal
// palette slots. Falls back to nothing on non-terminal output.
func swatchStrip(s *scheme.ColorScheme) string {
	if !stdoutIsTerminal() {
		return ""
	}
	var b strings.Builder
	for i := 0; i < scheme.IntenseOffset; i++ {
		entry := s.ColorEntry(i, 0)
		b.WriteString(lipgloss.NewStyle().
			Background(lipgloss.Color(entry.Hex())).
			Render("  "))
	}
	return b.String()
}

func runList(reg *registry.Registry) error {
	all := reg.AllColorSchemes()

	nameWidth := 0
	for _, s := range all {
		if w := runewidth.StringWidth(s.Name()); w > nameWidth {
			nameWidth = w
		}
	}
	for _, s := range all {
		name := runewidth.FillRight(s.Name(), nameWidth)
		line := fmt.Sprintf("%s  %s", name, s.Description())
		if strip := swatchStrip(s); strip != "" {
			descWidth := runewidth.StringWidth(s.Description())
			line += strings.Repeat(" ", max(1, 32-descWidth)) + strip
		}
		fmt.Println(line)
	}
	return nil
}

func runShow(reg *registry.Registry, args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	seed := fs.Uint64("seed", 0, "randomization seed to preview")
	if err := fs.Parse(args); err != nil {
		return err
	}
	name := fs.Arg(0)

	s := reg.FindColorScheme(name)
	if s == nil {
		return fmt.Errorf("no color scheme named %q", name)
	}

	fmt.Printf("%s: %s\n", s.Name(), s.Description())
	fmt.Printf("opacity %.2f, dark background: %v\n\n", s.Opacity(), s.HasDarkBackground())

	table := make([]scheme.ColorEntry, scheme.TableColors)
	s.GetColorTable(table, *seed)
	for i, entry := range table {
		flags := ""
		if entry.Transparent {
			flags += " transparent"
		}
		if entry.Bold {
			flags += " bold"
		}
		block := ""
		if stdoutIsTerminal() {
			block = lipgloss.NewStyle().
				Background(lipgloss.Color(entry.Hex())).
				Render("    ") + "  "
		}
		fmt.Printf("%2d  %s%s  %s%s\n", i, block,
			runewidth.FillRight(scheme.TranslatedColorNameForIndex(i), 20),
			entry.Hex(), flags)
	}
	return nil
}

func runInstall(reg *registry.Registry, path string) error {
	if path == "" {
		return fmt.Errorf("install: missing path")
	}
	if err := reg.LoadCustomColorScheme(path); err != nil {
		return err
	}
	fmt.Printf("installed %s\n", path)
	return nil
}

func runDelete(reg *registry.Registry, name string) error {
	if name == "" {
		return fmt.Errorf("delete: missing scheme name")
	}
	if !reg.DeleteColorScheme(name) {
		return fmt.Errorf("cannot delete scheme %q (unknown, or not user-owned)", name)
	}
	fmt.Printf("deleted %s\n", name)
	return nil
}
