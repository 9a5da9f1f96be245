package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wilbur182/swatch/internal/registry"
	"github.com/wilbur182/swatch/internal/scheme"
)

// schemeItem adapts a ColorScheme for the list widget.
type schemeItem struct {
	s *scheme.ColorScheme
}

func (i schemeItem) Title() string {
	if d := i.s.Description(); d != "" {
		return d
	}
	return i.s.Name()
}

func (i schemeItem) Description() string { return i.s.Name() }

func (i schemeItem) FilterValue() string {
	return i.s.Name() + " " + i.s.Description()
}

// schemesChangedMsg is emitted when a scheme file under a search root changes.
type schemesChangedMsg struct{}

func watchSchemes(w *registry.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-w.Events(); !ok {
			return nil
		}
		return schemesChangedMsg{}
	}
}

type browseModel struct {
	reg     *registry.Registry
	watcher *registry.Watcher
	list    list.Model
	width   int
	height  int
}

const previewHeight = 5

func newBrowseModel(reg *registry.Registry, watcher *registry.Watcher) browseModel {
	l := list.New(schemeItems(reg), list.NewDefaultDelegate(), 0, 0)
	l.Title = "Color Schemes"
	l.SetShowHelp(true)
	return browseModel{reg: reg, watcher: watcher, list: l}
}

func schemeItems(reg *registry.Registry) []list.Item {
	all := reg.AllColorSchemes()
	items := make([]list.Item, 0, len(all))
	for _, s := range all {
		items = append(items, schemeItem{s: s})
	}
	return items
}

func (m browseModel) Init() tea.Cmd {
	return watchSchemes(m.watcher)
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-previewHeight)
		return m, nil

	case schemesChangedMsg:
		m.reg.Refresh()
		cmd := m.list.SetItems(schemeItems(m.reg))
		return m, tea.Batch(cmd, watchSchemes(m.watcher))

	case tea.KeyMsg:
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	return m.list.View() + "\n" + m.preview()
}

// preview renders the selected scheme's palette as two swatch rows, normal
// over intense.
func (m browseModel) preview() string {
	item, ok := m.list.SelectedItem().(schemeItem)
	if !ok {
		return ""
	}

	table := make([]scheme.ColorEntry, scheme.TableColors)
	item.s.GetColorTable(table, 0)

	row := func(offset int) string {
		var b strings.Builder
		for i := offset; i < offset+scheme.IntenseOffset; i++ {
			b.WriteString(lipgloss.NewStyle().
				Background(lipgloss.Color(table[i].Hex())).
				Render("   "))
		}
		return b.String()
	}

	label := fmt.Sprintf("%s  opacity %.2f", item.s.Name(), item.s.Opacity())
	return lipgloss.JoinVertical(lipgloss.Left,
		"  "+label,
		"  "+row(0),
		"  "+row(scheme.IntenseOffset),
	)
}

func runBrowse(reg *registry.Registry) error {
	watcher, err := reg.Watch()
	if err != nil {
		watcher = nil // browsing still works without live reload
	}
	if watcher != nil {
		defer watcher.Close()
	}

	p := tea.NewProgram(newBrowseModel(reg, watcher), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
