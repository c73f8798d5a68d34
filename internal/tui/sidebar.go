package tui

import (
	"dws-console/internal/console"
	"dws-console/internal/nav"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 24

type sidebarItem struct {
	link nav.Link
}

func (i sidebarItem) Title() string       { return i.link.Label }
func (i sidebarItem) Description() string { return "" }
func (i sidebarItem) FilterValue() string { return i.link.Label }

func newSidebar(links []nav.Link) list.Model {
	items := make([]list.Item, 0, len(links))
	for _, l := range links {
		items = append(items, sidebarItem{link: l})
	}
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(colorAccent).
		BorderForeground(colorAccent)

	l := list.New(items, d, sidebarWidth, 0)
	// The console renders its own header and footer.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	// ESC is "back" in the console, not quit.
	l.DisableQuitKeybindings()
	return l
}

// selectSidebarScreen moves the sidebar cursor onto the link for s, if there is one.
func selectSidebarScreen(l *list.Model, s nav.Screen) {
	for i, it := range l.Items() {
		if si, ok := it.(sidebarItem); ok && si.link.Screen == s {
			l.Select(i)
			return
		}
	}
}

func (m appModel) viewSidebar(f console.Frame, height int) string {
	st := lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(colorMuted)

	if m.focus == focusSidebar {
		return st.Render(m.sidebar.View())
	}

	var lines []string
	for _, l := range f.Links {
		label := "  " + l.Label
		if l.Screen == f.Screen {
			label = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("› " + l.Label)
		}
		lines = append(lines, label)
	}
	return st.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
