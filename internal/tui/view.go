package tui

import (
	"strings"

	"dws-console/internal/console"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	f := m.c.Frame()
	if f.User == nil {
		return m.viewLogin()
	}

	var parts []string
	if f.Chrome.ShowHeader {
		parts = append(parts, m.viewHeader(f))
	}

	bodyH := m.height - 3
	if bodyH < 10 {
		bodyH = 10
	}
	content := lipgloss.NewStyle().
		Background(backgroundColor(f.Chrome.Background)).
		Width(m.contentWidth()).
		Padding(0, 1).
		Render(m.viewContent(f))
	parts = append(parts,
		lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(f, bodyH), content),
		m.viewFooter(f),
	)
	return strings.Join(parts, "\n")
}

func (m appModel) viewHeader(f console.Frame) string {
	width := m.width
	if width <= 0 {
		width = 100
	}
	right := f.User.DisplayName() + " · " + f.User.Role.Label()
	titleW := width - lipgloss.Width(right) - 4
	if titleW < 8 {
		titleW = 8
	}
	title := xansi.Truncate(f.Title, titleW, "…")
	gap := width - lipgloss.Width(title) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccentFg).
		Background(headerColor(f.Chrome.HeaderVariant)).
		Padding(0, 1).
		Render(title + strings.Repeat(" ", gap) + right)
}

func (m appModel) viewContent(f console.Frame) string {
	w := m.contentWidth() - 2
	var blocks []string
	if !f.Chrome.ShowHeader {
		blocks = append(blocks, lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(f.Title))
	}

	if m.form.open() && m.form.kind != formSubtask {
		return strings.Join(append(blocks, m.form.view(w)), "\n\n")
	}

	if info := m.viewInfo(f, w); info != "" {
		blocks = append(blocks, info)
	}
	if m.form.open() {
		blocks = append(blocks, m.form.view(w))
	} else if m.tableCols > 0 {
		if label := tableLabel(f.Screen); label != "" {
			blocks = append(blocks, lipgloss.NewStyle().Bold(true).Render(label))
		}
		if len(m.table.Rows()) == 0 {
			blocks = append(blocks, styleMuted().Render("Nothing here yet."))
		} else {
			blocks = append(blocks, m.table.View())
		}
	}
	return strings.Join(blocks, "\n\n")
}

func (m appModel) viewFooter(f console.Frame) string {
	bindings := m.keys.bindingsFor(f.Screen)
	if m.form.open() {
		bindings = formBindings()
	}
	line := m.help.ShortHelpView(bindings)
	if m.flash != "" {
		st := styleOK()
		if m.flashErr {
			st = styleError()
		}
		line = st.Render(m.flash) + "  " + line
	}
	if m.width > 0 {
		line = xansi.Truncate(line, m.width, "…")
	}
	return line
}
