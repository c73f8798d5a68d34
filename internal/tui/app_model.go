package tui

import (
	"context"
	"io"
	"log/slog"
	"time"

	"dws-console/internal/console"
	"dws-console/internal/model"
	"dws-console/internal/nav"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

type focus int

const (
	focusContent focus = iota
	focusSidebar
)

type flashDoneMsg struct{ seq int }

const flashDuration = 3 * time.Second

type appModel struct {
	c   *console.Console
	log *slog.Logger

	width  int
	height int

	focus focus

	login       loginForm
	spinner     spinner.Model
	loginCancel context.CancelFunc

	sidebar     list.Model
	sidebarRole model.Role

	table       table.Model
	rowIDs      []string
	tableCols   int
	tableScreen nav.Screen
	tableReady  bool

	form       entityForm
	formScreen nav.Screen

	bar  progress.Model
	keys keyMap
	help help.Model

	flash    string
	flashErr bool
	flashSeq int

	quitting bool
}

func newAppModel(c *console.Console, log *slog.Logger) appModel {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	t := table.New(table.WithFocused(true), table.WithHeight(10))
	t.SetStyles(tableStyles())

	m := appModel{
		c:       c,
		log:     log,
		login:   newLoginForm(),
		spinner: sp,
		table:   t,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage()),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	m.sync()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func tableStyles() table.Styles {
	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).Foreground(colorMuted)
	st.Selected = st.Selected.Background(colorSelectedBg).Foreground(colorSurfaceFg).Bold(true)
	return st
}

// sync rebuilds the view state that derives from the console: sidebar links, the content
// table for the resolved screen, and the form for form screens. The table cursor survives
// as long as the screen does.
func (m *appModel) sync() {
	f := m.c.Frame()
	if f.User == nil {
		m.tableReady = false
		m.form = entityForm{}
		m.sidebarRole = ""
		m.focus = focusContent
		return
	}

	if m.sidebarRole != f.User.Role {
		m.sidebar = newSidebar(f.Links)
		m.sidebarRole = f.User.Role
		m.resize()
	}
	selectSidebarScreen(&m.sidebar, f.Screen)

	cols, rows, ids := m.tableFor(f)
	cursor := m.table.Cursor()
	if !m.tableReady || f.Screen != m.tableScreen {
		cursor = 0
	}
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	if cursor >= len(rows) {
		cursor = len(rows) - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	m.table.SetCursor(cursor)
	m.rowIDs = ids
	m.tableCols = len(cols)
	m.tableScreen = f.Screen
	m.tableReady = true

	if kind := formForScreen(f.Screen); kind != formNone {
		if m.form.kind != kind || m.formScreen != f.Screen {
			m.form = newEntityForm(kind, m.formPrefill(kind, f))
			m.formScreen = f.Screen
		}
	} else if m.form.kind != formSubtask {
		m.form = entityForm{}
	}
}

func (m *appModel) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	bodyH := m.height - 4
	if bodyH < 6 {
		bodyH = 6
	}
	// The sidebar list only exists once someone is signed in.
	if m.sidebarRole != "" {
		m.sidebar.SetSize(sidebarWidth, bodyH)
	}
	m.table.SetWidth(m.contentWidth())
	m.table.SetHeight(m.tableHeight())
	m.bar.Width = min(40, m.contentWidth()/2)
	m.help.Width = m.width
}

func (m appModel) contentWidth() int {
	w := m.width - sidebarWidth - 4
	if w < 40 {
		w = 40
	}
	return w
}

func (m appModel) tableHeight() int {
	h := m.height - 18
	if h < 5 {
		h = 5
	}
	return h
}

// selectedRowID is the id behind the table cursor, or "" when the table is empty.
func (m appModel) selectedRowID() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rowIDs) {
		return ""
	}
	return m.rowIDs[i]
}

func (m *appModel) setFlash(msg string, isErr bool) tea.Cmd {
	m.flashSeq++
	m.flash = msg
	m.flashErr = isErr
	seq := m.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}

func (m *appModel) flashError(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	m.log.Warn("action failed", slog.String("error", err.Error()))
	return m.setFlash(err.Error(), true)
}
