package tui

import (
	"context"
	"strings"

	"dws-console/internal/model"
	"dws-console/internal/session"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type loginResultMsg struct {
	seq  int
	user model.User
	err  error
}

type loginForm struct {
	username textinput.Model
	password textinput.Model
	focus    int
	err      string
}

func newLoginForm() loginForm {
	u := textinput.New()
	u.Prompt = ""
	u.Placeholder = "name@dws.com"
	u.CharLimit = 120
	u.Focus()

	p := textinput.New()
	p.Prompt = ""
	p.Placeholder = "password"
	p.CharLimit = 120
	p.EchoMode = textinput.EchoPassword
	p.EchoCharacter = '•'

	return loginForm{username: u, password: p}
}

func (f *loginForm) toggleFocus() {
	if f.focus == 0 {
		f.focus = 1
		f.username.Blur()
		f.password.Focus()
		return
	}
	f.focus = 0
	f.password.Blur()
	f.username.Focus()
}

func (f *loginForm) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.username, cmd = f.username.Update(msg)
	} else {
		f.password, cmd = f.password.Update(msg)
	}
	return cmd
}

// authenticateCmd runs the slow credential check off the update goroutine.
// Only the returned message touches the console.
func authenticateCmd(ctx context.Context, ctl *session.Controller, seq int, username, password string) tea.Cmd {
	return func() tea.Msg {
		u, err := ctl.Authenticate(ctx, username, password)
		return loginResultMsg{seq: seq, user: u, err: err}
	}
}

func (m appModel) viewLogin() string {
	f := m.login
	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("DWS")
	sub := styleMuted().Render("Sign in to continue")

	field := func(label string, in textinput.Model, focused bool) string {
		st := lipgloss.NewStyle().Background(colorControlBg).Width(32)
		if focused {
			st = st.Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(colorAccent)
		}
		return lipgloss.JoinVertical(lipgloss.Left, styleMuted().Render(label), st.Render(in.View()))
	}

	button := lipgloss.NewStyle().Padding(0, 2).Background(colorAccent).Foreground(colorAccentFg).Render("Sign in")
	if m.c.LoginPending() {
		button = m.spinner.View() + " Signing in…"
	}

	lines := []string{
		title,
		sub,
		"",
		field("Username", f.username, f.focus == 0),
		"",
		field("Password", f.password, f.focus == 1),
		"",
		button,
	}
	if strings.TrimSpace(f.err) != "" {
		lines = append(lines, "", styleError().Render(f.err))
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Padding(1, 3).
		Render(strings.Join(lines, "\n"))

	if m.width <= 0 || m.height <= 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
