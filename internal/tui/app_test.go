package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"dws-console/internal/console"
	"dws-console/internal/fixtures"
	"dws-console/internal/model"
	"dws-console/internal/nav"
	"dws-console/internal/registry"
	"dws-console/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "dws@123"

func newTestConsole(t *testing.T) *console.Console {
	t.Helper()
	seed, err := fixtures.Load()
	if err != nil {
		t.Fatalf("fixtures.Load: %v", err)
	}
	creds, err := session.NewCredentials(seed.Users, testPassword, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewCredentials: %v", err)
	}
	c := console.New(console.Options{
		Session:  session.NewController(creds, 0, nil),
		Registry: registry.New(registry.TaskOverrides(seed.TaskOverrides)),
		Seed:     seed.State,
		Now:      func() time.Time { return time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC) },
	})
	return c
}

func newTestModel(t *testing.T) appModel {
	t.Helper()
	m := newAppModel(newTestConsole(t), nil)
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 60})
	return mm.(appModel)
}

func press(t *testing.T, m appModel, msg tea.KeyMsg) (appModel, tea.Cmd) {
	t.Helper()
	mm, cmd := m.Update(msg)
	return mm.(appModel), cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func typeText(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, runes(string(r)))
	}
	return m
}

// loginResult runs the command returned by a login submit and picks out its result.
func loginResult(t *testing.T, cmd tea.Cmd) loginResultMsg {
	t.Helper()
	var pending []tea.Cmd
	if cmd != nil {
		pending = append(pending, cmd)
	}
	for len(pending) > 0 {
		c := pending[0]
		pending = pending[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case loginResultMsg:
			return msg
		case tea.BatchMsg:
			pending = append(pending, msg...)
		}
	}
	t.Fatalf("no login result produced")
	return loginResultMsg{}
}

func signIn(t *testing.T, m appModel, username string) appModel {
	t.Helper()
	m = typeText(t, m, username)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(t, m, testPassword)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.c.LoginPending() {
		t.Fatalf("expected login to be pending after submit")
	}
	mm, _ := m.Update(loginResult(t, cmd))
	m = mm.(appModel)
	if _, ok := m.c.User(); !ok {
		t.Fatalf("expected %s to be signed in; login error %q", username, m.login.err)
	}
	return m
}

func plain(m appModel) string { return xansi.Strip(m.View()) }

func TestWindowSizeBeforeLogin(t *testing.T) {
	cases := []struct {
		name string
		c    *console.Console
	}{
		{"empty console", console.New(console.Options{})},
		{"seeded console", newTestConsole(t)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mm, _ := newAppModel(tc.c, nil).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
			m := mm.(appModel)
			if m.width != 120 || m.height != 40 {
				t.Fatalf("size = %dx%d", m.width, m.height)
			}
			if v := plain(m); !strings.Contains(v, "Sign in to continue") {
				t.Fatalf("expected login view, got:\n%s", v)
			}
		})
	}
}

func TestStartupSequence(t *testing.T) {
	m := newAppModel(newTestConsole(t), nil)
	if cmd := m.Init(); cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatalf("Init quit the program")
		}
	}
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = signIn(t, mm.(appModel), "pm@dws.com")

	if h := m.sidebar.Height(); h != 26 {
		t.Fatalf("sidebar height = %d, want 26", h)
	}
	v := plain(m)
	if !strings.Contains(v, "Project Manager Dashboard") {
		t.Fatalf("expected dashboard header, got:\n%s", v)
	}

	mm, _ = m.Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	m = mm.(appModel)
	if h := m.sidebar.Height(); h != 46 {
		t.Fatalf("sidebar height after resize = %d, want 46", h)
	}
	if v := plain(m); v == "" {
		t.Fatalf("empty view after resize")
	}
}

func TestLoginFormSignsInAndLandsOnRoleScreen(t *testing.T) {
	cases := []struct {
		username string
		want     nav.Screen
		text     string
	}{
		{"pm@dws.com", nav.ScreenDashboard, "Brand Refresh"},
		{"sales@dws.com", nav.ScreenSalesDashboard, "Initech"},
		{"member@dws.com", nav.ScreenTeamMemberDashboard, "Logo Concepts"},
	}
	for _, tc := range cases {
		t.Run(tc.username, func(t *testing.T) {
			m := signIn(t, newTestModel(t), tc.username)
			if got := m.c.Frame().Screen; got != tc.want {
				t.Fatalf("screen = %s, want %s", got, tc.want)
			}
			if v := plain(m); !strings.Contains(v, tc.text) {
				t.Fatalf("expected view to contain %q, got:\n%s", tc.text, v)
			}
			if !strings.HasPrefix(m.flash, "Welcome, ") {
				t.Fatalf("flash = %q", m.flash)
			}
		})
	}
}

func TestLoginWrongPasswordShowsMessage(t *testing.T) {
	m := newTestModel(t)
	m = typeText(t, m, "pm@dws.com")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(t, m, "nope")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	mm, _ := m.Update(loginResult(t, cmd))
	m = mm.(appModel)

	if _, ok := m.c.User(); ok {
		t.Fatalf("expected no session")
	}
	if m.c.LoginPending() {
		t.Fatalf("expected pending flag cleared")
	}
	if m.login.password.Value() != "" {
		t.Fatalf("expected password cleared")
	}
	want := session.Message(session.ErrWrongPassword)
	if v := plain(m); !strings.Contains(v, want) {
		t.Fatalf("expected %q in view, got:\n%s", want, v)
	}
}

func TestLoginInputFrozenWhilePending(t *testing.T) {
	m := newTestModel(t)
	m = typeText(t, m, "pm@dws.com")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(t, m, testPassword)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "xyz")
	if got := m.login.username.Value(); got != "pm@dws.com" {
		t.Fatalf("username changed while pending: %q", got)
	}
	if v := plain(m); !strings.Contains(v, "Signing in") {
		t.Fatalf("expected pending indicator, got:\n%s", v)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.login.err != session.Message(session.ErrLoginInFlight) {
		t.Fatalf("second submit err = %q", m.login.err)
	}
}

func TestStaleLoginResultIgnored(t *testing.T) {
	m := newTestModel(t)
	mm, _ := m.Update(loginResultMsg{seq: 42, user: model.User{Username: "pm@dws.com", Role: model.RoleProjectManager}})
	m = mm.(appModel)
	if _, ok := m.c.User(); ok {
		t.Fatalf("stale result must not sign anybody in")
	}
}

func TestOpenProjectFromDashboard(t *testing.T) {
	m := signIn(t, newTestModel(t), "pm@dws.com")
	id := m.selectedRowID()
	if id == "" {
		t.Fatalf("expected a highlighted project row")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	f := m.c.Frame()
	if f.Screen != nav.ScreenProjectDetail {
		t.Fatalf("screen = %s, want ProjectDetail", f.Screen)
	}
	if f.Props.Project == nil || f.Props.Project.ID != id {
		t.Fatalf("selected project = %+v, want %s", f.Props.Project, id)
	}
	if v := plain(m); !strings.Contains(v, f.Props.Project.Name) {
		t.Fatalf("expected project name in view, got:\n%s", v)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.c.Frame().Screen; got != nav.ScreenProjectList {
		t.Fatalf("back went to %s, want ProjectList", got)
	}
}

func TestCycleProjectStatusFromList(t *testing.T) {
	m := signIn(t, newTestModel(t), "pm@dws.com")
	id := m.selectedRowID()
	before, _ := m.c.State().FindProject(id)
	status := before.Status

	m, _ = press(t, m, runes("s"))
	after, _ := m.c.State().FindProject(id)
	if after.Status == status {
		t.Fatalf("status unchanged: %s", status)
	}
	if m.flashErr || !strings.Contains(m.flash, string(after.Status)) {
		t.Fatalf("flash = %q", m.flash)
	}
}

func TestCreateDealForm(t *testing.T) {
	m := signIn(t, newTestModel(t), "sales@dws.com")
	m, _ = press(t, m, runes("n"))
	if got := m.c.Frame().Screen; got != nav.ScreenCreateDeal {
		t.Fatalf("screen = %s, want CreateDeal", got)
	}
	if m.form.kind != formDeal {
		t.Fatalf("form kind = %v", m.form.kind)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.HasPrefix(m.form.err, "required:") {
		t.Fatalf("form err = %q", m.form.err)
	}
	before := len(m.c.State().Deals)

	m = typeText(t, m, "Acme Launch")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "Acme Corp")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	deals := m.c.State().Deals
	if len(deals) != before+1 {
		t.Fatalf("deals = %d, want %d", len(deals), before+1)
	}
	if deals[0].DealName != "Acme Launch" || deals[0].Company != "Acme Corp" || deals[0].Owner != "Sameer Shah" {
		t.Fatalf("new deal = %+v", deals[0])
	}
	if m.form.open() {
		t.Fatalf("form should close after submit")
	}
	if got := m.c.Frame().Screen; got != nav.ScreenDealList {
		t.Fatalf("screen = %s, want DealList", got)
	}
}

func TestCancelFormGoesBack(t *testing.T) {
	m := signIn(t, newTestModel(t), "pm@dws.com")
	if err := m.c.RequestScreen(nav.ScreenCompanies); err != nil {
		t.Fatal(err)
	}
	m.sync()
	m, _ = press(t, m, runes("n"))
	if m.form.kind != formCompany {
		t.Fatalf("form kind = %v", m.form.kind)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.form.open() {
		t.Fatalf("form should be closed")
	}
	if got := m.c.Frame().Screen; got != nav.ScreenCompanies {
		t.Fatalf("screen = %s, want Companies", got)
	}
}

func TestProjectSetupConvertsReadyServices(t *testing.T) {
	m := signIn(t, newTestModel(t), "pm@dws.com")
	if err := m.c.OpenDeal("deal-203", nav.ScreenProjectSetup); err != nil {
		t.Fatal(err)
	}
	m.sync()
	projects := len(m.c.State().Projects)

	m, _ = press(t, m, runes("c"))
	if !m.flashErr || !strings.Contains(m.flash, "ready") {
		t.Fatalf("flash = %q", m.flash)
	}
	if len(m.c.State().Projects) != projects {
		t.Fatalf("nothing should convert yet")
	}

	if got := m.selectedRowID(); got != "svc-203a" {
		t.Fatalf("selected service = %q", got)
	}
	m, _ = press(t, m, runes("r"))
	if m.flashErr {
		t.Fatalf("prepare failed: %s", m.flash)
	}
	m, _ = press(t, m, runes("c"))
	if m.flashErr {
		t.Fatalf("convert failed: %s", m.flash)
	}
	if got := len(m.c.State().Projects); got != projects+1 {
		t.Fatalf("projects = %d, want %d", got, projects+1)
	}
	d, _ := m.c.State().FindDeal("deal-203")
	if d.Status != model.DealConverted {
		t.Fatalf("deal status = %s", d.Status)
	}

	if err := m.c.OpenDeal("deal-203", nav.ScreenProjectSetup); err != nil {
		t.Fatal(err)
	}
	m.sync()
	m, _ = press(t, m, runes("c"))
	if !m.flashErr || !strings.Contains(m.flash, "already converted") {
		t.Fatalf("flash = %q", m.flash)
	}
	if got := len(m.c.State().Projects); got != projects+1 {
		t.Fatalf("projects after second convert = %d, want %d", got, projects+1)
	}
}

func TestSubmitToPMFromHandoff(t *testing.T) {
	m := signIn(t, newTestModel(t), "sales@dws.com")
	if err := m.c.OpenDeal("deal-204", nav.ScreenDealHandoff); err != nil {
		t.Fatal(err)
	}
	m.sync()
	m, _ = press(t, m, runes("u"))
	d, _ := m.c.State().FindDeal("deal-204")
	if d.Status != model.DealSubmittedToPM {
		t.Fatalf("deal status = %s", d.Status)
	}

	if err := m.c.OpenDeal("deal-201", nav.ScreenDealHandoff); err != nil {
		t.Fatal(err)
	}
	m.sync()
	m, _ = press(t, m, runes("u"))
	if !m.flashErr {
		t.Fatalf("converted deal must not be resubmitted")
	}
}

func TestAddSubtaskOverlay(t *testing.T) {
	m := signIn(t, newTestModel(t), "pm@dws.com")
	if _, err := m.c.OpenTask("task-102"); err != nil {
		t.Fatal(err)
	}
	m.sync()
	before := len(m.c.State().SubtasksForTask("task-102"))

	m, _ = press(t, m, runes("a"))
	if m.form.kind != formSubtask {
		t.Fatalf("form kind = %v", m.form.kind)
	}
	m = typeText(t, m, "Color tokens")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	subs := m.c.State().SubtasksForTask("task-102")
	if len(subs) != before+1 {
		t.Fatalf("subtasks = %d, want %d", len(subs), before+1)
	}
	if got := m.c.Frame().Screen; got != nav.ScreenTaskDetail {
		t.Fatalf("screen = %s, want TaskDetail", got)
	}
}

func TestCopySelectedID(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { copyToClipboard = orig })

	m := signIn(t, newTestModel(t), "pm@dws.com")
	want := m.selectedRowID()
	m, _ = press(t, m, runes("y"))
	if copied != want {
		t.Fatalf("copied %q, want %q", copied, want)
	}

	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	m, _ = press(t, m, runes("y"))
	if !m.flashErr {
		t.Fatalf("expected error flash, got %q", m.flash)
	}
}

func TestSidebarNavigation(t *testing.T) {
	m := signIn(t, newTestModel(t), "pm@dws.com")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusSidebar {
		t.Fatalf("focus = %v", m.focus)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	links := nav.SidebarLinks(model.RoleProjectManager)
	if got := m.c.Active(); got != links[1].Screen {
		t.Fatalf("active = %s, want %s", got, links[1].Screen)
	}
}

func TestLogoutReturnsToLogin(t *testing.T) {
	m := signIn(t, newTestModel(t), "pm@dws.com")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if _, ok := m.c.User(); ok {
		t.Fatalf("expected logout")
	}
	if v := plain(m); !strings.Contains(v, "Sign in to continue") {
		t.Fatalf("expected login view, got:\n%s", v)
	}
}

func TestFlashExpiresOnlyForItsSequence(t *testing.T) {
	m := newTestModel(t)
	m.setFlash("first", false)
	m.setFlash("second", false)
	mm, _ := m.Update(flashDoneMsg{seq: 1})
	m = mm.(appModel)
	if m.flash != "second" {
		t.Fatalf("older timer cleared a newer flash")
	}
	mm, _ = m.Update(flashDoneMsg{seq: 2})
	if mm.(appModel).flash != "" {
		t.Fatalf("flash should be cleared")
	}
}
