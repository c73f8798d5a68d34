package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dws-console/internal/console"
	"dws-console/internal/model"
	"dws-console/internal/mutate"
	"dws-console/internal/nav"
	"dws-console/internal/session"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.sync()
		return m, nil

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.c.LoginPending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loginResultMsg:
		return m.finishLogin(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	if _, ok := m.c.User(); !ok {
		return m.updateLogin(msg)
	}
	if key.Matches(msg, m.keys.Logout) {
		return m.logout()
	}
	if m.form.open() {
		return m.updateForm(msg)
	}
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}
	if key.Matches(msg, m.keys.Focus) {
		if m.focus == focusSidebar {
			m.focus = focusContent
		} else {
			m.focus = focusSidebar
		}
		return m, nil
	}
	if m.focus == focusSidebar {
		return m.updateSidebar(msg)
	}
	return m.updateContent(msg)
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	if m.loginCancel != nil {
		m.loginCancel()
		m.loginCancel = nil
	}
	m.quitting = true
	return m, tea.Quit
}

func (m appModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.login.toggleFocus()
		return m, nil
	case "enter":
		if m.login.focus == 0 && m.login.password.Value() == "" {
			m.login.toggleFocus()
			return m, nil
		}
		return m.submitLogin()
	}
	if m.c.LoginPending() {
		return m, nil
	}
	return m, m.login.updateInput(msg)
}

func (m appModel) submitLogin() (tea.Model, tea.Cmd) {
	seq, err := m.c.BeginLogin()
	if err != nil {
		m.login.err = session.Message(err)
		return m, nil
	}
	m.login.err = ""
	ctx, cancel := context.WithCancel(context.Background())
	m.loginCancel = cancel
	auth := authenticateCmd(ctx, m.c.Session(), seq, m.login.username.Value(), m.login.password.Value())
	return m, tea.Batch(m.spinner.Tick, auth)
}

func (m appModel) finishLogin(msg loginResultMsg) (tea.Model, tea.Cmd) {
	applied, err := m.c.FinishLogin(msg.seq, msg.user, msg.err)
	if !applied {
		return m, nil
	}
	if m.loginCancel != nil {
		m.loginCancel()
		m.loginCancel = nil
	}
	if err != nil {
		m.login.err = session.Message(err)
		m.login.password.SetValue("")
		return m, nil
	}
	m.login = newLoginForm()
	m.focus = focusContent
	m.sync()
	return m, m.setFlash("Welcome, "+msg.user.DisplayName(), false)
}

func (m appModel) logout() (tea.Model, tea.Cmd) {
	if m.loginCancel != nil {
		m.loginCancel()
		m.loginCancel = nil
	}
	m.c.Logout()
	m.login = newLoginForm()
	m.flash = ""
	m.sync()
	return m, nil
}

func (m appModel) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Open):
		if it, ok := m.sidebar.SelectedItem().(sidebarItem); ok {
			if err := m.c.RequestScreen(it.link.Screen); err != nil {
				return m, m.flashError(err)
			}
			m.focus = focusContent
			m.sync()
		}
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.focus = focusContent
		return m, nil
	}
	var cmd tea.Cmd
	m.sidebar, cmd = m.sidebar.Update(msg)
	return m, cmd
}

func (m appModel) updateContent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.c.Frame()
	var cmd tea.Cmd
	handled := true

	switch {
	case key.Matches(msg, m.keys.Open):
		cmd = m.openSelected(f)
	case key.Matches(msg, m.keys.Back):
		if s, ok := backScreen(f.Screen, f.User.Role); ok {
			cmd = m.flashError(m.c.RequestScreen(s))
		}
	case key.Matches(msg, m.keys.New):
		cmd = m.startCreate(f)
	case key.Matches(msg, m.keys.Status):
		cmd = m.cycleProjectStatus(f)
	case key.Matches(msg, m.keys.Handoff):
		cmd = m.openDealScreen(f, nav.ScreenDealHandoff)
	case key.Matches(msg, m.keys.Setup):
		cmd = m.openDealScreen(f, nav.ScreenProjectSetup)
	case key.Matches(msg, m.keys.Submit) && f.Screen == nav.ScreenDealHandoff:
		cmd = m.submitToPM(f)
	case key.Matches(msg, m.keys.Ready) && f.Screen == nav.ScreenProjectSetup:
		cmd = m.prepareSelectedService(f)
	case key.Matches(msg, m.keys.Convert) && (f.Screen == nav.ScreenProjectSetup || f.Screen == nav.ScreenDealHandoff):
		cmd = m.convertDeal(f)
	case key.Matches(msg, m.keys.AddSub):
		cmd = m.startSubtask(f)
	case key.Matches(msg, m.keys.Copy):
		cmd = m.copySelectedID()
	default:
		handled = false
	}
	if handled {
		m.sync()
		return m, cmd
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *appModel) openSelected(f console.Frame) tea.Cmd {
	id := m.selectedRowID()
	if id == "" {
		return nil
	}
	var err error
	switch f.Screen {
	case nav.ScreenDashboard, nav.ScreenProjectList, nav.ScreenTeamOwnerProjects:
		err = m.c.OpenProject(id)
	case nav.ScreenSalesDashboard, nav.ScreenDealList:
		err = m.c.OpenDeal(id, nav.ScreenDealDetail)
	case nav.ScreenTeamTasks:
		err = m.c.OpenTeamTask(id)
	case nav.ScreenTaskList, nav.ScreenProjectDetail, nav.ScreenTeamOwnerDashboard,
		nav.ScreenTeamMemberDashboard, nav.ScreenTeamMemberTasks, nav.ScreenTeamMemberTimesheet:
		_, err = m.c.OpenTask(id)
	case nav.ScreenTaskDetail, nav.ScreenTaskReview, nav.ScreenTeamLeadTaskDetail:
		err = m.c.OpenSubtask(id)
	case nav.ScreenProjectSetup:
		return m.prepareSelectedService(f)
	case nav.ScreenCalendar:
		kind, entityID, _ := strings.Cut(id, ":")
		if kind == "project" {
			err = m.c.OpenProject(entityID)
		} else {
			_, err = m.c.OpenTask(entityID)
		}
	}
	return m.flashError(err)
}

func (m *appModel) startCreate(f console.Frame) tea.Cmd {
	var target nav.Screen
	switch f.Screen {
	case nav.ScreenTaskList, nav.ScreenProjectDetail:
		target = nav.ScreenCreateTask
	case nav.ScreenDealList, nav.ScreenSalesDashboard:
		target = nav.ScreenCreateDeal
	case nav.ScreenCompanies:
		target = nav.ScreenCreateCompany
	case nav.ScreenAgencyList:
		target = nav.ScreenCreateAgency
	default:
		return nil
	}
	return m.flashError(m.c.RequestScreen(target))
}

func (m *appModel) cycleProjectStatus(f console.Frame) tea.Cmd {
	var id string
	switch f.Screen {
	case nav.ScreenProjectDetail:
		if f.Props.Project != nil {
			id = f.Props.Project.ID
		}
	case nav.ScreenDashboard, nav.ScreenProjectList, nav.ScreenTeamOwnerProjects:
		id = m.selectedRowID()
	default:
		return nil
	}
	p, ok := m.c.State().FindProject(id)
	if !ok {
		return nil
	}
	next := mutate.NextProjectStatus(p.Status)
	m.c.SetProjectStatus(id, next)
	return m.setFlash(fmt.Sprintf("%s is now %s", p.Name, next), false)
}

func (m *appModel) openDealScreen(f console.Frame, target nav.Screen) tea.Cmd {
	switch f.Screen {
	case nav.ScreenDealList, nav.ScreenSalesDashboard:
		if id := m.selectedRowID(); id != "" {
			return m.flashError(m.c.OpenDeal(id, target))
		}
	case nav.ScreenDealDetail, nav.ScreenDealHandoff, nav.ScreenProjectSetup:
		if f.Props.Deal != nil {
			return m.flashError(m.c.OpenDeal(f.Props.Deal.ID, target))
		}
	}
	return nil
}

func (m *appModel) submitToPM(f console.Frame) tea.Cmd {
	if f.Props.Deal == nil {
		return nil
	}
	d := *f.Props.Deal
	if d.Status == model.DealConverted {
		return m.setFlash("Deal is already converted", true)
	}
	d.Status = model.DealSubmittedToPM
	m.c.UpdateDeal(d)
	return m.setFlash(d.DealName+" submitted to PM", false)
}

func (m *appModel) prepareSelectedService(f console.Frame) tea.Cmd {
	id := m.selectedRowID()
	if f.Props.Deal == nil || id == "" {
		return nil
	}
	if err := m.c.PrepareService(f.Props.Deal.ID, id); err != nil {
		return m.flashError(err)
	}
	return m.setFlash("Service ready for conversion", false)
}

func (m *appModel) convertDeal(f console.Frame) tea.Cmd {
	if f.Props.Deal == nil {
		return nil
	}
	ps, err := m.c.ConvertDeal(f.Props.Deal.ID)
	if errors.Is(err, mutate.ErrNothingToConvert) {
		return m.setFlash("Mark at least one service ready first", true)
	}
	if errors.Is(err, mutate.ErrAlreadyConverted) {
		return m.setFlash(f.Props.Deal.DealName+" is already converted", true)
	}
	if err != nil {
		return m.flashError(err)
	}
	return m.setFlash(fmt.Sprintf("Created %d project(s) from %s", len(ps), f.Props.Deal.DealName), false)
}

func (m *appModel) startSubtask(f console.Frame) tea.Cmd {
	switch f.Screen {
	case nav.ScreenTaskDetail, nav.ScreenTaskReview, nav.ScreenTeamLeadTaskDetail, nav.ScreenTeamMemberTaskDetail:
	default:
		return nil
	}
	if f.Props.Task == nil {
		return nil
	}
	m.form = newEntityForm(formSubtask, m.formPrefill(formSubtask, f))
	m.formScreen = f.Screen
	return nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cmd := m.form.update(msg)
	switch action {
	case formCancel:
		kind := m.form.kind
		m.form = entityForm{}
		if kind != formSubtask {
			f := m.c.Frame()
			if s, ok := backScreen(f.Screen, f.User.Role); ok {
				cmd = m.flashError(m.c.RequestScreen(s))
			}
		}
		m.sync()
		return m, cmd
	case formSubmit:
		return m.submitForm()
	}
	return m, cmd
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	if err := m.form.validate(); err != nil {
		m.form.err = err.Error()
		return m, nil
	}
	u, _ := m.c.User()
	f := m.form
	var done string

	switch f.kind {
	case formDeal:
		d := mutate.NewDeal(mutate.DealInput{
			DealName:    f.value("dealName"),
			Company:     f.value("company"),
			ContactName: f.value("contactName"),
			Email:       f.value("email"),
			Budget:      f.value("budget"),
			RiskLevel:   f.value("riskLevel"),
			Services:    f.list("services"),
			Notes:       f.value("notes"),
		}, u.DisplayName(), m.c.Now())
		m.c.AddDeal(d)
		done = "Deal created: " + d.DealName
	case formTask:
		st := m.c.State()
		if _, ok := st.FindProject(f.value("projectId")); !ok {
			m.form.err = "unknown project: " + f.value("projectId")
			return m, nil
		}
		t := mutate.NewTask(st, mutate.TaskInput{
			Name:      f.value("name"),
			ProjectID: f.value("projectId"),
			Assignee:  f.value("assignee"),
			DueDate:   f.value("dueDate"),
			Priority:  f.value("priority"),
		})
		m.c.AddTask(t)
		done = "Task created: " + t.Name
	case formCompany:
		o := mutate.NewCompany(mutate.OrgInput{
			Name:     f.value("name"),
			Industry: f.value("industry"),
			Contact:  f.value("contact"),
			Email:    f.value("email"),
			City:     f.value("city"),
		})
		m.c.AddCompany(o)
		done = "Company added: " + o.Name
	case formAgency:
		o := mutate.NewAgency(mutate.OrgInput{
			Name:       f.value("name"),
			Contact:    f.value("contact"),
			Email:      f.value("email"),
			City:       f.value("city"),
			CompanyIDs: f.list("companyIds"),
		})
		m.c.AddAgency(o)
		done = "Agency added: " + o.Name
	case formSubtask:
		sel := m.c.Selection()
		if sel.Task == nil {
			m.form = entityForm{}
			return m, m.setFlash("No task selected", true)
		}
		s := mutate.NewSubtask(sel.Task.ID, f.value("name"), f.value("assignee"))
		s.DueDate = f.value("dueDate")
		m.c.AddSubtask(s)
		done = "Subtask added: " + s.Name
	}

	m.form = entityForm{}
	m.sync()
	return m, m.setFlash(done, false)
}
