package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"dws-console/internal/console"
	"dws-console/internal/model"
	"dws-console/internal/nav"
	"dws-console/internal/store"

	"github.com/charmbracelet/bubbles/table"
)

type colSpec struct {
	title  string
	weight int
}

// columns spreads width over the specs by weight.
func columns(width int, specs ...colSpec) []table.Column {
	total := 0
	for _, s := range specs {
		total += s.weight
	}
	avail := width - 2*len(specs)
	if avail < 10*len(specs) {
		avail = 10 * len(specs)
	}
	out := make([]table.Column, 0, len(specs))
	for _, s := range specs {
		out = append(out, table.Column{Title: s.title, Width: avail * s.weight / total})
	}
	return out
}

func money(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 0, 64)
}

func pct(n int) string { return strconv.Itoa(n) + "%" }

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// Role-scoped views of the collections a screen receives.

func myDeals(f console.Frame, deals []model.Deal) []model.Deal {
	if f.User == nil || f.User.Role != model.RoleSales {
		return deals
	}
	var out []model.Deal
	for _, d := range deals {
		if strings.EqualFold(d.Owner, f.User.DisplayName()) {
			out = append(out, d)
		}
	}
	return out
}

func teamProjects(f console.Frame, projects []model.Project) []model.Project {
	if f.User == nil || f.User.Role != model.RoleTeamOwner {
		return projects
	}
	return store.State{Projects: projects}.ProjectsForTeamOwner(f.User.DisplayName())
}

func myTasks(f console.Frame, tasks []model.Task) []model.Task {
	if f.User == nil {
		return nil
	}
	return store.State{Tasks: tasks}.TasksForAssignee(f.User.DisplayName())
}

func tasksOfProjects(tasks []model.Task, projects []model.Project) []model.Task {
	ids := map[string]bool{}
	for _, p := range projects {
		ids[p.ID] = true
	}
	var out []model.Task
	for _, t := range tasks {
		if ids[t.ProjectID] {
			out = append(out, t)
		}
	}
	return out
}

func projectRows(w int, ps []model.Project) ([]table.Column, []table.Row, []string) {
	cols := columns(w, colSpec{"Project", 4}, colSpec{"Company", 3}, colSpec{"Service", 3}, colSpec{"Status", 2}, colSpec{"Health", 2}, colSpec{"Progress", 1})
	rows := make([]table.Row, 0, len(ps))
	ids := make([]string, 0, len(ps))
	for _, p := range ps {
		rows = append(rows, table.Row{p.Name, p.Company, dash(p.ServiceType), string(p.Status), string(p.Health), pct(p.Progress)})
		ids = append(ids, p.ID)
	}
	return cols, rows, ids
}

func taskRows(w int, ts []model.Task) ([]table.Column, []table.Row, []string) {
	cols := columns(w, colSpec{"Task", 4}, colSpec{"Project", 3}, colSpec{"Assignee", 3}, colSpec{"Priority", 1}, colSpec{"Status", 3}, colSpec{"Due", 2})
	rows := make([]table.Row, 0, len(ts))
	ids := make([]string, 0, len(ts))
	for _, t := range ts {
		rows = append(rows, table.Row{t.Name, dash(t.Project), dash(t.Assignee), dash(t.Priority), dash(t.Status), dash(t.DueDate)})
		ids = append(ids, t.ID)
	}
	return cols, rows, ids
}

func dealRows(w int, ds []model.Deal) ([]table.Column, []table.Row, []string) {
	cols := columns(w, colSpec{"Deal", 4}, colSpec{"Company", 3}, colSpec{"Status", 3}, colSpec{"Budget", 2}, colSpec{"Risk", 1}, colSpec{"Services", 1})
	rows := make([]table.Row, 0, len(ds))
	ids := make([]string, 0, len(ds))
	for _, d := range ds {
		rows = append(rows, table.Row{d.DealName, d.Company, string(d.Status), money(d.Budget), dash(d.RiskLevel), strconv.Itoa(len(d.Services))})
		ids = append(ids, d.ID)
	}
	return cols, rows, ids
}

func serviceRows(w int, d *model.Deal) ([]table.Column, []table.Row, []string) {
	cols := columns(w, colSpec{"Service", 3}, colSpec{"Budget", 2}, colSpec{"Status", 2}, colSpec{"Project", 3}, colSpec{"Team owner", 2})
	if d == nil {
		return cols, nil, nil
	}
	rows := make([]table.Row, 0, len(d.Services))
	ids := make([]string, 0, len(d.Services))
	for _, s := range d.Services {
		project, owner := "-", "-"
		if s.Configuration != nil {
			project, owner = dash(s.Configuration.ProjectName), dash(s.Configuration.TeamOwner)
		}
		rows = append(rows, table.Row{s.ServiceType, money(s.Budget), string(s.Status), project, owner})
		ids = append(ids, s.ID)
	}
	return cols, rows, ids
}

func subtaskRows(w int, subs []model.Subtask) ([]table.Column, []table.Row, []string) {
	cols := columns(w, colSpec{"Subtask", 4}, colSpec{"Assignee", 3}, colSpec{"Status", 2}, colSpec{"Due", 2})
	rows := make([]table.Row, 0, len(subs))
	ids := make([]string, 0, len(subs))
	for _, s := range subs {
		rows = append(rows, table.Row{s.Name, dash(s.Assignee), dash(s.Status), dash(s.DueDate)})
		ids = append(ids, s.ID)
	}
	return cols, rows, ids
}

func orgRows(w int, orgs []model.OrgRecord, agencies bool) ([]table.Column, []table.Row, []string) {
	st := store.State{Orgs: orgs}
	var cols []table.Column
	if agencies {
		cols = columns(w, colSpec{"Agency", 3}, colSpec{"Contact", 2}, colSpec{"City", 2}, colSpec{"Companies", 4})
	} else {
		cols = columns(w, colSpec{"Company", 3}, colSpec{"Industry", 2}, colSpec{"Contact", 2}, colSpec{"City", 2})
	}
	var rows []table.Row
	var ids []string
	for _, o := range orgs {
		if agencies != (o.Kind == model.OrgAgency) {
			continue
		}
		if agencies {
			var names []string
			for _, c := range st.CompaniesOfAgency(o) {
				names = append(names, c.Name)
			}
			rows = append(rows, table.Row{o.Name, dash(o.Contact), dash(o.City), dash(strings.Join(names, ", "))})
		} else {
			rows = append(rows, table.Row{o.Name, dash(o.Industry), dash(o.Contact), dash(o.City)})
		}
		ids = append(ids, o.ID)
	}
	return cols, rows, ids
}

type calendarEntry struct {
	date, kind, name, id string
}

func calendarEntries(ps []model.Project, ts []model.Task) []calendarEntry {
	var out []calendarEntry
	for _, p := range ps {
		if p.EndDate != "" {
			out = append(out, calendarEntry{p.EndDate, "Project end", p.Name, "project:" + p.ID})
		}
	}
	for _, t := range ts {
		if t.DueDate != "" {
			out = append(out, calendarEntry{t.DueDate, "Task due", t.Name, "task:" + t.ID})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].date < out[j].date })
	return out
}

// tableFor returns the content table of the resolved screen. Screens without a
// table get no columns.
func (m appModel) tableFor(f console.Frame) ([]table.Column, []table.Row, []string) {
	w := m.contentWidth()
	p := f.Props
	switch f.Screen {
	case nav.ScreenDashboard, nav.ScreenProjectList, nav.ScreenTeamOwnerProjects:
		return projectRows(w, teamProjects(f, p.Projects))
	case nav.ScreenSalesDashboard, nav.ScreenDealList:
		return dealRows(w, myDeals(f, p.Deals))
	case nav.ScreenTeamOwnerDashboard:
		return taskRows(w, tasksOfProjects(p.Tasks, teamProjects(f, p.Projects)))
	case nav.ScreenProjectDetail:
		if p.Project == nil {
			return nil, nil, nil
		}
		return taskRows(w, store.State{Tasks: p.Tasks}.TasksForProject(p.Project.ID))
	case nav.ScreenTaskList, nav.ScreenTeamTasks:
		return taskRows(w, p.Tasks)
	case nav.ScreenTaskDetail, nav.ScreenTaskReview, nav.ScreenTeamLeadTaskDetail, nav.ScreenTeamMemberTaskDetail:
		if p.Task == nil {
			return nil, nil, nil
		}
		return subtaskRows(w, store.State{Subtasks: p.Subtasks}.SubtasksForTask(p.Task.ID))
	case nav.ScreenDealDetail, nav.ScreenDealHandoff, nav.ScreenProjectSetup:
		return serviceRows(w, p.Deal)
	case nav.ScreenCompanies:
		return orgRows(w, p.Orgs, false)
	case nav.ScreenAgencyList:
		return orgRows(w, p.Orgs, true)
	case nav.ScreenCalendar:
		cols := columns(w, colSpec{"Date", 2}, colSpec{"What", 2}, colSpec{"Name", 5})
		var rows []table.Row
		var ids []string
		for _, e := range calendarEntries(p.Projects, p.Tasks) {
			rows = append(rows, table.Row{e.date, e.kind, e.name})
			ids = append(ids, e.id)
		}
		return cols, rows, ids
	case nav.ScreenTeamMemberDashboard, nav.ScreenTeamMemberTasks:
		return taskRows(w, myTasks(f, p.Tasks))
	case nav.ScreenTeamMemberTimesheet:
		cols := columns(w, colSpec{"Task", 4}, colSpec{"Project", 3}, colSpec{"Status", 2}, colSpec{"Logged", 1})
		var rows []table.Row
		var ids []string
		for _, t := range myTasks(f, p.Tasks) {
			rows = append(rows, table.Row{t.Name, dash(t.Project), dash(t.Status), fmt.Sprintf("%.1fh", t.LoggedHours())})
			ids = append(ids, t.ID)
		}
		return cols, rows, ids
	}
	return nil, nil, nil
}

func formForScreen(s nav.Screen) formKind {
	switch s {
	case nav.ScreenCreateDeal:
		return formDeal
	case nav.ScreenCreateTask:
		return formTask
	case nav.ScreenCreateCompany:
		return formCompany
	case nav.ScreenCreateAgency:
		return formAgency
	}
	return formNone
}

func (m appModel) formPrefill(kind formKind, f console.Frame) map[string]string {
	out := map[string]string{}
	switch kind {
	case formTask:
		if f.Selection.Project != nil {
			out["projectId"] = f.Selection.Project.ID
		}
		out["priority"] = "Medium"
	case formDeal:
		out["riskLevel"] = "Medium"
	case formSubtask:
		if f.User != nil {
			out["assignee"] = f.User.DisplayName()
		}
	}
	return out
}

// backScreen is where esc leads from s.
func backScreen(s nav.Screen, r model.Role) (nav.Screen, bool) {
	switch s {
	case nav.ScreenProjectDetail:
		if r == model.RoleTeamOwner {
			return nav.ScreenTeamOwnerProjects, true
		}
		return nav.ScreenProjectList, true
	case nav.ScreenTaskDetail, nav.ScreenTaskReview, nav.ScreenCreateTask:
		return nav.ScreenTaskList, true
	case nav.ScreenSubtaskDetail:
		if r == model.RoleTeamLead {
			return nav.ScreenTeamLeadTaskDetail, true
		}
		return nav.ScreenTaskDetail, true
	case nav.ScreenDealDetail, nav.ScreenCreateDeal:
		return nav.ScreenDealList, true
	case nav.ScreenDealHandoff, nav.ScreenProjectSetup:
		return nav.ScreenDealDetail, true
	case nav.ScreenCreateCompany:
		return nav.ScreenCompanies, true
	case nav.ScreenCreateAgency:
		return nav.ScreenAgencyList, true
	case nav.ScreenTeamLeadTaskDetail:
		return nav.ScreenTeamTasks, true
	case nav.ScreenTeamMemberTaskDetail:
		return nav.ScreenTeamMemberTasks, true
	}
	return 0, false
}
