package tui

import (
	"fmt"
	"sort"
	"strings"

	"dws-console/internal/console"
	"dws-console/internal/model"
	"dws-console/internal/nav"
	"dws-console/internal/store"

	"github.com/charmbracelet/lipgloss"
)

func tableLabel(s nav.Screen) string {
	switch s {
	case nav.ScreenDashboard, nav.ScreenProjectList, nav.ScreenTeamOwnerProjects:
		return "Projects"
	case nav.ScreenSalesDashboard, nav.ScreenDealList:
		return "Deals"
	case nav.ScreenTeamOwnerDashboard, nav.ScreenProjectDetail, nav.ScreenTaskList, nav.ScreenTeamTasks:
		return "Tasks"
	case nav.ScreenTeamMemberDashboard, nav.ScreenTeamMemberTasks:
		return "My tasks"
	case nav.ScreenTaskDetail, nav.ScreenTaskReview, nav.ScreenTeamLeadTaskDetail, nav.ScreenTeamMemberTaskDetail:
		return "Subtasks"
	case nav.ScreenDealDetail, nav.ScreenDealHandoff, nav.ScreenProjectSetup:
		return "Services"
	case nav.ScreenCompanies:
		return "Companies"
	case nav.ScreenAgencyList:
		return "Agencies"
	case nav.ScreenCalendar:
		return "Upcoming"
	case nav.ScreenTeamMemberTimesheet:
		return "Hours by task"
	}
	return ""
}

type field struct{ label, value string }

func fields(fs ...field) string {
	lines := make([]string, 0, len(fs))
	for _, f := range fs {
		lines = append(lines, styleLabel().Render(f.label)+dash(f.value))
	}
	return strings.Join(lines, "\n")
}

func stat(label, value string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Padding(0, 1).
		Width(18).
		Render(styleMuted().Render(label) + "\n" + lipgloss.NewStyle().Bold(true).Render(value))
}

func stats(cards ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m appModel) progressLine(label string, percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return styleLabel().Render(label) + m.bar.ViewAs(float64(percent)/100) + " " + pct(percent)
}

func (m appModel) viewInfo(f console.Frame, w int) string {
	p := f.Props
	switch f.Screen {
	case nav.ScreenDashboard:
		st := store.State{Projects: p.Projects, Deals: p.Deals, Tasks: p.Tasks, Orgs: p.Orgs}.Stats()
		return strings.Join([]string{
			stats(
				stat("Projects", fmt.Sprintf("%d (%d active)", st.Projects, st.ActiveProjects)),
				stat("At risk", fmt.Sprint(st.AtRisk+st.Delayed)),
				stat("Open deals", fmt.Sprint(st.OpenDeals)),
				stat("In review", fmt.Sprint(st.TasksInReview)),
			),
			m.progressLine("Avg progress", st.AvgProgress),
		}, "\n")

	case nav.ScreenSalesDashboard:
		deals := myDeals(f, p.Deals)
		st := store.State{Deals: deals, Orgs: p.Orgs}.Stats()
		return stats(
			stat("My deals", fmt.Sprint(st.Deals)),
			stat("Open", fmt.Sprint(st.OpenDeals)),
			stat("Converted", fmt.Sprint(st.ConvertedDeals)),
			stat("Pipeline", money(st.PipelineBudget)),
			stat("Companies", fmt.Sprint(st.Companies)),
		)

	case nav.ScreenTeamOwnerDashboard:
		ps := teamProjects(f, p.Projects)
		st := store.State{Projects: ps, Tasks: tasksOfProjects(p.Tasks, ps)}.Stats()
		return strings.Join([]string{
			stats(
				stat("Team projects", fmt.Sprint(st.Projects)),
				stat("Active", fmt.Sprint(st.ActiveProjects)),
				stat("At risk", fmt.Sprint(st.AtRisk)),
				stat("Tasks", fmt.Sprint(st.Tasks)),
			),
			m.progressLine("Avg progress", st.AvgProgress),
		}, "\n")

	case nav.ScreenProjectDetail:
		pr := p.Project
		if pr == nil {
			return ""
		}
		deal := ""
		if pr.DealID != nil {
			deal = *pr.DealID
		}
		return strings.Join([]string{
			fields(
				field{"Company", pr.Company},
				field{"Service", pr.ServiceType},
				field{"Owner", pr.Owner},
				field{"Team owner", pr.TeamOwner},
				field{"Status", string(pr.Status)},
				field{"Health", string(pr.Health)},
				field{"Dates", pr.StartDate + " → " + pr.EndDate},
				field{"Budget", money(pr.Budget)},
				field{"From deal", deal},
			),
			m.progressLine("Progress", pr.Progress),
		}, "\n")

	case nav.ScreenTaskDetail, nav.ScreenTaskReview, nav.ScreenTeamLeadTaskDetail, nav.ScreenTeamMemberTaskDetail:
		return m.viewTask(f, w)

	case nav.ScreenSubtaskDetail:
		s := p.Subtask
		if s == nil {
			return ""
		}
		parent := ""
		if p.Task != nil {
			parent = p.Task.Name
		}
		return fields(
			field{"Subtask", s.Name},
			field{"Task", parent},
			field{"Assignee", s.Assignee},
			field{"Status", s.Status},
			field{"Due", s.DueDate},
		)

	case nav.ScreenDealDetail, nav.ScreenDealHandoff, nav.ScreenProjectSetup:
		return m.viewDeal(f, w)

	case nav.ScreenTeamTasks:
		open := 0
		for _, s := range p.TeamLeadSubtasks {
			if !strings.EqualFold(s.Status, "Done") {
				open++
			}
		}
		return stats(
			stat("Tasks", fmt.Sprint(len(p.Tasks))),
			stat("Lead subtasks", fmt.Sprint(len(p.TeamLeadSubtasks))),
			stat("Open", fmt.Sprint(open)),
		)

	case nav.ScreenReports:
		return m.viewReports(f)

	case nav.ScreenSettings:
		u := f.User
		return fields(
			field{"Name", u.Name},
			field{"Username", u.Username},
			field{"Role", u.Role.Label()},
			field{"Landing screen", nav.TitleForScreen(nav.DefaultScreenForRole(u.Role), nav.Selection{}, u.Role)},
		)

	case nav.ScreenTeamMemberDashboard:
		mine := myTasks(f, p.Tasks)
		done, review := 0, 0
		hours := 0.0
		for _, t := range mine {
			switch t.Status {
			case "Completed":
				done++
			case model.TaskStatusSubmittedForReview:
				review++
			}
			hours += t.LoggedHours()
		}
		return stats(
			stat("Assigned", fmt.Sprint(len(mine))),
			stat("In review", fmt.Sprint(review)),
			stat("Completed", fmt.Sprint(done)),
			stat("Logged", fmt.Sprintf("%.1fh", hours)),
		)

	case nav.ScreenTeamMemberTimesheet:
		total := 0.0
		for _, t := range myTasks(f, p.Tasks) {
			total += t.LoggedHours()
		}
		return fields(field{"Total logged", fmt.Sprintf("%.1fh", total)})
	}
	return ""
}

func (m appModel) viewTask(f console.Frame, w int) string {
	t := f.Props.Task
	if t == nil {
		return ""
	}
	blocks := []string{fields(
		field{"Task", t.Name},
		field{"Project", t.Project},
		field{"Assignee", t.Assignee},
		field{"Due", t.DueDate},
		field{"Priority", t.Priority},
		field{"Status", t.Status},
		field{"Approval", string(t.ApprovalStatus)},
		field{"Execution", string(t.ExecutionStatus)},
		field{"Timer", string(t.TimerStatus)},
		field{"Review", string(t.ReviewStatus)},
		field{"Quality", string(t.QualityFlag)},
	)}
	if md := renderMarkdown(t.Description, w); md != "" {
		blocks = append(blocks, md)
	}

	if len(t.Checklist) > 0 {
		lines := []string{lipgloss.NewStyle().Bold(true).Render("Checklist")}
		for _, c := range t.Checklist {
			box := "[ ]"
			if c.Done {
				box = styleOK().Render("[x]")
			}
			lines = append(lines, box+" "+c.Label)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	if len(t.TimeLogs) > 0 {
		lines := []string{lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Time logged (%.1fh)", t.LoggedHours()))}
		for _, l := range t.TimeLogs {
			lines = append(lines, fmt.Sprintf("%s  %4.1fh  %s", l.Date, l.Hours, l.Note))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	if f.Screen == nav.ScreenTeamLeadTaskDetail {
		subs := store.State{TeamLeadSubtasks: f.Props.TeamLeadSubtasks}.TeamLeadSubtasksForTask(t.ID)
		if len(subs) > 0 {
			lines := []string{lipgloss.NewStyle().Bold(true).Render("Team lead subtasks")}
			for _, s := range subs {
				lines = append(lines, fmt.Sprintf("%-32s %-12s %4.1f/%4.1fh  %s", s.Name, s.Status, s.LoggedHours, s.EstimateHours, s.Assignee))
			}
			blocks = append(blocks, strings.Join(lines, "\n"))
		}
	}
	return strings.Join(blocks, "\n\n")
}

func (m appModel) viewDeal(f console.Frame, w int) string {
	d := f.Props.Deal
	if d == nil {
		return ""
	}
	ready := 0
	for _, s := range d.Services {
		if s.Convertible() {
			ready++
		}
	}
	switch f.Screen {
	case nav.ScreenDealHandoff:
		return strings.Join([]string{
			fields(
				field{"Deal", d.DealName},
				field{"Company", d.Company},
				field{"Status", string(d.Status)},
				field{"Budget", money(d.Budget)},
				field{"Ready services", fmt.Sprintf("%d of %d", ready, len(d.Services))},
			),
			styleMuted().Render("Submit the deal to a project manager, then set up its projects."),
		}, "\n\n")
	case nav.ScreenProjectSetup:
		return strings.Join([]string{
			fields(
				field{"Company", d.Company},
				field{"Status", string(d.Status)},
				field{"Ready services", fmt.Sprintf("%d of %d", ready, len(d.Services))},
			),
			styleMuted().Render("Mark services ready, then convert them into projects."),
		}, "\n\n")
	}

	blocks := []string{fields(
		field{"Company", d.Company},
		field{"Contact", d.ClientDetails.ContactName},
		field{"Email", d.ClientDetails.Email},
		field{"Phone", d.ClientDetails.Phone},
		field{"Status", string(d.Status)},
		field{"Budget", money(d.Budget)},
		field{"Risk", d.RiskLevel},
		field{"Owner", d.Owner},
		field{"Created", d.CreatedAt},
	)}
	if md := renderMarkdown(d.Notes, w); md != "" {
		blocks = append(blocks, md)
	}
	return strings.Join(blocks, "\n\n")
}

func (m appModel) viewReports(f console.Frame) string {
	p := f.Props
	st := store.State{Projects: p.Projects, Deals: p.Deals, Tasks: p.Tasks}.Stats()

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render("Projects by health"))
	for _, h := range sortedKeys(st.ByProjectHealth) {
		lines = append(lines, m.progressLine(string(h), share(st.ByProjectHealth[h], st.Projects)))
	}
	lines = append(lines, "", lipgloss.NewStyle().Bold(true).Render("Deals by status"))
	for _, s := range sortedKeys(st.ByDealStatus) {
		lines = append(lines, m.progressLine(string(s), share(st.ByDealStatus[s], st.Deals)))
	}
	lines = append(lines, "", fields(
		field{"Pipeline", money(st.PipelineBudget)},
		field{"Completed", fmt.Sprintf("%d of %d projects", st.CompletedProjects, st.Projects)},
		field{"In review", fmt.Sprintf("%d of %d tasks", st.TasksInReview, st.Tasks)},
	))
	return strings.Join(lines, "\n")
}

func share(n, total int) int {
	if total == 0 {
		return 0
	}
	return n * 100 / total
}

func sortedKeys[K ~string](m map[K]int) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
