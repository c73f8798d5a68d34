package cli

import (
	"fmt"
	"strings"
	"time"

	"dws-console/internal/model"
)

// Table forms of the fixture collections for --format table.

type projectList []model.Project

func (l projectList) TableHeader() []string {
	return []string{"ID", "NAME", "COMPANY", "STATUS", "HEALTH", "PROGRESS", "TEAM OWNER", "END"}
}

func (l projectList) TableRows() [][]any {
	out := make([][]any, 0, len(l))
	for _, p := range l {
		out = append(out, []any{p.ID, p.Name, p.Company, p.Status, p.Health, fmt.Sprintf("%d%%", p.Progress), p.TeamOwner, p.EndDate})
	}
	return out
}

type dealList []model.Deal

func (l dealList) TableHeader() []string {
	return []string{"ID", "DEAL", "COMPANY", "STATUS", "BUDGET", "SERVICES", "OWNER"}
}

func (l dealList) TableRows() [][]any {
	out := make([][]any, 0, len(l))
	for _, d := range l {
		out = append(out, []any{d.ID, d.DealName, d.Company, d.Status, fmt.Sprintf("%.0f", d.Budget), len(d.Services), d.Owner})
	}
	return out
}

type taskList []model.Task

func (l taskList) TableHeader() []string {
	return []string{"ID", "TASK", "PROJECT", "ASSIGNEE", "STATUS", "PRIORITY", "DUE"}
}

func (l taskList) TableRows() [][]any {
	out := make([][]any, 0, len(l))
	for _, t := range l {
		out = append(out, []any{t.ID, t.Name, t.Project, t.Assignee, t.Status, t.Priority, t.DueDate})
	}
	return out
}

type subtaskList []model.Subtask

func (l subtaskList) TableHeader() []string {
	return []string{"ID", "TASK", "SUBTASK", "ASSIGNEE", "STATUS", "DUE"}
}

func (l subtaskList) TableRows() [][]any {
	out := make([][]any, 0, len(l))
	for _, s := range l {
		out = append(out, []any{s.ID, s.TaskID, s.Name, s.Assignee, s.Status, s.DueDate})
	}
	return out
}

type teamLeadSubtaskList []model.TeamLeadSubtask

func (l teamLeadSubtaskList) TableHeader() []string {
	return []string{"ID", "TASK", "SUBTASK", "ASSIGNEE", "STATUS", "HOURS"}
}

func (l teamLeadSubtaskList) TableRows() [][]any {
	out := make([][]any, 0, len(l))
	for _, s := range l {
		out = append(out, []any{s.ID, s.TaskID, s.Name, s.Assignee, s.Status, fmt.Sprintf("%.1f/%.1f", s.LoggedHours, s.EstimateHours)})
	}
	return out
}

type orgList []model.OrgRecord

func (l orgList) TableHeader() []string {
	return []string{"ID", "KIND", "NAME", "INDUSTRY", "CONTACT", "CITY", "COMPANIES"}
}

func (l orgList) TableRows() [][]any {
	out := make([][]any, 0, len(l))
	for _, o := range l {
		out = append(out, []any{o.ID, o.Kind, o.Name, o.Industry, o.Contact, o.City, strings.Join(o.CompanyIDs, ",")})
	}
	return out
}

type userList []model.User

func (l userList) TableHeader() []string { return []string{"USERNAME", "NAME", "ROLE"} }

func (l userList) TableRows() [][]any {
	out := make([][]any, 0, len(l))
	for _, u := range l {
		out = append(out, []any{u.Username, u.Name, u.Role.Label()})
	}
	return out
}

type eventList []model.Event

func (l eventList) TableHeader() []string {
	return []string{"TIME", "ACTOR", "TYPE", "ENTITY"}
}

func (l eventList) TableRows() [][]any {
	out := make([][]any, 0, len(l))
	for _, e := range l {
		out = append(out, []any{e.TS.Format(time.RFC3339), e.Actor, e.Type, e.EntityID})
	}
	return out
}
