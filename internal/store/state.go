package store

import (
	"strings"

	"dws-console/internal/model"
)

// State is the in-memory domain entity store. Collections are ordered most-recent-first.
//
// State is a value: reducers in package mutate return a new State and never write
// through the slices of the one they were given.
type State struct {
	Projects         []model.Project         `json:"projects" yaml:"projects"`
	Deals            []model.Deal            `json:"deals" yaml:"deals"`
	Tasks            []model.Task            `json:"tasks" yaml:"tasks"`
	Subtasks         []model.Subtask         `json:"subtasks" yaml:"subtasks"`
	TeamLeadSubtasks []model.TeamLeadSubtask `json:"teamLeadSubtasks" yaml:"teamLeadSubtasks"`
	Orgs             []model.OrgRecord       `json:"companiesAndAgencies" yaml:"companiesAndAgencies"`
}

// Clone returns a State whose slices do not alias s.
func (s State) Clone() State {
	return State{
		Projects:         append([]model.Project(nil), s.Projects...),
		Deals:            append([]model.Deal(nil), s.Deals...),
		Tasks:            append([]model.Task(nil), s.Tasks...),
		Subtasks:         append([]model.Subtask(nil), s.Subtasks...),
		TeamLeadSubtasks: append([]model.TeamLeadSubtask(nil), s.TeamLeadSubtasks...),
		Orgs:             append([]model.OrgRecord(nil), s.Orgs...),
	}
}

func (s State) FindProject(id string) (*model.Project, bool) {
	id = strings.TrimSpace(id)
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			return &s.Projects[i], true
		}
	}
	return nil, false
}

func (s State) FindDeal(id string) (*model.Deal, bool) {
	id = strings.TrimSpace(id)
	for i := range s.Deals {
		if s.Deals[i].ID == id {
			return &s.Deals[i], true
		}
	}
	return nil, false
}

func (s State) FindTask(id string) (*model.Task, bool) {
	id = strings.TrimSpace(id)
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i], true
		}
	}
	return nil, false
}

func (s State) FindSubtask(id string) (*model.Subtask, bool) {
	id = strings.TrimSpace(id)
	for i := range s.Subtasks {
		if s.Subtasks[i].ID == id {
			return &s.Subtasks[i], true
		}
	}
	return nil, false
}

func (s State) SubtasksForTask(taskID string) []model.Subtask {
	var out []model.Subtask
	for _, st := range s.Subtasks {
		if st.TaskID == taskID {
			out = append(out, st)
		}
	}
	return out
}

func (s State) TeamLeadSubtasksForTask(taskID string) []model.TeamLeadSubtask {
	var out []model.TeamLeadSubtask
	for _, st := range s.TeamLeadSubtasks {
		if st.TaskID == taskID {
			out = append(out, st)
		}
	}
	return out
}

func (s State) TasksForAssignee(assignee string) []model.Task {
	assignee = strings.ToLower(strings.TrimSpace(assignee))
	var out []model.Task
	for _, t := range s.Tasks {
		if strings.ToLower(strings.TrimSpace(t.Assignee)) == assignee {
			out = append(out, t)
		}
	}
	return out
}

func (s State) TasksForProject(projectID string) []model.Task {
	var out []model.Task
	for _, t := range s.Tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

func (s State) ProjectsForTeamOwner(owner string) []model.Project {
	owner = strings.ToLower(strings.TrimSpace(owner))
	var out []model.Project
	for _, p := range s.Projects {
		if owner == "" || strings.ToLower(strings.TrimSpace(p.TeamOwner)) == owner {
			out = append(out, p)
		}
	}
	return out
}

func (s State) Companies() []model.OrgRecord { return s.orgsOfKind(model.OrgCompany) }

func (s State) Agencies() []model.OrgRecord { return s.orgsOfKind(model.OrgAgency) }

func (s State) orgsOfKind(k model.OrgKind) []model.OrgRecord {
	var out []model.OrgRecord
	for _, o := range s.Orgs {
		if o.Kind == k {
			out = append(out, o)
		}
	}
	return out
}

// CompaniesOfAgency resolves an agency's denormalized company ids; unknown ids are skipped.
func (s State) CompaniesOfAgency(agency model.OrgRecord) []model.OrgRecord {
	var out []model.OrgRecord
	for _, id := range agency.CompanyIDs {
		for _, o := range s.Orgs {
			if o.ID == id && o.Kind == model.OrgCompany {
				out = append(out, o)
				break
			}
		}
	}
	return out
}
