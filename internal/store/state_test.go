package store

import (
	"testing"

	"dws-console/internal/model"
)

func sampleState() State {
	return State{
		Projects: []model.Project{
			{ID: "p1", Status: model.ProjectActive, Health: model.HealthOnTrack, Progress: 50, TeamOwner: "Omar Farooq"},
			{ID: "p2", Status: model.ProjectOnHold, Health: model.HealthAtRisk, Progress: 10, TeamOwner: "Nadia Khan"},
			{ID: "p3", Status: model.ProjectCompleted, Health: model.HealthDelayed, Progress: 100, TeamOwner: "omar farooq"},
		},
		Deals: []model.Deal{
			{ID: "d1", Status: model.DealConverted, Budget: 1000},
			{ID: "d2", Status: model.DealDraft, Budget: 200},
			{ID: "d3", Status: model.DealNew, Budget: 300},
		},
		Tasks: []model.Task{
			{ID: "t1", ProjectID: "p1", Assignee: "Ravi Kumar", Status: model.TaskStatusSubmittedForReview},
			{ID: "t2", ProjectID: "p1", Assignee: "Anita Roy", Status: "To Do"},
		},
		Subtasks: []model.Subtask{{ID: "s1", TaskID: "t1"}, {ID: "s2", TaskID: "t2"}},
		Orgs: []model.OrgRecord{
			{ID: "o1", Kind: model.OrgCompany},
			{ID: "o2", Kind: model.OrgCompany},
			{ID: "a1", Kind: model.OrgAgency, CompanyIDs: []string{"o2", "missing"}},
		},
	}
}

func TestStats(t *testing.T) {
	st := sampleState().Stats()
	if st.Projects != 3 || st.ActiveProjects != 1 || st.OnHoldProjects != 1 || st.CompletedProjects != 1 {
		t.Fatalf("project counts = %+v", st)
	}
	if st.AtRisk != 1 || st.Delayed != 1 || st.AvgProgress != 53 {
		t.Fatalf("health/progress = %+v", st)
	}
	if st.OpenDeals != 2 || st.ConvertedDeals != 1 || st.PipelineBudget != 500 {
		t.Fatalf("deal counts = %+v", st)
	}
	if st.TasksInReview != 1 || st.Companies != 2 || st.Agencies != 1 {
		t.Fatalf("other counts = %+v", st)
	}
	if st.ByDealStatus[model.DealDraft] != 1 {
		t.Fatalf("by status = %v", st.ByDealStatus)
	}
}

func TestStatsEmptyState(t *testing.T) {
	st := State{}.Stats()
	if st.Projects != 0 || st.AvgProgress != 0 || st.ByDealStatus == nil {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	s := sampleState()
	c := s.Clone()
	c.Projects[0].Progress = 99
	if s.Projects[0].Progress != 50 {
		t.Fatalf("clone aliases the original")
	}
}

func TestQueries(t *testing.T) {
	s := sampleState()
	if p, ok := s.FindProject(" p2 "); !ok || p.ID != "p2" {
		t.Fatalf("FindProject = %v, %v", p, ok)
	}
	if _, ok := s.FindDeal("nope"); ok {
		t.Fatalf("expected missing deal")
	}
	if got := s.SubtasksForTask("t1"); len(got) != 1 || got[0].ID != "s1" {
		t.Fatalf("SubtasksForTask = %+v", got)
	}
	if got := s.TasksForAssignee("ravi kumar"); len(got) != 1 {
		t.Fatalf("TasksForAssignee = %+v", got)
	}
	if got := s.TasksForProject("p1"); len(got) != 2 {
		t.Fatalf("TasksForProject = %+v", got)
	}
	if got := s.ProjectsForTeamOwner("Omar Farooq"); len(got) != 2 {
		t.Fatalf("ProjectsForTeamOwner = %+v", got)
	}
	agency := s.Agencies()[0]
	if got := s.CompaniesOfAgency(agency); len(got) != 1 || got[0].ID != "o2" {
		t.Fatalf("CompaniesOfAgency = %+v", got)
	}
}
