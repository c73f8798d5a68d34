package mutate

import (
	"errors"
	"strings"
	"testing"
	"time"

	"dws-console/internal/model"
	"dws-console/internal/nav"
	"dws-console/internal/store"
)

func baseState() store.State {
	dealID := "d1"
	return store.State{
		Projects: []model.Project{{ID: "p1", Name: "Portal", Status: model.ProjectActive, DealID: &dealID}},
		Deals: []model.Deal{
			{ID: "d1", DealName: "Portal Build", Company: "Globex", Status: model.DealSubmittedToPM, Services: []model.ServiceInDeal{
				{ID: "s1", ServiceType: "SEO", Budget: 100, Status: model.ServiceReady, Configuration: &model.ProjectConfiguration{ProjectName: "Globex SEO", Owner: "Priya"}},
				{ID: "s2", ServiceType: "Content", Budget: 50, Status: model.ServiceNotConverted},
			}},
			{ID: "d2", DealName: "Rebrand", Status: model.DealDraft},
		},
		Tasks: []model.Task{{ID: "t1", Name: "API Contract"}},
	}
}

func TestAddDealPrependsAndNavigates(t *testing.T) {
	st := baseState()
	res := AddDeal(st, model.Deal{ID: "d9", DealName: "New"})
	if !res.Changed || !res.Navigates || res.Navigate != nav.ScreenDealList {
		t.Fatalf("unexpected result %+v", res)
	}
	if got := res.State.Deals[0].ID; got != "d9" {
		t.Fatalf("first deal = %s", got)
	}
	if len(st.Deals) != 2 || st.Deals[0].ID != "d1" {
		t.Fatalf("input state was modified")
	}
}

func TestUpdateDeal(t *testing.T) {
	st := baseState()
	d := st.Deals[1]
	d.Notes = "call back"

	res := UpdateDeal(st, d)
	if !res.Changed || res.Navigates {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.State.Deals[1].Notes != "call back" || res.State.Deals[0].ID != "d1" {
		t.Fatalf("update did not replace in place: %+v", res.State.Deals)
	}
	if st.Deals[1].Notes != "" {
		t.Fatalf("input state was modified")
	}

	again := UpdateDeal(res.State, d)
	if len(again.State.Deals) != len(res.State.Deals) || again.State.Deals[1].Notes != "call back" {
		t.Fatalf("second update changed the result")
	}

	missing := UpdateDeal(st, model.Deal{ID: "zzz"})
	if missing.Changed || len(missing.State.Deals) != 2 {
		t.Fatalf("unknown id must be a no-op: %+v", missing)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	st := baseState()
	ps, err := ProjectsFromDeal(st.Deals[0])
	if err != nil {
		t.Fatalf("ProjectsFromDeal: %v", err)
	}
	if len(ps) != 1 || ps[0].Name != "Globex SEO" || ps[0].Budget != 100 {
		t.Fatalf("projects = %+v", ps)
	}
	if ps[0].DealID == nil || *ps[0].DealID != "d1" {
		t.Fatalf("project lost its deal id")
	}

	res := ConvertDealToProjects(st, ps)
	if !res.Navigates || res.Navigate != nav.ScreenProjectList {
		t.Fatalf("expected navigation to project list, got %+v", res)
	}
	if res.State.Projects[0].ID != ps[0].ID || len(res.State.Projects) != 2 {
		t.Fatalf("projects = %+v", res.State.Projects)
	}
	d, _ := res.State.FindDeal("d1")
	if d.Status != model.DealConverted {
		t.Fatalf("deal status = %s", d.Status)
	}
	if st.Deals[0].Status != model.DealSubmittedToPM {
		t.Fatalf("input deal was modified")
	}

	if _, err := ProjectsFromDeal(*d); !errors.Is(err, ErrAlreadyConverted) {
		t.Fatalf("converting again: got %v", err)
	}
}

func TestConvertEmptyBatchIsNoop(t *testing.T) {
	st := baseState()
	res := ConvertDealToProjects(st, nil)
	if res.Changed || res.Navigates {
		t.Fatalf("empty batch changed something: %+v", res)
	}
	if len(res.State.Projects) != 1 {
		t.Fatalf("projects changed")
	}
}

func TestConvertBatchWithoutDealID(t *testing.T) {
	st := baseState()
	res := ConvertDealToProjects(st, []model.Project{{ID: "p9", Name: "Orphan"}})
	if !res.Changed || res.State.Projects[0].ID != "p9" {
		t.Fatalf("unexpected result %+v", res)
	}
	for _, d := range res.State.Deals {
		if d.Status == model.DealConverted {
			t.Fatalf("deal %s converted without a deal id", d.ID)
		}
	}
}

func TestProjectsFromDealNothingReady(t *testing.T) {
	_, err := ProjectsFromDeal(baseState().Deals[1])
	if !errors.Is(err, ErrNothingToConvert) {
		t.Fatalf("got %v", err)
	}
}

func TestPrepareService(t *testing.T) {
	st := baseState()
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	d, err := PrepareService(st.Deals[0], "s2", "Priya", now)
	if err != nil {
		t.Fatalf("PrepareService: %v", err)
	}
	svc := d.Services[1]
	if svc.Status != model.ServiceReady || svc.Configuration == nil {
		t.Fatalf("service = %+v", svc)
	}
	if svc.Configuration.StartDate != "2025-05-01" || svc.Configuration.EndDate != "2025-08-01" {
		t.Fatalf("dates = %s..%s", svc.Configuration.StartDate, svc.Configuration.EndDate)
	}
	if st.Deals[0].Services[1].Status != model.ServiceNotConverted {
		t.Fatalf("input deal was modified")
	}

	var nf NotFoundError
	if _, err := PrepareService(st.Deals[0], "nope", "", now); !errors.As(err, &nf) || nf.Kind != "service" {
		t.Fatalf("got %v", err)
	}
}

func TestAddTaskAndSubtask(t *testing.T) {
	st := baseState()
	res := AddTask(st, model.Task{ID: "t9"})
	if res.State.Tasks[0].ID != "t9" || res.Navigate != nav.ScreenTaskList || !res.Navigates {
		t.Fatalf("unexpected result %+v", res)
	}
	sub := AddSubtask(res.State, model.Subtask{ID: "s9", TaskID: "t9"})
	if sub.Navigates {
		t.Fatalf("AddSubtask must not navigate")
	}
	if got := sub.State.SubtasksForTask("t9"); len(got) != 1 {
		t.Fatalf("subtasks = %+v", got)
	}
}

func TestAddOrgsForceKind(t *testing.T) {
	st := baseState()
	res := AddCompany(st, model.OrgRecord{ID: "o1", Kind: model.OrgAgency})
	if res.State.Orgs[0].Kind != model.OrgCompany || res.Navigate != nav.ScreenCompanies {
		t.Fatalf("unexpected result %+v", res)
	}
	res = AddAgency(res.State, model.OrgRecord{ID: "a1"})
	if res.State.Orgs[0].Kind != model.OrgAgency || res.Navigate != nav.ScreenAgencyList {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(res.State.Companies()) != 1 || len(res.State.Agencies()) != 1 {
		t.Fatalf("orgs = %+v", res.State.Orgs)
	}
}

func TestReducersAcceptZeroValues(t *testing.T) {
	var st store.State
	_ = AddDeal(st, model.Deal{})
	_ = UpdateDeal(st, model.Deal{})
	_ = ConvertDealToProjects(st, []model.Project{{}})
	_ = AddTask(st, model.Task{})
	_ = AddSubtask(st, model.Subtask{})
	_ = AddCompany(st, model.OrgRecord{})
	_ = AddAgency(st, model.OrgRecord{})
	_ = SetProjectStatus(st, "", model.ProjectActive)
}

func TestSetProjectStatus(t *testing.T) {
	st := baseState()
	res := SetProjectStatus(st, "p1", NextProjectStatus(model.ProjectActive))
	if !res.Changed || res.State.Projects[0].Status != model.ProjectOnHold {
		t.Fatalf("unexpected result %+v", res)
	}
	if st.Projects[0].Status != model.ProjectActive {
		t.Fatalf("input state was modified")
	}
	if same := SetProjectStatus(res.State, "p1", model.ProjectOnHold); same.Changed {
		t.Fatalf("unchanged status reported a change")
	}
	if NextProjectStatus(model.ProjectCompleted) != model.ProjectActive {
		t.Fatalf("cycle does not wrap")
	}
}

func TestNewDeal(t *testing.T) {
	d := NewDeal(DealInput{
		DealName: " Wayne Site ",
		Company:  "Wayne",
		Budget:   "$12,000",
		Services: []string{"Web", " ", "SEO"},
	}, "Sameer", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))

	if d.DealName != "Wayne Site" || d.Status != model.DealNew || d.RiskLevel != "Medium" {
		t.Fatalf("deal = %+v", d)
	}
	if d.Budget != 12000 || len(d.Services) != 2 || d.Services[0].Budget != 6000 {
		t.Fatalf("budget split = %+v", d.Services)
	}
	if !strings.HasPrefix(d.ID, "deal-") || d.CreatedAt != "2025-01-02" {
		t.Fatalf("id/createdAt = %s %s", d.ID, d.CreatedAt)
	}
}

func TestNewTaskResolvesProject(t *testing.T) {
	st := baseState()
	task := NewTask(st, TaskInput{Name: "QA", ProjectID: "p1"})
	if task.Project != "Portal" || task.Status != "To Do" || task.Priority != "Medium" {
		t.Fatalf("task = %+v", task)
	}
}

func TestNewAgencyKeepsCompanies(t *testing.T) {
	a := NewAgency(OrgInput{Name: "Northwind", CompanyIDs: []string{"o1", "", "o2"}})
	if a.Kind != model.OrgAgency || len(a.CompanyIDs) != 2 {
		t.Fatalf("agency = %+v", a)
	}
	c := NewCompany(OrgInput{Name: "Acme", CompanyIDs: []string{"o1"}})
	if c.Kind != model.OrgCompany || len(c.CompanyIDs) != 0 {
		t.Fatalf("company = %+v", c)
	}
}
