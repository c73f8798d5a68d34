package mutate

import (
	"strconv"
	"strings"
	"time"

	"dws-console/internal/model"
	"dws-console/internal/store"
)

const dateLayout = "2006-01-02"

// DealInput is what the create-deal form collects. Required-field validation is the form's job.
type DealInput struct {
	DealName    string
	Company     string
	ContactName string
	Email       string
	Budget      string
	RiskLevel   string
	Services    []string
	Notes       string
}

func NewDeal(in DealInput, owner string, now time.Time) model.Deal {
	budget := parseAmount(in.Budget)
	d := model.Deal{
		ID:       store.NewID("deal"),
		DealName: strings.TrimSpace(in.DealName),
		Company:  strings.TrimSpace(in.Company),
		ClientDetails: model.ClientDetails{
			ContactName: strings.TrimSpace(in.ContactName),
			Email:       strings.TrimSpace(in.Email),
		},
		Status:    model.DealNew,
		Budget:    budget,
		RiskLevel: defaultString(in.RiskLevel, "Medium"),
		Owner:     strings.TrimSpace(owner),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: now.Format(dateLayout),
		Services:  []model.ServiceInDeal{},
	}
	var names []string
	for _, s := range in.Services {
		if s = strings.TrimSpace(s); s != "" {
			names = append(names, s)
		}
	}
	for _, name := range names {
		d.Services = append(d.Services, model.ServiceInDeal{
			ID:          store.NewID("svc"),
			ServiceType: name,
			Budget:      budget / float64(len(names)),
			Status:      model.ServiceNotConverted,
		})
	}
	return d
}

type TaskInput struct {
	Name      string
	ProjectID string
	Assignee  string
	DueDate   string
	Priority  string
}

// NewTask builds a task; the project name is resolved from st when the id is known.
func NewTask(st store.State, in TaskInput) model.Task {
	t := model.Task{
		ID:              store.NewID("task"),
		Name:            strings.TrimSpace(in.Name),
		ProjectID:       strings.TrimSpace(in.ProjectID),
		Assignee:        strings.TrimSpace(in.Assignee),
		DueDate:         strings.TrimSpace(in.DueDate),
		Priority:        defaultString(in.Priority, "Medium"),
		Status:          "To Do",
		ApprovalStatus:  model.ApprovalPending,
		ExecutionStatus: model.ExecutionNotStarted,
		TimerStatus:     model.TimerStopped,
		ReviewStatus:    model.ReviewNone,
		QualityFlag:     model.QualityNone,
	}
	if p, ok := st.FindProject(t.ProjectID); ok {
		t.Project = p.Name
	}
	return t
}

func NewSubtask(taskID, name, assignee string) model.Subtask {
	return model.Subtask{
		ID:       store.NewID("sub"),
		TaskID:   strings.TrimSpace(taskID),
		Name:     strings.TrimSpace(name),
		Assignee: strings.TrimSpace(assignee),
		Status:   "To Do",
	}
}

type OrgInput struct {
	Name     string
	Industry string
	Contact  string
	Email    string
	City     string
	// CompanyIDs is only used for agencies.
	CompanyIDs []string
}

func NewCompany(in OrgInput) model.OrgRecord {
	return newOrg(model.OrgCompany, "org", in)
}

func NewAgency(in OrgInput) model.OrgRecord {
	return newOrg(model.OrgAgency, "agency", in)
}

func newOrg(kind model.OrgKind, prefix string, in OrgInput) model.OrgRecord {
	o := model.OrgRecord{
		ID:       store.NewID(prefix),
		Kind:     kind,
		Name:     strings.TrimSpace(in.Name),
		Industry: strings.TrimSpace(in.Industry),
		Contact:  strings.TrimSpace(in.Contact),
		Email:    strings.TrimSpace(in.Email),
		City:     strings.TrimSpace(in.City),
	}
	if kind == model.OrgAgency {
		for _, id := range in.CompanyIDs {
			if id = strings.TrimSpace(id); id != "" {
				o.CompanyIDs = append(o.CompanyIDs, id)
			}
		}
	}
	return o
}

func parseAmount(s string) float64 {
	s = strings.TrimSpace(strings.NewReplacer(",", "", "$", "").Replace(s))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

func defaultString(s, d string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return d
}
