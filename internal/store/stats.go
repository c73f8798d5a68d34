package store

import "dws-console/internal/model"

// Stats are the dashboard counters derived from a State.
type Stats struct {
	Projects          int
	ActiveProjects    int
	OnHoldProjects    int
	CompletedProjects int
	AtRisk            int
	Delayed           int
	AvgProgress       int
	Deals             int
	OpenDeals         int
	ConvertedDeals    int
	PipelineBudget    float64
	Tasks             int
	TasksInReview     int
	Companies         int
	Agencies          int
	ByDealStatus      map[model.DealStatus]int
	ByProjectHealth   map[model.ProjectHealth]int
}

func (s State) Stats() Stats {
	st := Stats{
		Projects:        len(s.Projects),
		Deals:           len(s.Deals),
		Tasks:           len(s.Tasks),
		ByDealStatus:    map[model.DealStatus]int{},
		ByProjectHealth: map[model.ProjectHealth]int{},
	}
	progress := 0
	for _, p := range s.Projects {
		switch p.Status {
		case model.ProjectActive:
			st.ActiveProjects++
		case model.ProjectOnHold:
			st.OnHoldProjects++
		case model.ProjectCompleted:
			st.CompletedProjects++
		}
		switch p.Health {
		case model.HealthAtRisk:
			st.AtRisk++
		case model.HealthDelayed:
			st.Delayed++
		}
		st.ByProjectHealth[p.Health]++
		progress += p.Progress
	}
	if len(s.Projects) > 0 {
		st.AvgProgress = progress / len(s.Projects)
	}
	for _, d := range s.Deals {
		st.ByDealStatus[d.Status]++
		if d.Status == model.DealConverted {
			st.ConvertedDeals++
			continue
		}
		st.OpenDeals++
		st.PipelineBudget += d.Budget
	}
	for _, t := range s.Tasks {
		if t.Status == model.TaskStatusSubmittedForReview {
			st.TasksInReview++
		}
	}
	st.Companies = len(s.Companies())
	st.Agencies = len(s.Agencies())
	return st
}
