package mutate

import (
	"time"

	"dws-console/internal/model"
	"dws-console/internal/store"
)

// ProjectsFromDeal builds one project per convertible service of d.
// A deal converts once.
func ProjectsFromDeal(d model.Deal) ([]model.Project, error) {
	if d.Status == model.DealConverted {
		return nil, ErrAlreadyConverted
	}
	var out []model.Project
	for _, svc := range d.Services {
		if !svc.Convertible() {
			continue
		}
		cfg := svc.Configuration
		dealID := d.ID
		name := cfg.ProjectName
		if name == "" {
			name = d.DealName + " - " + svc.ServiceType
		}
		budget := cfg.Budget
		if budget == 0 {
			budget = svc.Budget
		}
		out = append(out, model.Project{
			ID:          store.NewID("proj"),
			Name:        name,
			Company:     d.Company,
			ServiceType: svc.ServiceType,
			Owner:       cfg.Owner,
			TeamOwner:   cfg.TeamOwner,
			Status:      model.ProjectActive,
			Health:      model.HealthOnTrack,
			Progress:    0,
			StartDate:   cfg.StartDate,
			EndDate:     cfg.EndDate,
			Budget:      budget,
			DealID:      &dealID,
		})
	}
	if len(out) == 0 {
		return nil, ErrNothingToConvert
	}
	return out, nil
}

// PrepareService marks a service Ready, filling a default configuration when none is set.
// It returns a copy of d; d itself is not modified.
func PrepareService(d model.Deal, serviceID, owner string, now time.Time) (model.Deal, error) {
	services := append([]model.ServiceInDeal(nil), d.Services...)
	for i := range services {
		if services[i].ID != serviceID {
			continue
		}
		if services[i].Configuration == nil {
			services[i].Configuration = &model.ProjectConfiguration{
				ProjectName: d.DealName + " - " + services[i].ServiceType,
				Owner:       owner,
				StartDate:   now.Format(dateLayout),
				EndDate:     now.AddDate(0, 3, 0).Format(dateLayout),
				Budget:      services[i].Budget,
			}
		}
		services[i].Status = model.ServiceReady
		d.Services = services
		return d, nil
	}
	return d, NotFoundError{Kind: "service", ID: serviceID}
}
