package mutate

import (
	"dws-console/internal/model"
	"dws-console/internal/nav"
	"dws-console/internal/store"
)

// AddCompany prepends c to the companies-and-agencies collection.
func AddCompany(st store.State, c model.OrgRecord) Result {
	c.Kind = model.OrgCompany
	st.Orgs = prepend(st.Orgs, c)
	return Result{
		State:        st,
		Changed:      true,
		EventType:    "company.add",
		EntityID:     c.ID,
		EventPayload: map[string]any{"name": c.Name},
	}.navigateTo(nav.ScreenCompanies)
}

// AddAgency prepends a to the companies-and-agencies collection.
func AddAgency(st store.State, a model.OrgRecord) Result {
	a.Kind = model.OrgAgency
	st.Orgs = prepend(st.Orgs, a)
	return Result{
		State:        st,
		Changed:      true,
		EventType:    "agency.add",
		EntityID:     a.ID,
		EventPayload: map[string]any{"name": a.Name, "companyIds": a.CompanyIDs},
	}.navigateTo(nav.ScreenAgencyList)
}
