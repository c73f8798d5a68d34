package mutate

import (
	"dws-console/internal/model"
	"dws-console/internal/nav"
	"dws-console/internal/store"
)

// AddDeal prepends d and navigates to the deal list.
func AddDeal(st store.State, d model.Deal) Result {
	st.Deals = prepend(st.Deals, d)
	return Result{
		State:        st,
		Changed:      true,
		EventType:    "deal.add",
		EntityID:     d.ID,
		EventPayload: map[string]any{"dealName": d.DealName, "company": d.Company},
	}.navigateTo(nav.ScreenDealList)
}

// UpdateDeal replaces the deal with the same id in place. Ordering is preserved and an
// unknown id leaves the state as it was.
func UpdateDeal(st store.State, d model.Deal) Result {
	idx := -1
	for i := range st.Deals {
		if st.Deals[i].ID == d.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Result{State: st}
	}
	next := append([]model.Deal(nil), st.Deals...)
	next[idx] = d
	st.Deals = next
	return Result{
		State:        st,
		Changed:      true,
		EventType:    "deal.update",
		EntityID:     d.ID,
		EventPayload: map[string]any{"status": string(d.Status)},
	}
}

// ConvertDealToProjects prepends projects and marks the originating deal Converted.
// The originating deal is taken from the first project's DealID; the batch is assumed
// to share it. An empty batch is a no-op.
func ConvertDealToProjects(st store.State, projects []model.Project) Result {
	if len(projects) == 0 {
		return Result{State: st}
	}
	st.Projects = prepend(st.Projects, projects...)

	dealID := ""
	if projects[0].DealID != nil {
		dealID = *projects[0].DealID
	}
	if dealID != "" {
		next := append([]model.Deal(nil), st.Deals...)
		for i := range next {
			if next[i].ID == dealID {
				next[i].Status = model.DealConverted
				break
			}
		}
		st.Deals = next
	}

	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return Result{
		State:        st,
		Changed:      true,
		EventType:    "deal.convert",
		EntityID:     dealID,
		EventPayload: map[string]any{"projectIds": ids},
	}.navigateTo(nav.ScreenProjectList)
}
