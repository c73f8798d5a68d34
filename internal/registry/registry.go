// Package registry declares, for every screen, the data it consumes and the selection it
// needs, and resolves a requested screen into the screen that is actually rendered.
package registry

import (
	"sort"
	"strings"

	"dws-console/internal/model"
	"dws-console/internal/nav"
	"dws-console/internal/store"
)

// Dep is a set of data dependencies.
type Dep uint16

const (
	DepProjects Dep = 1 << iota
	DepDeals
	DepTasks
	DepSubtasks
	DepTeamLeadSubtasks
	DepOrgs
	DepSelectedProject
	DepSelectedTask
	DepSelectedSubtask
	DepSelectedDeal
)

var depNames = []struct {
	d    Dep
	name string
}{
	{DepProjects, "projects"},
	{DepDeals, "deals"},
	{DepTasks, "tasks"},
	{DepSubtasks, "subtasks"},
	{DepTeamLeadSubtasks, "teamLeadSubtasks"},
	{DepOrgs, "companiesAndAgencies"},
	{DepSelectedProject, "selectedProject"},
	{DepSelectedTask, "selectedTask"},
	{DepSelectedSubtask, "selectedSubtask"},
	{DepSelectedDeal, "selectedDeal"},
}

func (d Dep) Has(x Dep) bool { return d&x == x }

func (d Dep) Names() []string {
	var out []string
	for _, dn := range depNames {
		if d.Has(dn.d) {
			out = append(out, dn.name)
		}
	}
	return out
}

func (d Dep) String() string {
	if d == 0 {
		return "-"
	}
	return strings.Join(d.Names(), ",")
}

// Entry is the declared contract of one screen.
type Entry struct {
	Screen nav.Screen
	Deps   Dep
	// Requires names the selection that must be set; zero means none.
	Requires Dep
	// Fallback is rendered instead when Requires is not satisfied.
	Fallback nav.Screen
}

// Enricher may substitute a richer fixture for a selected task.
type Enricher interface {
	EnrichTask(t model.Task) model.Task
}

// TaskOverrides is a declarative enrichment table keyed by task id.
type TaskOverrides map[string]model.Task

func (o TaskOverrides) EnrichTask(t model.Task) model.Task {
	if rich, ok := o[t.ID]; ok {
		return rich
	}
	return t
}

type Registry struct {
	general    map[nav.Screen]Entry
	teamMember map[nav.Screen]Entry
	enrich     Enricher
}

// New returns the console's registry. enrich may be nil.
func New(enrich Enricher) *Registry {
	r := &Registry{
		general:    map[nav.Screen]Entry{},
		teamMember: map[nav.Screen]Entry{},
		enrich:     enrich,
	}
	for _, e := range generalEntries {
		r.general[e.Screen] = e
	}
	for _, e := range teamMemberEntries {
		r.teamMember[e.Screen] = e
	}
	return r
}

var generalEntries = []Entry{
	{Screen: nav.ScreenDashboard, Deps: DepProjects | DepDeals | DepTasks | DepOrgs},
	{Screen: nav.ScreenSalesDashboard, Deps: DepDeals | DepOrgs},
	{Screen: nav.ScreenProjectList, Deps: DepProjects},
	{Screen: nav.ScreenProjectDetail, Deps: DepSelectedProject | DepTasks, Requires: DepSelectedProject, Fallback: nav.ScreenProjectList},
	{Screen: nav.ScreenTaskList, Deps: DepTasks},
	{Screen: nav.ScreenTaskDetail, Deps: DepSelectedTask | DepSubtasks, Requires: DepSelectedTask, Fallback: nav.ScreenTaskList},
	{Screen: nav.ScreenTaskReview, Deps: DepSelectedTask | DepSubtasks, Requires: DepSelectedTask, Fallback: nav.ScreenTaskList},
	{Screen: nav.ScreenCreateTask, Deps: DepProjects},
	{Screen: nav.ScreenSubtaskDetail, Deps: DepSelectedSubtask | DepSelectedTask, Requires: DepSelectedSubtask, Fallback: nav.ScreenTaskList},
	{Screen: nav.ScreenDealList, Deps: DepDeals},
	{Screen: nav.ScreenDealDetail, Deps: DepSelectedDeal, Requires: DepSelectedDeal, Fallback: nav.ScreenDealList},
	{Screen: nav.ScreenCreateDeal, Deps: DepOrgs},
	{Screen: nav.ScreenDealHandoff, Deps: DepSelectedDeal, Requires: DepSelectedDeal, Fallback: nav.ScreenDealList},
	{Screen: nav.ScreenProjectSetup, Deps: DepSelectedDeal | DepProjects, Requires: DepSelectedDeal, Fallback: nav.ScreenDealList},
	{Screen: nav.ScreenCompanies, Deps: DepOrgs},
	{Screen: nav.ScreenCreateCompany},
	{Screen: nav.ScreenAgencyList, Deps: DepOrgs},
	{Screen: nav.ScreenCreateAgency, Deps: DepOrgs},
	{Screen: nav.ScreenTeamTasks, Deps: DepTasks | DepTeamLeadSubtasks},
	{Screen: nav.ScreenTeamLeadTaskDetail, Deps: DepSelectedTask | DepSubtasks | DepTeamLeadSubtasks, Requires: DepSelectedTask, Fallback: nav.ScreenTeamTasks},
	{Screen: nav.ScreenTeamOwnerDashboard, Deps: DepProjects | DepTasks},
	{Screen: nav.ScreenTeamOwnerProjects, Deps: DepProjects},
	{Screen: nav.ScreenReports, Deps: DepProjects | DepDeals | DepTasks},
	{Screen: nav.ScreenCalendar, Deps: DepProjects | DepTasks},
	{Screen: nav.ScreenSettings},
}

var teamMemberEntries = []Entry{
	{Screen: nav.ScreenTeamMemberDashboard, Deps: DepTasks},
	{Screen: nav.ScreenTeamMemberTasks, Deps: DepTasks},
	{Screen: nav.ScreenTeamMemberTaskDetail, Deps: DepSelectedTask | DepSubtasks, Requires: DepSelectedTask, Fallback: nav.ScreenTeamMemberTasks},
	{Screen: nav.ScreenTeamMemberTimesheet, Deps: DepTasks},
}

func (r *Registry) namespace(role model.Role) map[nav.Screen]Entry {
	if role == model.RoleTeamMember {
		return r.teamMember
	}
	return r.general
}

// Entry looks s up in the namespace role resolves against.
func (r *Registry) Entry(role model.Role, s nav.Screen) (Entry, bool) {
	e, ok := r.namespace(role)[s]
	return e, ok
}

// Entries lists the namespace of role in screen order.
func (r *Registry) Entries(role model.Role) []Entry {
	ns := r.namespace(role)
	out := make([]Entry, 0, len(ns))
	for _, e := range ns {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Screen < out[j].Screen })
	return out
}

// Props is the data handed to a screen: only its declared dependencies are set.
type Props struct {
	Projects         []model.Project
	Deals            []model.Deal
	Tasks            []model.Task
	Subtasks         []model.Subtask
	TeamLeadSubtasks []model.TeamLeadSubtask
	Orgs             []model.OrgRecord

	Project *model.Project
	Task    *model.Task
	Subtask *model.Subtask
	Deal    *model.Deal
}

type Resolution struct {
	Requested  nav.Screen
	Screen     nav.Screen
	Redirected bool
	Entry      Entry
	Props      Props
}

// Bounds the redirect chain; entries only redirect to selection-free listings.
const maxRedirects = 4

// Resolve picks the screen to render for a requested screen. Team members resolve only
// against their own namespace. Unknown screens go to the role's fallback and screens whose
// required selection is missing go to their declared fallback. Resolve never fails.
func (r *Registry) Resolve(role model.Role, requested nav.Screen, st store.State, sel nav.Selection) Resolution {
	ns := r.namespace(role)
	res := Resolution{Requested: requested}

	s := requested
	for i := 0; i < maxRedirects; i++ {
		e, ok := ns[s]
		if !ok {
			s = nav.FallbackScreenForRole(role)
			res.Redirected = true
			continue
		}
		if e.Requires != 0 && !selectionHas(sel, e.Requires) {
			s = e.Fallback
			res.Redirected = true
			continue
		}
		res.Screen = s
		res.Entry = e
		res.Props = r.props(e, st, sel)
		return res
	}

	s = nav.FallbackScreenForRole(role)
	e := ns[s]
	res.Screen = s
	res.Entry = e
	res.Redirected = true
	res.Props = r.props(e, st, sel)
	return res
}

func selectionHas(sel nav.Selection, d Dep) bool {
	switch {
	case d.Has(DepSelectedProject) && sel.Project == nil:
		return false
	case d.Has(DepSelectedTask) && sel.Task == nil:
		return false
	case d.Has(DepSelectedSubtask) && sel.Subtask == nil:
		return false
	case d.Has(DepSelectedDeal) && sel.Deal == nil:
		return false
	}
	return true
}

func (r *Registry) props(e Entry, st store.State, sel nav.Selection) Props {
	var p Props
	d := e.Deps
	if d.Has(DepProjects) {
		p.Projects = st.Projects
	}
	if d.Has(DepDeals) {
		p.Deals = st.Deals
	}
	if d.Has(DepTasks) {
		p.Tasks = st.Tasks
	}
	if d.Has(DepSubtasks) {
		p.Subtasks = st.Subtasks
	}
	if d.Has(DepTeamLeadSubtasks) {
		p.TeamLeadSubtasks = st.TeamLeadSubtasks
	}
	if d.Has(DepOrgs) {
		p.Orgs = st.Orgs
	}
	if d.Has(DepSelectedProject) {
		p.Project = sel.Project
	}
	if d.Has(DepSelectedTask) && sel.Task != nil {
		t := *sel.Task
		if e.Screen == nav.ScreenTeamMemberTaskDetail && r.enrich != nil {
			t = r.enrich.EnrichTask(t)
		}
		p.Task = &t
	}
	if d.Has(DepSelectedSubtask) {
		p.Subtask = sel.Subtask
	}
	if d.Has(DepSelectedDeal) {
		p.Deal = sel.Deal
	}
	return p
}

// RouteForTask picks the screen that opens a selected task. The team member check
// comes first, then the review status.
func RouteForTask(role model.Role, t model.Task) nav.Screen {
	if role == model.RoleTeamMember {
		return nav.ScreenTeamMemberTaskDetail
	}
	if t.Status == model.TaskStatusSubmittedForReview {
		return nav.ScreenTaskReview
	}
	return nav.ScreenTaskDetail
}
