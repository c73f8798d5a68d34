package console

import (
	"context"
	"log/slog"

	"dws-console/internal/model"
	"dws-console/internal/mutate"
	"dws-console/internal/nav"
	"dws-console/internal/registry"
)

// SetSelectedProject focuses a project without navigating.
func (c *Console) SetSelectedProject(id string) error {
	if _, ok := c.state.FindProject(id); !ok {
		return mutate.NotFoundError{Kind: "project", ID: id}
	}
	c.sel.projectID = id
	return nil
}

func (c *Console) SetSelectedTask(id string) error {
	if _, ok := c.state.FindTask(id); !ok {
		return mutate.NotFoundError{Kind: "task", ID: id}
	}
	c.sel.taskID = id
	return nil
}

func (c *Console) SetSelectedSubtask(id string) error {
	st, ok := c.state.FindSubtask(id)
	if !ok {
		return mutate.NotFoundError{Kind: "subtask", ID: id}
	}
	c.sel.subtaskID = id
	if _, ok := c.state.FindTask(st.TaskID); ok {
		c.sel.taskID = st.TaskID
	}
	return nil
}

func (c *Console) SetSelectedDeal(id string) error {
	if _, ok := c.state.FindDeal(id); !ok {
		return mutate.NotFoundError{Kind: "deal", ID: id}
	}
	c.sel.dealID = id
	return nil
}

// OpenProject selects a project and shows its detail screen.
func (c *Console) OpenProject(id string) error {
	if err := c.SetSelectedProject(id); err != nil {
		return err
	}
	return c.RequestScreen(nav.ScreenProjectDetail)
}

// OpenTask selects a task and routes it by role and status. It returns the requested screen.
func (c *Console) OpenTask(id string) (nav.Screen, error) {
	if err := c.SetSelectedTask(id); err != nil {
		return c.active, err
	}
	t, _ := c.state.FindTask(id)
	role := model.Role("")
	if c.user != nil {
		role = c.user.Role
	}
	s := registry.RouteForTask(role, *t)
	return s, c.RequestScreen(s)
}

// OpenTeamTask is the team lead's entry to a task.
func (c *Console) OpenTeamTask(id string) error {
	if err := c.SetSelectedTask(id); err != nil {
		return err
	}
	return c.RequestScreen(nav.ScreenTeamLeadTaskDetail)
}

func (c *Console) OpenSubtask(id string) error {
	if err := c.SetSelectedSubtask(id); err != nil {
		return err
	}
	return c.RequestScreen(nav.ScreenSubtaskDetail)
}

// OpenDeal selects a deal and shows s, which should be one of the deal screens.
func (c *Console) OpenDeal(id string, s nav.Screen) error {
	if err := c.SetSelectedDeal(id); err != nil {
		return err
	}
	return c.RequestScreen(s)
}

func (c *Console) apply(res mutate.Result) {
	c.state = res.State
	if res.Navigates {
		c.navigate(res.Navigate)
	}
	if !res.Changed {
		return
	}
	c.log.Info("mutation",
		slog.String("type", res.EventType),
		slog.String("entity", res.EntityID),
		slog.String("actor", c.actor()))
	if c.journal == nil {
		return
	}
	ev := model.Event{
		TS:       c.now().UTC(),
		Actor:    c.actor(),
		Type:     res.EventType,
		EntityID: res.EntityID,
		Payload:  res.EventPayload,
	}
	if err := c.journal.Append(context.Background(), ev); err != nil {
		c.log.Error("journal append failed", slog.String("type", res.EventType), slog.String("error", err.Error()))
	}
}

func (c *Console) AddDeal(d model.Deal) { c.apply(mutate.AddDeal(c.state, d)) }

func (c *Console) UpdateDeal(d model.Deal) { c.apply(mutate.UpdateDeal(c.state, d)) }

func (c *Console) ConvertDealToProjects(ps []model.Project) {
	c.apply(mutate.ConvertDealToProjects(c.state, ps))
}

// ConvertDeal converts every ready service of a deal. Nothing changes when no service qualifies.
func (c *Console) ConvertDeal(dealID string) ([]model.Project, error) {
	d, ok := c.state.FindDeal(dealID)
	if !ok {
		return nil, mutate.NotFoundError{Kind: "deal", ID: dealID}
	}
	ps, err := mutate.ProjectsFromDeal(*d)
	if err != nil {
		return nil, err
	}
	c.ConvertDealToProjects(ps)
	return ps, nil
}

// PrepareService marks one service of a deal ready for conversion.
func (c *Console) PrepareService(dealID, serviceID string) error {
	d, ok := c.state.FindDeal(dealID)
	if !ok {
		return mutate.NotFoundError{Kind: "deal", ID: dealID}
	}
	owner := ""
	if c.user != nil {
		owner = c.user.DisplayName()
	}
	next, err := mutate.PrepareService(*d, serviceID, owner, c.now())
	if err != nil {
		return err
	}
	c.UpdateDeal(next)
	return nil
}

func (c *Console) AddTask(t model.Task) { c.apply(mutate.AddTask(c.state, t)) }

func (c *Console) AddSubtask(s model.Subtask) { c.apply(mutate.AddSubtask(c.state, s)) }

func (c *Console) AddCompany(o model.OrgRecord) { c.apply(mutate.AddCompany(c.state, o)) }

func (c *Console) AddAgency(o model.OrgRecord) { c.apply(mutate.AddAgency(c.state, o)) }

func (c *Console) SetProjectStatus(id string, s model.ProjectStatus) {
	c.apply(mutate.SetProjectStatus(c.state, id, s))
}
