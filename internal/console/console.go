// Package console is the view composer: it owns the session, the entity store, the
// selection and the active screen, and turns them into a Frame for rendering.
//
// A Console is not safe for concurrent use. The TUI drives it from its update loop only;
// the one slow operation (login) runs elsewhere and hands its result back through
// FinishLogin.
package console

import (
	"context"
	"io"
	"log/slog"
	"time"

	"dws-console/internal/model"
	"dws-console/internal/nav"
	"dws-console/internal/perm"
	"dws-console/internal/registry"
	"dws-console/internal/session"
	"dws-console/internal/store"
)

// Journal receives one event per applied mutation.
type Journal interface {
	Append(ctx context.Context, ev model.Event) error
}

type Options struct {
	Session  *session.Controller
	Registry *registry.Registry
	Seed     store.State
	Journal  Journal
	Logger   *slog.Logger
	// StrictNavigation refuses RequestScreen calls outside the role's allowed screens.
	StrictNavigation bool
	Now              func() time.Time
}

type selection struct {
	projectID string
	taskID    string
	subtaskID string
	dealID    string
}

type Console struct {
	session *session.Controller
	reg     *registry.Registry
	journal Journal
	log     *slog.Logger
	strict  bool
	now     func() time.Time

	state  store.State
	user   *model.User
	active nav.Screen
	sel    selection

	loginSeq     int
	loginPending bool
}

func New(opts Options) *Console {
	c := &Console{
		session: opts.Session,
		reg:     opts.Registry,
		journal: opts.Journal,
		log:     opts.Logger,
		strict:  opts.StrictNavigation,
		now:     opts.Now,
		state:   opts.Seed.Clone(),
		active:  nav.ScreenDashboard,
	}
	if c.reg == nil {
		c.reg = registry.New(nil)
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

func (c *Console) State() store.State { return c.state }

func (c *Console) Registry() *registry.Registry { return c.reg }

func (c *Console) Session() *session.Controller { return c.session }

// Now is the console's clock.
func (c *Console) Now() time.Time { return c.now() }

// Active is the requested screen, before resolution.
func (c *Console) Active() nav.Screen { return c.active }

func (c *Console) User() (model.User, bool) {
	if c.user == nil {
		return model.User{}, false
	}
	return *c.user, true
}

func (c *Console) actor() string {
	if c.user == nil {
		return ""
	}
	return c.user.Username
}

// Selection resolves the selection pointers against the current state.
// Pointers whose entity no longer exists come back nil.
func (c *Console) Selection() nav.Selection {
	var sel nav.Selection
	if c.sel.projectID != "" {
		sel.Project, _ = c.state.FindProject(c.sel.projectID)
	}
	if c.sel.taskID != "" {
		sel.Task, _ = c.state.FindTask(c.sel.taskID)
	}
	if c.sel.subtaskID != "" {
		sel.Subtask, _ = c.state.FindSubtask(c.sel.subtaskID)
	}
	if c.sel.dealID != "" {
		sel.Deal, _ = c.state.FindDeal(c.sel.dealID)
	}
	return sel
}

// Frame is everything a renderer needs for one pass.
type Frame struct {
	// User is nil when nobody is logged in; the renderer shows the login form.
	User       *model.User
	Requested  nav.Screen
	Screen     nav.Screen
	Redirected bool
	Title      string
	Chrome     nav.Chrome
	Props      registry.Props
	Links      []nav.Link
	Selection  nav.Selection
}

// Frame resolves the active screen for the current user.
func (c *Console) Frame() Frame {
	f := Frame{Requested: c.active, Screen: c.active}
	if c.user == nil {
		return f
	}
	u := *c.user
	sel := c.Selection()
	res := c.reg.Resolve(u.Role, c.active, c.state, sel)
	if res.Redirected {
		c.log.Debug("screen redirected",
			slog.String("requested", res.Requested.String()),
			slog.String("screen", res.Screen.String()),
			slog.String("role", string(u.Role)))
	}
	f.User = &u
	f.Screen = res.Screen
	f.Redirected = res.Redirected
	f.Props = res.Props
	f.Selection = sel
	// The header names what the body renders, which may be an enriched task.
	titleSel := sel
	if res.Props.Task != nil {
		titleSel.Task = res.Props.Task
	}
	f.Title = nav.TitleForScreen(res.Screen, titleSel, u.Role)
	f.Chrome = nav.ChromeForScreen(res.Screen, u.Role)
	f.Links = nav.SidebarLinks(u.Role)
	return f
}

// RequestScreen makes s the active screen. With strict navigation, screens outside the
// logged-in role's allowed set are refused and the active screen is unchanged.
func (c *Console) RequestScreen(s nav.Screen) error {
	if c.strict && c.user != nil {
		if err := perm.CheckNavigate(c.user.Role, s); err != nil {
			c.log.Warn("navigation refused",
				slog.String("screen", s.String()),
				slog.String("role", string(c.user.Role)))
			return err
		}
	}
	c.navigate(s)
	return nil
}

func (c *Console) navigate(s nav.Screen) {
	if c.active != s {
		c.log.Debug("navigate", slog.String("from", c.active.String()), slog.String("to", s.String()))
	}
	c.active = s
}
