package console

import (
	"context"
	"errors"
	"log/slog"

	"dws-console/internal/model"
	"dws-console/internal/nav"
	"dws-console/internal/session"
)

var ErrNoSession = errors.New("console: no session controller")

// LoginPending reports whether a login attempt is in flight.
func (c *Console) LoginPending() bool { return c.loginPending }

// BeginLogin registers a login attempt and returns its sequence number. While an attempt
// is pending, further attempts are refused with session.ErrLoginInFlight.
func (c *Console) BeginLogin() (int, error) {
	if c.session == nil {
		return 0, ErrNoSession
	}
	if c.loginPending {
		return 0, session.ErrLoginInFlight
	}
	c.loginSeq++
	c.loginPending = true
	return c.loginSeq, nil
}

// FinishLogin applies the outcome of attempt seq. Outcomes of superseded attempts are
// dropped and report applied=false. On success the user lands on their role's default screen.
func (c *Console) FinishLogin(seq int, u model.User, authErr error) (applied bool, err error) {
	if seq != c.loginSeq {
		c.log.Debug("stale login result dropped", slog.Int("seq", seq), slog.Int("current", c.loginSeq))
		return false, nil
	}
	c.loginPending = false
	if authErr != nil {
		return true, authErr
	}
	c.user = &u
	c.navigate(nav.DefaultScreenForRole(u.Role))
	return true, nil
}

// Login runs a whole attempt synchronously.
func (c *Console) Login(ctx context.Context, username, password string) (model.User, error) {
	seq, err := c.BeginLogin()
	if err != nil {
		return model.User{}, err
	}
	u, authErr := c.session.Authenticate(ctx, username, password)
	if _, err := c.FinishLogin(seq, u, authErr); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Logout ends the session, returns to the Dashboard and clears the selection.
// A login still in flight is superseded.
func (c *Console) Logout() {
	if c.user != nil {
		c.log.Info("logout", slog.String("username", c.user.Username))
	}
	c.user = nil
	c.sel = selection{}
	if c.loginPending {
		c.loginSeq++
		c.loginPending = false
	}
	c.navigate(nav.ScreenDashboard)
}
