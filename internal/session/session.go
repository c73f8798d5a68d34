package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"dws-console/internal/model"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnknownUser   = errors.New("unknown user")
	ErrWrongPassword = errors.New("wrong password")
	ErrLoginInFlight = errors.New("login in progress")
)

// Message renders a login error for display.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnknownUser):
		return "User not found. Check the username and try again."
	case errors.Is(err, ErrWrongPassword):
		return "Incorrect password. Please try again."
	case errors.Is(err, ErrLoginInFlight):
		return "Signing in, please wait."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Sign in was interrupted."
	default:
		return err.Error()
	}
}

// Normalize maps a typed username to its lookup key.
func Normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Credentials maps normalized usernames to users and holds the one shared password.
type Credentials struct {
	users map[string]model.User
	hash  []byte
}

// NewCredentials hashes password with bcrypt at the given cost (0 means bcrypt.DefaultCost).
func NewCredentials(users []model.User, password string, cost int) (*Credentials, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, err
	}
	c := &Credentials{users: make(map[string]model.User, len(users)), hash: hash}
	for _, u := range users {
		u.Username = Normalize(u.Username)
		if u.Username == "" {
			continue
		}
		c.users[u.Username] = u
	}
	return c, nil
}

func (c *Credentials) Lookup(username string) (model.User, bool) {
	if c == nil {
		return model.User{}, false
	}
	u, ok := c.users[Normalize(username)]
	return u, ok
}

// Check validates a username/password pair. Unknown users are reported before the
// password is looked at.
func (c *Credentials) Check(username, password string) (model.User, error) {
	u, ok := c.Lookup(username)
	if !ok {
		return model.User{}, ErrUnknownUser
	}
	if err := bcrypt.CompareHashAndPassword(c.hash, []byte(password)); err != nil {
		return model.User{}, ErrWrongPassword
	}
	return u, nil
}

// Controller authenticates against a credential table with a simulated round-trip delay.
type Controller struct {
	creds *Credentials
	delay time.Duration
	log   *slog.Logger
}

func NewController(creds *Credentials, delay time.Duration, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if delay < 0 {
		delay = 0
	}
	return &Controller{creds: creds, delay: delay, log: log}
}

func (c *Controller) Delay() time.Duration { return c.delay }

// Authenticate waits the configured delay, then checks the credentials.
// It does not touch console state, so it is safe to run off the UI goroutine.
func (c *Controller) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	name := Normalize(username)
	c.log.Info("login attempt", slog.String("username", name))

	if c.delay > 0 {
		t := time.NewTimer(c.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return model.User{}, ctx.Err()
		case <-t.C:
		}
	}

	u, err := c.creds.Check(name, password)
	if err != nil {
		c.log.Info("login failed", slog.String("username", name), slog.String("error", err.Error()))
		return model.User{}, err
	}
	c.log.Info("login ok", slog.String("username", u.Username), slog.String("role", string(u.Role)))
	return u, nil
}
