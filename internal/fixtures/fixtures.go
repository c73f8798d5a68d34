// Package fixtures provides the console's static seed data: the initial entity
// collections, the user table used for login, and task overrides used to enrich
// selections.
package fixtures

import (
	_ "embed"
	"fmt"
	"strings"

	"dws-console/internal/model"
	"dws-console/internal/store"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type Seed struct {
	Users []model.User `yaml:"users"`
	State store.State  `yaml:"state"`
	// TaskOverrides maps a task id to a richer fixture shown in its place.
	TaskOverrides map[string]model.Task `yaml:"taskOverrides"`
}

// Load parses the embedded seed.
func Load() (Seed, error) {
	return Parse(seedYAML)
}

// Parse decodes and normalizes a seed document.
func Parse(b []byte) (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Seed{}, fmt.Errorf("fixtures: %w", err)
	}
	seen := map[string]bool{}
	for i := range s.Users {
		u := &s.Users[i]
		u.Username = strings.ToLower(strings.TrimSpace(u.Username))
		if u.Username == "" {
			return Seed{}, fmt.Errorf("fixtures: user %d missing username", i)
		}
		if seen[u.Username] {
			return Seed{}, fmt.Errorf("fixtures: duplicate user %s", u.Username)
		}
		seen[u.Username] = true
		if _, ok := model.ParseRole(string(u.Role)); !ok {
			return Seed{}, fmt.Errorf("fixtures: user %s has unknown role %q", u.Username, u.Role)
		}
	}
	if s.TaskOverrides == nil {
		s.TaskOverrides = map[string]model.Task{}
	}
	return s, nil
}

// UserByName returns the seeded user whose display name matches name.
func (s Seed) UserByName(name string) (model.User, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, u := range s.Users {
		if strings.ToLower(u.Name) == name {
			return u, true
		}
	}
	return model.User{}, false
}
