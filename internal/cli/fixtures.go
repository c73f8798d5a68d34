package cli

import (
	"fmt"
	"sort"
	"strings"

	"dws-console/internal/fixtures"
	"dws-console/internal/format"

	"github.com/spf13/cobra"
)

// fixtureCollections maps a collection name to its table form.
var fixtureCollections = map[string]func(fixtures.Seed) format.Tabular{
	"projects":          func(s fixtures.Seed) format.Tabular { return projectList(s.State.Projects) },
	"deals":             func(s fixtures.Seed) format.Tabular { return dealList(s.State.Deals) },
	"tasks":             func(s fixtures.Seed) format.Tabular { return taskList(s.State.Tasks) },
	"subtasks":          func(s fixtures.Seed) format.Tabular { return subtaskList(s.State.Subtasks) },
	"teamlead-subtasks": func(s fixtures.Seed) format.Tabular { return teamLeadSubtaskList(s.State.TeamLeadSubtasks) },
	"orgs":              func(s fixtures.Seed) format.Tabular { return orgList(s.State.Orgs) },
	"users":             func(s fixtures.Seed) format.Tabular { return userList(s.Users) },
}

func fixtureCollectionNames() []string {
	out := make([]string, 0, len(fixtureCollections))
	for k := range fixtureCollections {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func newFixturesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "fixtures <collection>",
		Short:     "Print a seeded collection",
		Long:      "Prints one of the collections the console starts with: " + strings.Join(fixtureCollectionNames(), ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: fixtureCollectionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(strings.TrimSpace(args[0]))
			pick, ok := fixtureCollections[name]
			if !ok {
				return writeErr(cmd, invalidChoiceError{what: "collection", got: args[0], choices: fixtureCollectionNames()})
			}
			seed, err := fixtures.Load()
			if err != nil {
				return writeErr(cmd, fmt.Errorf("load fixtures: %w", err))
			}
			data := pick(seed)
			return writeOut(cmd, app, map[string]any{
				"data": data,
				"meta": map[string]any{"collection": name, "count": len(data.TableRows())},
			})
		},
	}
	return cmd
}
