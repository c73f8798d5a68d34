package cli

import (
	"strings"

	"dws-console/internal/model"
	"dws-console/internal/nav"
	"dws-console/internal/perm"
	"dws-console/internal/registry"

	"github.com/spf13/cobra"
)

type screenInfo struct {
	Screen    string   `json:"screen" yaml:"screen"`
	Namespace string   `json:"namespace" yaml:"namespace"`
	Title     string   `json:"title" yaml:"title"`
	Deps      []string `json:"deps" yaml:"deps"`
	Requires  []string `json:"requires,omitempty" yaml:"requires,omitempty"`
	Fallback  string   `json:"fallback,omitempty" yaml:"fallback,omitempty"`
	Allowed   *bool    `json:"allowed,omitempty" yaml:"allowed,omitempty"`
}

type screenList []screenInfo

func (l screenList) TableHeader() []string {
	return []string{"SCREEN", "NAMESPACE", "TITLE", "DEPS", "REQUIRES", "FALLBACK", "ALLOWED"}
}

func (l screenList) TableRows() [][]any {
	out := make([][]any, 0, len(l))
	for _, s := range l {
		allowed := ""
		if s.Allowed != nil {
			allowed = "no"
			if *s.Allowed {
				allowed = "yes"
			}
		}
		out = append(out, []any{s.Screen, s.Namespace, s.Title, strings.Join(s.Deps, ","), strings.Join(s.Requires, ","), s.Fallback, allowed})
	}
	return out
}

func newScreensCmd(app *App) *cobra.Command {
	var roleName string

	cmd := &cobra.Command{
		Use:   "screens",
		Short: "List registered screens and their data contracts",
		Long: strings.TrimSpace(`
Lists every registered screen with the data it consumes, the selection it needs and the
screen it falls back to. With --role, only the namespace that role resolves against is
listed, titles are those the role sees, and each screen says whether the role may open it.
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.New(nil)

			var roles []model.Role
			withRole := roleName != ""
			if withRole {
				r, ok := model.ParseRole(strings.TrimSpace(roleName))
				if !ok {
					return writeErr(cmd, invalidChoiceError{what: "role", got: roleName, choices: roleNames()})
				}
				roles = []model.Role{r}
			} else {
				// One role per namespace.
				roles = []model.Role{model.RoleProjectManager, model.RoleTeamMember}
			}

			var out screenList
			for _, r := range roles {
				for _, e := range reg.Entries(r) {
					info := screenInfo{
						Screen:    e.Screen.String(),
						Namespace: namespaceOf(e.Screen),
						Deps:      append([]string{}, e.Deps.Names()...),
						Requires:  e.Requires.Names(),
					}
					if e.Requires != 0 {
						info.Fallback = e.Fallback.String()
					}
					if withRole {
						info.Title = nav.TitleForScreen(e.Screen, nav.Selection{}, r)
						allowed := perm.CanNavigate(r, e.Screen)
						info.Allowed = &allowed
					} else {
						info.Title = nav.TitleForScreen(e.Screen, nav.Selection{}, "")
					}
					out = append(out, info)
				}
			}

			meta := map[string]any{"count": len(out)}
			if withRole {
				r := roles[0]
				meta["role"] = string(r)
				meta["landingScreen"] = nav.DefaultScreenForRole(r).String()
				meta["fallbackScreen"] = nav.FallbackScreenForRole(r).String()
			}
			return writeOut(cmd, app, map[string]any{"data": out, "meta": meta})
		},
	}

	cmd.Flags().StringVar(&roleName, "role", "", "Role (project_manager, sales, team_lead, team_owner, team_member, bu_admin, super_admin, quality)")
	return cmd
}

func namespaceOf(s nav.Screen) string {
	if nav.TeamMemberScreen(s) {
		return "team_member"
	}
	return "general"
}

func roleNames() []string {
	out := make([]string, 0, len(model.Roles))
	for _, r := range model.Roles {
		out = append(out, string(r))
	}
	return out
}
