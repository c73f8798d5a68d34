package cli

import (
	"strings"

	"dws-console/internal/nav"
	"dws-console/internal/session"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var username, password, screen string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check a login and report where the user lands",
		Long: strings.TrimSpace(`
Runs one sign-in against the fixture users, with the configured latency, and prints the
user's role and landing screen. With --screen, that screen is requested afterwards and the
screen actually rendered (after permission checks and fallbacks) is reported as well.
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req nav.Screen
			if screen != "" {
				s, ok := nav.ParseScreen(screen)
				if !ok {
					return writeErr(cmd, invalidChoiceError{what: "screen", got: screen, choices: screenNames()})
				}
				req = s
			}

			err := withConsole(cmd.Context(), app, func(e env) error {
				u, err := e.console.Login(cmd.Context(), username, password)
				if err != nil {
					msg := session.Message(err)
					if msg == "" {
						msg = err.Error()
					}
					return loginError{msg: msg, err: err}
				}
				landing := e.console.Frame()
				out := map[string]any{
					"username":      u.Username,
					"name":          u.Name,
					"role":          string(u.Role),
					"roleLabel":     u.Role.Label(),
					"landingScreen": landing.Screen.String(),
					"title":         landing.Title,
				}

				if screen != "" {
					navErr := e.console.RequestScreen(req)
					f := e.console.Frame()
					resolved := map[string]any{
						"requested":  req.String(),
						"screen":     f.Screen.String(),
						"redirected": f.Redirected,
						"title":      f.Title,
						"chrome": map[string]any{
							"showHeader":    f.Chrome.ShowHeader,
							"headerVariant": string(f.Chrome.HeaderVariant),
							"background":    string(f.Chrome.Background),
						},
					}
					if navErr != nil {
						resolved["denied"] = navErr.Error()
					}
					out["resolved"] = resolved
				}
				return writeOut(cmd, app, map[string]any{"data": out})
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "user", "", "Username (case and surrounding spaces are ignored)")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&screen, "screen", "", "Screen to request after signing in (e.g. project-detail)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func screenNames() []string {
	var out []string
	for _, s := range nav.AllScreens() {
		out = append(out, s.String())
	}
	return out
}
