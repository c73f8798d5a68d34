package cli

import (
	"fmt"
	"strings"

	"dws-console/internal/format"
	"dws-console/internal/tui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type App struct {
	v   *viper.Viper
	cfg Config

	configFile string
}

func NewRootCmd() *cobra.Command {
	app := &App{v: viper.New()}

	cmd := &cobra.Command{
		Use:          "dws",
		Short:        "DWS role-based operations console",
		SilenceUsage: true,
		// Errors are printed once, by writeErr.
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive console
  dws

  # Check a login without starting the UI
  dws login --user pm@dws.com --password dws@123

  # What can a team lead open?
  dws screens --role team_lead --format table

  # Dump the seeded deals
  dws fixtures deals --pretty
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(app.v, app.configFile)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg
		return nil
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.configFile, "config", "", "Config file (default: $XDG_CONFIG_HOME/dws/config.yaml when present)")
	pf.String(keyPassword, defaultPassword, "Static password shared by every fixture user")
	pf.Duration(keyLoginDelay, defaultLoginDelay, "Simulated sign-in latency")
	pf.Bool(keyStrictNav, false, "Refuse navigation to screens outside the signed-in role")
	pf.String(keyJournal, "", "Path to a SQLite file that records every mutation (empty: off)")
	pf.String(keyDebugLog, "", "Write debug logs to this file (empty: off)")
	pf.String(keyFormat, "json", "Output format (json|yaml|table)")
	pf.Bool(keyPretty, false, "Pretty-print output")
	pf.Bool(keyNoColor, false, "Disable colors in the TUI")
	for _, k := range configKeys {
		_ = app.v.BindPFlag(k, pf.Lookup(k))
	}

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newScreensCmd(app))
	cmd.AddCommand(newFixturesCmd(app))
	cmd.AddCommand(newJournalCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	err := withConsole(cmd.Context(), app, func(e env) error {
		return tui.Run(e.console, tui.Options{NoColor: app.cfg.NoColor, Logger: e.log})
	})
	if err != nil {
		return writeErr(cmd, err)
	}
	return nil
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.cfg.Format, app.cfg.Pretty)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
