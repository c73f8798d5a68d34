package cli

import (
	"errors"

	"dws-console/internal/model"
	"dws-console/internal/store"

	"github.com/spf13/cobra"
)

func newJournalCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show the most recent mutations recorded in the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.cfg.Journal == "" {
				return writeErr(cmd, errors.New("no journal configured (set --journal or DWS_JOURNAL)"))
			}
			if limit <= 0 {
				return writeErr(cmd, errors.New("--limit must be positive"))
			}
			j, err := store.OpenJournal(cmd.Context(), app.cfg.Journal)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer j.Close()

			events, err := j.Tail(cmd.Context(), limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			if events == nil {
				events = []model.Event{}
			}
			return writeOut(cmd, app, map[string]any{
				"data": eventList(events),
				"meta": map[string]any{"journal": j.Path(), "count": len(events)},
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Number of events")
	return cmd
}
