package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/factorymaster/mission-control/backend/models"
	"github.com/factorymaster/mission-control/backend/progress"

	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show overall and per-phase progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary := progress.Summarize(app.Catalog, app.Progress.Completed())
			writeStatus(cmd.OutOrStdout(), summary)
			return nil
		},
	}
}

func writeStatus(w io.Writer, s models.ProgressSummary) {
	o := s.Overall
	fmt.Fprintf(w, "Mission progress: %d%% (%s)\n", o.Percentage, o.CampaignStatus)
	fmt.Fprintf(w, "Completed %d of %d, %d remaining\n\n", o.Completed, o.TotalActivities, o.Remaining)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PHASE\tDONE\tTOTAL\tPERCENT")
	for _, p := range s.Phases {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d%%\n", p.Name, p.Completed, p.Total, p.Percentage)
	}
	tw.Flush()
}

func newUpcomingCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List the next activities to work on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			upcoming := progress.Upcoming(app.Catalog, app.Progress.Completed(), limit)
			writeUpcoming(cmd.OutOrStdout(), upcoming)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", progress.DefaultUpcomingLimit, "number of activities")
	return cmd
}

func writeUpcoming(w io.Writer, upcoming []models.UpcomingActivity) {
	if len(upcoming) == 0 {
		fmt.Fprintln(w, "All activities completed.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPHASE\tDAY\tPRIORITY\tSTATUS\tACTIVITY")
	for _, u := range upcoming {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.Phase, u.Day, u.Priority, u.Status, u.Activity)
	}
	tw.Flush()
}

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <activity-id>",
		Short: "Mark an activity done, or open again if it was done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := models.ParseActivityID(args[0])
			if err != nil {
				return err
			}
			text, _, ok := app.Catalog.Activity(id)
			if !ok {
				return fmt.Errorf("unknown activity %s", id)
			}

			set := app.Progress.Toggle(cmd.Context(), id)
			state := "open"
			if set.Contains(id) {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", id, state, text)
			return nil
		},
	}
}

func newCatalogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the curriculum with activity ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			done := app.Progress.Completed()
			for _, phase := range app.Catalog.Phases {
				fmt.Fprintf(w, "%s: %s\n", phase.Name(), phase.Title)
				for _, day := range phase.Days {
					fmt.Fprintf(w, "  %s  %s\n", day.Range, day.Title)
					for i, activity := range day.Activities {
						id := models.NewActivityID(phase.ID, day.ID, i)
						mark := " "
						if done.Contains(id) {
							mark = "x"
						}
						fmt.Fprintf(w, "    [%s] %-12s %s\n", mark, id, activity)
					}
				}
			}
			return nil
		},
	}
}
