package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jubams/ramadan-tracker/internal/catalog"
	"github.com/jubams/ramadan-tracker/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show period-wide progress statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tracker, _, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := tracker.Statistics()
			days := tracker.Period().Days

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconChart, "Progress Overview"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Overall", fmt.Sprintf("%d%% %s", st.OverallPercentage, ui.ProgressBar(st.OverallPercentage, 30))))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Current day", fmt.Sprintf("%d of %d", tracker.CurrentDay(), days)))
			switch {
			case tracker.BeforePeriod():
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("The period has not started yet; every day is editable."))
			case tracker.AfterPeriod():
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("The period is over; every day is editable."))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconFlame+" Streaks"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Current streak", fmt.Sprintf("%d day(s)", st.CurrentStreak)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Best streak", fmt.Sprintf("%d day(s)", st.BestStreak)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconTrophy+" Totals"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Best day", fmt.Sprintf("day %d (%d%%)", st.BestDay, st.BestDayPercentage)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Days fully completed", fmt.Sprintf("%d of %d", st.TotalDaysCompleted, days)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Items completed", fmt.Sprintf("%d of %d", st.TotalItemsCompleted, days*catalog.Len())))
			return nil
		},
	}

	return cmd
}
