package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jubams/ramadan-tracker/internal/catalog"
	"github.com/jubams/ramadan-tracker/internal/i18n"
	"github.com/jubams/ramadan-tracker/internal/ui"
)

func newMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Show the day × item completion matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tracker, lang, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			items := catalog.Items()
			current := tracker.CurrentDay()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconChart, "Progress Matrix"))
			legend := fmt.Sprintf("%s 0%%  %s 1-33%%  %s 34-66%%  %s 67-99%%  %s 100%%",
				ui.ProgressCell(0), ui.ProgressCell(20), ui.ProgressCell(50), ui.ProgressCell(80), ui.ProgressCell(100))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(legend))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			// Column header: one short label per item.
			header := "     "
			for _, it := range items {
				header += fmt.Sprintf("%-4s", shortLabel(it.ID))
			}
			header += "day%"
			fmt.Fprintln(cmd.OutOrStdout(), ui.Key.Render(header))

			for day := 1; day <= tracker.Period().Days; day++ {
				rec := tracker.Day(day)
				row := fmt.Sprintf("%3d  ", day)
				for _, it := range items {
					row += ui.ProgressCell(rec.Items[it.ID].Completion) + "   "
				}
				row += fmt.Sprintf("%3d%%", rec.OverallCompletion)
				if day == current {
					row += " " + ui.Gold.Render("← today")
				}
				fmt.Fprintln(cmd.OutOrStdout(), row)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "")
			for _, it := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s\n", ui.KindIcon(it), ui.Key.Render(shortLabel(it.ID)), i18n.Label(lang, it.ID))
			}
			return nil
		},
	}

	return cmd
}

// shortLabel abbreviates a catalog id for the matrix header.
func shortLabel(id string) string {
	switch id {
	case "morning_athkar":
		return "mat"
	case "evening_athkar":
		return "eat"
	case "quran_day":
		return "qur"
	case "quran_tarawih":
		return "tar"
	default:
		if len(id) > 3 {
			return id[:3]
		}
		return id
	}
}
