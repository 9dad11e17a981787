package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jubams/ramadan-tracker/internal/catalog"
	"github.com/jubams/ramadan-tracker/internal/engine"
	"github.com/jubams/ramadan-tracker/internal/i18n"
	"github.com/jubams/ramadan-tracker/internal/ui"
)

func newDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day [n]",
		Short: "Show one day's items and completion (default: today)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one day number")
			}
			if len(args) == 1 {
				if _, err := strconv.Atoi(args[0]); err != nil {
					return errors.New("day must be an integer")
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tracker, lang, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day := tracker.CurrentDay()
			if len(args) == 1 {
				day, _ = strconv.Atoi(args[0])
			}
			if day < 1 || day > tracker.Period().Days {
				return fmt.Errorf("day %d out of range [1,%d]", day, tracker.Period().Days)
			}

			rec := tracker.Day(day)
			hijri := tracker.Period().HijriDateOf(day)
			date := tracker.Period().DateOf(day)

			title := fmt.Sprintf("Day %d / %s (%d %s %d)", day, date.Format("Mon, Jan 2"), hijri.Day, hijri.Month, hijri.Year)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconMoon, title))
			if !tracker.Editable(day) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconLock+" This day is in the future and locked for editing."))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			for _, it := range catalog.Items() {
				ir := rec.Items[it.ID]
				name := i18n.Label(lang, it.ID)
				pct := ir.Completion
				line := fmt.Sprintf("%s %-16s %s %3d%%  %s", ui.KindIcon(it), name, ui.ProgressBar(pct, 14), pct, ui.ProgressStyle(pct).Render(ui.ProgressLabel(pct)))
				fmt.Fprintln(cmd.OutOrStdout(), line)
				fmt.Fprintln(cmd.OutOrStdout(), "   "+ui.Muted.Render(itemDetail(lang, it, ir)))
			}

			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Overall", fmt.Sprintf("%d%% (%d/%d items complete)", rec.OverallCompletion, rec.CompletedItems, catalog.Len())))
			return nil
		},
	}

	return cmd
}

func itemDetail(lang i18n.Language, it catalog.Item, ir engine.ItemRecord) string {
	switch {
	case it.Kind == catalog.KindPrayer:
		return fmt.Sprintf("%s: %s | %s: %s | %s: %d/%d",
			i18n.Label(lang, "in_time"), checkmark(ir.InTime),
			i18n.Label(lang, "athkar"), checkmark(ir.AthkarRead),
			i18n.Label(lang, "sunna"), ir.SunnaCompleted, it.SunnaCount)
	case it.GoalKind == catalog.GoalNumber:
		return fmt.Sprintf("%s: %d/%d", i18n.Label(lang, "pages"), ir.Value, it.Target)
	default:
		return checkmark(ir.Completed)
	}
}

func checkmark(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}
