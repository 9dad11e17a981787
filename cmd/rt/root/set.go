package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jubams/ramadan-tracker/internal/catalog"
	"github.com/jubams/ramadan-tracker/internal/engine"
	"github.com/jubams/ramadan-tracker/internal/ui"
)

func newSetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "set <day> <item> <field> <value>",
		Short: "Record one field of one daily item",
		Long: `Record a single field for a day's item and recompute its completion.

Fields by item kind:
- prayers (fajr, dhuhr, asr, maghrib, isha): inTime, athkar, sunna
- checkbox goals (morning_athkar, evening_athkar): done
- number goals (quran_day, quran_tarawih): pages

Boolean fields take true/false (or yes/no); counters take a number and are
clamped to the item's range.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 4 {
				return errors.New("day, item, field and value are required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("day must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tracker, _, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day, _ := strconv.Atoi(args[0])
			itemID := strings.TrimSpace(args[1])
			it, ok := catalog.ByID(itemID)
			if !ok {
				return fmt.Errorf("unknown item: %q", itemID)
			}
			field, err := engine.ParseField(args[2])
			if err != nil {
				return err
			}

			if !tracker.Editable(day) && !force {
				return fmt.Errorf("day %d is in the future and locked (use --force to override)", day)
			}

			value, err := parseFieldValue(it, field, args[3])
			if err != nil {
				return err
			}
			if err := tracker.UpdateField(ctx, day, itemID, field, value); err != nil {
				return err
			}

			rec := tracker.Day(day)
			ir := rec.Items[itemID]
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s day %d: %s → %d%%\n", ui.Good.Render(ui.IconDone+" Recorded"), itemID, day, field, ir.Completion)
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Day overall", fmt.Sprintf("%d%% (%d/%d items)", rec.OverallCompletion, rec.CompletedItems, catalog.Len())))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Edit a locked (future) day anyway")

	return cmd
}

// parseFieldValue turns CLI input into the typed value the tracker expects,
// clamping counters to the item's legal range. The tracker itself takes
// values as given; this is the input boundary.
func parseFieldValue(it catalog.Item, field engine.Field, raw string) (any, error) {
	switch field {
	case engine.FieldInTime, engine.FieldAthkar, engine.FieldCompleted:
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "true", "yes", "y", "1", "on":
			return true, nil
		case "false", "no", "n", "0", "off":
			return false, nil
		default:
			return nil, fmt.Errorf("field %q wants true/false, got %q", field, raw)
		}
	case engine.FieldSunnaCompleted, engine.FieldValue:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("field %q wants a number, got %q", field, raw)
		}
		return engine.ClampFieldValue(it, field, n), nil
	default:
		return nil, fmt.Errorf("invalid field: %q", field)
	}
}
