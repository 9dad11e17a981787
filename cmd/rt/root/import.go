package root

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jubams/ramadan-tracker/internal/engine"
	"github.com/jubams/ramadan-tracker/internal/ui"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all progress with a JSON backup file",
		Long: `Import a backup produced by "rt export" (or the original web app).

The entire dataset is replaced. The file must carry a ramadanData mapping;
on a validation failure nothing is changed.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("backup file is required")
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

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}
			if err := tracker.ImportSnapshot(ctx, raw); err != nil {
				var verr engine.ValidationError
				if errors.As(err, &verr) {
					return fmt.Errorf("%s: %w", args[0], verr)
				}
				return err
			}

			st := tracker.Statistics()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconDone+" Imported"), args[0])
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Overall", fmt.Sprintf("%d%%", st.OverallPercentage)))
			return nil
		},
	}

	return cmd
}
