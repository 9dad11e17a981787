package root

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jubams/ramadan-tracker/internal/ui"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export all progress to a JSON backup file",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one output file")
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

			path := fmt.Sprintf("ramadan-tracker-%d.json", time.Now().Year())
			if len(args) == 1 {
				path = args[0]
			}

			snap := tracker.ExportSnapshot()
			raw, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal snapshot: %w", err)
			}
			if err := os.WriteFile(path, raw, 0o644); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconDone+" Exported"), path)
			return nil
		},
	}

	return cmd
}
