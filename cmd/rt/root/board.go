package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jubams/ramadan-tracker/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tracker, lang, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, tracker, lang, cmd.OutOrStdout())
		},
	}

	return cmd
}
