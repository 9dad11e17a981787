package root

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jubams/ramadan-tracker/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tracker, _, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !yes {
				fmt.Fprint(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Reset all progress? This cannot be undone.")+" [y/N] ")
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				switch strings.ToLower(strings.TrimSpace(answer)) {
				case "y", "yes":
				default:
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := tracker.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" All progress reset."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
