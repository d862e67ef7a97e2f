package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/srs/internal/wire"
)

// PlanCmd returns the plan command
func PlanCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the study plan for the coming days",
		Long: `Show the study plan: items grouped by review date over the coming
horizon. Overdue items appear under today so backlog stays visible.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := today()
			plan, err := wire.ItemService().StudyPlan(cmd.Context(), now, days)
			if err != nil {
				return fmt.Errorf("failed to build study plan: %w", err)
			}

			if len(plan) == 0 {
				fmt.Printf("✓ Nothing scheduled in the next %d day(s)\n", days)
				return nil
			}

			dateStyle := color.New(color.FgHiBlue)
			for _, day := range plan {
				label := day.Date.Format(time.DateOnly)
				if day.Date.Equal(now) {
					label += " (today)"
				}
				dateStyle.Println(label)
				for _, item := range day.Items {
					fmt.Printf("  %s (streak %d, interval %dd)\n",
						item.ID, item.Reps, item.IntervalDays)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 7, "Horizon in days")
	return cmd
}
