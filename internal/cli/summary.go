package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/srs/internal/wire"
)

// SummaryCmd returns the summary command
func SummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show aggregate counts and the full schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := today()
			svc := wire.ItemService()

			s, err := svc.Summary(cmd.Context(), now)
			if err != nil {
				return fmt.Errorf("failed to summarize items: %w", err)
			}

			fmt.Printf("Total tracked: %d (new %d, learning %d, mature %d)\n",
				s.Total, s.New, s.Learning, s.Mature)
			fmt.Printf("Due today: %d (overdue: %d)\n", s.DueToday, s.Overdue)
			fmt.Printf("Tomorrow: %d | next 7d: %d | next 30d: %d\n",
				s.DueTomorrow, s.Next7Days, s.Next30Days)

			items, err := svc.ListItems(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}
			if len(items) == 0 {
				return nil
			}

			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDiff\tEase\tStreak\tInterval\tNext Review")
			fmt.Fprintln(w, "--\t----\t----\t------\t--------\t-----------")
			for _, item := range items {
				fmt.Fprintf(w, "%s\t%d\t%.2f\t%d\t%dd\t%s\n",
					item.ID, item.Difficulty, item.EaseFactor, item.Reps,
					item.IntervalDays, item.NextReview.Format(time.DateOnly))
			}
			w.Flush()
			return nil
		},
	}
}
