package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/srs/internal/models"
	"github.com/example/srs/internal/wire"
)

// DueCmd returns the due command
func DueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "Show items due for review today",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := today()
			items, err := wire.ItemService().DueItems(cmd.Context(), now)
			if err != nil {
				return fmt.Errorf("failed to list due items: %w", err)
			}

			if len(items) == 0 {
				fmt.Println("✓ Nothing due today")
				return nil
			}

			fmt.Printf("%d item(s) due:\n\n", len(items))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDue\tStreak\tInterval\tEase")
			fmt.Fprintln(w, "--\t---\t------\t--------\t----")
			for _, item := range items {
				due := item.NextReview.Format(time.DateOnly)
				if models.DateOf(item.NextReview).Before(now) {
					due = color.New(color.FgRed).Sprintf("%s (overdue)", due)
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%dd\t%.2f\n",
					item.ID, due, item.Reps, item.IntervalDays, item.EaseFactor)
			}
			w.Flush()
			return nil
		},
	}
}
