package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/srs/internal/wire"
)

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tracked items ordered by next review",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := wire.ItemService().ListItems(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}

			if len(items) == 0 {
				fmt.Println("No items tracked yet. Add one with: srs add <id> <difficulty 1-5>")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDiff\tStreak\tNext Review\tNotes")
			fmt.Fprintln(w, "--\t----\t------\t-----------\t-----")
			for _, item := range items {
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n",
					item.ID, item.Difficulty, item.Reps,
					item.NextReview.Format(time.DateOnly), item.Notes)
			}
			w.Flush()
			return nil
		},
	}
}
