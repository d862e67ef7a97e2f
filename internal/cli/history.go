package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/srs/internal/wire"
)

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [id]",
		Short: "Show the review history of one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := wire.ItemService().GetItem(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get item: %w", err)
			}

			fmt.Printf("%s (difficulty %d, ease %.2f, streak %d, next %s)\n",
				item.ID, item.Difficulty, item.EaseFactor, item.Reps,
				item.NextReview.Format(time.DateOnly))
			if item.Notes != "" {
				fmt.Printf("Notes: %s\n", item.Notes)
			}

			if len(item.History) == 0 {
				fmt.Println("No reviews recorded yet")
				return nil
			}

			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "Date\tQuality")
			fmt.Fprintln(w, "----\t-------")
			for _, event := range item.History {
				fmt.Fprintf(w, "%s\t%d\n", event.Date.Format(time.DateOnly), event.Quality)
			}
			w.Flush()
			return nil
		},
	}
}
