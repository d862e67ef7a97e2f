package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/srs/internal/ports/primary"
	"github.com/example/srs/internal/wire"
)

// ReviewCmd returns the review command
func ReviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review [id] [quality 1-5]",
		Short: "Record a review of an item",
		Long: `Record a review of an item and reschedule it.

Quality is how well you recalled the item: 1-2 count as a lapse (the
item comes back tomorrow and its streak resets), 3-5 count as a pass
(the interval grows).

Examples:
  srs review LC-33 5
  srs review LC-33 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quality, err := parseRating("quality", args[1])
			if err != nil {
				return err
			}

			item, err := wire.ItemService().RecordReview(cmd.Context(), primary.ReviewRequest{
				ID:      args[0],
				Quality: quality,
				Today:   today(),
			})
			if err != nil {
				return fmt.Errorf("failed to record review: %w", err)
			}

			fmt.Printf("✓ Reviewed %s (q=%d): next review %s (in %dd, ease %.2f, streak %d)\n",
				item.ID, quality, item.NextReview.Format(time.DateOnly),
				item.IntervalDays, item.EaseFactor, item.Reps)
			return nil
		},
	}
}
