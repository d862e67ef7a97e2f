package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/srs/internal/ports/primary"
	"github.com/example/srs/internal/wire"
)

// AddCmd returns the add command
func AddCmd() *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "add [id] [difficulty 1-5]",
		Short: "Start tracking a new practice item",
		Long: `Start tracking a new practice item.

The difficulty is how hard the item felt at first solve: harder items
(higher numbers) come back for review sooner.

Examples:
  srs add LC-33 4
  srs add LC-33 4 --notes "binary search on rotated array"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			difficulty, err := parseRating("difficulty", args[1])
			if err != nil {
				return err
			}

			item, err := wire.ItemService().AddItem(cmd.Context(), primary.AddItemRequest{
				ID:         args[0],
				Difficulty: difficulty,
				Notes:      notes,
				Today:      today(),
			})
			if err != nil {
				return fmt.Errorf("failed to add item: %w", err)
			}

			fmt.Printf("✓ Added %s (difficulty %d, first review %s)\n",
				item.ID, item.Difficulty, item.NextReview.Format(time.DateOnly))
			return nil
		},
	}

	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes about the item")
	return cmd
}
