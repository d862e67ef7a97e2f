package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/example/srs/internal/models"
)

// parseRating parses a 1-5 rating argument (difficulty or quality).
// Range checking proper happens in the scheduler; this only rejects
// non-numeric input with a usable message.
func parseRating(name, arg string) (int, error) {
	value, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number 1-5, got %q", name, arg)
	}
	return value, nil
}

// today returns the current calendar date. The core never reads the clock
// itself; the CLI is the single place "now" enters the system.
func today() time.Time {
	return models.DateOf(time.Now())
}
