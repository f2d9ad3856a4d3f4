package carbon

import (
	"fmt"
	"strconv"
)

// formatFloat formats a float for display.
// If the float is an integer, it is formatted as an integer.
// Otherwise, it is formatted with the fewest digits that round-trip,
// so small volumes such as 0.001 are not shown as zero.
func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
