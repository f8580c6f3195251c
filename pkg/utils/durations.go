package utils

import "fmt"

// FormatTravelDuration renders a routing duration for display:
// under a minute "42s", under an hour "12 min", otherwise "2h" or "2h 30m".
// Sub-unit remainders are truncated, so 3599s is still "59 min".
func FormatTravelDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%d min", seconds/60)
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
