package format

import (
	"fmt"
	"time"
)

// Date renders a created_at timestamp the way the web client shows it:
// day/month/year, local time.
func Date(t time.Time) string {
	return t.Local().Format("02/01/2006")
}

// Ago formats a past timestamp as a short relative string ("hace 5m"),
// falling back to the full date past a month.
func Ago(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "ahora mismo"
	case diff < time.Hour:
		return fmt.Sprintf("hace %dm", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("hace %dh", int(diff.Hours()))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("hace %dd", int(diff.Hours()/24))
	default:
		return Date(t)
	}
}
