package sim

import (
	"fmt"
	"time"
)

// FormatTime renders d as seconds with millisecond precision. Non-positive
// durations render as "0.000".
func FormatTime(d time.Duration) string {
	if d <= 0 {
		return "0.000"
	}
	return fmt.Sprintf("%.3f", d.Seconds())
}
