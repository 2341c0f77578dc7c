package highlight

import (
	"fmt"
	"strings"
)

// FormatTimestamp renders seconds as HH:MM:SS.
func FormatTimestamp(seconds int) string {
	m, s := seconds/60, seconds%60
	h, m := m/60, m%60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Format renders the timeline as one line per point:
// "<ordinal>. <HH:MM:SS> - <HH:MM:SS>: <summary>".
func Format(points []Point) string {
	var b strings.Builder
	for _, p := range points {
		fmt.Fprintf(&b, "%d. %s - %s: %s\n",
			p.Ordinal,
			FormatTimestamp(p.StartSecs),
			FormatTimestamp(p.EndSecs),
			strings.TrimSpace(p.Summary),
		)
	}
	return b.String()
}
