package media

import "fmt"

// FormatDuration renders a duration in seconds as "M:SS". Minutes are not
// zero-padded, seconds always are, so an hour reads "60:00". Negative
// input is clamped to zero; the extractor never reports one.
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
