package media

import (
	"fmt"
	"strings"
)

// DefaultQuality is applied when a download request does not name one.
const DefaultQuality = "1080p"

// heights recognized as quality ceilings; anything else falls through to
// the plain "best" selector.
var cappedHeights = map[string]bool{
	"1080": true,
	"720":  true,
	"480":  true,
	"360":  true,
}

// FormatForQuality maps a quality label like "720p" to a stream-selection
// expression: best video capped at that height merged with best audio,
// falling back to the best combined stream under the same cap. Labels it
// does not recognize (including case mismatches like "1080P") select the
// best available stream with no ceiling. Unrecognized labels are not an
// error; the selector is permissive.
func FormatForQuality(quality string) string {
	height := strings.TrimSuffix(quality, "p")
	if cappedHeights[height] {
		return fmt.Sprintf("bestvideo[height<=%s]+bestaudio/best[height<=%s]", height, height)
	}
	return "best"
}
