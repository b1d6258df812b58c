package ytdlp

import (
	"regexp"
	"strings"

	"github.com/Akshay-gurav-31/QuickDL-YouTube-Video-Downloader/internal/media"
)

// ResolveOutputPath expands the output template's placeholders the way
// yt-dlp would have, using the fetched metadata. Only the placeholders
// the service emits are supported: %(title)s, %(ext)s, %(id)s.
func (c *Client) ResolveOutputPath(meta *media.Metadata, template string) string {
	ext := meta.Ext
	if ext == "" {
		ext = media.MergeContainer
	}

	path := template
	path = strings.ReplaceAll(path, "%(title)s", sanitizeTitle(meta.Title))
	path = strings.ReplaceAll(path, "%(id)s", meta.ID)
	path = strings.ReplaceAll(path, "%(ext)s", ext)
	return path
}

var multiSpace = regexp.MustCompile(`\s+`)

// sanitizeTitle mirrors yt-dlp's filename sanitization closely enough
// that the derived path matches what it wrote to disk.
func sanitizeTitle(title string) string {
	replacer := strings.NewReplacer(
		"/", "⧸",
		"\\", "⧹",
		":", "：",
		"*", "＊",
		"?", "？",
		"\"", "＂",
		"<", "＜",
		">", "＞",
		"|", "｜",
		"\n", " ",
		"\r", "",
	)
	result := replacer.Replace(title)

	result = multiSpace.ReplaceAllString(result, " ")
	result = strings.TrimSpace(result)
	return strings.Trim(result, ".")
}
