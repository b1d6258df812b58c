package media

import "context"

// Metadata is the projection of the extractor's info dump that the
// service consumes. Every field is optional on the wire; absent strings
// decode to "" and an absent duration decodes to 0.
type Metadata struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Thumbnail  string  `json:"thumbnail"`
	Duration   float64 `json:"duration"`
	Uploader   string  `json:"uploader"`
	WebpageURL string  `json:"webpage_url"`
	Ext        string  `json:"ext"`
}

// RequestedDownload is one file the extractor reports having produced.
type RequestedDownload struct {
	Filepath string `json:"filepath"`
}

// DownloadResult is the extractor's report after a download run. When
// RequestedDownloads is empty the final path has to be derived from the
// output template and the metadata instead.
type DownloadResult struct {
	Info               Metadata
	RequestedDownloads []RequestedDownload
}

// Extractor is the boundary to the external extraction tool. It resolves
// a source URL into metadata and, on request, downloaded and muxed media
// files on local disk.
type Extractor interface {
	// FetchMetadata resolves the URL into metadata without downloading.
	FetchMetadata(ctx context.Context, url string, opts Options) (*Metadata, error)

	// Download fetches and muxes the media described by the URL, writing
	// files to the path implied by opts.OutputTemplate.
	Download(ctx context.Context, url string, opts Options) (*DownloadResult, error)

	// ResolveOutputPath expands the template's placeholders (title,
	// extension) using the fetched metadata.
	ResolveOutputPath(meta *Metadata, template string) string
}

// VideoInfo is the response shape of the info endpoint. Built once per
// request from extractor output and discarded after serialization.
type VideoInfo struct {
	Title      string `json:"title"`
	Thumbnail  string `json:"thumbnail"`
	Duration   string `json:"duration"`
	Author     string `json:"author"`
	WebpageURL string `json:"webpage_url"`
}

// Fallbacks for metadata the source did not provide.
const (
	UnknownTitle  = "Unknown Title"
	UnknownAuthor = "Unknown Author"
)

// ProjectInfo maps raw metadata into the stable info response shape,
// substituting defaults for missing fields. sourceURL is used when the
// extractor did not report a canonical webpage URL.
func ProjectInfo(meta *Metadata, sourceURL string) *VideoInfo {
	info := &VideoInfo{
		Title:      meta.Title,
		Thumbnail:  meta.Thumbnail,
		Duration:   FormatDuration(meta.Duration),
		Author:     meta.Uploader,
		WebpageURL: meta.WebpageURL,
	}
	if info.Title == "" {
		info.Title = UnknownTitle
	}
	if info.Author == "" {
		info.Author = UnknownAuthor
	}
	if info.WebpageURL == "" {
		info.WebpageURL = sourceURL
	}
	return info
}
