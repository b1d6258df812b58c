package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Service drives the extractor for the two request paths. It holds no
// per-request state; concurrent calls are independent.
type Service struct {
	extractor   Extractor
	downloadDir string
	timeout     time.Duration

	// now is swapped out in tests to pin the timestamp in templates.
	now func() time.Time
}

// NewService creates a Service writing downloads under downloadDir.
// timeout bounds each extractor call; zero means unbounded.
func NewService(extractor Extractor, downloadDir string, timeout time.Duration) *Service {
	return &Service{
		extractor:   extractor,
		downloadDir: downloadDir,
		timeout:     timeout,
		now:         time.Now,
	}
}

// Info fetches metadata for url and projects it into the stable response
// shape. Any extractor failure comes back as *ExtractionError.
func (s *Service) Info(ctx context.Context, url string) (*VideoInfo, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	meta, err := s.extractor.FetchMetadata(ctx, url, BuildOptions(false, ""))
	if err != nil {
		return nil, &ExtractionError{Err: err}
	}

	return ProjectInfo(meta, url), nil
}

// Download fetches, muxes, and resolves the media at url, returning the
// path of the produced file. Failures are *ExtractionError (the extractor
// itself failed) or *ResolutionError (it reported success but the file is
// not on disk).
func (s *Service) Download(ctx context.Context, url, quality string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	// Second-granularity timestamp keeps concurrent downloads of
	// different titles apart; the title placeholder does the rest.
	template := filepath.Join(s.downloadDir,
		fmt.Sprintf("%%(title)s_%d.%%(ext)s", s.now().Unix()))

	opts := BuildOptions(true, template)
	opts.Format = FormatForQuality(quality)

	result, err := s.extractor.Download(ctx, url, opts)
	if err != nil {
		return "", &ExtractionError{Err: err}
	}

	path := s.resolvePath(result, template)
	if _, err := os.Stat(path); err != nil {
		return "", &ResolutionError{Path: path}
	}
	return path, nil
}

// resolvePath picks the produced file: the extractor's own report wins;
// otherwise the path is derived from the template, normalizing the
// extension to the merge container since muxing may have rewritten it.
func (s *Service) resolvePath(result *DownloadResult, template string) string {
	if len(result.RequestedDownloads) > 0 {
		return result.RequestedDownloads[0].Filepath
	}

	path := s.extractor.ResolveOutputPath(&result.Info, template)
	if ext := filepath.Ext(path); ext != "."+MergeContainer {
		path = strings.TrimSuffix(path, ext) + "." + MergeContainer
	}
	return path
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
