// Package ytdlp adapts the yt-dlp command-line tool to the media.Extractor
// boundary. All format discovery, network fetching, and container muxing
// happens inside yt-dlp; this package only builds argument lists and
// parses the single-JSON info dump.
package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/Akshay-gurav-31/QuickDL-YouTube-Video-Downloader/internal/media"
)

// Client shells out to a yt-dlp binary.
type Client struct {
	// Path to the binary; "yt-dlp" resolves through PATH.
	Path string
}

// New creates a Client for the given binary path.
func New(path string) *Client {
	if path == "" {
		path = "yt-dlp"
	}
	return &Client{Path: path}
}

// infoDump is the subset of yt-dlp's -J output the service consumes.
type infoDump struct {
	media.Metadata
	RequestedDownloads []media.RequestedDownload `json:"requested_downloads"`
}

// FetchMetadata runs yt-dlp in simulate mode and parses the info dump.
func (c *Client) FetchMetadata(ctx context.Context, url string, opts media.Options) (*media.Metadata, error) {
	args := append(optionArgs(opts), "-J", "--no-playlist", url)

	dump, err := c.run(ctx, args, opts.Quiet)
	if err != nil {
		return nil, err
	}
	return &dump.Metadata, nil
}

// Download runs yt-dlp for real. --no-simulate together with -J makes it
// download and still emit the info dump, whose requested_downloads list
// carries the final file paths after muxing.
func (c *Client) Download(ctx context.Context, url string, opts media.Options) (*media.DownloadResult, error) {
	args := append(optionArgs(opts), "-J", "--no-simulate", "--no-playlist", url)

	dump, err := c.run(ctx, args, opts.Quiet)
	if err != nil {
		return nil, err
	}
	return &media.DownloadResult{
		Info:               dump.Metadata,
		RequestedDownloads: dump.RequestedDownloads,
	}, nil
}

func (c *Client) run(ctx context.Context, args []string, quiet bool) (*infoDump, error) {
	cmd := exec.CommandContext(ctx, c.Path, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	// The JSON dump owns stdout; progress and warnings go to stderr.
	// When not quiet they stay visible on the server console.
	var stderr bytes.Buffer
	if quiet {
		cmd.Stderr = &stderr
	} else {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		if msg := lastLine(stderr.String()); msg != "" {
			return nil, fmt.Errorf("yt-dlp: %s", msg)
		}
		return nil, fmt.Errorf("yt-dlp: %w", err)
	}

	dump := &infoDump{}
	if err := json.Unmarshal(stdout.Bytes(), dump); err != nil {
		return nil, fmt.Errorf("yt-dlp: unexpected output: %w", err)
	}
	return dump, nil
}

// optionArgs translates the closed option set into yt-dlp flags.
func optionArgs(opts media.Options) []string {
	var args []string
	if opts.Quiet {
		args = append(args, "--quiet")
	}
	if opts.NoWarnings {
		args = append(args, "--no-warnings")
	}
	if opts.Format != "" {
		args = append(args, "-f", opts.Format)
	}
	if opts.OutputTemplate != "" {
		args = append(args, "-o", opts.OutputTemplate)
	}
	if opts.MergeOutputFormat != "" {
		args = append(args, "--merge-output-format", opts.MergeOutputFormat)
	}
	return args
}

// lastLine returns the last non-empty line, which is where yt-dlp prints
// its ERROR: summary.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
