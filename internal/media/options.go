package media

// MergeContainer is the container downloads are muxed into when separate
// audio and video tracks are combined.
const MergeContainer = "mp4"

// Options is the closed set of knobs handed to the extractor. Built
// fresh per request and never mutated afterwards.
type Options struct {
	// Quiet suppresses the extractor's console chatter.
	Quiet bool

	// NoWarnings suppresses extractor warnings.
	NoWarnings bool

	// Format is the stream-selection expression (download mode only).
	Format string

	// OutputTemplate is the filesystem path pattern with placeholders
	// (download mode only).
	OutputTemplate string

	// MergeOutputFormat is the target container (download mode only).
	MergeOutputFormat string
}

// BuildOptions produces the extractor configuration for one call.
//
// Info mode runs quiet with warnings suppressed and no output fields.
// Download mode keeps progress visible, selects the default 1080p-capped
// format (callers override it with FormatForQuality afterwards, so the
// requested quality always wins), and muxes into mp4 at outputTemplate.
//
// Calling with download=true and an empty template is a contract
// violation by the caller, not a user error, so it panics.
func BuildOptions(download bool, outputTemplate string) Options {
	opts := Options{
		Quiet:      true,
		NoWarnings: true,
	}

	if download {
		if outputTemplate == "" {
			panic("media: BuildOptions requires an output template in download mode")
		}
		opts.Quiet = false
		opts.Format = FormatForQuality(DefaultQuality)
		opts.OutputTemplate = outputTemplate
		opts.MergeOutputFormat = MergeContainer
	}

	return opts
}
