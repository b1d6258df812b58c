package media

import "testing"

func TestBuildOptions_InfoMode(t *testing.T) {
	opts := BuildOptions(false, "")

	if !opts.Quiet {
		t.Error("info mode should be quiet")
	}
	if !opts.NoWarnings {
		t.Error("info mode should suppress warnings")
	}
	if opts.Format != "" || opts.OutputTemplate != "" || opts.MergeOutputFormat != "" {
		t.Errorf("info mode must not set download fields, got %+v", opts)
	}
}

func TestBuildOptions_DownloadMode(t *testing.T) {
	opts := BuildOptions(true, "downloads/%(title)s_123.%(ext)s")

	if opts.Quiet {
		t.Error("download mode keeps progress visible")
	}
	if !opts.NoWarnings {
		t.Error("download mode should suppress warnings")
	}
	if want := FormatForQuality(DefaultQuality); opts.Format != want {
		t.Errorf("Format = %q, want default %q", opts.Format, want)
	}
	if opts.OutputTemplate != "downloads/%(title)s_123.%(ext)s" {
		t.Errorf("OutputTemplate = %q", opts.OutputTemplate)
	}
	if opts.MergeOutputFormat != "mp4" {
		t.Errorf("MergeOutputFormat = %q, want mp4", opts.MergeOutputFormat)
	}
}

func TestBuildOptions_Idempotent(t *testing.T) {
	a := BuildOptions(true, "out/%(title)s.%(ext)s")
	b := BuildOptions(true, "out/%(title)s.%(ext)s")
	if a != b {
		t.Errorf("identical inputs produced different options: %+v vs %+v", a, b)
	}
}

func TestBuildOptions_PanicsWithoutTemplate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for download mode without output template")
		}
	}()
	BuildOptions(true, "")
}
