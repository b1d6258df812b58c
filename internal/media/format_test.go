package media

import "testing"

func TestFormatForQuality_CappedHeights(t *testing.T) {
	tests := []struct {
		quality string
		want    string
	}{
		{"1080p", "bestvideo[height<=1080]+bestaudio/best[height<=1080]"},
		{"720p", "bestvideo[height<=720]+bestaudio/best[height<=720]"},
		{"480p", "bestvideo[height<=480]+bestaudio/best[height<=480]"},
		{"360p", "bestvideo[height<=360]+bestaudio/best[height<=360]"},
		// Bare heights work too since only a trailing "p" is stripped
		{"1080", "bestvideo[height<=1080]+bestaudio/best[height<=1080]"},
	}

	for _, tt := range tests {
		t.Run(tt.quality, func(t *testing.T) {
			if got := FormatForQuality(tt.quality); got != tt.want {
				t.Errorf("FormatForQuality(%q) = %q, want %q", tt.quality, got, tt.want)
			}
		})
	}
}

func TestFormatForQuality_UnrecognizedFallsBackToBest(t *testing.T) {
	for _, quality := range []string{"", "4k", "1080P", "2160p", "best", "144p", "720 "} {
		if got := FormatForQuality(quality); got != "best" {
			t.Errorf("FormatForQuality(%q) = %q, want \"best\"", quality, got)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{330, "5:30"},
		{3600, "60:00"},
		{125.7, "2:05"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
