package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Akshay-gurav-31/QuickDL-YouTube-Video-Downloader/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "quickdl",
	Short:   "HTTP gateway for fetching video info and downloading videos via yt-dlp",
	Version: version.Version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
