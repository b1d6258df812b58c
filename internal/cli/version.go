package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Akshay-gurav-31/QuickDL-YouTube-Video-Downloader/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quickdl v%s %s/%s\n", version.Version, runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
