package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Akshay-gurav-31/QuickDL-YouTube-Video-Downloader/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the quickdl config file with defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(); err != nil {
			return err
		}
		color.Green("Saved %s", config.SavePath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
