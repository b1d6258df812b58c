package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Akshay-gurav-31/QuickDL-YouTube-Video-Downloader/internal/config"
	"github.com/Akshay-gurav-31/QuickDL-YouTube-Video-Downloader/internal/media"
	"github.com/Akshay-gurav-31/QuickDL-YouTube-Video-Downloader/internal/server"
	"github.com/Akshay-gurav-31/QuickDL-YouTube-Video-Downloader/internal/ytdlp"
)

var (
	servePort      int
	serveOutputDir string
	serveYtdlpPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the QuickDL HTTP server",
	Long: `Start the HTTP server that serves the frontend and the download API.

Examples:
  quickdl serve              # Start server on port 5000
  quickdl serve -p 9000      # Start server on port 9000
  quickdl serve -o ~/videos  # Use custom download directory

API Endpoints:
  GET  /api/health           # Health check
  POST /api/info             # Fetch video metadata
  GET  /api/download         # Download a video as an attachment`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP listen port (default: 5000)")
	serveCmd.Flags().StringVarP(&serveOutputDir, "output", "o", "", "download directory")
	serveCmd.Flags().StringVar(&serveYtdlpPath, "ytdlp", "", "path to the yt-dlp binary")

	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg := config.LoadOrDefault()

	// Flag > config > default
	if servePort > 0 {
		cfg.Server.Port = servePort
	}
	if serveOutputDir != "" {
		cfg.DownloadDir = serveOutputDir
	}
	if serveYtdlpPath != "" {
		cfg.YtdlpPath = serveYtdlpPath
	}

	// Expand ~ in path
	if len(cfg.DownloadDir) >= 2 && cfg.DownloadDir[:2] == "~/" {
		home, _ := os.UserHomeDir()
		cfg.DownloadDir = filepath.Join(home, cfg.DownloadDir[2:])
	}

	if !config.Exists() {
		color.Yellow("No config file found, using defaults. Run 'quickdl init' to create one.")
	}

	extractor := ytdlp.New(cfg.YtdlpPath)
	timeout := time.Duration(cfg.ExtractTimeoutSec) * time.Second
	service := media.NewService(extractor, cfg.DownloadDir, timeout)

	srv := server.NewServer(cfg, service)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Stop(ctx)
	}()

	fmt.Printf("Starting server on http://localhost:%d\n", cfg.Server.Port)
	return srv.Start()
}
