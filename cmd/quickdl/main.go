package main

import "github.com/Akshay-gurav-31/QuickDL-YouTube-Video-Downloader/internal/cli"

func main() {
	cli.Execute()
}
