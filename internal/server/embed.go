package server

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// GetStaticFS returns the embedded frontend filesystem
func GetStaticFS() fs.FS {
	subFS, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil
	}
	return subFS
}
