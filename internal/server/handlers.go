package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/Akshay-gurav-31/QuickDL-YouTube-Video-Downloader/internal/media"
	"github.com/Akshay-gurav-31/QuickDL-YouTube-Video-Downloader/internal/version"
)

// Client-facing error messages. The info path never exposes the
// underlying extractor error; the download path deliberately does.
const (
	errURLRequired  = "URL is required"
	errFetchInfo    = "Could not fetch video info. Please check the URL."
	errFileNotFound = "File not found after download"
)

// InfoRequest is the request body for POST /api/info
type InfoRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version.Version,
	})
}

func (s *Server) handleInfo(c *gin.Context) {
	var req InfoRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errURLRequired})
		return
	}

	// Deliberately not the request context: a client disconnect must not
	// cancel the extractor call.
	info, err := s.service.Info(context.Background(), req.URL)
	if err != nil {
		// All extraction failures collapse into one generic message on
		// this read-only path; the cause stays in the server log.
		log.Printf("[%s] error fetching info for %s: %v", requestID(c), req.URL, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": errFetchInfo})
		return
	}

	c.JSON(http.StatusOK, info)
}

func (s *Server) handleDownload(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errURLRequired})
		return
	}
	quality := c.DefaultQuery("quality", media.DefaultQuality)

	path, err := s.service.Download(context.Background(), url, quality)
	if err != nil {
		log.Printf("[%s] download error for %s: %v", requestID(c), url, err)

		var resErr *media.ResolutionError
		if errors.As(err, &resErr) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": errFileNotFound})
			return
		}
		// Extraction failures on this path expose the underlying message;
		// download errors are actionable for the caller.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.streamAttachment(c, path)
}

// streamAttachment sends the file with a Content-Disposition that forces
// a browser save dialog.
func (s *Server) streamAttachment(c *gin.Context, path string) {
	file, err := os.Open(path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, stat.Size(), contentType, file, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, filepath.Base(path)),
	})
}
