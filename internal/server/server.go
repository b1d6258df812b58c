package server

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Akshay-gurav-31/QuickDL-YouTube-Video-Downloader/internal/config"
	"github.com/Akshay-gurav-31/QuickDL-YouTube-Video-Downloader/internal/media"
)

const requestIDKey = "request_id"

// Server is the QuickDL HTTP server: a thin gateway in front of the
// extraction service.
type Server struct {
	cfg     *config.Config
	service *media.Service
	engine  *gin.Engine
	server  *http.Server
	sweeper *sweeper
}

// NewServer creates a server for the given config and media service.
func NewServer(cfg *config.Config, service *media.Service) *Server {
	return &Server{
		cfg:     cfg,
		service: service,
	}
}

// Start ensures the download directory exists, starts the retention
// sweeper when enabled, and serves until Stop is called.
func (s *Server) Start() error {
	if err := os.MkdirAll(s.cfg.DownloadDir, 0755); err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}

	if s.cfg.RetentionHours > 0 {
		s.sweeper = newSweeper(s.cfg.DownloadDir,
			time.Duration(s.cfg.RetentionHours)*time.Hour)
		s.sweeper.start()
	}

	gin.SetMode(gin.ReleaseMode)
	s.engine = s.buildEngine()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:      s.engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // No timeout for downloads
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting quickdl server on port %d", s.cfg.Server.Port)
	log.Printf("Download directory: %s", s.cfg.DownloadDir)
	if s.cfg.RetentionHours > 0 {
		log.Printf("Retention: downloads older than %dh are removed", s.cfg.RetentionHours)
	}

	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	if s.sweeper != nil {
		s.sweeper.stop()
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) buildEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.Default())
	engine.Use(s.loggingMiddleware())

	api := engine.Group("/api")
	api.GET("/health", s.handleHealth)
	api.POST("/info", s.handleInfo)
	api.GET("/download", s.handleDownload)

	if staticFS := GetStaticFS(); staticFS != nil {
		s.setupStaticFiles(engine, staticFS)
	}

	return engine
}

// Middleware

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Set(requestIDKey, uuid.NewString())
		c.Next()
		log.Printf("[%s] %s %s %s", requestID(c), c.Request.Method,
			c.Request.URL.Path, time.Since(start))
	}
}

// requestID returns the ID the logging middleware attached, for
// correlating handler fault logs with request lines.
func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// setupStaticFiles serves the embedded frontend with an index fallback
func (s *Server) setupStaticFiles(engine *gin.Engine, staticFS fs.FS) {
	engine.GET("/", func(c *gin.Context) {
		serveIndex(c, staticFS)
	})

	engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.FileFromFS(c.Request.URL.Path, http.FS(staticFS))
	})
}

func serveIndex(c *gin.Context, staticFS fs.FS) {
	index, err := fs.ReadFile(staticFS, "index.html")
	if err != nil {
		c.String(http.StatusNotFound, "index.html not found")
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, string(index))
}
