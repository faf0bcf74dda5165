// Package api provides the HTTP surface for the carousel service.
package api

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ideamans/go-l10n"

	"github.com/user/carousel/pkg/orchestrator"
	"github.com/user/carousel/pkg/pipeline"
	"github.com/user/carousel/pkg/ports"
)

// Version is reported by the index endpoint.
var Version = "dev"

// Generator renders a carousel batch. Satisfied by orchestrator.Orchestrator.
type Generator interface {
	Generate(ctx context.Context, slides []pipeline.Slide) (orchestrator.RunResult, error)
}

// Server handles the HTTP surface: carousel generation, artifact download,
// health and index endpoints.
type Server struct {
	gen          Generator
	templates    ports.TemplateStore
	renderer     ports.Renderer
	fs           ports.FileSystem
	logger       ports.Logger
	generatedDir string
	baseURL      string
}

// NewServer creates a Server. baseURL may be empty; download URLs then
// derive from the incoming request's host.
func NewServer(
	gen Generator,
	templates ports.TemplateStore,
	renderer ports.Renderer,
	fs ports.FileSystem,
	logger ports.Logger,
	generatedDir string,
	baseURL string,
) *Server {
	return &Server{
		gen:          gen,
		templates:    templates,
		renderer:     renderer,
		fs:           fs,
		logger:       logger.WithComponent("api"),
		generatedDir: generatedDir,
		baseURL:      strings.TrimRight(baseURL, "/"),
	}
}

// RegisterRoutes attaches the API routes to a gin engine.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.POST("/generate-carousel", s.generateCarousel)
	r.GET("/download/:filename", s.download)
	r.GET("/health", s.health)
	r.GET("/", s.index)
}

// GenerateRequest is the generation request body.
type GenerateRequest struct {
	Slides []pipeline.Slide `json:"slides"`

	// ResponseMode selects by-reference ("urls", default) or by-value
	// ("inline") delivery of the rendered images.
	ResponseMode string `json:"responseMode,omitempty"`
}

// ImageResult is one rendered slide in the response.
type ImageResult struct {
	SlideNumber int      `json:"slideNumber"`
	Filename    string   `json:"filename"`
	URL         string   `json:"url,omitempty"`
	Data        string   `json:"data,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
}

func (s *Server) generateCarousel(c *gin.Context) {
	var req GenerateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if len(req.Slides) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": `invalid request: expected JSON with a non-empty "slides" array`})
		return
	}

	inline := req.ResponseMode == "inline"

	run, err := s.gen.Generate(c.Request.Context(), req.Slides)
	if err != nil {
		// A missing template is the one batch-fatal error: no fallback
		// canvas exists. Anything else is equally a server-side failure.
		status := http.StatusInternalServerError
		var missing *ports.MissingTemplateError
		if errors.As(err, &missing) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	images := make([]ImageResult, 0, len(run.Results))
	for _, res := range run.Results {
		entry := ImageResult{
			SlideNumber: res.SlideNumber,
			Filename:    res.Filename,
			Warnings:    res.Warnings,
		}
		if res.Err != nil {
			entry.Warnings = append(entry.Warnings, res.Err.Error())
			images = append(images, entry)
			continue
		}

		data, err := s.renderer.EncodePNG(res.Image)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "encode image: " + err.Error()})
			return
		}

		if inline {
			entry.Data = base64.StdEncoding.EncodeToString(data)
		} else {
			path := filepath.Join(s.generatedDir, res.Filename)
			if err := s.fs.WriteFile(path, data); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "persist image: " + err.Error()})
				return
			}
			entry.URL = s.downloadURL(c, res.Filename)
		}
		images = append(images, entry)
	}

	s.logger.Info(l10n.F("Generated %d images for request", run.Count))

	c.JSON(http.StatusOK, gin.H{
		"success": run.Success,
		"images":  images,
		"count":   run.Count,
	})
}

func (s *Server) download(c *gin.Context) {
	filename := c.Param("filename")

	// Reject anything that could escape the generated directory.
	if filename == "" || filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filename"})
		return
	}

	path := filepath.Join(s.generatedDir, filename)
	exists, err := s.fs.Exists(path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"templates": s.templates.Names(),
	})
}

func (s *Server) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "carousel image generator",
		"version": Version,
		"endpoints": gin.H{
			"POST /generate-carousel":  "Generate carousel images from JSON slides",
			"GET /download/<filename>": "Download a generated image",
			"GET /health":              "Health check",
		},
	})
}

// downloadURL builds the retrieval URL for a generated file.
func (s *Server) downloadURL(c *gin.Context, filename string) string {
	base := s.baseURL
	if base == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + c.Request.Host
	}
	return base + "/download/" + filename
}
